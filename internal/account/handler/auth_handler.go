package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/bodycheck/credential-service/internal/account/domain"
	"github.com/bodycheck/credential-service/internal/account/dto"
	"github.com/bodycheck/credential-service/internal/account/service"
	autherror "github.com/bodycheck/credential-service/internal/errors"
)

const bearerPrefix = "Bearer "

type AuthHandler struct {
	accounts *service.AccountService
	tokens   domain.TokenIssuer
	log      zerolog.Logger
}

func NewAuthHandler(accounts *service.AccountService, tokens domain.TokenIssuer, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, tokens: tokens, log: log}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input dto.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return h.writeError(c, autherror.ErrValidation)
	}

	account, err := h.accounts.Signup(c.Context(), input)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AccountOutput{
		ID:    account.ID,
		Email: account.Email,
		Name:  account.Name,
	})
}

func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var input dto.SigninInput
	if err := c.BodyParser(&input); err != nil {
		return h.writeError(c, autherror.ErrValidation)
	}

	session, err := h.accounts.Signin(c.Context(), input)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(session)
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return h.writeError(c, autherror.ErrUnauthorized)
	}

	accountID, err := h.tokens.Validate(strings.TrimPrefix(header, bearerPrefix))
	if err != nil {
		return h.writeError(c, err)
	}

	profile, err := h.accounts.Profile(c.Context(), accountID)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(profile)
}

// writeError maps an error to its stable wire code and status. Internal
// failures are logged here and reported as StorageUnavailable with no
// detail attached.
func (h *AuthHandler) writeError(c *fiber.Ctx, err error) error {
	code := autherror.Code(err)
	status := statusForCode(code)

	if status >= fiber.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	return c.Status(status).JSON(fiber.Map{"error": code})
}

func statusForCode(code string) int {
	switch code {
	case "ValidationError":
		return fiber.StatusBadRequest
	case "DuplicateAccount":
		return fiber.StatusConflict
	case "InvalidCredentials", "Unauthorized":
		return fiber.StatusUnauthorized
	case "NotFound":
		return fiber.StatusNotFound
	default:
		return fiber.StatusServiceUnavailable
	}
}
