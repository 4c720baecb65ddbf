package domain

import "time"

type Account struct {
	ID         string
	Email      string
	Name       string
	SecretHash string
	CreatedAt  time.Time
}
