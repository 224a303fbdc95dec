package domain

import "time"

type User struct {
	ID           uint64
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateUserInput struct {
	Email        string
	Username     string
	PasswordHash string
}

type RegisterInput struct {
	Email    string
	Username string
	Password string
}

type Credentials struct {
	Username string
	Password string
}
