package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrQuestionNotFound  = errors.New("question not found")
	ErrInvalidCategory   = errors.New("invalid question category")
	ErrInvalidDifficulty = errors.New("invalid question difficulty")

	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionNotInProgress = errors.New("session is not in progress")
	ErrActiveSessionExists  = errors.New("user already has an active interview session")

	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("access forbidden")
)
