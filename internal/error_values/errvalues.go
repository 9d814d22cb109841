package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("validation error")

	ErrRecipeNotFound   = errors.New("recipe doesn't exist")
	ErrRecordNotFound   = errors.New("cooking record doesn't exist")
	ErrWrongOwner       = errors.New("entity has different owner")
	ErrOwnerNotFound    = errors.New("owner doesn't exist")
	ErrCookedAtNotAllow = errors.New("cooking date in the future is not allowed")

	ErrSessionExists    = errors.New("cooking session already in progress")
	ErrSessionNotFound  = errors.New("no cooking session in progress")
	ErrCountdownMissing = errors.New("countdown doesn't exist")
	ErrInvalidState     = errors.New("operation not allowed in current timer state")
)
