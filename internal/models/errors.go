package models

import "errors"

var (
	ErrGeneral            = errors.New("an error occurred on the server during your request")
	ErrNotFound           = errors.New("there is no")
	ErrMissingField       = errors.New("amount and description must both be set")
	ErrAmountNegative     = errors.New("the amount must not be negative")
	ErrNoFields           = errors.New("at least one of amount, description, category_id or date must be set")
	ErrEmailTaken         = errors.New("a user with this email address already exists")
	ErrInvalidCredentials = errors.New("the email or password is incorrect")
)
