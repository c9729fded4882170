package service

import "errors"

var (
	ErrNameRequired     = errors.New("name must not be empty")
	ErrInvalidBirthday  = errors.New("birthday is not a valid calendar date")
	ErrCoworkerNotFound = errors.New("coworker not found")
	ErrSelfContribution = errors.New("recipient cannot contribute to their own gift")
)
