package service

import "errors"

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrPhoneTaken    = errors.New("phone number is already registered")
	ErrUserNotFound  = errors.New("username not found")
	ErrPhoneNotFound = errors.New("phone number not found")
	ErrWrongPassword = errors.New("wrong password")

	ErrInvalidTransition = errors.New("invalid session transition")
	ErrNotAuthenticated  = errors.New("session is not authenticated")

	ErrAlreadyOwned = errors.New("card is already in collection")
	ErrNotOwned     = errors.New("card is not in collection")
)
