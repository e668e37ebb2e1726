package service

import "errors"

var (
	// ErrUsernameTaken is returned by Register when the username is already in use.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrUserNotFound is returned by Login when no account matches the username.
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword is returned by Login when the password does not verify.
	ErrWrongPassword = errors.New("wrong password")
)
