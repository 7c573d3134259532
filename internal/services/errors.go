package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrChatNotFound       = errors.New("chat not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotOwner           = errors.New("only the owner may delete the chat")
)
