package client

import "errors"

var (
	ErrNotFound  = errors.New("client not found")
	ErrNameTaken = errors.New("client name already registered")
)
