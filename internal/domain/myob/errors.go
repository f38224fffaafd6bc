package myob

import "errors"

var (
	ErrNotConnected = errors.New("myob account not connected")
)
