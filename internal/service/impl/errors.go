package impl

import "errors"

var (
	ErrEmptyDeviceKey = errors.New("empty device key")
	ErrEmptyAccount   = errors.New("empty account name")
)
