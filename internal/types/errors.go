package types

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrUpstream        = errors.New("upstream api error")
	ErrStorageAccess   = errors.New("blob store read/write error")
	ErrCorruptDocument = errors.New("corrupt stats document")

	ErrInvalidBackend = errors.New("invalid backend")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

func Err(typedError error, innerErr error, msgTemplate string, args ...any) error {
	if msgTemplate == "" {
		return errors.Join(typedError, innerErr)
	} else {
		return errors.Join(typedError, innerErr, fmt.Errorf(msgTemplate, args...))
	}
}
