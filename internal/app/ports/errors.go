package ports

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidSave = errors.New("invalid save payload")
)
