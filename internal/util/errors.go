package util

import "errors"

var (
	ErrConfigMissing   = errors.New("word limit config record missing")
	ErrAttemptNotFound = errors.New("attempt not found")
	ErrInvalidLimit    = errors.New("word limit value is not a number")
)
