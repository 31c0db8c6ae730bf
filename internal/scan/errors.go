package scan

import "errors"

var (
	ErrInvalidRange      = errors.New("invalid seed range")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)
