package errs

import "errors"

var (
	ErrNoSpace     = errors.New("secmem: no space")
	ErrBadArgument = errors.New("secmem: bad argument")
)
