package studio

import "errors"

var ErrProfileNotFound = errors.New("studio: profile not found")
