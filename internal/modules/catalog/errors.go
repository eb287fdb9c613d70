package catalog

import "errors"

var (
	ErrNotFound  = errors.New("catalog: entry not found")
	ErrForbidden = errors.New("catalog: entry belongs to another owner")
)
