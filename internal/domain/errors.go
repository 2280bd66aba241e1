package domain

import "errors"

var (
	ErrUnknownPreference = errors.New("unknown preference flag")
	ErrCatalogNotCached  = errors.New("course catalog not cached")
)
