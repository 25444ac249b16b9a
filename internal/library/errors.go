package library

import "errors"

var (
	ErrLibraryNotFound = errors.New("library path does not exist or is not a directory")
)
