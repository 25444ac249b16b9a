package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrEmptyID          = errors.New("id is required")
	ErrEmptyFolderID    = errors.New("folder id is required")
	ErrEmptyFolderName  = errors.New("folder name is required")
	ErrEmptyURL         = errors.New("url is required")
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyPath        = errors.New("path is required")
	ErrEmptyLibraryPath = errors.New("library path is required")
	ErrEmptyItems       = errors.New("items list cannot be empty")
	ErrEmptyIDs         = errors.New("IDs list cannot be empty")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrInvalidColor     = errors.New("invalid folder color")
	ErrInvalidStar      = errors.New("star rating must be between 0 and 5")
	ErrInvalidPaging    = errors.New("limit and offset must not be negative")
)
