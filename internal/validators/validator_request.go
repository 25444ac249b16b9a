// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-eagle/models"
)

// RequestValidator implements [Validator] for every request payload in
// package models. Both value and pointer forms are accepted.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator and returns it as
// the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches on the dynamic type of obj. It returns
// ErrUnsupportedType for values it does not know.
func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.CreateFolderRequest:
		return v.validateCreateFolder(value)
	case *models.CreateFolderRequest:
		return v.validateCreateFolder(*value)
	case models.RenameFolderRequest:
		return v.validateRenameFolder(value)
	case *models.RenameFolderRequest:
		return v.validateRenameFolder(*value)
	case models.UpdateFolderRequest:
		return v.validateUpdateFolder(value)
	case *models.UpdateFolderRequest:
		return v.validateUpdateFolder(*value)
	case models.AddFromURLRequest:
		return v.validateURLItem(value.URLItem)
	case *models.AddFromURLRequest:
		return v.validateURLItem(value.URLItem)
	case models.AddFromURLsRequest:
		return v.validateAddFromURLs(value)
	case *models.AddFromURLsRequest:
		return v.validateAddFromURLs(*value)
	case models.AddFromPathRequest:
		return v.validatePathItem(value.PathItem)
	case *models.AddFromPathRequest:
		return v.validatePathItem(value.PathItem)
	case models.AddFromPathsRequest:
		return v.validateAddFromPaths(value)
	case *models.AddFromPathsRequest:
		return v.validateAddFromPaths(*value)
	case models.AddBookmarkRequest:
		return v.validateAddBookmark(value)
	case *models.AddBookmarkRequest:
		return v.validateAddBookmark(*value)
	case models.MoveToTrashRequest:
		return v.validateMoveToTrash(value)
	case *models.MoveToTrashRequest:
		return v.validateMoveToTrash(*value)
	case models.ItemIDRequest:
		return requireValue(value.ID, ErrEmptyID)
	case *models.ItemIDRequest:
		return requireValue(value.ID, ErrEmptyID)
	case models.UpdateItemRequest:
		return v.validateUpdateItem(value)
	case *models.UpdateItemRequest:
		return v.validateUpdateItem(*value)
	case models.SwitchLibraryRequest:
		return requireValue(value.LibraryPath, ErrEmptyLibraryPath)
	case *models.SwitchLibraryRequest:
		return requireValue(value.LibraryPath, ErrEmptyLibraryPath)
	case models.ItemListQuery:
		return v.validateItemListQuery(value)
	case *models.ItemListQuery:
		return v.validateItemListQuery(*value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateCreateFolder(req models.CreateFolderRequest) error {
	return requireValue(req.FolderName, ErrEmptyFolderName)
}

func (v *RequestValidator) validateRenameFolder(req models.RenameFolderRequest) error {
	if err := requireValue(req.FolderID, ErrEmptyFolderID); err != nil {
		return err
	}
	return requireValue(req.NewName, ErrEmptyName)
}

func (v *RequestValidator) validateUpdateFolder(req models.UpdateFolderRequest) error {
	if err := requireValue(req.FolderID, ErrEmptyFolderID); err != nil {
		return err
	}
	if req.NewName == "" && req.NewDescription == "" && req.NewColor == "" {
		return ErrNoFieldsToUpdate
	}
	if req.NewColor != "" && !req.NewColor.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidColor, req.NewColor)
	}
	return nil
}

func (v *RequestValidator) validateURLItem(item models.URLItem) error {
	if err := requireValue(item.URL, ErrEmptyURL); err != nil {
		return err
	}
	return requireValue(item.Name, ErrEmptyName)
}

func (v *RequestValidator) validateAddFromURLs(req models.AddFromURLsRequest) error {
	if len(req.Items) == 0 {
		return ErrEmptyItems
	}
	for i, item := range req.Items {
		if err := v.validateURLItem(item); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	return nil
}

func (v *RequestValidator) validatePathItem(item models.PathItem) error {
	if err := requireValue(item.Path, ErrEmptyPath); err != nil {
		return err
	}
	return requireValue(item.Name, ErrEmptyName)
}

func (v *RequestValidator) validateAddFromPaths(req models.AddFromPathsRequest) error {
	if len(req.Items) == 0 {
		return ErrEmptyItems
	}
	for i, item := range req.Items {
		if err := v.validatePathItem(item); err != nil {
			return fmt.Errorf("items[%d]: %w", i, err)
		}
	}
	return nil
}

func (v *RequestValidator) validateAddBookmark(req models.AddBookmarkRequest) error {
	if err := requireValue(req.URL, ErrEmptyURL); err != nil {
		return err
	}
	return requireValue(req.Name, ErrEmptyName)
}

func (v *RequestValidator) validateMoveToTrash(req models.MoveToTrashRequest) error {
	if len(req.ItemIDs) == 0 {
		return ErrEmptyIDs
	}
	for i, id := range req.ItemIDs {
		if err := requireValue(id, ErrEmptyID); err != nil {
			return fmt.Errorf("itemIds[%d]: %w", i, err)
		}
	}
	return nil
}

func (v *RequestValidator) validateUpdateItem(req models.UpdateItemRequest) error {
	if err := requireValue(req.ID, ErrEmptyID); err != nil {
		return err
	}
	if req.Tags == nil && req.Annotation == nil && req.URL == nil && req.Star == nil {
		return ErrNoFieldsToUpdate
	}
	if req.Star != nil && (*req.Star < 0 || *req.Star > 5) {
		return fmt.Errorf("%w: %d", ErrInvalidStar, *req.Star)
	}
	return nil
}

func (v *RequestValidator) validateItemListQuery(q models.ItemListQuery) error {
	if q.Limit < 0 || q.Offset < 0 {
		return ErrInvalidPaging
	}
	return nil
}

func requireValue(s string, err error) error {
	if strings.TrimSpace(s) == "" {
		return err
	}
	return nil
}
