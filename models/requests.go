// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CreateFolderRequest is the body of folder/create.
type CreateFolderRequest struct {
	FolderName string `json:"folderName"`

	// Parent is the ID of the parent folder. Empty creates a top-level folder.
	Parent string `json:"parent,omitempty"`
}

// RenameFolderRequest is the body of folder/rename.
type RenameFolderRequest struct {
	FolderID string `json:"folderId"`
	NewName  string `json:"newName"`
}

// UpdateFolderRequest is the body of folder/update. Empty fields are left
// unchanged by Eagle.
type UpdateFolderRequest struct {
	FolderID       string      `json:"folderId"`
	NewName        string      `json:"newName,omitempty"`
	NewDescription string      `json:"newDescription,omitempty"`
	NewColor       FolderColor `json:"newColor,omitempty"`
}

// URLItem describes one asset to download from the web.
type URLItem struct {
	URL        string   `json:"url"`
	Name       string   `json:"name"`
	Website    string   `json:"website,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Annotation string   `json:"annotation,omitempty"`

	// ModificationTime overrides the creation time, in Unix milliseconds.
	ModificationTime int64 `json:"modificationTime,omitempty"`

	// Headers are sent by Eagle when it fetches URL, e.g. a referer
	// required by the hosting site.
	Headers map[string]string `json:"headers,omitempty"`
}

// AddFromURLRequest is the body of item/addFromURL.
type AddFromURLRequest struct {
	URLItem
	FolderID string `json:"folderId,omitempty"`
}

// AddFromURLsRequest is the body of item/addFromURLs.
type AddFromURLsRequest struct {
	Items    []URLItem `json:"items"`
	FolderID string    `json:"folderId,omitempty"`
}

// PathItem describes one local file to import.
type PathItem struct {
	Path       string   `json:"path"`
	Name       string   `json:"name"`
	Website    string   `json:"website,omitempty"`
	Annotation string   `json:"annotation,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// AddFromPathRequest is the body of item/addFromPath.
type AddFromPathRequest struct {
	PathItem
	FolderID string `json:"folderId,omitempty"`
}

// AddFromPathsRequest is the body of item/addFromPaths.
type AddFromPathsRequest struct {
	Items    []PathItem `json:"items"`
	FolderID string     `json:"folderId,omitempty"`
}

// AddBookmarkRequest is the body of item/addBookmark.
type AddBookmarkRequest struct {
	URL  string `json:"url"`
	Name string `json:"name"`

	// Base64 is an optional data URL used as the bookmark thumbnail.
	Base64           string   `json:"base64,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	ModificationTime int64    `json:"modificationTime,omitempty"`
	FolderID         string   `json:"folderId,omitempty"`
}

// MoveToTrashRequest is the body of item/moveToTrash.
type MoveToTrashRequest struct {
	ItemIDs []string `json:"itemIds"`
}

// ItemIDRequest is the body of item/refreshPalette and item/refreshThumbnail.
type ItemIDRequest struct {
	ID string `json:"id"`
}

// UpdateItemRequest is the body of item/update.
//
// Only non-nil fields are sent, so a non-nil empty Tags slice clears the
// item's tags while a nil one leaves them untouched.
type UpdateItemRequest struct {
	ID         string    `json:"id"`
	Tags       *[]string `json:"tags,omitempty"`
	Annotation *string   `json:"annotation,omitempty"`
	URL        *string   `json:"url,omitempty"`
	Star       *int      `json:"star,omitempty"`
}

// SwitchLibraryRequest is the body of library/switch.
type SwitchLibraryRequest struct {
	LibraryPath string `json:"libraryPath"`
}

// ItemListQuery holds the query parameters of item/list. Zero values are
// not sent.
type ItemListQuery struct {
	Limit  int
	Offset int

	// OrderBy is a field name such as "CREATEDATE", "FILESIZE", "NAME" or
	// "RESOLUTION"; prefix with "-" for descending order.
	OrderBy string
	Keyword string
	Ext     string
	Tags    []string
	Folders []string
}

// Ptr returns a pointer to v. It is handy for the optional fields of
// [UpdateItemRequest].
func Ptr[T any](v T) *T {
	return &v
}
