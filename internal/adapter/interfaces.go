// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer that talks to the local Eagle
// API.
//
// The primary abstraction is [EagleAdapter], one method per Eagle endpoint.
// The package ships an HTTP/JSON implementation built on resty
// ([NewHTTPEagleAdapter]).
//
// A reply whose envelope status is not "success" becomes a [*RemoteAPIError].
// Replies without a usable envelope are mapped from their HTTP status code to
// the sentinel values in errors.go, so that callers can use [errors.Is] and
// [errors.As] without looking at transport details.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-eagle/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/eagle_adapter_mock.go -package=mock

// EagleAdapter defines communication with a running Eagle instance. Every
// method issues exactly one HTTP request.
type EagleAdapter interface {
	// ApplicationInfo returns the version and platform of the running Eagle.
	ApplicationInfo(ctx context.Context) (models.ApplicationInfo, error)

	// CreateFolder creates a folder, nested under req.Parent when set, and
	// returns it.
	CreateFolder(ctx context.Context, req models.CreateFolderRequest) (models.Folder, error)

	// RenameFolder renames a folder and returns its new state.
	RenameFolder(ctx context.Context, req models.RenameFolderRequest) (models.Folder, error)

	// UpdateFolder changes the name, description or color of a folder and
	// returns its new state.
	UpdateFolder(ctx context.Context, req models.UpdateFolderRequest) (models.Folder, error)

	// ListFolders returns the folder tree of the current library.
	ListFolders(ctx context.Context) ([]models.Folder, error)

	// ListRecentFolders returns the folders most recently used in Eagle.
	ListRecentFolders(ctx context.Context) ([]models.Folder, error)

	// AddFromURL asks Eagle to download and import one asset. The returned
	// id is empty when the running Eagle version does not report it.
	AddFromURL(ctx context.Context, req models.AddFromURLRequest) (string, error)

	// AddFromURLs imports several remote assets in one call.
	AddFromURLs(ctx context.Context, req models.AddFromURLsRequest) error

	// AddFromPath imports one local file. The returned id may be empty, as
	// for AddFromURL.
	AddFromPath(ctx context.Context, req models.AddFromPathRequest) (string, error)

	// AddFromPaths imports several local files in one call.
	AddFromPaths(ctx context.Context, req models.AddFromPathsRequest) error

	// AddBookmark saves a web bookmark. The returned id may be empty.
	AddBookmark(ctx context.Context, req models.AddBookmarkRequest) (string, error)

	// ItemInfo returns the metadata record of one item.
	ItemInfo(ctx context.Context, id string) (models.Item, error)

	// ItemThumbnail returns the filesystem path of an item's thumbnail.
	ItemThumbnail(ctx context.Context, id string) (string, error)

	// ListItems returns items matching query.
	ListItems(ctx context.Context, query models.ItemListQuery) ([]models.Item, error)

	// MoveToTrash moves items to Eagle's trash.
	MoveToTrash(ctx context.Context, req models.MoveToTrashRequest) error

	// RefreshPalette recomputes an item's color palette.
	RefreshPalette(ctx context.Context, id string) error

	// RefreshThumbnail regenerates an item's thumbnail.
	RefreshThumbnail(ctx context.Context, id string) error

	// UpdateItem changes tags, annotation, source url or rating of an item
	// and returns its new state.
	UpdateItem(ctx context.Context, req models.UpdateItemRequest) (models.Item, error)

	// LibraryInfo describes the library currently open in Eagle.
	LibraryInfo(ctx context.Context) (models.LibraryInfo, error)

	// LibraryHistory returns the paths of recently opened libraries.
	LibraryHistory(ctx context.Context) ([]string, error)

	// SwitchLibrary makes Eagle open another library.
	SwitchLibrary(ctx context.Context, req models.SwitchLibraryRequest) error
}
