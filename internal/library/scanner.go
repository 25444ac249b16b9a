// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package library

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-eagle/internal/logger"
	"github.com/MKhiriev/go-eagle/internal/workers"
	"github.com/MKhiriev/go-eagle/models"
)

const (
	// MetadataFileName is the per-item record Eagle writes into every item folder.
	MetadataFileName = "metadata.json"

	imagesDirName = "images"
)

// ScanOptions narrows and bounds a scan.
type ScanOptions struct {
	// NameStartFilters keeps only records whose name starts with one of the
	// prefixes. An empty list keeps every record.
	NameStartFilters []string
	// MaxCount caps the number of returned records. Zero or less means no cap.
	MaxCount int
	// Workers is the number of metadata files parsed concurrently. Values
	// below two parse sequentially.
	Workers int
}

// Scanner collects item metadata records from a library folder.
type Scanner struct {
	logger *logger.Logger
}

func NewScanner(log *logger.Logger) *Scanner {
	if log == nil {
		log = logger.Nop()
	}
	return &Scanner{logger: log.GetChildLogger("library-scanner")}
}

// Scan reads metadata.json from every immediate subfolder of the library's
// items directory and returns the records that pass opts. Subfolders
// without a readable, well-formed metadata.json are skipped with a warning.
//
// Records come back in directory listing order. Scan fails with
// [ErrLibraryNotFound] when libraryPath is missing, and with ctx.Err() when
// ctx is cancelled mid-scan.
func (s *Scanner) Scan(ctx context.Context, libraryPath string, opts ScanOptions) ([]models.Item, error) {
	start := time.Now()

	itemsDir, err := ResolveItemsDir(libraryPath)
	if err != nil {
		return nil, err
	}

	dirs, err := itemDirs(itemsDir)
	if err != nil {
		return nil, err
	}

	var items []models.Item
	if opts.Workers > 1 {
		items, err = s.scanConcurrently(ctx, dirs, opts)
	} else {
		items, err = s.scanSequentially(ctx, dirs, opts)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("path", itemsDir).
		Int("dirs", len(dirs)).
		Int("kept", len(items)).
		Int("workers", workers.NewPool(opts.Workers).Limit()).
		Dur("cost", time.Since(start)).
		Msg("library scan finished")

	return items, nil
}

func (s *Scanner) scanSequentially(ctx context.Context, dirs []string, opts ScanOptions) ([]models.Item, error) {
	items := make([]models.Item, 0)
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item, ok := s.readItem(dir)
		if !ok || !item.HasNamePrefix(opts.NameStartFilters...) {
			continue
		}

		items = append(items, item)
		if opts.MaxCount > 0 && len(items) >= opts.MaxCount {
			break
		}
	}
	return items, nil
}

// scanConcurrently parses every directory on the worker pool, then applies
// the filters and the cap in listing order.
func (s *Scanner) scanConcurrently(ctx context.Context, dirs []string, opts ScanOptions) ([]models.Item, error) {
	parsed := make([]*models.Item, len(dirs))

	err := workers.NewPool(opts.Workers).Run(ctx, len(dirs), func(_ context.Context, i int) error {
		if item, ok := s.readItem(dirs[i]); ok {
			parsed[i] = &item
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	items := make([]models.Item, 0)
	for _, item := range parsed {
		if item == nil || !item.HasNamePrefix(opts.NameStartFilters...) {
			continue
		}

		items = append(items, *item)
		if opts.MaxCount > 0 && len(items) >= opts.MaxCount {
			break
		}
	}
	return items, nil
}

// readItem parses dir/metadata.json. Failures are logged and reported as
// ok == false.
func (s *Scanner) readItem(dir string) (models.Item, bool) {
	item, err := ReadMetadata(filepath.Join(dir, MetadataFileName))
	if err != nil {
		s.logger.Warn().Err(err).Str("dir", dir).Msg("skipping item folder")
		return models.Item{}, false
	}
	return item, true
}

// ReadMetadata decodes a single metadata.json file. A record that is not a
// JSON object is an error; mistyped fields are not.
func ReadMetadata(path string) (models.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Item{}, err
	}

	item, err := models.DecodeItem(data)
	if err != nil {
		return models.Item{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return item, nil
}

// ResolveItemsDir returns the folder that holds the per-item subfolders.
// For an Eagle *.library root that is its images/ subfolder; any other
// directory is used as given.
func ResolveItemsDir(libraryPath string) (string, error) {
	info, err := os.Stat(libraryPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrLibraryNotFound, libraryPath)
		}
		return "", fmt.Errorf("stat library %s: %w", libraryPath, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrLibraryNotFound, libraryPath)
	}

	images := filepath.Join(libraryPath, imagesDirName)
	if info, err = os.Stat(images); err == nil && info.IsDir() {
		return images, nil
	}
	return filepath.Clean(libraryPath), nil
}

func itemDirs(itemsDir string) ([]string, error) {
	entries, err := os.ReadDir(itemsDir)
	if err != nil {
		return nil, fmt.Errorf("read library %s: %w", itemsDir, err)
	}

	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(itemsDir, entry.Name()))
		}
	}
	return dirs, nil
}
