// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package library

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-eagle/internal/logger"
	"github.com/MKhiriev/go-eagle/models"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports item metadata records as they appear or change on disk.
type Watcher struct {
	logger *logger.Logger
}

func NewWatcher(log *logger.Logger) *Watcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Watcher{logger: log.GetChildLogger("library-watcher")}
}

// Watch blocks until ctx is done, calling fn with every metadata record that
// is created or rewritten under the library's items directory and passes
// opts.NameStartFilters. When opts.MaxCount is positive Watch also returns
// once that many records were delivered.
//
// Item folders that already exist are watched from the start; new ones are
// picked up as they are created. Cancellation is a normal stop and returns
// nil.
func (w *Watcher) Watch(ctx context.Context, libraryPath string, opts ScanOptions, fn func(models.Item)) error {
	itemsDir, err := ResolveItemsDir(libraryPath)
	if err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fs watcher: %w", err)
	}
	defer fw.Close() //nolint:errcheck

	if err = fw.Add(itemsDir); err != nil {
		return fmt.Errorf("watch %s: %w", itemsDir, err)
	}
	dirs, err := itemDirs(itemsDir)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err = fw.Add(dir); err != nil {
			w.logger.Warn().Err(err).Str("dir", dir).Msg("cannot watch item folder")
		}
	}

	w.logger.Info().Str("path", itemsDir).Int("dirs", len(dirs)).Msg("library watcher started")

	delivered := 0
	emit := func(path string) bool {
		item, err := ReadMetadata(path)
		if err != nil {
			// Eagle may still be writing the file; the next write event retries.
			w.logger.Debug().Err(err).Str("file", path).Msg("metadata not readable yet")
			return false
		}
		if !item.HasNamePrefix(opts.NameStartFilters...) {
			return false
		}

		w.logger.Debug().Str("id", item.ID).Str("file", item.FileName()).Msg("item metadata changed")
		fn(item)
		delivered++
		return opts.MaxCount > 0 && delivered >= opts.MaxCount
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("path", itemsDir).Msg("library watcher stopping")
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}

			switch {
			case filepath.Base(ev.Name) == MetadataFileName && (ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write)):
				if emit(ev.Name) {
					return nil
				}

			case ev.Has(fsnotify.Create) && filepath.Dir(ev.Name) == itemsDir:
				info, err := os.Stat(ev.Name)
				if err != nil || !info.IsDir() {
					continue
				}
				if err = fw.Add(ev.Name); err != nil {
					w.logger.Warn().Err(err).Str("dir", ev.Name).Msg("cannot watch item folder")
					continue
				}
				// The record may have landed before the folder was watched.
				metadata := filepath.Join(ev.Name, MetadataFileName)
				if _, err = os.Stat(metadata); err == nil && emit(metadata) {
					return nil
				}
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("fsnotify error")
		}
	}
}
