// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LibraryInfo is the payload of library/info.
//
// Only folders have a stable documented shape; smart folders, quick access
// entries and tag groups are kept as loosely typed JSON values.
type LibraryInfo struct {
	Folders      []Folder         `json:"folders" yaml:"folders"`
	SmartFolders []map[string]any `json:"smartFolders,omitempty" yaml:"smartFolders,omitempty"`
	QuickAccess  []map[string]any `json:"quickAccess,omitempty" yaml:"quickAccess,omitempty"`
	TagsGroups   []map[string]any `json:"tagsGroups,omitempty" yaml:"tagsGroups,omitempty"`

	ModificationTime   int64  `json:"modificationTime,omitempty" yaml:"modificationTime,omitempty"`
	ApplicationVersion string `json:"applicationVersion,omitempty" yaml:"applicationVersion,omitempty"`

	Library LibraryRef `json:"library" yaml:"library"`
}

// LibraryRef identifies the library currently opened in Eagle.
type LibraryRef struct {
	Path string `json:"path" yaml:"path"`
	Name string `json:"name" yaml:"name"`
}
