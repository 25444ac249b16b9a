// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Item is the metadata record Eagle keeps for a single managed asset.
//
// The same shape is returned by the item/info and item/list endpoints and is
// stored on disk as metadata.json inside every item folder of a library.
// Fields Eagle adds in newer versions are ignored on decode.
type Item struct {
	// ID is the Eagle-assigned identifier (e.g. "KBHG6KA0Y5S9W").
	ID string `json:"id" yaml:"id"`

	// Name is the display name without extension.
	Name string `json:"name" yaml:"name"`

	// Size is the file size in bytes.
	Size int64 `json:"size" yaml:"size"`

	// BTime is the creation time in Unix milliseconds.
	BTime int64 `json:"btime,omitempty" yaml:"btime,omitempty"`

	// MTime is the file modification time in Unix milliseconds.
	MTime int64 `json:"mtime,omitempty" yaml:"mtime,omitempty"`

	// ModificationTime is the time the record was last changed in Eagle.
	ModificationTime int64 `json:"modificationTime,omitempty" yaml:"modificationTime,omitempty"`

	// LastModified is present on records written by newer Eagle versions.
	LastModified int64 `json:"lastModified,omitempty" yaml:"lastModified,omitempty"`

	// Ext is the file extension without the leading dot.
	Ext string `json:"ext" yaml:"ext"`

	Tags    []string `json:"tags" yaml:"tags"`
	Folders []string `json:"folders,omitempty" yaml:"folders,omitempty"`

	// IsDeleted is true for items sitting in Eagle's trash.
	IsDeleted bool `json:"isDeleted" yaml:"isDeleted"`

	// URL is the source address the item was collected from.
	URL        string `json:"url" yaml:"url"`
	Annotation string `json:"annotation" yaml:"annotation"`

	Width  int `json:"width,omitempty" yaml:"width,omitempty"`
	Height int `json:"height,omitempty" yaml:"height,omitempty"`

	// Star is the 0-5 rating.
	Star        int     `json:"star,omitempty" yaml:"star,omitempty"`
	Duration    float64 `json:"duration,omitempty" yaml:"duration,omitempty"`
	NoThumbnail bool    `json:"noThumbnail,omitempty" yaml:"noThumbnail,omitempty"`

	Palettes []Palette `json:"palettes,omitempty" yaml:"palettes,omitempty"`
}

// Palette is one dominant color extracted from an item's image.
type Palette struct {
	// Color is the RGB triple.
	Color [3]int `json:"color" yaml:"color"`

	// Ratio is the share of the image covered by this color, in percent.
	Ratio float64 `json:"ratio" yaml:"ratio"`

	HashKey string `json:"$$hashKey,omitempty" yaml:"hashKey,omitempty"`
}

// HasNamePrefix reports whether the item name starts with at least one of
// prefixes. An empty prefix list matches every item.
func (i Item) HasNamePrefix(prefixes ...string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(i.Name, p) {
			return true
		}
	}
	return false
}

// FileName returns the item's name with its extension, the way Eagle names
// the original file inside the item folder.
func (i Item) FileName() string {
	if i.Ext == "" {
		return i.Name
	}
	return i.Name + "." + i.Ext
}
