// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Folder is an Eagle folder as returned by the folder endpoints and embedded
// in library info. Folders nest through Children.
type Folder struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Children    []Folder `json:"children,omitempty" yaml:"children,omitempty"`

	ModificationTime int64    `json:"modificationTime,omitempty" yaml:"modificationTime,omitempty"`
	Tags             []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	ExtendTags       []string `json:"extendTags,omitempty" yaml:"extendTags,omitempty"`
	Pinyin           string   `json:"pinyin,omitempty" yaml:"pinyin,omitempty"`
	Icon             string   `json:"icon,omitempty" yaml:"icon,omitempty"`
	IconColor        string   `json:"iconColor,omitempty" yaml:"iconColor,omitempty"`
	Password         string   `json:"password,omitempty" yaml:"-"`
	PasswordTips     string   `json:"passwordTips,omitempty" yaml:"-"`

	ImageCount           int `json:"imageCount,omitempty" yaml:"imageCount,omitempty"`
	DescendantImageCount int `json:"descendantImageCount,omitempty" yaml:"descendantImageCount,omitempty"`

	// Images and ImagesMappings have no documented shape and are passed
	// through as decoded JSON.
	Images         []any          `json:"images,omitempty" yaml:"images,omitempty"`
	ImagesMappings map[string]any `json:"imagesMappings,omitempty" yaml:"imagesMappings,omitempty"`
}

// Walk calls fn for f and every descendant folder, depth first.
func (f Folder) Walk(fn func(Folder)) {
	fn(f)
	for _, c := range f.Children {
		c.Walk(fn)
	}
}

// FolderColor is one of the colors accepted by folder/update.
type FolderColor string

const (
	FolderColorRed    FolderColor = "red"
	FolderColorOrange FolderColor = "orange"
	FolderColorGreen  FolderColor = "green"
	FolderColorYellow FolderColor = "yellow"
	FolderColorAqua   FolderColor = "aqua"
	FolderColorBlue   FolderColor = "blue"
	FolderColorPurple FolderColor = "purple"
	FolderColorPink   FolderColor = "pink"
)

// Valid reports whether c is a color Eagle understands.
func (c FolderColor) Valid() bool {
	switch c {
	case FolderColorRed, FolderColorOrange, FolderColorGreen, FolderColorYellow,
		FolderColorAqua, FolderColorBlue, FolderColorPurple, FolderColorPink:
		return true
	}
	return false
}
