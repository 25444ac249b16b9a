// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrNotAnObject is returned when an item record is valid JSON but not an
// object.
var ErrNotAnObject = errors.New("item record is not a JSON object")

// DecodeItem decodes a single item record. Only records that are not JSON
// objects are rejected; fields of an unexpected type are left at their zero
// value.
func DecodeItem(data []byte) (Item, error) {
	var item Item
	if err := item.decode(data); err != nil {
		return Item{}, err
	}
	return item, nil
}

// UnmarshalJSON decodes an item loosely, see DecodeItem. A null literal is a
// no-op.
func (i *Item) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	return i.decode(data)
}

func (i *Item) decode(data []byte) error {
	fields, err := objectFields(data)
	if err != nil {
		return err
	}

	*i = Item{
		ID:               stringOf(fields["id"]),
		Name:             stringOf(fields["name"]),
		Size:             int64Of(fields["size"]),
		BTime:            int64Of(fields["btime"]),
		MTime:            int64Of(fields["mtime"]),
		ModificationTime: int64Of(fields["modificationTime"]),
		LastModified:     int64Of(fields["lastModified"]),
		Ext:              stringOf(fields["ext"]),
		Tags:             stringsOf(fields["tags"]),
		Folders:          stringsOf(fields["folders"]),
		IsDeleted:        boolOf(fields["isDeleted"]),
		URL:              stringOf(fields["url"]),
		Annotation:       stringOf(fields["annotation"]),
		Width:            int(int64Of(fields["width"])),
		Height:           int(int64Of(fields["height"])),
		Star:             int(int64Of(fields["star"])),
		Duration:         float64Of(fields["duration"]),
		NoThumbnail:      boolOf(fields["noThumbnail"]),
		Palettes:         palettesOf(fields["palettes"]),
	}
	return nil
}

// UnmarshalJSON decodes a palette entry loosely.
func (p *Palette) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}
	fields, err := objectFields(data)
	if err != nil {
		return err
	}
	*p = paletteOf(fields)
	return nil
}

func isNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

func objectFields(data []byte) (map[string]any, error) {
	var fields map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w: got %s", ErrNotAnObject, typeErr.Value)
		}
		return nil, err
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: got null", ErrNotAnObject)
	}
	return fields, nil
}

func paletteOf(fields map[string]any) Palette {
	var p Palette
	if color, ok := fields["color"].([]any); ok {
		for idx := 0; idx < len(color) && idx < len(p.Color); idx++ {
			p.Color[idx] = int(int64Of(color[idx]))
		}
	}
	p.Ratio = float64Of(fields["ratio"])
	p.HashKey = stringOf(fields["$$hashKey"])
	return p
}

func palettesOf(v any) []Palette {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	palettes := make([]Palette, 0, len(list))
	for _, entry := range list {
		if fields, ok := entry.(map[string]any); ok {
			palettes = append(palettes, paletteOf(fields))
		}
	}
	return palettes
}

func stringOf(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

func stringsOf(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, entry := range list {
		if s := stringOf(entry); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func float64Of(v any) float64 {
	var f float64
	var err error
	switch v := v.(type) {
	case json.Number:
		f, err = v.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func int64Of(v any) int64 {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return i
		}
	}
	f := float64Of(v)
	if f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0
	}
	return int64(f)
}

func boolOf(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	case json.Number:
		f, err := v.Float64()
		return err == nil && f != 0
	}
	return false
}
