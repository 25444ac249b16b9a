// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package eagle is a Go client for the local HTTP API of the Eagle image
// manager, plus a reader for Eagle library folders on disk.
//
// A [Client] exposes one method per Eagle endpoint:
//
//	c, err := eagle.New(eagle.DefaultAddress, eagle.WithTimeout(10*time.Second))
//	if err != nil {
//		return err
//	}
//	folders, err := c.ListFolders(ctx)
//
// Replies whose status is not "success" are returned as [*RemoteAPIError].
// [Client.ScanLibrary] and [Client.WatchLibrary] read metadata.json records
// straight from a library folder and work without Eagle running.
package eagle

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-eagle/internal/adapter"
	"github.com/MKhiriev/go-eagle/internal/config"
	"github.com/MKhiriev/go-eagle/internal/library"
	"github.com/MKhiriev/go-eagle/internal/logger"
	"github.com/MKhiriev/go-eagle/models"
	"github.com/rs/zerolog"
)

// DefaultAddress is where Eagle serves its local API.
const DefaultAddress = config.DefaultEagleAddress

type (
	// API is the set of Eagle endpoint calls a [Client] forwards to.
	API = adapter.EagleAdapter
	// RemoteAPIError is returned when Eagle answers with a non-success status.
	RemoteAPIError = adapter.RemoteAPIError
	// ScanOptions narrows and bounds a library scan.
	ScanOptions = library.ScanOptions
)

var (
	ErrLibraryNotFound   = library.ErrLibraryNotFound
	ErrBadRequest        = adapter.ErrBadRequest
	ErrNotFound          = adapter.ErrNotFound
	ErrMalformedResponse = adapter.ErrMalformedResponse
)

// Client talks to one Eagle instance and reads Eagle libraries from disk.
// All endpoint methods of [API] are available directly on Client.
type Client struct {
	API

	scanner *library.Scanner
	watcher *library.Watcher
	logger  *logger.Logger
}

type options struct {
	timeout   time.Duration
	transport http.RoundTripper
	logger    *logger.Logger
	api       API
}

// Option configures a [Client].
type Option func(*options)

// WithTimeout bounds every API request. Without it requests wait until the
// transport gives up.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithHTTPTransport sends API requests through rt.
func WithHTTPTransport(rt http.RoundTripper) Option {
	return func(o *options) {
		o.transport = rt
	}
}

// WithLogger makes the client log request and scan details to l. By default
// nothing is logged.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger.Logger{Logger: l}
	}
}

// WithAPI replaces the HTTP implementation of the endpoint calls, e.g. with
// a mock. The address passed to [New] is then ignored.
func WithAPI(api API) Option {
	return func(o *options) {
		o.api = api
	}
}

func withInternalLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New returns a client for the Eagle API served at address, e.g.
// [DefaultAddress]. A bare host:port is treated as http.
func New(address string, opts ...Option) (*Client, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.Nop()
	}

	api := o.api
	if api == nil {
		var adapterOpts []adapter.Option
		if o.transport != nil {
			adapterOpts = append(adapterOpts, adapter.WithTransport(o.transport))
		}

		var err error
		api, err = adapter.NewHTTPEagleAdapter(config.Adapter{
			HTTPAddress:    address,
			RequestTimeout: o.timeout,
		}, o.logger, adapterOpts...)
		if err != nil {
			return nil, fmt.Errorf("create eagle client: %w", err)
		}
	}

	return &Client{
		API:     api,
		scanner: library.NewScanner(o.logger),
		watcher: library.NewWatcher(o.logger),
		logger:  o.logger,
	}, nil
}

// NewFromConfig builds a client from the layered application configuration.
func NewFromConfig(cfg *config.StructuredConfig, log *logger.Logger, opts ...Option) (*Client, error) {
	opts = append([]Option{WithTimeout(cfg.Adapter.RequestTimeout), withInternalLogger(log)}, opts...)
	return New(cfg.Adapter.HTTPAddress, opts...)
}

// ScanLibrary reads the metadata.json of every item folder under
// libraryPath and returns the records that pass opts, without contacting
// Eagle. A missing libraryPath yields [ErrLibraryNotFound].
func (c *Client) ScanLibrary(ctx context.Context, libraryPath string, opts ScanOptions) ([]models.Item, error) {
	return c.scanner.Scan(ctx, libraryPath, opts)
}

// WatchLibrary calls fn for every metadata record created or rewritten
// under libraryPath until ctx is done.
func (c *Client) WatchLibrary(ctx context.Context, libraryPath string, opts ScanOptions, fn func(models.Item)) error {
	return c.watcher.Watch(ctx, libraryPath, opts, fn)
}

// ListItemsByNamePrefix lists up to limit items and keeps those whose name
// starts with prefix. An empty prefix keeps every listed item.
func (c *Client) ListItemsByNamePrefix(ctx context.Context, limit int, prefix string) ([]models.Item, error) {
	items, err := c.ListItems(ctx, models.ItemListQuery{Limit: limit})
	if err != nil {
		return nil, err
	}

	kept := make([]models.Item, 0, len(items))
	for _, item := range items {
		if strings.HasPrefix(item.Name, prefix) {
			kept = append(kept, item)
		}
	}
	return kept, nil
}

// SetTags replaces the tags of item id and leaves its other fields alone.
func (c *Client) SetTags(ctx context.Context, id string, tags []string) (models.Item, error) {
	if tags == nil {
		tags = []string{}
	}
	return c.UpdateItem(ctx, models.UpdateItemRequest{ID: id, Tags: &tags})
}
