package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-eagle/internal/config"
	"github.com/MKhiriev/go-eagle/internal/logger"
	"github.com/MKhiriev/go-eagle/internal/utils"
	"github.com/MKhiriev/go-eagle/internal/validators"
	"github.com/MKhiriev/go-eagle/models"
	"github.com/go-resty/resty/v2"
)

type httpEagleAdapter struct {
	client    *utils.HTTPClient
	validator validators.Validator

	logger *logger.Logger
}

// Option customises the adapter built by [NewHTTPEagleAdapter].
type Option func(*httpEagleAdapter)

// WithTransport replaces the HTTP round tripper, e.g. with a stub in tests
// or an instrumented transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(h *httpEagleAdapter) {
		h.client.SetTransport(rt)
	}
}

// NewHTTPEagleAdapter constructs an HTTP/JSON implementation of
// [EagleAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and applies adapterCfg.RequestTimeout when it is
// positive; otherwise requests never time out.
//
// A nil log discards request logging. Returns an error if
// adapterCfg.HTTPAddress is empty or cannot be parsed as a valid URL.
func NewHTTPEagleAdapter(adapterCfg config.Adapter, log *logger.Logger, opts ...Option) (EagleAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.SetBaseURL(baseURL)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	h := &httpEagleAdapter{
		client:    client,
		validator: validators.NewRequestValidator(),
		logger:    log,
	}
	if h.logger == nil {
		h.logger = logger.Nop()
	}
	h.logger = h.logger.GetChildLogger("eagle-adapter")
	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ApplicationInfo implements [EagleAdapter] via GET /api/application/info.
func (h *httpEagleAdapter) ApplicationInfo(ctx context.Context) (models.ApplicationInfo, error) {
	data, err := h.get(ctx, "/api/application/info", nil)
	if err != nil {
		return models.ApplicationInfo{}, err
	}
	return decodeData[models.ApplicationInfo]("application info", data)
}

// CreateFolder implements [EagleAdapter] via POST /api/folder/create.
func (h *httpEagleAdapter) CreateFolder(ctx context.Context, req models.CreateFolderRequest) (models.Folder, error) {
	data, err := h.post(ctx, "/api/folder/create", req)
	if err != nil {
		return models.Folder{}, err
	}
	return decodeData[models.Folder]("create folder", data)
}

// RenameFolder implements [EagleAdapter] via POST /api/folder/rename.
func (h *httpEagleAdapter) RenameFolder(ctx context.Context, req models.RenameFolderRequest) (models.Folder, error) {
	data, err := h.post(ctx, "/api/folder/rename", req)
	if err != nil {
		return models.Folder{}, err
	}
	return decodeData[models.Folder]("rename folder", data)
}

// UpdateFolder implements [EagleAdapter] via POST /api/folder/update.
func (h *httpEagleAdapter) UpdateFolder(ctx context.Context, req models.UpdateFolderRequest) (models.Folder, error) {
	data, err := h.post(ctx, "/api/folder/update", req)
	if err != nil {
		return models.Folder{}, err
	}
	return decodeData[models.Folder]("update folder", data)
}

// ListFolders implements [EagleAdapter] via GET /api/folder/list.
func (h *httpEagleAdapter) ListFolders(ctx context.Context) ([]models.Folder, error) {
	data, err := h.get(ctx, "/api/folder/list", nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Folder]("list folders", data)
}

// ListRecentFolders implements [EagleAdapter] via GET /api/folder/listRecent.
func (h *httpEagleAdapter) ListRecentFolders(ctx context.Context) ([]models.Folder, error) {
	data, err := h.get(ctx, "/api/folder/listRecent", nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Folder]("list recent folders", data)
}

// AddFromURL implements [EagleAdapter] via POST /api/item/addFromURL.
func (h *httpEagleAdapter) AddFromURL(ctx context.Context, req models.AddFromURLRequest) (string, error) {
	data, err := h.post(ctx, "/api/item/addFromURL", req)
	if err != nil {
		return "", err
	}
	return decodeItemID(data), nil
}

// AddFromURLs implements [EagleAdapter] via POST /api/item/addFromURLs.
func (h *httpEagleAdapter) AddFromURLs(ctx context.Context, req models.AddFromURLsRequest) error {
	_, err := h.post(ctx, "/api/item/addFromURLs", req)
	return err
}

// AddFromPath implements [EagleAdapter] via POST /api/item/addFromPath.
func (h *httpEagleAdapter) AddFromPath(ctx context.Context, req models.AddFromPathRequest) (string, error) {
	data, err := h.post(ctx, "/api/item/addFromPath", req)
	if err != nil {
		return "", err
	}
	return decodeItemID(data), nil
}

// AddFromPaths implements [EagleAdapter] via POST /api/item/addFromPaths.
func (h *httpEagleAdapter) AddFromPaths(ctx context.Context, req models.AddFromPathsRequest) error {
	_, err := h.post(ctx, "/api/item/addFromPaths", req)
	return err
}

// AddBookmark implements [EagleAdapter] via POST /api/item/addBookmark.
func (h *httpEagleAdapter) AddBookmark(ctx context.Context, req models.AddBookmarkRequest) (string, error) {
	data, err := h.post(ctx, "/api/item/addBookmark", req)
	if err != nil {
		return "", err
	}
	return decodeItemID(data), nil
}

// ItemInfo implements [EagleAdapter] via GET /api/item/info?id=.
func (h *httpEagleAdapter) ItemInfo(ctx context.Context, id string) (models.Item, error) {
	if err := h.validator.Validate(ctx, models.ItemIDRequest{ID: id}); err != nil {
		return models.Item{}, fmt.Errorf("item info: %w", err)
	}

	data, err := h.get(ctx, "/api/item/info", url.Values{"id": {id}})
	if err != nil {
		return models.Item{}, err
	}
	return decodeData[models.Item]("item info", data)
}

// ItemThumbnail implements [EagleAdapter] via GET /api/item/thumbnail?id=.
func (h *httpEagleAdapter) ItemThumbnail(ctx context.Context, id string) (string, error) {
	if err := h.validator.Validate(ctx, models.ItemIDRequest{ID: id}); err != nil {
		return "", fmt.Errorf("item thumbnail: %w", err)
	}

	data, err := h.get(ctx, "/api/item/thumbnail", url.Values{"id": {id}})
	if err != nil {
		return "", err
	}
	return decodeData[string]("item thumbnail", data)
}

// ListItems implements [EagleAdapter] via GET /api/item/list. Zero fields of
// query are left out of the query string; tags and folders are sent
// comma-separated.
func (h *httpEagleAdapter) ListItems(ctx context.Context, query models.ItemListQuery) ([]models.Item, error) {
	if err := h.validator.Validate(ctx, query); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	data, err := h.get(ctx, "/api/item/list", itemListValues(query))
	if err != nil {
		return nil, err
	}
	return decodeData[[]models.Item]("list items", data)
}

// MoveToTrash implements [EagleAdapter] via POST /api/item/moveToTrash.
func (h *httpEagleAdapter) MoveToTrash(ctx context.Context, req models.MoveToTrashRequest) error {
	_, err := h.post(ctx, "/api/item/moveToTrash", req)
	return err
}

// RefreshPalette implements [EagleAdapter] via POST /api/item/refreshPalette.
func (h *httpEagleAdapter) RefreshPalette(ctx context.Context, id string) error {
	_, err := h.post(ctx, "/api/item/refreshPalette", models.ItemIDRequest{ID: id})
	return err
}

// RefreshThumbnail implements [EagleAdapter] via POST /api/item/refreshThumbnail.
func (h *httpEagleAdapter) RefreshThumbnail(ctx context.Context, id string) error {
	_, err := h.post(ctx, "/api/item/refreshThumbnail", models.ItemIDRequest{ID: id})
	return err
}

// UpdateItem implements [EagleAdapter] via POST /api/item/update.
func (h *httpEagleAdapter) UpdateItem(ctx context.Context, req models.UpdateItemRequest) (models.Item, error) {
	data, err := h.post(ctx, "/api/item/update", req)
	if err != nil {
		return models.Item{}, err
	}
	return decodeData[models.Item]("update item", data)
}

// LibraryInfo implements [EagleAdapter] via GET /api/library/info.
func (h *httpEagleAdapter) LibraryInfo(ctx context.Context) (models.LibraryInfo, error) {
	data, err := h.get(ctx, "/api/library/info", nil)
	if err != nil {
		return models.LibraryInfo{}, err
	}
	return decodeData[models.LibraryInfo]("library info", data)
}

// LibraryHistory implements [EagleAdapter] via GET /api/library/history.
func (h *httpEagleAdapter) LibraryHistory(ctx context.Context) ([]string, error) {
	data, err := h.get(ctx, "/api/library/history", nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]string]("library history", data)
}

// SwitchLibrary implements [EagleAdapter] via POST /api/library/switch.
func (h *httpEagleAdapter) SwitchLibrary(ctx context.Context, req models.SwitchLibraryRequest) error {
	_, err := h.post(ctx, "/api/library/switch", req)
	return err
}

// post validates body, sends it as JSON and returns the envelope data.
func (h *httpEagleAdapter) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	if err := h.validator.Validate(ctx, body); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)

	return h.execute(req, http.MethodPost, path)
}

func (h *httpEagleAdapter) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	req := h.request(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	return h.execute(req, http.MethodGet, path)
}

func (h *httpEagleAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID(ctx))
}

func (h *httpEagleAdapter) execute(req *resty.Request, method, path string) (json.RawMessage, error) {
	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s request: %w", method, path, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", req.Header.Get(requestIDHeader)).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("eagle api call")

	data, err := decodeResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return data, nil
}

// decodeData decodes an envelope data payload. An absent or null payload
// yields the zero value of T.
func decodeData[T any](what string, data json.RawMessage) (T, error) {
	var v T
	if len(data) == 0 || string(data) == "null" {
		return v, nil
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w: %w", what, ErrMalformedResponse, err)
	}
	return v, nil
}

// decodeItemID extracts the id of a newly added item from a data payload
// that is either the id itself or an object carrying an "id" field. Older
// Eagle versions send no data at all.
func decodeItemID(data json.RawMessage) string {
	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		return id
	}

	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		return obj.ID
	}
	return ""
}

func itemListValues(q models.ItemListQuery) url.Values {
	values := url.Values{}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		values.Set("offset", strconv.Itoa(q.Offset))
	}
	if orderBy := strings.TrimSpace(q.OrderBy); orderBy != "" {
		values.Set("orderBy", orderBy)
	}
	if keyword := strings.TrimSpace(q.Keyword); keyword != "" {
		values.Set("keyword", keyword)
	}
	if ext := strings.TrimSpace(q.Ext); ext != "" {
		values.Set("ext", ext)
	}
	if len(q.Tags) > 0 {
		values.Set("tags", strings.Join(q.Tags, ","))
	}
	if len(q.Folders) > 0 {
		values.Set("folders", strings.Join(q.Folders, ","))
	}
	return values
}
