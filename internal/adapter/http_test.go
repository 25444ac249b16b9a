// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-eagle/internal/config"
	"github.com/MKhiriev/go-eagle/internal/logger"
	"github.com/MKhiriev/go-eagle/internal/utils"
	"github.com/MKhiriev/go-eagle/internal/validators"
	"github.com/MKhiriev/go-eagle/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest is what the fake Eagle saw for one call.
type recordedRequest struct {
	Method    string
	Path      string
	Query     url.Values
	Body      string
	RequestID string
}

// fakeEagle is a chi-routed stand-in for the Eagle API. Every request to
// /api/{group}/{action} is recorded and answered with the configured
// status code and envelope.
type fakeEagle struct {
	srv *httptest.Server

	mu         sync.Mutex
	requests   []recordedRequest
	statusCode int
	reply      string
}

func newFakeEagle(t *testing.T) *fakeEagle {
	t.Helper()
	f := &fakeEagle{statusCode: http.StatusOK, reply: `{"status":"success"}`}

	r := chi.NewRouter()
	r.Get("/api/{group}/{action}", f.handle)
	r.Post("/api/{group}/{action}", f.handle)

	f.srv = httptest.NewServer(r)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeEagle) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method:    r.Method,
		Path:      "/api/" + chi.URLParam(r, "group") + "/" + chi.URLParam(r, "action"),
		Query:     r.URL.Query(),
		Body:      string(body),
		RequestID: r.Header.Get(requestIDHeader),
	})
	status, reply := f.statusCode, f.reply
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(reply))
}

func (f *fakeEagle) respond(status int, reply string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCode, f.reply = status, reply
}

func (f *fakeEagle) succeedWith(data string) {
	f.respond(http.StatusOK, `{"status":"success","data":`+data+`}`)
}

func (f *fakeEagle) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

// newTestAdapter creates an httpEagleAdapter pointed at the fake server.
func newTestAdapter(t *testing.T, serverURL string) *httpEagleAdapter {
	t.Helper()
	a, err := NewHTTPEagleAdapter(config.Adapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpEagleAdapter)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"http://localhost:41595", "http://localhost:41595", false},
		{"localhost:41595", "http://localhost:41595", false},
		{" http://127.0.0.1:41595/ ", "http://127.0.0.1:41595", false},
		{"", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPEagleAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPEagleAdapter(config.Adapter{}, nil)
	assert.Error(t, err)
}

func TestNewHTTPEagleAdapter_AppliesTimeout(t *testing.T) {
	a, err := NewHTTPEagleAdapter(config.Adapter{HTTPAddress: "localhost:41595", RequestTimeout: 3 * time.Second}, nil)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, a.(*httpEagleAdapter).client.GetClient().Timeout)
}

// ── one request per endpoint ────────────────────────────────────────────────

func TestEndpoints_SendOneRequestWithSerializedParams(t *testing.T) {
	tests := []struct {
		name      string
		call      func(ctx context.Context, a EagleAdapter) error
		method    string
		path      string
		wantBody  string
		wantQuery url.Values
	}{
		{
			name:   "application info",
			call:   func(ctx context.Context, a EagleAdapter) error { _, err := a.ApplicationInfo(ctx); return err },
			method: http.MethodGet, path: "/api/application/info",
		},
		{
			name: "create folder",
			call: func(ctx context.Context, a EagleAdapter) error {
				_, err := a.CreateFolder(ctx, models.CreateFolderRequest{FolderName: "refs", Parent: "P1"})
				return err
			},
			method: http.MethodPost, path: "/api/folder/create",
			wantBody: `{"folderName":"refs","parent":"P1"}`,
		},
		{
			name: "rename folder",
			call: func(ctx context.Context, a EagleAdapter) error {
				_, err := a.RenameFolder(ctx, models.RenameFolderRequest{FolderID: "F1", NewName: "new"})
				return err
			},
			method: http.MethodPost, path: "/api/folder/rename",
			wantBody: `{"folderId":"F1","newName":"new"}`,
		},
		{
			name: "update folder",
			call: func(ctx context.Context, a EagleAdapter) error {
				_, err := a.UpdateFolder(ctx, models.UpdateFolderRequest{FolderID: "F1", NewDescription: "d", NewColor: models.FolderColorBlue})
				return err
			},
			method: http.MethodPost, path: "/api/folder/update",
			wantBody: `{"folderId":"F1","newDescription":"d","newColor":"blue"}`,
		},
		{
			name:   "list folders",
			call:   func(ctx context.Context, a EagleAdapter) error { _, err := a.ListFolders(ctx); return err },
			method: http.MethodGet, path: "/api/folder/list",
		},
		{
			name:   "list recent folders",
			call:   func(ctx context.Context, a EagleAdapter) error { _, err := a.ListRecentFolders(ctx); return err },
			method: http.MethodGet, path: "/api/folder/listRecent",
		},
		{
			name: "add from url",
			call: func(ctx context.Context, a EagleAdapter) error {
				_, err := a.AddFromURL(ctx, models.AddFromURLRequest{
					URLItem: models.URLItem{
						URL: "https://x.io/a.png", Name: "a", Website: "https://x.io",
						Tags: []string{"t"}, Annotation: "note",
						Headers: map[string]string{"referer": "x.io"},
					},
					FolderID: "F1",
				})
				return err
			},
			method: http.MethodPost, path: "/api/item/addFromURL",
			wantBody: `{"url":"https://x.io/a.png","name":"a","website":"https://x.io","tags":["t"],"annotation":"note","headers":{"referer":"x.io"},"folderId":"F1"}`,
		},
		{
			name: "add from urls",
			call: func(ctx context.Context, a EagleAdapter) error {
				return a.AddFromURLs(ctx, models.AddFromURLsRequest{Items: []models.URLItem{
					{URL: "https://x.io/a.png", Name: "a"},
					{URL: "https://x.io/b.png", Name: "b", ModificationTime: 1700000000000},
				}})
			},
			method: http.MethodPost, path: "/api/item/addFromURLs",
			wantBody: `{"items":[{"url":"https://x.io/a.png","name":"a"},{"url":"https://x.io/b.png","name":"b","modificationTime":1700000000000}]}`,
		},
		{
			name: "add from path",
			call: func(ctx context.Context, a EagleAdapter) error {
				_, err := a.AddFromPath(ctx, models.AddFromPathRequest{PathItem: models.PathItem{Path: "/tmp/a.png", Name: "a"}})
				return err
			},
			method: http.MethodPost, path: "/api/item/addFromPath",
			wantBody: `{"path":"/tmp/a.png","name":"a"}`,
		},
		{
			name: "add from paths",
			call: func(ctx context.Context, a EagleAdapter) error {
				return a.AddFromPaths(ctx, models.AddFromPathsRequest{
					Items:    []models.PathItem{{Path: "/tmp/a.png", Name: "a", Tags: []string{"x"}}},
					FolderID: "F2",
				})
			},
			method: http.MethodPost, path: "/api/item/addFromPaths",
			wantBody: `{"items":[{"path":"/tmp/a.png","name":"a","tags":["x"]}],"folderId":"F2"}`,
		},
		{
			name: "add bookmark",
			call: func(ctx context.Context, a EagleAdapter) error {
				_, err := a.AddBookmark(ctx, models.AddBookmarkRequest{URL: "https://eagle.cool", Name: "Eagle", Tags: []string{"app"}})
				return err
			},
			method: http.MethodPost, path: "/api/item/addBookmark",
			wantBody: `{"url":"https://eagle.cool","name":"Eagle","tags":["app"]}`,
		},
		{
			name:   "item info",
			call:   func(ctx context.Context, a EagleAdapter) error { _, err := a.ItemInfo(ctx, "I1"); return err },
			method: http.MethodGet, path: "/api/item/info",
			wantQuery: url.Values{"id": {"I1"}},
		},
		{
			name:   "item thumbnail",
			call:   func(ctx context.Context, a EagleAdapter) error { _, err := a.ItemThumbnail(ctx, "I1"); return err },
			method: http.MethodGet, path: "/api/item/thumbnail",
			wantQuery: url.Values{"id": {"I1"}},
		},
		{
			name: "list items",
			call: func(ctx context.Context, a EagleAdapter) error {
				_, err := a.ListItems(ctx, models.ItemListQuery{
					Limit: 50, Offset: 2, OrderBy: "-CREATEDATE", Keyword: "cat", Ext: "png",
					Tags: []string{"a", "b"}, Folders: []string{"F1", "F2"},
				})
				return err
			},
			method: http.MethodGet, path: "/api/item/list",
			wantQuery: url.Values{
				"limit": {"50"}, "offset": {"2"}, "orderBy": {"-CREATEDATE"}, "keyword": {"cat"},
				"ext": {"png"}, "tags": {"a,b"}, "folders": {"F1,F2"},
			},
		},
		{
			name: "move to trash",
			call: func(ctx context.Context, a EagleAdapter) error {
				return a.MoveToTrash(ctx, models.MoveToTrashRequest{ItemIDs: []string{"I1", "I2"}})
			},
			method: http.MethodPost, path: "/api/item/moveToTrash",
			wantBody: `{"itemIds":["I1","I2"]}`,
		},
		{
			name:   "refresh palette",
			call:   func(ctx context.Context, a EagleAdapter) error { return a.RefreshPalette(ctx, "I1") },
			method: http.MethodPost, path: "/api/item/refreshPalette",
			wantBody: `{"id":"I1"}`,
		},
		{
			name:   "refresh thumbnail",
			call:   func(ctx context.Context, a EagleAdapter) error { return a.RefreshThumbnail(ctx, "I1") },
			method: http.MethodPost, path: "/api/item/refreshThumbnail",
			wantBody: `{"id":"I1"}`,
		},
		{
			name: "update item",
			call: func(ctx context.Context, a EagleAdapter) error {
				_, err := a.UpdateItem(ctx, models.UpdateItemRequest{
					ID: "I1", Tags: models.Ptr([]string{"x", "y"}), Star: models.Ptr(4),
				})
				return err
			},
			method: http.MethodPost, path: "/api/item/update",
			wantBody: `{"id":"I1","tags":["x","y"],"star":4}`,
		},
		{
			name:   "library info",
			call:   func(ctx context.Context, a EagleAdapter) error { _, err := a.LibraryInfo(ctx); return err },
			method: http.MethodGet, path: "/api/library/info",
		},
		{
			name:   "library history",
			call:   func(ctx context.Context, a EagleAdapter) error { _, err := a.LibraryHistory(ctx); return err },
			method: http.MethodGet, path: "/api/library/history",
		},
		{
			name: "switch library",
			call: func(ctx context.Context, a EagleAdapter) error {
				return a.SwitchLibrary(ctx, models.SwitchLibraryRequest{LibraryPath: "/Users/me/Pictures/x.library"})
			},
			method: http.MethodPost, path: "/api/library/switch",
			wantBody: `{"libraryPath":"/Users/me/Pictures/x.library"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeEagle(t)
			a := newTestAdapter(t, fake.srv.URL)

			require.NoError(t, tt.call(context.Background(), a))

			reqs := fake.recorded()
			require.Len(t, reqs, 1)
			got := reqs[0]
			assert.Equal(t, tt.method, got.Method)
			assert.Equal(t, tt.path, got.Path)
			assert.NotEmpty(t, got.RequestID)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, got.Body)
			} else {
				assert.Empty(t, got.Body)
			}
			if tt.wantQuery != nil {
				assert.Equal(t, tt.wantQuery, got.Query)
			} else {
				assert.Empty(t, got.Query)
			}
		})
	}
}

// ── decoding ────────────────────────────────────────────────────────────────

func TestApplicationInfo_Decodes(t *testing.T) {
	fake := newFakeEagle(t)
	fake.succeedWith(`{"version":"4.0.0","buildVersion":"20","execPath":"/Applications/Eagle.app","platform":"darwin"}`)
	a := newTestAdapter(t, fake.srv.URL)

	info, err := a.ApplicationInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.ApplicationInfo{
		Version: "4.0.0", BuildVersion: "20", ExecPath: "/Applications/Eagle.app", Platform: "darwin",
	}, info)
}

func TestListItems_Decodes(t *testing.T) {
	fake := newFakeEagle(t)
	fake.succeedWith(`[{"id":"A","name":"foo","ext":"png","tags":["t"],"palettes":[{"color":[1,2,3],"ratio":50}]},{"id":"B","name":"bar","ext":"jpg","tags":[]}]`)
	a := newTestAdapter(t, fake.srv.URL)

	items, err := a.ListItems(context.Background(), models.ItemListQuery{Limit: 2})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "foo", items[0].Name)
	assert.Equal(t, [3]int{1, 2, 3}, items[0].Palettes[0].Color)
	assert.Equal(t, "B", items[1].ID)
}

func TestListItems_KeepsItemsWithMistypedFields(t *testing.T) {
	fake := newFakeEagle(t)
	fake.succeedWith(`[
		{"id":"A","name":"foo","width":640.5,"height":480},
		{"id":"B","name":"bar","size":"2048","tags":["t",1]},
		{"id":"C","name":"baz","palettes":[{"color":[1.0,2,"3"],"ratio":"50"}],"isDeleted":0}
	]`)
	a := newTestAdapter(t, fake.srv.URL)

	items, err := a.ListItems(context.Background(), models.ItemListQuery{})

	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, 640, items[0].Width)
	assert.Equal(t, int64(2048), items[1].Size)
	assert.Equal(t, []string{"t", "1"}, items[1].Tags)
	assert.Equal(t, [3]int{1, 2, 3}, items[2].Palettes[0].Color)
	assert.False(t, items[2].IsDeleted)
}

func TestItemInfo_KeepsItemWithMistypedFields(t *testing.T) {
	fake := newFakeEagle(t)
	fake.succeedWith(`{"id":"A","name":"foo","width":"640","duration":"2.5"}`)
	a := newTestAdapter(t, fake.srv.URL)

	item, err := a.ItemInfo(context.Background(), "A")

	require.NoError(t, err)
	assert.Equal(t, 640, item.Width)
	assert.InDelta(t, 2.5, item.Duration, 1e-9)
}

func TestListFolders_DecodesNested(t *testing.T) {
	fake := newFakeEagle(t)
	fake.succeedWith(`[{"id":"F1","name":"root","children":[{"id":"F2","name":"child","children":[]}],"imageCount":3}]`)
	a := newTestAdapter(t, fake.srv.URL)

	folders, err := a.ListFolders(context.Background())

	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, 3, folders[0].ImageCount)
	require.Len(t, folders[0].Children, 1)
	assert.Equal(t, "child", folders[0].Children[0].Name)
}

func TestItemThumbnail_DecodesPath(t *testing.T) {
	fake := newFakeEagle(t)
	fake.succeedWith(`"/lib/images/I1.info/a_thumbnail.png"`)
	a := newTestAdapter(t, fake.srv.URL)

	path, err := a.ItemThumbnail(context.Background(), "I1")

	require.NoError(t, err)
	assert.Equal(t, "/lib/images/I1.info/a_thumbnail.png", path)
}

func TestLibraryInfo_KeepsLooseSections(t *testing.T) {
	fake := newFakeEagle(t)
	fake.succeedWith(`{"folders":[{"id":"F1","name":"a"}],"smartFolders":[{"id":"S1","conditions":[{"match":"AND"}]}],"library":{"path":"/x.library","name":"x"}}`)
	a := newTestAdapter(t, fake.srv.URL)

	info, err := a.LibraryInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "/x.library", info.Library.Path)
	require.Len(t, info.SmartFolders, 1)
	assert.Equal(t, "S1", info.SmartFolders[0]["id"])
}

func TestLibraryHistory_Decodes(t *testing.T) {
	fake := newFakeEagle(t)
	fake.succeedWith(`["/a.library","/b.library"]`)
	a := newTestAdapter(t, fake.srv.URL)

	history, err := a.LibraryHistory(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"/a.library", "/b.library"}, history)
}

func TestAddFromURL_ReturnsItemID(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"string data", `{"status":"success","data":"KBHG6KA0Y5S9W"}`, "KBHG6KA0Y5S9W"},
		{"object data", `{"status":"success","data":{"id":"KBHG6KA0Y5S9W"}}`, "KBHG6KA0Y5S9W"},
		{"no data", `{"status":"success"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeEagle(t)
			fake.respond(http.StatusOK, tt.reply)
			a := newTestAdapter(t, fake.srv.URL)

			id, err := a.AddFromURL(context.Background(), models.AddFromURLRequest{URLItem: models.URLItem{URL: "u", Name: "n"}})

			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

// ── errors ──────────────────────────────────────────────────────────────────

func TestRemoteAPIError_CarriesStatusAndMessage(t *testing.T) {
	tests := []struct {
		name        string
		httpStatus  int
		reply       string
		wantStatus  string
		wantMessage string
		wantCode    string
	}{
		{"message field", http.StatusOK, `{"status":"error","message":"Folder does not exist."}`, "error", "Folder does not exist.", ""},
		{"string data", http.StatusOK, `{"status":"error","data":"Item not found"}`, "error", "Item not found", ""},
		{"non 2xx with envelope", http.StatusBadRequest, `{"status":"error","message":"bad id","code":400}`, "error", "bad id", "400"},
		{"string code", http.StatusOK, `{"status":"error","message":"Folder not found","code":"E404"}`, "error", "Folder not found", "E404"},
		{"object code", http.StatusOK, `{"status":"error","message":"nope","code":{"n":1}}`, "error", "nope", `{"n":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeEagle(t)
			fake.respond(tt.httpStatus, tt.reply)
			a := newTestAdapter(t, fake.srv.URL)

			_, err := a.RenameFolder(context.Background(), models.RenameFolderRequest{FolderID: "F1", NewName: "x"})

			var remote *RemoteAPIError
			require.True(t, errors.As(err, &remote), "expected *RemoteAPIError, got %v", err)
			assert.Equal(t, tt.wantStatus, remote.Status)
			assert.Equal(t, tt.wantMessage, remote.Message)
			assert.Equal(t, tt.wantCode, remote.Code)
			assert.Equal(t, tt.httpStatus, remote.HTTPStatus)
			assert.Len(t, fake.recorded(), 1)
		})
	}
}

func TestEveryEndpoint_ReturnsRemoteAPIError(t *testing.T) {
	fake := newFakeEagle(t)
	fake.respond(http.StatusOK, `{"status":"error","message":"boom"}`)
	a := newTestAdapter(t, fake.srv.URL)
	ctx := context.Background()

	calls := map[string]func() error{
		"ApplicationInfo":   func() error { _, err := a.ApplicationInfo(ctx); return err },
		"CreateFolder":      func() error { _, err := a.CreateFolder(ctx, models.CreateFolderRequest{FolderName: "f"}); return err },
		"UpdateFolder":      func() error { _, err := a.UpdateFolder(ctx, models.UpdateFolderRequest{FolderID: "f", NewName: "n"}); return err },
		"ListFolders":       func() error { _, err := a.ListFolders(ctx); return err },
		"ListRecentFolders": func() error { _, err := a.ListRecentFolders(ctx); return err },
		"AddFromURLs": func() error {
			return a.AddFromURLs(ctx, models.AddFromURLsRequest{Items: []models.URLItem{{URL: "u", Name: "n"}}})
		},
		"AddFromPath": func() error {
			_, err := a.AddFromPath(ctx, models.AddFromPathRequest{PathItem: models.PathItem{Path: "p", Name: "n"}})
			return err
		},
		"AddBookmark":      func() error { _, err := a.AddBookmark(ctx, models.AddBookmarkRequest{URL: "u", Name: "n"}); return err },
		"ItemInfo":         func() error { _, err := a.ItemInfo(ctx, "I"); return err },
		"ListItems":        func() error { _, err := a.ListItems(ctx, models.ItemListQuery{}); return err },
		"MoveToTrash":      func() error { return a.MoveToTrash(ctx, models.MoveToTrashRequest{ItemIDs: []string{"I"}}) },
		"RefreshThumbnail": func() error { return a.RefreshThumbnail(ctx, "I") },
		"UpdateItem": func() error {
			_, err := a.UpdateItem(ctx, models.UpdateItemRequest{ID: "I", Annotation: models.Ptr("a")})
			return err
		},
		"LibraryInfo":    func() error { _, err := a.LibraryInfo(ctx); return err },
		"LibraryHistory": func() error { _, err := a.LibraryHistory(ctx); return err },
		"SwitchLibrary":  func() error { return a.SwitchLibrary(ctx, models.SwitchLibraryRequest{LibraryPath: "/x"}) },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			var remote *RemoteAPIError
			require.ErrorAs(t, call(), &remote)
			assert.Equal(t, "boom", remote.Message)
		})
	}
}

func TestHTTPErrors_WithoutEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, "nope", ErrBadRequest},
		{"not found", http.StatusNotFound, "", ErrNotFound},
		{"server error", http.StatusInternalServerError, "crash", ErrInternalServerError},
		{"malformed 200", http.StatusOK, "<html>", ErrMalformedResponse},
		{"missing status", http.StatusOK, `{"data":[]}`, ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := newFakeEagle(t)
			fake.respond(tt.status, tt.body)
			a := newTestAdapter(t, fake.srv.URL)

			_, err := a.LibraryHistory(context.Background())

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPErrors_UnmappedStatus(t *testing.T) {
	fake := newFakeEagle(t)
	fake.respond(http.StatusServiceUnavailable, "")
	a := newTestAdapter(t, fake.srv.URL)

	_, err := a.ListFolders(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 503")
}

func TestMalformedData_IsDecodeError(t *testing.T) {
	fake := newFakeEagle(t)
	fake.succeedWith(`{"not":"a list"}`)
	a := newTestAdapter(t, fake.srv.URL)

	_, err := a.ListItems(context.Background(), models.ItemListQuery{})

	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestTransportError_Propagates(t *testing.T) {
	fake := newFakeEagle(t)
	a := newTestAdapter(t, fake.srv.URL)
	fake.srv.Close()

	_, err := a.ApplicationInfo(context.Background())

	require.Error(t, err)
	var remote *RemoteAPIError
	assert.False(t, errors.As(err, &remote))
}

func TestValidationFailure_SendsNothing(t *testing.T) {
	fake := newFakeEagle(t)
	a := newTestAdapter(t, fake.srv.URL)
	ctx := context.Background()

	_, err := a.AddFromURL(ctx, models.AddFromURLRequest{URLItem: models.URLItem{Name: "n"}})
	assert.ErrorIs(t, err, validators.ErrEmptyURL)

	_, err = a.ItemInfo(ctx, "")
	assert.ErrorIs(t, err, validators.ErrEmptyID)

	err = a.MoveToTrash(ctx, models.MoveToTrashRequest{})
	assert.ErrorIs(t, err, validators.ErrEmptyIDs)

	assert.Empty(t, fake.recorded())
}

// ── request ids and transport ───────────────────────────────────────────────

func TestRequestID_FromContext(t *testing.T) {
	fake := newFakeEagle(t)
	a := newTestAdapter(t, fake.srv.URL)

	ctx := utils.WithRequestID(context.Background(), "import-42")
	_, err := a.LibraryHistory(ctx)
	require.NoError(t, err)

	assert.Equal(t, "import-42", fake.recorded()[0].RequestID)
}

func TestRequestID_GeneratedPerCall(t *testing.T) {
	fake := newFakeEagle(t)
	a := newTestAdapter(t, fake.srv.URL)

	for n := 0; n < 3; n++ {
		_, err := a.LibraryHistory(context.Background())
		require.NoError(t, err)
	}

	seen := make(map[string]struct{})
	for _, r := range fake.recorded() {
		parsed, err := uuid.Parse(r.RequestID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
		seen[r.RequestID] = struct{}{}
	}
	assert.Len(t, seen, 3)
}

// roundTripFunc lets a plain function stand in for the HTTP transport.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithTransport_StubbedTransport(t *testing.T) {
	var calls int
	var gotURL string
	stub := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		gotURL = r.URL.String()
		body, _ := json.Marshal(models.Response{Status: models.StatusSuccess, Data: json.RawMessage(`"/x.png"`)})
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": {"application/json"}},
			Body:       io.NopCloser(bytes.NewReader(body)),
			Request:    r,
		}, nil
	})

	a, err := NewHTTPEagleAdapter(config.Adapter{HTTPAddress: config.DefaultEagleAddress}, nil, WithTransport(stub))
	require.NoError(t, err)

	path, err := a.ItemThumbnail(context.Background(), "I1")

	require.NoError(t, err)
	assert.Equal(t, "/x.png", path)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "http://localhost:41595/api/item/thumbnail?id=I1", gotURL)
}
