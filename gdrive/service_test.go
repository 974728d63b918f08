package gdrive

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"testing"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	d, err := drive.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatalf("Unexpected error creating Drive client (%v)", err)
	}

	return NewService(d)
}

func TestList(t *testing.T) {
	pages := map[string]any{
		"": map[string]any{
			"nextPageToken": "page-2",
			"files": []map[string]string{
				{"id": "id-1", "name": "f1.xlsx", "mimeType": Workbook},
				{"id": "id-2", "name": "Báo cáo", "mimeType": NativeSpreadsheet},
			},
		},
		"page-2": map[string]any{
			"files": []map[string]string{
				{"id": "id-3", "name": "f3.xlsx", "mimeType": Workbook},
			},
		},
	}

	var mutex sync.Mutex
	queries := []string{}
	tokens := []string{}

	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/files") {
			http.NotFound(w, r)
			return
		}

		mutex.Lock()
		queries = append(queries, r.URL.Query().Get("q"))
		tokens = append(tokens, r.URL.Query().Get("pageToken"))
		mutex.Unlock()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(pages[r.URL.Query().Get("pageToken")])
	})

	expected := []File{
		{ID: "id-1", Name: "f1.xlsx", MimeType: Workbook},
		{ID: "id-2", Name: "Báo cáo", MimeType: NativeSpreadsheet},
		{ID: "id-3", Name: "f3.xlsx", MimeType: Workbook},
	}

	files, err := s.List(context.Background(), "folder-1")
	if err != nil {
		t.Fatalf("Unexpected error listing folder (%v)", err)
	}

	if !reflect.DeepEqual(files, expected) {
		t.Errorf("Incorrect files\n   expected: %v\n   got:      %v", expected, files)
	}

	mutex.Lock()
	defer mutex.Unlock()

	if !reflect.DeepEqual(tokens, []string{"", "page-2"}) {
		t.Errorf("Incorrect page tokens - expected:[ page-2], got:%q", tokens)
	}

	for _, q := range queries {
		if q != Query("folder-1") {
			t.Errorf("Incorrect query\n   expected: %v\n   got:      %v", Query("folder-1"), q)
		}
	}
}

func TestListWithError(t *testing.T) {
	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":404,"message":"folder not found"}}`, http.StatusNotFound)
	})

	if _, err := s.List(context.Background(), "folder-1"); err == nil {
		t.Errorf("Expected error listing missing folder")
	}
}

func TestDownload(t *testing.T) {
	content := []byte("PK\x03\x04 workbook")

	s := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/files/id-1") || r.URL.Query().Get("alt") != "media" {
			http.NotFound(w, r)
			return
		}

		w.Write(content)
	})

	var b bytes.Buffer
	if err := s.Download(context.Background(), "id-1", &b); err != nil {
		t.Fatalf("Unexpected error downloading file (%v)", err)
	}

	if !bytes.Equal(b.Bytes(), content) {
		t.Errorf("Incorrect content - expected:%q, got:%q", content, b.Bytes())
	}
}
