package sheets_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/creativecreature/sheetcache"
	"github.com/creativecreature/sheetcache/sheets"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *sheets.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := sheets.New(context.Background(),
		sheets.Config{SpreadsheetID: "league-sheet"},
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return client
}

func TestFetchRange(t *testing.T) {
	t.Parallel()

	requests := make(chan url.URL, 1)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests <- *r.URL
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"range": "Standings!A2:G6",
			"majorDimension": "ROWS",
			"values": [
				["Mario Fireballs", "12", "3"],
				["Bowser Monsters", 9, true],
				["Peach Monarchs"]
			]
		}`))
	})

	rows, err := client.FetchRange(context.Background(), "Standings!A2:G")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := sheetcache.Rows{
		{"Mario Fireballs", "12", "3"},
		{"Bowser Monsters", "9", "true"},
		{"Peach Monarchs"},
	}
	if !cmp.Equal(want, rows) {
		t.Error(cmp.Diff(want, rows))
	}
	req := <-requests
	if req.Path != "/v4/spreadsheets/league-sheet/values/Standings!A2:G" {
		t.Errorf("unexpected request path %q", req.Path)
	}
	if got := req.Query().Get("valueRenderOption"); got != "FORMATTED_VALUE" {
		t.Errorf("expected FORMATTED_VALUE, got %q", got)
	}
	if got := req.Query().Get("majorDimension"); got != "ROWS" {
		t.Errorf("expected ROWS, got %q", got)
	}
}

func TestFetchRangeEmpty(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"range": "Schedule!A2:G", "majorDimension": "ROWS"}`))
	})

	rows, err := client.FetchRange(context.Background(), "Schedule!A2:G")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rows == nil || len(rows) != 0 {
		t.Errorf("expected empty, non-nil rows, got %#v", rows)
	}
}

func TestFetchRangeError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"code": 429, "message": "Quota exceeded", "status": "RESOURCE_EXHAUSTED"}}`))
	})

	_, err := client.FetchRange(context.Background(), "Standings!A2:G")
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected a googleapi error, got %v", err)
	}
	if apiErr.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", apiErr.Code)
	}
}

func TestClientIsAFetcher(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"values": [["a", "b"]]}`))
	})

	var fetcher sheetcache.Fetcher = client
	c := sheetcache.New(sheetcache.DefaultTTL, fetcher)
	for range 3 {
		if _, err := c.Get(context.Background(), "Chemistry!A2:C"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("expected 1 request, got %d", calls.Load())
	}
}

func TestNewValidatesConfig(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if _, err := sheets.New(ctx, sheets.Config{}); !errors.Is(err, sheets.ErrMissingSpreadsheetID) {
		t.Errorf("expected ErrMissingSpreadsheetID, got %v", err)
	}
	if _, err := sheets.New(ctx, sheets.Config{SpreadsheetID: "id"}); !errors.Is(err, sheets.ErrMissingCredentials) {
		t.Errorf("expected ErrMissingCredentials, got %v", err)
	}
}
