package scraper

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetch(t *testing.T) {
	tests := []struct {
		name        string
		htmlContent string
		statusCode  int
		wantStatus  int
		wantTitle   string
	}{
		{
			name:        "successful fetch",
			htmlContent: `<html><head><title>Skellefteå AIK - Luleå HF</title></head><body></body></html>`,
			statusCode:  http.StatusOK,
			wantTitle:   "Skellefteå AIK - Luleå HF",
		},
		{
			name:       "not found",
			statusCode: http.StatusNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "server error",
			statusCode: http.StatusInternalServerError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if userAgent := r.Header.Get("User-Agent"); !strings.Contains(userAgent, "hockey-stats") {
					t.Errorf("User-Agent = %q, should contain 'hockey-stats'", userAgent)
				}
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.htmlContent)) // nolint:errcheck
			}))
			defer server.Close()

			s := New(server.URL, 0)
			doc, err := s.Fetch(server.URL + "/page")

			if tt.wantStatus != 0 {
				var statusErr *StatusError
				if !errors.As(err, &statusErr) {
					t.Fatalf("Fetch() error = %v, want *StatusError", err)
				}
				if statusErr.StatusCode != tt.wantStatus {
					t.Errorf("StatusCode = %d, want %d", statusErr.StatusCode, tt.wantStatus)
				}
				return
			}

			if err != nil {
				t.Fatalf("Fetch() unexpected error: %v", err)
			}
			if got := doc.Find("title").Text(); got != tt.wantTitle {
				t.Errorf("title = %q, want %q", got, tt.wantTitle)
			}
		})
	}
}

func TestFetch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := New(url, time.Second).Fetch(url)
	if err == nil {
		t.Fatal("Fetch() expected error for closed server")
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		t.Error("transport failure must not be reported as a StatusError")
	}
}

func TestFetchPages_Paths(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte("<html></html>")) // nolint:errcheck
	}))
	defer server.Close()

	s := New(server.URL+"/", 0)
	if _, err := s.FetchSchedule("18263"); err != nil {
		t.Fatalf("FetchSchedule() error: %v", err)
	}
	if _, err := s.FetchLineups("987"); err != nil {
		t.Fatalf("FetchLineups() error: %v", err)
	}
	if _, err := s.FetchEvents("987"); err != nil {
		t.Fatalf("FetchEvents() error: %v", err)
	}

	want := []string{
		"/ScheduleAndResults/Schedule/18263",
		"/Game/LineUps/987",
		"/Game/Events/987",
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("path[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestNew(t *testing.T) {
	s := New("", 0)

	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.client == nil {
		t.Error("scraper client is nil")
	}
	if s.client.Timeout != Timeout {
		t.Errorf("timeout = %v, want %v", s.client.Timeout, Timeout)
	}
	if s.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", s.baseURL, DefaultBaseURL)
	}
}

func TestGameLink(t *testing.T) {
	s := New("https://stats.example.com/", 0)

	if got := s.GameLink("123"); got != "https://stats.example.com/Game/Events/123" {
		t.Errorf("GameLink(123) = %q", got)
	}
	if got := s.GameLink(""); got != "" {
		t.Errorf("GameLink(\"\") = %q, want empty", got)
	}
}
