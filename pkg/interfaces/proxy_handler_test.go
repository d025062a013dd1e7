package interfaces

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yair/groupie-tracker/pkg/integrations"
)

func TestProxyHandler(t *testing.T) {
	var lastPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Upstream", "groupie")
		switch r.URL.Path {
		case "/api/artists":
			w.Write([]byte(`[{"id":1,"name":"Queen"}]`))
		case "/api/relation/1":
			w.Write([]byte(`{"id":1,"datesLocations":{}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{}`))
		}
	}))
	defer upstream.Close()

	client, err := integrations.NewGroupieClient(integrations.GroupieConfig{BaseURL: upstream.URL + "/api"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	handler := NewProxyHandler(client)

	t.Run("artists", func(t *testing.T) {
		rr := serve(t, handler, "/proxy/artists")
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		if lastPath != "/api/artists" {
			t.Errorf("expected upstream /api/artists, got %s", lastPath)
		}
		if rr.Body.String() != `[{"id":1,"name":"Queen"}]` {
			t.Errorf("unexpected body %s", rr.Body.String())
		}
		if rr.Header().Get("X-Upstream") != "groupie" {
			t.Error("expected upstream headers to be copied")
		}
	})

	t.Run("resource with id", func(t *testing.T) {
		rr := serve(t, handler, "/proxy/relation/1")
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		if lastPath != "/api/relation/1" {
			t.Errorf("expected upstream /api/relation/1, got %s", lastPath)
		}
	})

	t.Run("upstream status is kept", func(t *testing.T) {
		rr := serve(t, handler, "/proxy/dates/999")
		if rr.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rr.Code)
		}
	})

	tests := []struct {
		name    string
		target  string
		message string
	}{
		{"unsupported resource", "/proxy/members/1", "resource not supported"},
		{"single segment other than artists", "/proxy/relation", "invalid proxy path"},
		{"empty id", "/proxy/relation/", "resource not supported"},
		{"too many segments", "/proxy/relation/1/extra", "invalid proxy path"},
		{"bare prefix", "/proxy/", "invalid proxy path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, handler, tt.target)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rr.Code)
			}
			if msg := decodeError(t, rr); msg != tt.message {
				t.Errorf("expected %q, got %q", tt.message, msg)
			}
		})
	}

	t.Run("upstream unreachable", func(t *testing.T) {
		down, err := integrations.NewGroupieClient(integrations.GroupieConfig{BaseURL: "http://127.0.0.1:1/api"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		rr := serve(t, NewProxyHandler(down), "/proxy/artists")
		if rr.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", rr.Code)
		}
		if msg := decodeError(t, rr); msg != "failed to reach upstream API" {
			t.Errorf("unexpected error %q", msg)
		}
	})
}
