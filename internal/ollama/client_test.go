package ollama

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		model     string
		wantModel string
	}{
		{"custom url and model", "http://localhost:11434", "custom-model", "custom-model"},
		{"default url", "", "test-model", "test-model"},
		{"default model", "http://localhost:11434", "", DefaultModel},
		{"all defaults", "", "", DefaultModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.url, tt.model)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if client.Model() != tt.wantModel {
				t.Errorf("model = %q; want %q", client.Model(), tt.wantModel)
			}
		})
	}
}

func TestIsAvailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	if !IsAvailable(server.URL) {
		t.Error("responding server reported unavailable")
	}
	if IsAvailable("http://127.0.0.1:1") {
		t.Error("closed port reported available")
	}
}

func TestEmbedEmptyText(t *testing.T) {
	client, err := NewClient("", "test-model")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := client.Embed(context.Background(), ""); err == nil {
		t.Error("expected error for empty text")
	}
}
