package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClient_Translate(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantText   string
		wantAPIErr string
		wantTransp bool
		wantEmpty  bool
	}{
		{
			name:     "translated text",
			status:   http.StatusOK,
			body:     `{"translated_text":"fiebre y tos"}`,
			wantText: "fiebre y tos",
		},
		{
			name:       "application error",
			status:     http.StatusOK,
			body:       `{"error":"unsupported pair","translated_text":""}`,
			wantAPIErr: "unsupported pair",
		},
		{
			name:     "translated text wins over error",
			status:   http.StatusOK,
			body:     `{"translated_text":"hola","error":"ignored"}`,
			wantText: "hola",
		},
		{
			name:       "error body on non-200 status",
			status:     http.StatusUnprocessableEntity,
			body:       `{"error":"No text provided"}`,
			wantAPIErr: "No text provided",
		},
		{
			name:       "unparseable body",
			status:     http.StatusBadGateway,
			body:       `<html>bad gateway</html>`,
			wantTransp: true,
		},
		{
			name:      "empty object",
			status:    http.StatusOK,
			body:      `{}`,
			wantEmpty: true,
		},
		{
			name:      "blank text and error",
			status:    http.StatusOK,
			body:      `{"translated_text":"","error":""}`,
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second)
			got, err := c.Translate(context.Background(), Request{Text: "x", SourceLang: "en", TargetLang: "es"})

			var apiErr *APIError
			switch {
			case tt.wantAPIErr != "":
				if !errors.As(err, &apiErr) {
					t.Fatalf("error = %v, want *APIError", err)
				}
				if apiErr.Message != tt.wantAPIErr {
					t.Errorf("APIError.Message = %q, want %q", apiErr.Message, tt.wantAPIErr)
				}
				if errors.Is(err, ErrTransport) {
					t.Error("application error must not be a transport error")
				}
			case tt.wantTransp:
				if !errors.Is(err, ErrTransport) {
					t.Fatalf("error = %v, want ErrTransport", err)
				}
			case tt.wantEmpty:
				if !errors.Is(err, ErrEmptyResponse) {
					t.Fatalf("error = %v, want ErrEmptyResponse", err)
				}
				if errors.Is(err, ErrTransport) || errors.As(err, &apiErr) {
					t.Errorf("empty response classified as failure: %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got != tt.wantText {
					t.Errorf("text = %q, want %q", got, tt.wantText)
				}
			}
		})
	}
}

func TestClient_TranslateRequestShape(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotCT     string
		gotID     string
		gotBody   map[string]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotCT = r.Header.Get("Content-Type")
		gotID = r.Header.Get(requestIDHeader)
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		_, _ = w.Write([]byte(`{"translated_text":"ok"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", 0)
	_, err := c.Translate(context.Background(), Request{
		ID:         "req-1",
		Text:       "fever and cough",
		SourceLang: "en",
		TargetLang: "es",
	})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}

	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotPath != "/translate" {
		t.Errorf("path = %s, want /translate", gotPath)
	}
	if gotCT != "application/json" {
		t.Errorf("content-type = %q", gotCT)
	}
	if gotID != "req-1" {
		t.Errorf("request id = %q, want req-1", gotID)
	}
	want := map[string]string{"text": "fever and cough", "src_lang": "en", "tgt_lang": "es"}
	for k, v := range want {
		if gotBody[k] != v {
			t.Errorf("body[%q] = %q, want %q", k, gotBody[k], v)
		}
	}
}

func TestClient_TranslateUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, time.Second)
	_, err := c.Translate(context.Background(), Request{Text: "x", SourceLang: "en", TargetLang: "es"})
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("error = %v, want ErrTransport", err)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", DefaultBaseURL},
		{"   ", DefaultBaseURL},
		{"http://api.example.com/", "http://api.example.com"},
		{"http://api.example.com//", "http://api.example.com"},
		{"http://api.example.com", "http://api.example.com"},
	}

	for _, tt := range tests {
		if got := NewClient(tt.in, 0).BaseURL(); got != tt.want {
			t.Errorf("NewClient(%q).BaseURL() = %q, want %q", tt.in, got, tt.want)
		}
	}
}
