package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		status   int
		contains []string
	}{
		{
			name:     "form-only",
			method:   http.MethodGet,
			target:   "/",
			status:   http.StatusOK,
			contains: []string{"<form", "first string"},
		},
		{
			name:   "computes",
			method: http.MethodGet,
			target: "/?a=kitten&b=sitting",
			status: http.StatusOK,
			contains: []string{
				"distance: <strong>3</strong>",
				"substitute position 1&#39;s &#39;k&#39; with &#39;s&#39;",
				"substitute position 5&#39;s &#39;e&#39; with &#39;i&#39;",
				"insert &#39;g&#39; at position 7",
			},
		},
		{
			name:     "identical",
			method:   http.MethodGet,
			target:   "/?a=same&b=same",
			status:   http.StatusOK,
			contains: []string{"the strings are identical"},
		},
		{
			name:   "not-found",
			method: http.MethodGet,
			target: "/nope",
			status: http.StatusNotFound,
		},
		{
			name:   "post-rejected",
			method: http.MethodPost,
			target: "/",
			status: http.StatusNotImplemented,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h := &handler{}
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
			if got, want := rec.Code, tt.status; got != want {
				t.Fatalf("status = %v, want %v", got, want)
			}
			body := rec.Body.String()
			for _, want := range tt.contains {
				if !strings.Contains(body, want) {
					t.Errorf("body does not contain %q:\n%s", want, body)
				}
			}
		})
	}
}
