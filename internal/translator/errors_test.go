package translator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   Kind
	}{
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			want:   KindAuth,
		},
		{
			name:   "forbidden without quota reason",
			status: http.StatusForbidden,
			body:   "The request is missing a valid API key.",
			want:   KindAuth,
		},
		{
			name:   "forbidden with quota reason",
			status: http.StatusForbidden,
			body:   `{"error":{"errors":[{"reason":"dailyLimitExceeded"}]}}`,
			want:   KindQuota,
		},
		{
			name:   "too many requests",
			status: http.StatusTooManyRequests,
			want:   KindQuota,
		},
		{
			name:   "bad request",
			status: http.StatusBadRequest,
			body:   "Invalid Value",
			want:   KindInvalidRequest,
		},
		{
			name:   "bad request with invalid key",
			status: http.StatusBadRequest,
			body:   "API key not valid. Please pass a valid API key.",
			want:   KindAuth,
		},
		{
			name:   "not found",
			status: http.StatusNotFound,
			want:   KindInvalidRequest,
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			want:   KindUnknown,
		},
		{
			name:   "mymemory free quota warning",
			status: http.StatusForbidden,
			body:   "MYMEMORY WARNING: YOU USED ALL AVAILABLE FREE TRANSLATIONS FOR TODAY",
			want:   KindQuota,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyStatus(tt.status, tt.body); got != tt.want {
				t.Errorf("classifyStatus(%d, %q) = %v, want %v", tt.status, tt.body, got, tt.want)
			}
		})
	}
}

func TestClassifyTransport_ContextDeadline(t *testing.T) {
	err := classifyTransport("google", context.DeadlineExceeded)

	if err.Kind != KindNetwork {
		t.Errorf("expected network kind, got %v", err.Kind)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected wrapped deadline error to survive errors.Is")
	}
}

func TestClassifyTransport_Cancelled(t *testing.T) {
	err := classifyTransport("mymemory", context.Canceled)

	if err.Kind != KindNetwork {
		t.Errorf("expected network kind, got %v", err.Kind)
	}
}

func TestClassifyTransport_URLError(t *testing.T) {
	cause := &url.Error{Op: "Get", URL: "https://example.invalid", Err: errors.New("no such host")}
	err := classifyTransport("googlerest", cause)

	if err.Kind != KindNetwork {
		t.Errorf("expected network kind, got %v", err.Kind)
	}
}

func TestClassifyTransport_Unrecognized(t *testing.T) {
	err := classifyTransport("google", errors.New("something odd"))

	if err.Kind != KindUnknown {
		t.Errorf("expected unknown kind, got %v", err.Kind)
	}
}

func TestKindOf(t *testing.T) {
	te := &Error{Kind: KindQuota, Provider: "google", Message: "quota exceeded"}

	if got := KindOf(te); got != KindQuota {
		t.Errorf("KindOf = %v, want %v", got, KindQuota)
	}
	if got := KindOf(fmt.Errorf("call failed: %w", te)); got != KindQuota {
		t.Errorf("KindOf through wrapping = %v, want %v", got, KindQuota)
	}
	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Errorf("KindOf(plain) = %v, want %v", got, KindUnknown)
	}
	if got := KindOf(nil); got != KindUnknown {
		t.Errorf("KindOf(nil) = %v, want %v", got, KindUnknown)
	}
}

func TestError_Message(t *testing.T) {
	te := &Error{Kind: KindAuth, Provider: "google", Message: "API key is required"}

	msg := te.Error()
	if !strings.Contains(msg, "google") || !strings.Contains(msg, "auth") {
		t.Errorf("error message %q should name provider and kind", msg)
	}
}

func TestError_FallsBackToCause(t *testing.T) {
	te := &Error{Kind: KindNetwork, Err: errors.New("connection refused")}

	if !strings.Contains(te.Error(), "connection refused") {
		t.Errorf("error message %q should include the cause", te.Error())
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNetwork, "network"},
		{KindAuth, "auth"},
		{KindQuota, "quota"},
		{KindInvalidRequest, "invalid_request"},
		{KindUnknown, "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     TranslateRequest
		wantErr bool
		want    Kind
	}{
		{
			name: "valid request",
			req:  TranslateRequest{Text: "Hello", TargetLang: "es"},
		},
		{
			name:    "empty text",
			req:     TranslateRequest{Text: "", TargetLang: "es"},
			wantErr: true,
			want:    KindInvalidRequest,
		},
		{
			name:    "whitespace only text",
			req:     TranslateRequest{Text: "   \n", TargetLang: "es"},
			wantErr: true,
			want:    KindInvalidRequest,
		},
		{
			name:    "missing target",
			req:     TranslateRequest{Text: "Hello"},
			wantErr: true,
			want:    KindInvalidRequest,
		},
		{
			name:    "garbage target",
			req:     TranslateRequest{Text: "Hello", TargetLang: "!!"},
			wantErr: true,
			want:    KindInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.req)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if KindOf(err) != tt.want {
					t.Errorf("kind = %v, want %v", KindOf(err), tt.want)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
