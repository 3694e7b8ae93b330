package translator

import (
	"context"
	"testing"
)

func TestNewGoogleClient_NoAPIKey(t *testing.T) {
	_, err := NewGoogleClient(context.Background(), "")
	if err == nil {
		t.Fatal("expected error when no API key")
	}
	if KindOf(err) != KindAuth {
		t.Errorf("expected auth, got %v", KindOf(err))
	}
}
