package translator

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

// fakeMemory is an in-process Memory for tests.
type fakeMemory struct {
	entries    map[string]string
	lookupErr  error
	saveErr    error
	saveCalled int
}

func newFakeMemory() *fakeMemory {
	return &fakeMemory{entries: make(map[string]string)}
}

func memKey(text, source, target string) string {
	return text + "|" + source + "|" + target
}

func (m *fakeMemory) Lookup(ctx context.Context, sourceText, sourceLang, targetLang string) (string, bool, error) {
	if m.lookupErr != nil {
		return "", false, m.lookupErr
	}
	v, ok := m.entries[memKey(sourceText, sourceLang, targetLang)]
	return v, ok, nil
}

func (m *fakeMemory) Save(ctx context.Context, sourceText, sourceLang, targetLang, translatedText, provider string) error {
	m.saveCalled++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries[memKey(sourceText, sourceLang, targetLang)] = translatedText
	return nil
}

func TestCached_MissThenHit(t *testing.T) {
	svc := &stubClient{result: &TranslationResult{Provider: "stub", TranslatedText: "Hola"}}
	mem := newFakeMemory()
	cached := NewCached(svc, mem, zerolog.Nop())

	req := TranslateRequest{Text: "Hello", SourceLang: "en", TargetLang: "es"}

	first, err := cached.Translate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := cached.Translate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.TranslatedText != "Hola" || second.TranslatedText != "Hola" {
		t.Errorf("expected 'Hola' both times, got %q then %q", first.TranslatedText, second.TranslatedText)
	}
	if svc.calls.Load() != 1 {
		t.Errorf("expected 1 backend call, got %d", svc.calls.Load())
	}
}

func TestCached_EmptyTextNeverReachesBackend(t *testing.T) {
	svc := &stubClient{result: &TranslationResult{TranslatedText: "Hola"}}
	cached := NewCached(svc, newFakeMemory(), zerolog.Nop())

	_, err := cached.Translate(context.Background(), TranslateRequest{Text: "", TargetLang: "es"})
	if err == nil {
		t.Fatal("expected error for empty text")
	}
	if KindOf(err) != KindInvalidRequest {
		t.Errorf("expected invalid_request, got %v", KindOf(err))
	}
	if svc.calls.Load() != 0 {
		t.Error("empty text must not reach the backend")
	}
}

func TestCached_LookupFailureFallsThrough(t *testing.T) {
	svc := &stubClient{result: &TranslationResult{Provider: "stub", TranslatedText: "Hola"}}
	mem := newFakeMemory()
	mem.lookupErr = errors.New("disk on fire")
	cached := NewCached(svc, mem, zerolog.Nop())

	result, err := cached.Translate(context.Background(), TranslateRequest{Text: "Hello", TargetLang: "es"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "Hola" {
		t.Errorf("expected backend result despite broken cache, got %q", result.TranslatedText)
	}
}

func TestCached_SaveFailureIsNotFatal(t *testing.T) {
	svc := &stubClient{result: &TranslationResult{Provider: "stub", TranslatedText: "Hola"}}
	mem := newFakeMemory()
	mem.saveErr = errors.New("disk full")
	cached := NewCached(svc, mem, zerolog.Nop())

	result, err := cached.Translate(context.Background(), TranslateRequest{Text: "Hello", TargetLang: "es"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "Hola" {
		t.Errorf("expected 'Hola', got %q", result.TranslatedText)
	}
	if mem.saveCalled != 1 {
		t.Errorf("expected save attempt, got %d", mem.saveCalled)
	}
}

func TestCached_BackendErrorNotCached(t *testing.T) {
	svc := &stubClient{err: &Error{Kind: KindQuota, Provider: "stub", Message: "quota exceeded"}}
	mem := newFakeMemory()
	cached := NewCached(svc, mem, zerolog.Nop())

	_, err := cached.Translate(context.Background(), TranslateRequest{Text: "Hello", TargetLang: "es"})
	if err == nil {
		t.Fatal("expected error")
	}
	if KindOf(err) != KindQuota {
		t.Errorf("expected quota, got %v", KindOf(err))
	}
	if mem.saveCalled != 0 {
		t.Error("failed translations must not enter the memory")
	}
	if len(mem.entries) != 0 {
		t.Error("expected empty memory")
	}
}

func TestCached_Name(t *testing.T) {
	svc := &stubClient{name: "google"}
	cached := NewCached(svc, newFakeMemory(), zerolog.Nop())

	if cached.Name() != "google" {
		t.Errorf("expected wrapped client name, got %q", cached.Name())
	}
}
