package translator

import (
	"context"
	"strings"
	"time"

	"golang.org/x/text/language"
)

type ClientConfig struct {
	APIKey  string        `mapstructure:"api_key" json:"api_key"`
	BaseURL string        `mapstructure:"base_url" json:"base_url"`
	Email   string        `mapstructure:"email" json:"email"`
	Timeout time.Duration `mapstructure:"timeout" json:"timeout"`
}

// TranslateRequest describes one translation request. Construct it once and
// treat it as immutable; clients never modify it.
type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// TranslationResult is produced once per successful request.
type TranslationResult struct {
	Provider           string        `json:"provider"`
	TranslatedText     string        `json:"translated_text"`
	DetectedSourceLang string        `json:"detected_source_lang,omitempty"`
	Latency            time.Duration `json:"latency"`
}

// Client translates free-form text between languages. Each Translate call is
// stateless and issues one outbound request to the backend; implementations
// hold no mutable state between calls, so a Client is safe for concurrent use.
type Client interface {
	Name() string
	Translate(ctx context.Context, req TranslateRequest) (*TranslationResult, error)
	SupportedLanguages(ctx context.Context) ([]string, error)
}

// validate rejects requests the backend would never accept, before any
// network I/O happens.
func validate(req TranslateRequest) error {
	if strings.TrimSpace(req.Text) == "" {
		return &Error{Kind: KindInvalidRequest, Message: "source text is empty"}
	}
	if req.TargetLang == "" {
		return &Error{Kind: KindInvalidRequest, Message: "target language is required"}
	}
	if _, err := language.Parse(req.TargetLang); err != nil {
		return &Error{Kind: KindInvalidRequest, Message: "invalid target language: " + req.TargetLang, Err: err}
	}
	return nil
}

// autoSource reports whether the request asks the backend to detect the
// source language.
func autoSource(req TranslateRequest) bool {
	return req.SourceLang == "" || req.SourceLang == "auto"
}
