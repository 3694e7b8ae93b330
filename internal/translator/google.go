package translator

import (
	"context"
	"errors"
	"fmt"
	"html"
	"time"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GoogleClient calls the Google Cloud Translation API through the official
// SDK, authenticated with an API key supplied at construction. The underlying
// SDK client is built once and reused for the lifetime of this client.
type GoogleClient struct {
	client *translate.Client
}

func NewGoogleClient(ctx context.Context, apiKey string) (*GoogleClient, error) {
	if apiKey == "" {
		return nil, &Error{Kind: KindAuth, Provider: "google", Message: "API key is required"}
	}

	client, err := translate.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Provider: "google", Message: "failed to create client", Err: err}
	}

	return &GoogleClient{client: client}, nil
}

func (c *GoogleClient) Name() string {
	return "google"
}

func (c *GoogleClient) Close() error {
	return c.client.Close()
}

func (c *GoogleClient) Translate(ctx context.Context, req TranslateRequest) (*TranslationResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	targetTag, err := language.Parse(req.TargetLang)
	if err != nil {
		return nil, &Error{Kind: KindInvalidRequest, Provider: c.Name(), Message: "invalid target language", Err: err}
	}

	var opts *translate.Options
	if !autoSource(req) {
		sourceTag, err := language.Parse(req.SourceLang)
		if err != nil {
			return nil, &Error{Kind: KindInvalidRequest, Provider: c.Name(), Message: "invalid source language", Err: err}
		}
		opts = &translate.Options{Source: sourceTag, Format: translate.Text}
	} else {
		opts = &translate.Options{Format: translate.Text}
	}

	start := time.Now()
	translations, err := c.client.Translate(ctx, []string{req.Text}, targetTag, opts)
	latency := time.Since(start)

	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return nil, classifyGoogleAPI(c.Name(), gerr)
		}
		return nil, classifyTransport(c.Name(), err)
	}

	if len(translations) == 0 {
		return nil, &Error{Kind: KindUnknown, Provider: c.Name(), Message: "backend returned no translation"}
	}

	result := &TranslationResult{
		Provider:       c.Name(),
		TranslatedText: html.UnescapeString(translations[0].Text),
		Latency:        latency,
	}
	if autoSource(req) && translations[0].Source != language.Und {
		result.DetectedSourceLang = translations[0].Source.String()
	}

	return result, nil
}

func (c *GoogleClient) SupportedLanguages(ctx context.Context) ([]string, error) {
	langs, err := c.client.SupportedLanguages(ctx, language.English)
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return nil, classifyGoogleAPI(c.Name(), gerr)
		}
		return nil, classifyTransport(c.Name(), fmt.Errorf("list languages: %w", err))
	}

	codes := make([]string, 0, len(langs))
	for _, l := range langs {
		codes = append(codes, l.Tag.String())
	}
	return codes, nil
}
