package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"
)

const defaultGoogleRESTBaseURL = "https://translation.googleapis.com/language/translate/v2"

// GoogleRESTClient calls the Translation v2 REST endpoint directly with an
// API key, without going through the Cloud SDK. The base URL is configurable
// so tests can point it at a local server.
type GoogleRESTClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGoogleRESTClient(apiKey, baseURL string) *GoogleRESTClient {
	if baseURL == "" {
		baseURL = defaultGoogleRESTBaseURL
	}
	return &GoogleRESTClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *GoogleRESTClient) Name() string {
	return "googlerest"
}

type googleRESTRequest struct {
	Q      []string `json:"q"`
	Source string   `json:"source,omitempty"`
	Target string   `json:"target"`
	Format string   `json:"format"`
}

type googleRESTResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText         string `json:"translatedText"`
			DetectedSourceLanguage string `json:"detectedSourceLanguage"`
		} `json:"translations"`
	} `json:"data"`
}

func (c *GoogleRESTClient) Translate(ctx context.Context, req TranslateRequest) (*TranslationResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	if c.apiKey == "" {
		return nil, &Error{Kind: KindAuth, Provider: c.Name(), Message: "API key is required"}
	}

	body := googleRESTRequest{
		Q:      []string{req.Text},
		Target: req.TargetLang,
		Format: "text",
	}
	if !autoSource(req) {
		body.Source = req.SourceLang
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Kind: KindInvalidRequest, Provider: c.Name(), Message: "failed to marshal request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"?key="+c.apiKey, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Kind: KindInvalidRequest, Provider: c.Name(), Message: "failed to build request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(c.Name(), err)
	}
	defer resp.Body.Close()
	latency := time.Since(start)

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))
		return nil, &Error{
			Kind:     classifyStatus(resp.StatusCode, string(raw)),
			Provider: c.Name(),
			Message:  fmt.Sprintf("backend returned status %d: %s", resp.StatusCode, string(raw)),
		}
	}

	var restResp googleRESTResponse
	if err := json.NewDecoder(resp.Body).Decode(&restResp); err != nil {
		return nil, &Error{Kind: KindUnknown, Provider: c.Name(), Message: "failed to decode response", Err: err}
	}

	if len(restResp.Data.Translations) == 0 {
		return nil, &Error{Kind: KindUnknown, Provider: c.Name(), Message: "backend returned no translation"}
	}

	t := restResp.Data.Translations[0]
	return &TranslationResult{
		Provider:           c.Name(),
		TranslatedText:     html.UnescapeString(t.TranslatedText),
		DetectedSourceLang: t.DetectedSourceLanguage,
		Latency:            latency,
	}, nil
}

func (c *GoogleRESTClient) SupportedLanguages(ctx context.Context) ([]string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/languages?key="+c.apiKey, nil)
	if err != nil {
		return nil, &Error{Kind: KindInvalidRequest, Provider: c.Name(), Message: "failed to build request", Err: err}
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(c.Name(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))
		return nil, &Error{
			Kind:     classifyStatus(resp.StatusCode, string(raw)),
			Provider: c.Name(),
			Message:  fmt.Sprintf("backend returned status %d", resp.StatusCode),
		}
	}

	var langResp struct {
		Data struct {
			Languages []struct {
				Language string `json:"language"`
			} `json:"languages"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&langResp); err != nil {
		return nil, &Error{Kind: KindUnknown, Provider: c.Name(), Message: "failed to decode response", Err: err}
	}

	codes := make([]string, 0, len(langResp.Data.Languages))
	for _, l := range langResp.Data.Languages {
		codes = append(codes, l.Language)
	}
	return codes, nil
}
