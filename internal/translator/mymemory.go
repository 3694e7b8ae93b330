package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultMyMemoryBaseURL = "https://api.mymemory.translated.net"

// MyMemoryClient calls the free MyMemory endpoint. No API key is needed;
// supplying a contact email raises the daily character quota.
type MyMemoryClient struct {
	email   string
	baseURL string
	client  *http.Client
}

func NewMyMemoryClient(email, baseURL string) *MyMemoryClient {
	if baseURL == "" {
		baseURL = defaultMyMemoryBaseURL
	}
	return &MyMemoryClient{
		email:   email,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *MyMemoryClient) Name() string {
	return "mymemory"
}

func (c *MyMemoryClient) Translate(ctx context.Context, req TranslateRequest) (*TranslationResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	// MyMemory has no auto-detect; it needs an explicit language pair.
	sourceLang := req.SourceLang
	if autoSource(req) {
		sourceLang = "en"
	}

	query := url.Values{}
	query.Set("q", req.Text)
	query.Set("langpair", fmt.Sprintf("%s|%s", sourceLang, req.TargetLang))
	if c.email != "" {
		query.Set("de", c.email)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/get?"+query.Encode(), nil)
	if err != nil {
		return nil, &Error{Kind: KindInvalidRequest, Provider: c.Name(), Message: "failed to build request", Err: err}
	}

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(c.Name(), err)
	}
	defer resp.Body.Close()
	latency := time.Since(start)

	var mymemResp struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
		ResponseStatus  json.Number `json:"responseStatus"`
		ResponseDetails string      `json:"responseDetails"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&mymemResp); err != nil {
		return nil, &Error{Kind: KindUnknown, Provider: c.Name(), Message: "failed to decode response", Err: err}
	}

	// The endpoint reports errors in-band: HTTP 200 with a non-200 status
	// field and the cause in responseDetails.
	status, _ := mymemResp.ResponseStatus.Int64()
	if status != http.StatusOK {
		return nil, &Error{
			Kind:     classifyStatus(int(status), mymemResp.ResponseDetails),
			Provider: c.Name(),
			Message:  fmt.Sprintf("backend error %d: %s", status, mymemResp.ResponseDetails),
		}
	}

	if mymemResp.ResponseData.TranslatedText == "" {
		return nil, &Error{Kind: KindUnknown, Provider: c.Name(), Message: "backend returned no translation"}
	}

	return &TranslationResult{
		Provider:       c.Name(),
		TranslatedText: mymemResp.ResponseData.TranslatedText,
		Latency:        latency,
	}, nil
}

func (c *MyMemoryClient) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{
		"en", "es", "fr", "de", "it", "pt", "ru", "ja", "ko", "zh",
		"ar", "nl", "pl", "tr", "sv", "da", "no", "fi", "el", "he",
		"th", "vi", "id", "ms", "cs", "hu", "ro", "uk", "bg", "ca",
	}, nil
}
