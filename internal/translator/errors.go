package translator

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"

	"google.golang.org/api/googleapi"
)

// Kind classifies a translation failure. Callers branch on the kind to decide
// whether to retry, re-authenticate, or surface the error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNetwork
	KindAuth
	KindQuota
	KindInvalidRequest
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindAuth:
		return "auth"
	case KindQuota:
		return "quota"
	case KindInvalidRequest:
		return "invalid_request"
	default:
		return "unknown"
	}
}

// Error is the typed failure returned by every Client. It wraps the
// underlying cause, so errors.Is and errors.As keep working through it.
type Error struct {
	Kind     Kind
	Provider string
	Message  string
	Err      error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Provider != "" {
		return fmt.Sprintf("%s: %s: %s", e.Provider, e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind from any error returned by a Client.
// Errors that did not originate here report KindUnknown.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindUnknown
}

// classifyTransport maps errors raised before an HTTP status was received:
// DNS failures, refused connections, timeouts, cancelled contexts.
func classifyTransport(provider string, err error) *Error {
	kind := KindUnknown

	var netErr net.Error
	var urlErr *url.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		kind = KindNetwork
	case errors.As(err, &netErr), errors.As(err, &urlErr):
		kind = KindNetwork
	}

	return &Error{Kind: kind, Provider: provider, Err: err}
}

// classifyStatus maps an HTTP response status to a failure kind. 403 is
// ambiguous at Google: it carries both key problems and exhausted quota, so
// the response body is consulted for a quota reason.
func classifyStatus(status int, body string) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindAuth
	case status == http.StatusForbidden:
		if quotaReason(body) {
			return KindQuota
		}
		if strings.Contains(strings.ToLower(body), "invalid") && !keyReason(body) {
			return KindInvalidRequest
		}
		return KindAuth
	case status == http.StatusTooManyRequests:
		return KindQuota
	case status == http.StatusBadRequest:
		if keyReason(body) {
			return KindAuth
		}
		return KindInvalidRequest
	case status >= 400 && status < 500:
		return KindInvalidRequest
	default:
		return KindUnknown
	}
}

// classifyGoogleAPI maps a googleapi.Error from the Cloud Translation SDK.
func classifyGoogleAPI(provider string, gerr *googleapi.Error) *Error {
	reasons := make([]string, 0, len(gerr.Errors))
	for _, item := range gerr.Errors {
		reasons = append(reasons, item.Reason)
	}
	body := strings.Join(append(reasons, gerr.Message), " ")

	return &Error{
		Kind:     classifyStatus(gerr.Code, body),
		Provider: provider,
		Message:  gerr.Message,
		Err:      gerr,
	}
}

func quotaReason(body string) bool {
	lower := strings.ToLower(body)
	return strings.Contains(lower, "quota") ||
		strings.Contains(lower, "ratelimit") ||
		strings.Contains(lower, "rate limit") ||
		strings.Contains(lower, "usage limit") ||
		strings.Contains(lower, "dailylimit") ||
		strings.Contains(lower, "free translations")
}

func keyReason(body string) bool {
	lower := strings.ToLower(body)
	return strings.Contains(lower, "api key not valid") ||
		strings.Contains(lower, "keyinvalid") ||
		strings.Contains(lower, "keyexpired")
}
