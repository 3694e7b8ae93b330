package internal

import "time"

// RequestRecord journals one translation request for auditing. It mirrors
// the request the caller made, not the provider's internal representation.
type RequestRecord struct {
	ID         string    `json:"id"`
	SourceText string    `json:"source_text"`
	SourceLang string    `json:"source_lang"`
	TargetLang string    `json:"target_lang"`
	Timestamp  time.Time `json:"timestamp"`
}
