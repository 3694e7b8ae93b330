package translator

import (
	"context"

	"github.com/rs/zerolog"
)

// Memory is the lookup surface of a local translation memory. The SQLite
// store satisfies it.
type Memory interface {
	Lookup(ctx context.Context, sourceText, sourceLang, targetLang string) (string, bool, error)
	Save(ctx context.Context, sourceText, sourceLang, targetLang, translatedText, provider string) error
}

// Cached decorates a Client with a local translation memory. The wrapped
// client stays stateless; all persistence lives behind the Memory.
type Cached struct {
	inner Client
	mem   Memory
	log   zerolog.Logger
}

func NewCached(inner Client, mem Memory, log zerolog.Logger) *Cached {
	return &Cached{inner: inner, mem: mem, log: log}
}

func (c *Cached) Name() string {
	return c.inner.Name()
}

// Translate serves repeated requests from the memory and falls through to
// the wrapped client on a miss. Memory failures are logged and ignored; the
// backend answer always wins over a broken cache.
func (c *Cached) Translate(ctx context.Context, req TranslateRequest) (*TranslationResult, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	cached, found, err := c.mem.Lookup(ctx, req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		c.log.Warn().Err(err).Msg("translation memory lookup failed")
	} else if found {
		c.log.Debug().Str("target", req.TargetLang).Msg("translation memory hit")
		return &TranslationResult{
			Provider:       c.inner.Name(),
			TranslatedText: cached,
		}, nil
	}

	result, err := c.inner.Translate(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := c.mem.Save(ctx, req.Text, req.SourceLang, req.TargetLang, result.TranslatedText, result.Provider); err != nil {
		c.log.Warn().Err(err).Msg("translation memory save failed")
	}

	return result, nil
}

func (c *Cached) SupportedLanguages(ctx context.Context) ([]string, error) {
	return c.inner.SupportedLanguages(ctx)
}
