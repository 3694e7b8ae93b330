/*
Copyright © 2026 The polyglot authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tanveersultan53/polyglot/internal"
	"github.com/tanveersultan53/polyglot/internal/detector"
	"github.com/tanveersultan53/polyglot/internal/store"
	"github.com/tanveersultan53/polyglot/internal/translator"
	"github.com/tanveersultan53/polyglot/internal/validator"
)

var (
	inputFile  string
	outputFile string
	sourceLang string
	targetLang string

	providerName string

	dbPath  string
	noCache bool

	useAsync  bool
	useVerify bool
	timeout   time.Duration
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text through a managed translation backend",
	Long: `Translate text through a managed translation backend.

Text is taken from the argument, from --input, or from stdin. Failures are
classified as network, auth, quota, invalid_request, or unknown; the exit
message names the kind so callers can script around it.

Available providers:
  - google      Google Cloud Translation SDK (requires --api-key)
  - googlerest  Translation v2 REST endpoint (requires --api-key)
  - mymemory    MyMemory (free, no key)`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}

		text, err := readSourceText(args)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		// Fill in an explicit source code when the caller asked for
		// auto-detection. Best effort: backends can detect on their own.
		var det *detector.Detector
		detectedLocally := false
		if sourceLang == "" || sourceLang == "auto" {
			det = detector.New()
			if code, ok := det.DetectISO(text); ok {
				sourceLang = code
				detectedLocally = true
				log.Debug().Str("source", code).Msg("detected source language locally")
			} else {
				sourceLang = "auto"
			}
		}

		client, err := buildClient(ctx, providerName)
		if err != nil {
			return err
		}
		if closer, ok := client.(io.Closer); ok {
			defer closer.Close()
		}

		var db *store.Store
		if !noCache && dbPath != "" {
			if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
				return fmt.Errorf("failed to create database directory: %w", err)
			}
			db, err = store.New(dbPath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()
			client = translator.NewCached(client, db, log)
		}

		req := translator.TranslateRequest{
			Text:       text,
			SourceLang: sourceLang,
			TargetLang: targetLang,
		}

		callCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		var result *translator.TranslationResult
		if useAsync {
			result, err = translateAsync(callCtx, client, req, log)
		} else {
			result, err = client.Translate(callCtx, req)
		}

		if db != nil {
			journal(ctx, db, req, result, err, log)
		}

		if err != nil {
			log.Error().
				Str("kind", translator.KindOf(err).String()).
				Str("provider", providerName).
				Err(err).
				Msg("translation failed")
			return fmt.Errorf("translation failed (%s): %w", translator.KindOf(err), err)
		}

		if result.DetectedSourceLang != "" && !detectedLocally {
			fmt.Fprintf(os.Stderr, "Detected source language: %s\n", result.DetectedSourceLang)
		}

		if useVerify {
			var v *validator.Validator
			if det != nil {
				v = validator.NewWithDetector(det)
			} else {
				v = validator.New()
			}
			if err := v.Check(result.TranslatedText, targetLang); err != nil {
				log.Warn().Err(err).Msg("translation may not be in the target language")
			}
		}

		if outputFile != "" {
			if err := os.WriteFile(outputFile, []byte(result.TranslatedText), 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			fmt.Printf("Successfully translated to %s (%s)\n", targetLang, outputFile)
			return nil
		}

		fmt.Println(result.TranslatedText)
		return nil
	},
}

// translateAsync dispatches through a Future instead of blocking the caller
// directly, so cancellation and completion stay observable.
func translateAsync(ctx context.Context, client translator.Client, req translator.TranslateRequest, log zerolog.Logger) (*translator.TranslationResult, error) {
	fut := translator.Go(ctx, client, req)
	log.Debug().Str("provider", client.Name()).Msg("translation dispatched")
	select {
	case <-fut.Done():
	case <-ctx.Done():
		fut.Cancel()
		<-fut.Done()
	}
	return fut.Result()
}

// journal records the request and its outcome in the history tables. Failures
// here are logged, not surfaced: history is bookkeeping, not the result.
func journal(ctx context.Context, db *store.Store, req translator.TranslateRequest, result *translator.TranslationResult, callErr error, log zerolog.Logger) {
	reqID := uuid.New().String()
	rec := internal.RequestRecord{
		ID:         reqID,
		SourceText: req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		Timestamp:  time.Now(),
	}
	if err := db.SaveRequest(ctx, rec); err != nil {
		log.Warn().Err(err).Msg("failed to journal request")
		return
	}

	if callErr != nil {
		if err := db.SaveResult(ctx, reqID, providerName, "", "", 0, callErr.Error()); err != nil {
			log.Warn().Err(err).Msg("failed to journal result")
		}
		return
	}

	if err := db.SaveResult(ctx, reqID, result.Provider, result.TranslatedText, result.DetectedSourceLang, result.Latency.Milliseconds(), ""); err != nil {
		log.Warn().Err(err).Msg("failed to journal result")
	}
}

func readSourceText(args []string) (string, error) {
	if len(args) == 1 && args[0] != "" {
		return args[0], nil
	}
	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return "", fmt.Errorf("no text to translate: pass an argument, --input, or stdin")
	}
	return text, nil
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate (default: argument or stdin)")
	translateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	translateCmd.Flags().StringVarP(&sourceLang, "source", "s", "auto", "Source language code")
	translateCmd.Flags().StringVarP(&targetLang, "target", "t", "", "Target language code (required)")

	translateCmd.Flags().StringVar(&providerName, "provider", "google", "Translation provider")

	translateCmd.Flags().StringVar(&dbPath, "db", "./data/polyglot.db", "Database path for translation memory")
	translateCmd.Flags().BoolVar(&noCache, "no-cache", false, "Disable translation memory cache")

	translateCmd.Flags().BoolVar(&useAsync, "async", false, "Dispatch through a cancellable future")
	translateCmd.Flags().BoolVar(&useVerify, "verify", false, "Verify the result is in the target language")
	translateCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Per-call timeout")

	translateCmd.MarkFlagRequired("target")
}
