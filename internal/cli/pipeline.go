package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"quizren/internal/config"
	"quizren/internal/fetch"
	"quizren/internal/quiz"
)

// resolveConfig merges the config file with flag overrides. A missing default
// config file is fine; an explicitly named one must exist.
func resolveConfig(path, endpoint, itemID, uiMode string, noColor bool) (config.Config, error) {
	cfg := config.Default()
	switch {
	case path != "":
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	default:
		if _, err := os.Stat(config.DefaultPath); err == nil {
			loaded, err := config.Load(config.DefaultPath)
			if err != nil {
				return config.Config{}, err
			}
			cfg = loaded
		}
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if itemID != "" {
		cfg.ItemID = itemID
	}
	if uiMode != "" {
		cfg.UI.Mode = uiMode
	}
	if noColor {
		cfg.UI.NoColor = true
	}
	config.Normalize(&cfg)
	if err := config.Validate(&cfg); err != nil {
		return config.Config{}, err
	}
	if cfg.Endpoint == "" {
		return config.Config{}, fmt.Errorf("endpoint is required (--endpoint flag or config file)")
	}
	if cfg.ItemID == "" {
		return config.Config{}, fmt.Errorf("item id is required (--item flag or config file)")
	}
	return cfg, nil
}

// loadQuiz runs the pipeline stages that can fail terminally: fetch, blob
// extraction, decode, normalize. Record-level rejections never abort; they
// come back alongside the document for logging.
func loadQuiz(ctx context.Context, cfg config.Config) (quiz.Document, []quiz.Rejection, error) {
	client, err := fetch.NewClient(cfg.Endpoint, &http.Client{
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, nil, err
	}
	envelope, err := client.Fetch(ctx, cfg.ItemID)
	if err != nil {
		return nil, nil, err
	}
	blob, err := quiz.ExtractBlob(envelope)
	if err != nil {
		return nil, nil, err
	}
	document, rejections := quiz.Normalize(quiz.DecodeBlob(blob))
	return document, rejections, nil
}

// pipelineFailureMessage maps a pipeline error to the single terminal message
// shown for this view.
func pipelineFailureMessage(err error) string {
	var transportErr *fetch.TransportError
	switch {
	case errors.As(err, &transportErr):
		return fmt.Sprintf("Failed to load quiz data (status %d). Please try again later.", transportErr.StatusCode)
	case errors.Is(err, quiz.ErrMissingField):
		return "No quiz data returned from API."
	default:
		return fmt.Sprintf("Failed to load quiz data: %v", err)
	}
}

// logRejections writes the skip log, one line per dropped record or choice.
func logRejections(w io.Writer, rejections []quiz.Rejection) {
	for _, rejection := range rejections {
		fmt.Fprintf(w, "skipped: %s\n", rejection)
	}
}
