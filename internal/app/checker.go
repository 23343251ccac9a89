package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/quantmind-br/mcpcheck-go/internal/domain"
	"github.com/quantmind-br/mcpcheck-go/internal/fetcher"
	"github.com/quantmind-br/mcpcheck-go/internal/manifest"
	"github.com/quantmind-br/mcpcheck-go/internal/utils"
)

// toolNameSeparator joins tool names in a CheckOutcome
const toolNameSeparator = "; "

// Checker runs the single-origin pipeline: normalize the input, fetch
// the well-known manifest, validate it against the schema
type Checker struct {
	fetcher   *fetcher.Client
	validator *manifest.Validator
	log       *utils.Logger
}

// CheckerOptions contains options for creating a Checker
type CheckerOptions struct {
	Timeout   time.Duration
	UserAgent string
	ProxyURL  string
	Logger    *utils.Logger
}

// NewChecker creates a new single-origin checker
func NewChecker(opts CheckerOptions) (*Checker, error) {
	if opts.Logger == nil {
		opts.Logger = utils.NewDefaultLogger()
	}

	client, err := fetcher.NewClient(fetcher.ClientOptions{
		Timeout:   opts.Timeout,
		UserAgent: opts.UserAgent,
		ProxyURL:  opts.ProxyURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fetcher: %w", err)
	}

	validator, err := manifest.NewValidator()
	if err != nil {
		return nil, err
	}

	return &Checker{
		fetcher:   client,
		validator: validator,
		log:       opts.Logger.WithComponent("checker"),
	}, nil
}

// Check runs the pipeline for one raw origin string. It never returns
// an error: every failure mode terminates in a fully populated
// CheckOutcome.
func (c *Checker) Check(ctx context.Context, raw string) domain.CheckOutcome {
	origin, err := utils.NormalizeOrigin(raw)
	if err != nil {
		c.log.Debug().Str("input", raw).Err(err).Msg("origin normalization failed")
		return domain.CheckOutcome{URL: raw, Error: "Invalid URL"}
	}

	log := c.log.WithOrigin(origin)

	resp, err := c.fetcher.Fetch(ctx, origin)
	if err != nil {
		msg := fetchErrorMessage(err)
		log.Debug().Str("reason", msg).Msg("manifest not detected")
		return domain.CheckOutcome{URL: origin, Error: msg}
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Str("content_type", resp.ContentType).
		Msg("manifest document retrieved")

	result := c.validator.Validate(resp.Body)
	if !result.Valid {
		log.Debug().Int("violations", len(result.Violations)).Msg("manifest rejected")
		return domain.CheckOutcome{
			URL:      origin,
			Detected: true,
			Error:    "Invalid manifest: " + result.Diagnostic(),
		}
	}

	m := result.Manifest

	// Body is known-valid JSON here, so canonicalization cannot fail;
	// a miss only costs the informational field
	fingerprint, _ := manifest.Fingerprint(resp.Body)

	log.Debug().
		Str("version", m.ManifestVersion).
		Int("tools", len(m.Tools)).
		Str("fingerprint", fingerprint).
		Msg("manifest valid")

	return domain.CheckOutcome{
		URL:         origin,
		Detected:    true,
		Valid:       true,
		Version:     m.ManifestVersion,
		ToolCount:   len(m.Tools),
		ToolNames:   strings.Join(m.ToolNames(), toolNameSeparator),
		Fingerprint: fingerprint,
	}
}

// Close releases checker resources
func (c *Checker) Close() error {
	return c.fetcher.Close()
}

// fetchErrorMessage maps a fetch failure to the outcome's diagnostic
// string: "Invalid JSON" for parse failures, "HTTP <status>" for non-2xx
// responses, and the transport message verbatim otherwise
func fetchErrorMessage(err error) string {
	if errors.Is(err, domain.ErrInvalidJSON) {
		return "Invalid JSON"
	}
	if fe := domain.AsFetchError(err); fe != nil {
		if fe.StatusCode > 0 {
			return fmt.Sprintf("HTTP %d", fe.StatusCode)
		}
		return fe.Err.Error()
	}
	return err.Error()
}
