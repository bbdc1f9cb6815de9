package schnorrbatch

import (
	"context"
	"fmt"
	"strings"
)

// Mode selects how a batch file is verified.
type Mode int

const (
	// ModeJoint verifies every item against the hash of all payloads.
	ModeJoint Mode = iota
	// ModeIndependent verifies each item against the hash of its own payload.
	ModeIndependent
	// ModeDeposit verifies every item against one shared deposit payload.
	ModeDeposit
)

func (m Mode) String() string {
	switch m {
	case ModeJoint:
		return "joint"
	case ModeIndependent:
		return "independent"
	case ModeDeposit:
		return "deposit"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "joint", "":
		return ModeJoint, nil
	case "independent":
		return ModeIndependent, nil
	case "deposit":
		return ModeDeposit, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Client provides a high-level API for verifying batch files.
type Client struct {
	verifier *Verifier
	parser   BatchParser
}

// NewClient creates a new client with default settings.
func NewClient() *Client {
	return &Client{
		verifier: NewVerifier(),
		parser:   &JSONParser{},
	}
}

// WithVerifier sets a custom verifier.
func (c *Client) WithVerifier(verifier *Verifier) *Client {
	c.verifier = verifier
	return c
}

// WithParser sets a custom batch parser.
func (c *Client) WithParser(parser BatchParser) *Client {
	c.parser = parser
	return c
}

// VerifyFile parses source and verifies it in the given mode, returning a
// full per-item report.
func (c *Client) VerifyFile(ctx context.Context, source string, mode Mode) (*Report, error) {
	batch, err := c.parser.ParseBatch(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse batch: %w", err)
	}
	return c.VerifyParsed(ctx, batch, mode)
}

// VerifyParsed verifies an already parsed batch in the given mode.
func (c *Client) VerifyParsed(ctx context.Context, batch *Batch, mode Mode) (*Report, error) {
	switch mode {
	case ModeJoint:
		return c.verifier.VerifyBatchReport(ctx, batch.Items, batch.Payloads)
	case ModeIndependent:
		return c.verifier.VerifyIndependentReport(ctx, batch.Items, batch.Payloads)
	case ModeDeposit:
		return c.verifier.VerifyMultisigReport(ctx, batch.Items, batch.Payload)
	}
	return nil, fmt.Errorf("unknown mode %v", mode)
}
