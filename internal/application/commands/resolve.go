package commands

import (
	"context"
	"fmt"

	"reportmap/internal/accounts"
	"reportmap/internal/application"
)

// ResolveResult is the statement line an entered account code posts to
type ResolveResult struct {
	Code    string
	Kind    accounts.Kind
	Mapping accounts.Mapping
}

// ResolveCommand looks up an account code the way voucher entry does
type ResolveCommand struct {
	Code    string
	Side    string
	Funding string
}

// NewResolveCommand creates a new ResolveCommand
func NewResolveCommand(code, side, funding string) *ResolveCommand {
	return &ResolveCommand{Code: code, Side: side, Funding: funding}
}

// Execute runs the resolve command
func (c *ResolveCommand) Execute(ctx context.Context) (*ResolveResult, error) {
	if err := application.ValidateRequired("code", c.Code); err != nil {
		return nil, err
	}

	side, err := accounts.ParseSide(c.Side)
	if err != nil {
		return nil, &application.ValidationError{Field: "side", Message: err.Error()}
	}
	funding, err := accounts.ParseFunding(c.Funding)
	if err != nil {
		return nil, &application.ValidationError{Field: "funding", Message: err.Error()}
	}

	kind, mapping, err := accounts.Resolve(c.Code, accounts.Options{Side: side, Funding: funding})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", c.Code, err)
	}

	return &ResolveResult{Code: c.Code, Kind: kind, Mapping: mapping}, nil
}
