package store

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/FluidXR/lockboxctl/internal/trade"
)

// Export is the YAML document accepted by Import.
type Export struct {
	Trades        []trade.Trade        `yaml:"trades"`
	Subscriptions []trade.Subscription `yaml:"subscriptions"`
}

// ImportResult counts what was written.
type ImportResult struct {
	Trades        int
	Subscriptions int
}

// Import reads an Export document and upserts every record in one transaction.
func (s *DB) Import(r io.Reader) (ImportResult, error) {
	var res ImportResult
	var doc Export
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return res, nil
		}
		return res, fmt.Errorf("parse export: %w", err)
	}
	for i, t := range doc.Trades {
		if t.ID == 0 {
			return res, fmt.Errorf("trade #%d: missing id", i+1)
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return res, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	for _, sub := range doc.Subscriptions {
		if err := upsertSubscription(tx, sub); err != nil {
			return ImportResult{}, err
		}
		res.Subscriptions++
	}
	for _, t := range doc.Trades {
		if err := upsertTrade(tx, t); err != nil {
			return ImportResult{}, err
		}
		res.Trades++
	}
	if err := tx.Commit(); err != nil {
		return ImportResult{}, fmt.Errorf("commit import: %w", err)
	}
	return res, nil
}
