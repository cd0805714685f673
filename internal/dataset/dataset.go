// Package dataset reads card documents of the form {"data": [ ... ]}.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/cardquery/cardquery/internal/card"
)

// ErrTrailingData is returned when a card document is followed by more JSON.
var ErrTrailingData = errors.New("unexpected data after card document")

// document is the top-level shape of a card dump.
type document struct {
	Data []*card.Card `json:"data"`
}

// Decode reads a card document from r. Cards come back in document order.
// Keys missing from a card object leave the matching field absent.
func Decode(r io.Reader) ([]*card.Card, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("error decoding card document: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("error decoding card document: %w", ErrTrailingData)
	}

	cards := make([]*card.Card, 0, len(doc.Data))
	for _, c := range doc.Data {
		// "data": [null] decodes to a nil card
		if c == nil {
			continue
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// LoadFile decodes the card document at path.
func LoadFile(path string, logger *zap.Logger) ([]*card.Card, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening card document: %w", err)
	}
	defer file.Close()

	cards, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("loaded card document",
		zap.String("path", path),
		zap.Int("cards", len(cards)),
	)
	return cards, nil
}
