// Package repository holds a loaded card collection and filters it by
// field name.
//
// A Repository is read-only once built, so it is safe for concurrent use.
package repository

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cardquery/cardquery/internal/card"
	"github.com/cardquery/cardquery/internal/dataset"
	"github.com/cardquery/cardquery/internal/filter"
)

// ErrEmptyFieldName is returned when a query names no field.
var ErrEmptyFieldName = errors.New("field name cannot be empty")

// Repository owns an ordered, immutable card collection.
type Repository struct {
	cards  []*card.Card
	logger *zap.Logger
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the logger used for query debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New builds a repository over cards. The slice is kept as is and must not
// be modified afterwards.
func New(cards []*card.Card, opts ...Option) *Repository {
	r := &Repository{
		cards:  cards,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open loads the card document at path and builds a repository over it.
func Open(path string, opts ...Option) (*Repository, error) {
	r := New(nil, opts...)
	cards, err := dataset.LoadFile(path, r.logger)
	if err != nil {
		return nil, fmt.Errorf("error loading cards: %w", err)
	}
	r.cards = cards
	return r, nil
}

// All returns every card in load order.
func (r *Repository) All() []*card.Card {
	return r.cards
}

// Len returns the number of loaded cards.
func (r *Repository) Len() int {
	return len(r.cards)
}

// ByTextFilter returns the cards whose text field matches f, in load order.
// Cards without a value for the field never match.
func (r *Repository) ByTextFilter(f filter.Text, field string) ([]*card.Card, error) {
	if err := checkFieldName(field); err != nil {
		return nil, err
	}
	if f.Query() == "" {
		return nil, filter.ErrEmptyQuery
	}
	get, err := card.TextAccessor(field)
	if err != nil {
		return nil, err
	}

	match := containsText
	if f.WholeWord() {
		match = containsWholeWord
	}

	result := make([]*card.Card, 0)
	for _, c := range r.cards {
		v := get(c)
		if v == nil {
			continue
		}
		if match(*v, f.Query(), f.ExactCase()) {
			result = append(result, c)
		}
	}

	r.logger.Debug("text filter",
		zap.String("field", field),
		zap.Stringer("filter", f),
		zap.Int("matches", len(result)),
	)
	return result, nil
}

// ByNumberFilter returns the cards whose integer field satisfies f, in load
// order. Cards without a value for the field are skipped for every operator,
// NotEqual included.
func (r *Repository) ByNumberFilter(f filter.Number, field string) ([]*card.Card, error) {
	if err := checkFieldName(field); err != nil {
		return nil, err
	}
	if !f.Operator().Valid() {
		return nil, fmt.Errorf("%w: %s", filter.ErrInvalidOperator, f.Operator())
	}
	get, err := card.IntAccessor(field)
	if err != nil {
		return nil, err
	}

	result := make([]*card.Card, 0)
	for _, c := range r.cards {
		v := get(c)
		if v == nil {
			continue
		}
		ok, err := f.Compare(*v)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, c)
		}
	}

	r.logger.Debug("number filter",
		zap.String("field", field),
		zap.Stringer("filter", f),
		zap.Int("matches", len(result)),
	)
	return result, nil
}

func checkFieldName(field string) error {
	if strings.TrimSpace(field) == "" {
		return ErrEmptyFieldName
	}
	return nil
}
