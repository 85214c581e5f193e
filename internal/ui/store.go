package ui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"estoque/internal/model"

	"github.com/rs/zerolog"
)

// ErrNoForm is returned by Submit when no form is open.
var ErrNoForm = errors.New("no form is open")

// API is the subset of the products API the store needs.
type API interface {
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, input model.ProductInput) (*model.Product, error)
	Update(ctx context.Context, id int64, input model.ProductInput) (*model.Product, error)
	Delete(ctx context.Context, id int64) (*model.Product, error)
}

// Store owns the current State and performs API calls on its behalf.
// After every successful mutation the full list is fetched again.
type Store struct {
	api    API
	logger zerolog.Logger

	mu    sync.Mutex
	state State
}

// NewStore creates a store with an empty, idle state.
func NewStore(api API, logger zerolog.Logger) *Store {
	return &Store{
		api:    api,
		logger: logger.With().Str("component", "ui_store").Logger(),
		state:  State{Products: []model.Product{}},
	}
}

// State returns the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies a to the current state.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state
}

// Load fetches the full product list.
func (s *Store) Load(ctx context.Context) error {
	s.Dispatch(LoadStarted{})

	products, err := s.api.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to load products")
		s.Dispatch(RequestFailed{Err: err})
		return fmt.Errorf("failed to load products: %w", err)
	}

	s.Dispatch(LoadSucceeded{Products: products})
	return nil
}

// OpenCreate opens an empty form.
func (s *Store) OpenCreate() {
	s.Dispatch(FormOpenedCreate{})
}

// OpenEdit opens the form seeded from the loaded product with the given id.
func (s *Store) OpenEdit(id int64) error {
	for _, p := range s.State().Products {
		if p.ID == id {
			s.Dispatch(FormOpenedEdit{Product: p})
			return nil
		}
	}
	return fmt.Errorf("product %d is not loaded", id)
}

// SetDraft replaces the draft of the open form.
func (s *Store) SetDraft(d Draft) {
	s.Dispatch(DraftChanged{Draft: d})
}

// Cancel closes the form without saving.
func (s *Store) Cancel() {
	s.Dispatch(FormClosed{})
}

// Submit creates or updates the product in the open form and returns the
// saved row. On failure the form stays open and the error is recorded in the
// state.
func (s *Store) Submit(ctx context.Context) (*model.Product, error) {
	form := s.State().Form
	if form == nil {
		return nil, ErrNoForm
	}

	var (
		saved *model.Product
		err   error
	)
	if form.EditingID == nil {
		saved, err = s.api.Create(ctx, form.Draft.Input())
	} else {
		saved, err = s.api.Update(ctx, *form.EditingID, form.Draft.Input())
	}
	if err != nil {
		s.logger.Error().Err(err).Bool("editing", form.Editing()).Msg("Failed to save product")
		s.Dispatch(RequestFailed{Err: err})
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	s.Dispatch(SubmitSucceeded{})
	return saved, s.Load(ctx)
}

// Delete removes the product with the given id, reloads the list and returns
// the deleted row.
func (s *Store) Delete(ctx context.Context, id int64) (*model.Product, error) {
	deleted, err := s.api.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("Failed to delete product")
		s.Dispatch(RequestFailed{Err: err})
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}
	return deleted, s.Load(ctx)
}
