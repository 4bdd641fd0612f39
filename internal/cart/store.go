package cart

import "context"

// Persister is the durable backing for cart state, keyed by cart id. A missing
// cart loads as the empty State, not an error.
type Persister interface {
	Load(ctx context.Context, cartID string) (State, error)
	Save(ctx context.Context, cartID string, state State) error
	Delete(ctx context.Context, cartID string) error
}

// Store couples the pure reducer to a Persister: every mutation loads the
// current state, applies the reducer, and writes the result back.
type Store struct {
	persister Persister
}

func NewStore(persister Persister) *Store {
	return &Store{persister: persister}
}

func (s *Store) Get(ctx context.Context, cartID string) (State, error) {
	return s.persister.Load(ctx, cartID)
}

func (s *Store) AddItem(ctx context.Context, cartID string, artwork Snapshot) (State, error) {
	return s.apply(ctx, cartID, func(state State) State {
		return Add(state, artwork)
	})
}

func (s *Store) RemoveItem(ctx context.Context, cartID, artworkID string) (State, error) {
	return s.apply(ctx, cartID, func(state State) State {
		return Remove(state, artworkID)
	})
}

func (s *Store) SetItemQuantity(ctx context.Context, cartID, artworkID string, quantity int) (State, error) {
	return s.apply(ctx, cartID, func(state State) State {
		return SetQuantity(state, artworkID, quantity)
	})
}

func (s *Store) Clear(ctx context.Context, cartID string) error {
	return s.persister.Delete(ctx, cartID)
}

func (s *Store) apply(ctx context.Context, cartID string, reduce func(State) State) (State, error) {
	state, err := s.persister.Load(ctx, cartID)
	if err != nil {
		return State{}, err
	}
	next := reduce(state)
	if err := s.persister.Save(ctx, cartID, next); err != nil {
		return State{}, err
	}
	return next, nil
}
