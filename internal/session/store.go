// Package session keeps in-memory analysis sessions: one strategy selection
// and one pair of assumption records per session.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"deal-analyzer/internal/deal"
	"deal-analyzer/internal/forms"
	"deal-analyzer/internal/model"
	"deal-analyzer/internal/property"
	"deal-analyzer/internal/strategy"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID        string                `json:"id"`
	Selection strategy.Selection    `json:"selection"`
	Buy       model.BuyAssumptions  `json:"buyAssumptions"`
	Sell      model.SellAssumptions `json:"sellAssumptions"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// Store is safe for concurrent use. Sessions idle longer than the TTL are
// treated as gone; a zero TTL keeps them forever.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	engine   *deal.Engine
	ttl      time.Duration
	now      func() time.Time
}

func NewStore(engine *deal.Engine, ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		engine:   engine,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *Store) Create() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess := &Session{
		ID:        uuid.NewString(),
		Selection: strategy.NewSelection(),
		Buy:       forms.Empty(model.BuyNone),
		Sell:      forms.EmptySell(model.SellNone),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions[sess.ID] = sess
	return *sess
}

func (s *Store) Get(id string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return Session{}, err
	}
	return *sess, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(id); err != nil {
		return err
	}
	delete(s.sessions, id)
	return nil
}

// SelectBuy switches the buy strategy and returns the fresh, empty buy record.
// The sell selection and its record are cleared.
func (s *Store) SelectBuy(id, key string) (model.BuyAssumptions, error) {
	buy, err := model.ParseBuyStrategy(key)
	if err != nil {
		return model.BuyAssumptions{}, err
	}

	var out model.BuyAssumptions
	err = s.update(id, func(sess *Session) error {
		if err := sess.Selection.SelectBuy(buy); err != nil {
			return err
		}
		sess.Buy = forms.Empty(buy)
		sess.Sell = forms.EmptySell(model.SellNone)
		out = sess.Buy
		return nil
	})
	return out, err
}

// SelectSell reports whether the sell strategy was accepted for the current
// buy strategy. A rejected selection leaves the session unchanged.
func (s *Store) SelectSell(id, key string) (bool, error) {
	sell, err := model.ParseSellStrategy(key)
	if err != nil {
		return false, err
	}

	var ok bool
	err = s.update(id, func(sess *Session) error {
		prev := sess.Selection.Sell
		if ok = sess.Selection.SelectSell(sell); ok && prev != sell {
			sess.Sell = forms.EmptySell(sell)
		}
		return nil
	})
	return ok, err
}

func (s *Store) UpdateBuyField(id, name string, value any) error {
	return s.UpdateBuyFields(id, map[string]any{name: value})
}

func (s *Store) UpdateBuyFields(id string, values map[string]any) error {
	return s.update(id, func(sess *Session) error {
		return forms.ApplyFields(&sess.Buy, values)
	})
}

func (s *Store) UpdateSellField(id, name string, value any) error {
	return s.UpdateSellFields(id, map[string]any{name: value})
}

func (s *Store) UpdateSellFields(id string, values map[string]any) error {
	return s.update(id, func(sess *Session) error {
		return forms.ApplySellFields(sess.Selection.Buy, &sess.Sell, values)
	})
}

// SeedFromProperty copies a property's attributes into the session's buy record.
func (s *Store) SeedFromProperty(id string, p property.Property) ([]string, error) {
	var filled []string
	err := s.update(id, func(sess *Session) error {
		filled = forms.SeedFromProperty(&sess.Buy, p)
		return nil
	})
	return filled, err
}

// Compute evaluates the session's current deal. An incomplete selection
// yields the engine's incompatible result rather than an error.
func (s *Store) Compute(id string) (model.DealResult, error) {
	sess, err := s.Get(id)
	if err != nil {
		return model.DealResult{}, err
	}
	return s.engine.Compute(sess.Selection.Buy, sess.Selection.Sell, sess.Buy, sess.Sell), nil
}

// Sweep removes expired sessions and returns how many were dropped.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) update(id string, fn func(*Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.lookup(id)
	if err != nil {
		return err
	}
	next := *sess
	if err := fn(&next); err != nil {
		return err
	}
	next.UpdatedAt = s.now()
	*sess = next
	return nil
}

// lookup must be called with mu held.
func (s *Store) lookup(id string) (*Session, error) {
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return sess, nil
}

func (s *Store) expired(sess *Session) bool {
	return s.ttl > 0 && s.now().Sub(sess.UpdatedAt) > s.ttl
}
