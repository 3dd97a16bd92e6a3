package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/satellitegroup/printshop/internal/models"
)

// Persister is the client-local durable copy of the cart (the guest
// cart, and the offline cache once signed in).
type Persister interface {
	Load() ([]models.CartItem, error)
	Save([]models.CartItem) error
}

// Syncer is the server-side authoritative copy, available once a
// session exists.
type Syncer interface {
	Get(ctx context.Context, userID uint) ([]models.CartItem, error)
	Replace(ctx context.Context, userID uint, lines []models.CartItem) error
}

// Store owns one session's cart. Reads always come from the in-memory
// copy; the local persister is written on every mutation, and when a
// user is signed in the server copy is updated best-effort. A failed
// sync is logged and swallowed, never surfaced.
type Store struct {
	mu     sync.Mutex
	cart   Cart
	local  Persister
	remote Syncer
	log    *slog.Logger

	userID uint
	merged bool // one-shot guard for the guest-to-account merge

	outbox sync.WaitGroup
}

func NewStore(local Persister, remote Syncer, log *slog.Logger) *Store {
	s := &Store{local: local, remote: remote, log: log}
	if lines, err := local.Load(); err == nil {
		s.cart.Lines = lines
	} else {
		log.Warn("cart: local load failed", "error", err)
	}
	return s
}

func (s *Store) Lines() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.cart.Lines))
	copy(out, s.cart.Lines)
	return out
}

func (s *Store) Subtotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Subtotal()
}

func (s *Store) Add(ctx context.Context, productID string, quantity int, options []models.CartItemOption, unitPrice int64, design *models.DesignFile) models.CartItem {
	s.mu.Lock()
	line := s.cart.Add(productID, quantity, options, unitPrice, design)
	s.persistLocked(ctx)
	s.mu.Unlock()
	return line
}

func (s *Store) UpdateQuantity(ctx context.Context, lineID string, quantity int) {
	s.mu.Lock()
	s.cart.UpdateQuantity(lineID, quantity)
	s.persistLocked(ctx)
	s.mu.Unlock()
}

func (s *Store) Remove(ctx context.Context, lineID string) {
	s.mu.Lock()
	s.cart.Remove(lineID)
	s.persistLocked(ctx)
	s.mu.Unlock()
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.cart.Clear()
	s.persistLocked(ctx)
	s.mu.Unlock()
}

// Login switches the store to server-authoritative mode. The server
// cart is loaded; if it is empty and local lines exist, the local cart
// seeds it, once per session, guarded by the merged flag.
func (s *Store) Login(ctx context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	server, err := s.remote.Get(ctx, userID)
	if err != nil {
		return err
	}

	s.userID = userID
	if len(server) == 0 && len(s.cart.Lines) > 0 && !s.merged {
		s.merged = true
		// local seeds the server copy; persistLocked pushes it up
	} else {
		base := Cart{Lines: server}
		if !s.merged {
			s.merged = true
			base.Merge(s.cart.Lines)
		}
		s.cart = base
	}
	s.persistLocked(ctx)
	return nil
}

// Logout reverts to guest mode. The local cache stays usable.
func (s *Store) Logout() {
	s.mu.Lock()
	s.userID = 0
	s.merged = false
	s.mu.Unlock()
}

func (s *Store) persistLocked(ctx context.Context) {
	lines := make([]models.CartItem, len(s.cart.Lines))
	copy(lines, s.cart.Lines)

	if err := s.local.Save(lines); err != nil {
		s.log.Warn("cart: local save failed", "error", err)
	}
	if s.userID == 0 {
		return
	}
	userID := s.userID
	s.outbox.Add(1)
	go func() {
		defer s.outbox.Done()
		if err := s.remote.Replace(context.WithoutCancel(ctx), userID, lines); err != nil {
			s.log.Warn("cart: server sync failed", "user_id", userID, "error", err)
		}
	}()
}

// Flush blocks until every queued server sync has finished.
func (s *Store) Flush() {
	s.outbox.Wait()
}
