// Package state owns the in-memory domain collections and their mapping to
// the durable key-value store. Every collection is held as a plain slice;
// services mutate the collections under the state lock and call Persist to
// flush the result.
//
// Hydration is forgiving: a missing or unparsable blob never fails startup,
// it falls back to the key's default (seed data for users and products,
// empty collections otherwise). Categories and the FAQ list are projections
// over seed data and are rebuilt on every hydrate.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-shop-front/internal/logger"
	"github.com/MKhiriev/go-shop-front/internal/session"
	"github.com/MKhiriev/go-shop-front/internal/store"
	"github.com/MKhiriev/go-shop-front/models"
)

type State struct {
	mu       sync.Mutex
	blobs    store.BlobRepository
	sessions *session.Codec
	logger   *logger.Logger

	Users      []models.User
	Products   []models.Product
	Categories []models.Category
	FAQ        []models.FAQEntry
	Cart       []models.CartLine
	Orders     []models.Order

	// CurrentUser is a value copy of the signed-in user, nil when
	// anonymous. Profile edits must refresh it explicitly.
	CurrentUser *models.User
}

func New(blobs store.BlobRepository, sessions *session.Codec, log *logger.Logger) *State {
	return &State{
		blobs:    blobs,
		sessions: sessions,
		logger:   log,
	}
}

// Lock acquires the state mutex. Service operations hold it for the whole
// read-modify-persist cycle.
func (s *State) Lock() { s.mu.Lock() }

// Unlock releases the state mutex.
func (s *State) Unlock() { s.mu.Unlock() }

// Hydrate loads every collection from the durable store, substituting
// defaults for absent or corrupted blobs, and restores the session. The
// bootstrap admin account is recreated if the stored users collection
// lacks it.
func (s *State) Hydrate(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.Users = loadCollection(ctx, s.blobs, KeyUsers, seedUsers)
	s.Products = loadCollection(ctx, s.blobs, KeyProducts, seedProducts)
	s.Cart = loadCollection(ctx, s.blobs, KeyCart, emptySlice[models.CartLine])
	s.Orders = loadCollection(ctx, s.blobs, KeyOrders, emptySlice[models.Order])
	s.Categories = seedCategories()
	s.FAQ = seedFAQ()

	s.ensureBootstrapAdmin(ctx)
	s.normalizeUsers()
	s.restoreSession(ctx)

	log.Debug().Str("func", "*State.Hydrate").
		Int("users", len(s.Users)).
		Int("products", len(s.Products)).
		Int("cart_lines", len(s.Cart)).
		Int("orders", len(s.Orders)).
		Bool("session", s.CurrentUser != nil).
		Msg("state hydrated")

	return nil
}

// Persist writes every mutable collection back to the durable store. It is
// idempotent and safe to call after every mutation. The caller must hold
// the state lock.
func (s *State) Persist(ctx context.Context) error {
	log := logger.FromContext(ctx)

	var errs []error
	errs = append(errs, saveCollection(ctx, s.blobs, KeyUsers, s.Users))
	errs = append(errs, saveCollection(ctx, s.blobs, KeyProducts, s.Products))
	errs = append(errs, saveCollection(ctx, s.blobs, KeyCart, s.Cart))
	errs = append(errs, saveCollection(ctx, s.blobs, KeyOrders, s.Orders))
	errs = append(errs, s.persistSession(ctx))

	if err := errors.Join(errs...); err != nil {
		log.Err(err).Str("func", "*State.Persist").Msg("error persisting state")
		return fmt.Errorf("error persisting state: %w", err)
	}

	return nil
}

// Reset wipes the durable store and every in-memory collection. The caller
// must Hydrate again before using the state.
func (s *State) Reset(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.blobs.Clear(ctx); err != nil {
		log.Err(err).Str("func", "*State.Reset").Msg("error clearing store")
		return fmt.Errorf("error clearing store: %w", err)
	}

	s.Users = nil
	s.Products = nil
	s.Categories = nil
	s.FAQ = nil
	s.Cart = nil
	s.Orders = nil
	s.CurrentUser = nil

	log.Info().Str("func", "*State.Reset").Msg("state reset")

	return nil
}

// ensureBootstrapAdmin recreates the built-in admin account when the users
// collection does not contain it. Mirrors the recovery done on every load
// so an accidental deletion never locks the catalog editor out.
func (s *State) ensureBootstrapAdmin(ctx context.Context) {
	for _, u := range s.Users {
		if u.Email == BootstrapAdminEmail {
			return
		}
	}

	logger.FromContext(ctx).Warn().
		Str("func", "*State.ensureBootstrapAdmin").
		Msg("bootstrap admin missing, recreating")

	s.Users = append(s.Users, seedAdmin())
}

// normalizeUsers repairs nil slices left behind by JSON decoding so that
// Addresses is never nil after hydration.
func (s *State) normalizeUsers() {
	for i := range s.Users {
		if s.Users[i].Addresses == nil {
			s.Users[i].Addresses = []models.Address{}
		}
	}
}

// restoreSession reads the stored session token and restores CurrentUser.
// Any failure (absent key, bad signature, expiry) yields an anonymous
// session.
func (s *State) restoreSession(ctx context.Context) {
	log := logger.FromContext(ctx)
	s.CurrentUser = nil

	raw, err := s.blobs.Read(ctx, KeySession)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			log.Err(err).Str("func", "*State.restoreSession").Msg("error reading session blob")
		}
		return
	}

	user, err := s.sessions.Decode(string(raw))
	if err != nil {
		log.Warn().Err(err).Str("func", "*State.restoreSession").Msg("stored session rejected, starting anonymous")
		return
	}

	s.CurrentUser = &user
}

// persistSession writes the current session token, or removes the key when
// no user is signed in.
func (s *State) persistSession(ctx context.Context) error {
	if s.CurrentUser == nil {
		return s.blobs.Remove(ctx, KeySession)
	}

	token, err := s.sessions.Encode(*s.CurrentUser)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	return s.blobs.Write(ctx, KeySession, []byte(token))
}

func loadCollection[T any](ctx context.Context, blobs store.BlobRepository, key string, fallback func() []T) []T {
	log := logger.FromContext(ctx)

	raw, err := blobs.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			log.Err(err).Str("func", "loadCollection").Str("key", key).Msg("error reading blob, using default")
		}
		return fallback()
	}

	var items []T
	if err = json.Unmarshal(raw, &items); err != nil {
		log.Warn().Err(err).Str("func", "loadCollection").Str("key", key).Msg("corrupted blob, using default")
		return fallback()
	}
	if items == nil {
		items = fallback()
	}

	return items
}

func saveCollection[T any](ctx context.Context, blobs store.BlobRepository, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("error encoding %q: %w", key, err)
	}

	if err = blobs.Write(ctx, key, raw); err != nil {
		return fmt.Errorf("error writing %q: %w", key, err)
	}

	return nil
}

func emptySlice[T any]() []T { return []T{} }
