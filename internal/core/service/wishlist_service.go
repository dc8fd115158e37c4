package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
	"github.com/landmarket/landmarket-cli/internal/core/ports"
	"github.com/landmarket/landmarket-cli/internal/metrics"
)

// wishlistItem is the per-listing view model. inFlight serializes toggles:
// while a request for this listing is unresolved, further toggles are
// rejected so two in-flight requests can never race to opposite end
// states.
type wishlistItem struct {
	favorited bool
	inFlight  bool
}

// WishlistService reconciles per-listing favorite state against the remote
// wishlist. Load performs the full-set fetch on mount; Toggle applies the
// flip optimistically and rolls it back if the corresponding add/remove
// request fails. State is keyed per listing; there is no cross-listing
// coupling.
type WishlistService struct {
	session ports.SessionReader
	api     ports.WishlistAPI
	log     zerolog.Logger

	mu      sync.Mutex
	loadGen uint64
	items   map[string]*wishlistItem
}

func NewWishlistService(session ports.SessionReader, api ports.WishlistAPI, log zerolog.Logger) *WishlistService {
	return &WishlistService{
		session: session,
		api:     api,
		log:     log,
		items:   make(map[string]*wishlistItem),
	}
}

// Load fetches the full remote wishlist and rebuilds membership by listing
// ID. Anonymous sessions get an empty view and no network call. Each Load
// bumps a generation counter; a fetch that resolves after a newer Load has
// started is discarded.
func (w *WishlistService) Load(ctx context.Context) error {
	sess := w.session.Current()

	w.mu.Lock()
	w.loadGen++
	gen := w.loadGen
	if !sess.Authenticated() {
		w.items = make(map[string]*wishlistItem)
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	lands, err := w.api.List(ctx, sess.Token)

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.loadGen {
		w.log.Debug().Uint64("gen", gen).Msg("stale wishlist fetch discarded")
		return nil
	}
	if err != nil {
		if errors.Is(err, domain.ErrSessionExpired) {
			return err
		}
		return &domain.SyncError{Op: "list", Cause: err}
	}

	fresh := make(map[string]*wishlistItem, len(lands))
	for _, land := range lands {
		fresh[land.ID] = &wishlistItem{favorited: true}
	}
	// An item mid-toggle keeps its optimistic value; the in-flight request
	// settles it.
	for id, it := range w.items {
		if it.inFlight {
			fresh[id] = it
		}
	}
	w.items = fresh
	return nil
}

// IsFavorited reports the current view-model value for a listing. Always
// false while anonymous.
func (w *WishlistService) IsFavorited(landID string) bool {
	if !w.session.Current().Authenticated() {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	it, ok := w.items[landID]
	return ok && it.favorited
}

// Entries returns the view model for every listing currently tracked,
// ordered by listing ID.
func (w *WishlistService) Entries() []domain.WishlistEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]domain.WishlistEntry, 0, len(w.items))
	for id, it := range w.items {
		out = append(out, domain.WishlistEntry{LandID: id, Favorited: it.favorited})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LandID < out[j].LandID })
	return out
}

// Toggle flips the favorite state of a listing optimistically, then issues
// the matching add/remove request. On failure the flip is rolled back and
// the pre-toggle value returned alongside the error; on success the
// optimistic value is kept as authoritative. A toggle while the same
// listing is already in flight is rejected with ErrToggleInFlight. A 401
// from the backend rolls back and returns ErrSessionExpired so the caller
// can prompt re-authentication.
func (w *WishlistService) Toggle(ctx context.Context, landID string) (bool, error) {
	sess := w.session.Current()
	if !sess.Authenticated() {
		metrics.WishlistTogglesTotal.WithLabelValues("rejected").Inc()
		return false, domain.ErrAuthRequired
	}

	w.mu.Lock()
	it, ok := w.items[landID]
	if !ok {
		it = &wishlistItem{}
		w.items[landID] = it
	}
	if it.inFlight {
		val := it.favorited
		w.mu.Unlock()
		metrics.WishlistTogglesTotal.WithLabelValues("rejected").Inc()
		return val, domain.ErrToggleInFlight
	}
	prev := it.favorited
	it.favorited = !prev // optimistic flip
	it.inFlight = true
	target := it.favorited
	w.mu.Unlock()

	var err error
	op := "add"
	if target {
		err = w.api.Add(ctx, sess.Token, landID)
	} else {
		op = "remove"
		err = w.api.Remove(ctx, sess.Token, landID)
	}

	w.mu.Lock()
	it.inFlight = false
	if err != nil {
		it.favorited = prev // rollback
	}
	w.mu.Unlock()

	if err != nil {
		metrics.WishlistTogglesTotal.WithLabelValues("rolled_back").Inc()
		metrics.WishlistRollbacksTotal.Inc()
		if errors.Is(err, domain.ErrSessionExpired) {
			w.log.Warn().Str("land_id", landID).Msg("wishlist toggle rejected: session expired server-side")
			return prev, domain.ErrSessionExpired
		}
		w.log.Warn().Err(err).Str("land_id", landID).Str("op", op).Msg("wishlist toggle rolled back")
		return prev, &domain.SyncError{Op: op, LandID: landID, Cause: err}
	}

	metrics.WishlistTogglesTotal.WithLabelValues("success").Inc()
	w.log.Debug().Str("land_id", landID).Bool("favorited", target).Msg("wishlist toggle applied")
	return target, nil
}
