package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
	"github.com/landmarket/landmarket-cli/internal/core/ports"
	"github.com/landmarket/landmarket-cli/internal/metrics"
)

// genericLoginFailure is shown when the backend gave no usable message.
const genericLoginFailure = "Login failed"

// SessionService is the process-wide session state machine:
//
//	Anonymous → Authenticating → Authenticated → Anonymous (logout)
//	Anonymous → Authenticating → Anonymous with Err set (failure)
//
// Transitions are applied in the order their triggering operations
// complete. Each login captures an operation token from a monotonically
// increasing sequence; Logout and newer logins bump the sequence, so a
// stale completion compares unequal and is discarded without mutating
// state. Subscribers are notified synchronously after every transition.
type SessionService struct {
	store ports.CredentialStore
	auth  ports.AuthAPI
	log   zerolog.Logger

	mu          sync.Mutex
	cur         domain.Session
	initialized bool
	loginSeq    uint64
	subs        map[int]func(domain.Session)
	nextSubID   int
}

func NewSessionService(store ports.CredentialStore, auth ports.AuthAPI, log zerolog.Logger) *SessionService {
	return &SessionService{
		store: store,
		auth:  auth,
		log:   log,
		subs:  make(map[int]func(domain.Session)),
	}
}

// Current returns a snapshot of the session.
func (s *SessionService) Current() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Subscribe registers fn to run synchronously after every transition and
// returns its unsubscribe function. fn receives a snapshot and must not
// call back into the service.
func (s *SessionService) Subscribe(fn func(domain.Session)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Initialize hydrates the session from the credential store: a complete
// record transitions straight to Authenticated without contacting the
// backend (trust-on-read). Idempotent — once a terminal state is reached,
// calling it again is a no-op. Storage failures are logged and treated as
// an absent record.
func (s *SessionService) Initialize() {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return
	}
	s.initialized = true

	cred, found, err := s.store.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("credential store unreadable, starting anonymous")
	}
	if found && cred.Complete() {
		s.cur = domain.Session{Token: cred.Token, UserID: cred.UserID, Role: cred.Role}
		metrics.SessionHydrationsTotal.WithLabelValues("restored").Inc()
		s.log.Debug().Str("user_id", cred.UserID).Str("role", string(cred.Role)).Msg("session restored from credential store")
	} else {
		metrics.SessionHydrationsTotal.WithLabelValues("anonymous").Inc()
	}
	snap := s.cur
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, snap)
}

// Login runs the full login cycle: Authenticating, then Authenticated on
// success or Anonymous with Err set on failure. The backend's failure
// message is propagated verbatim when available. If a logout (or a newer
// login) wins the race while the exchange is in flight, the stale result
// is discarded and ErrLoginSuperseded returned.
func (s *SessionService) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.loginSeq++
	op := s.loginSeq
	s.cur.Loading = true
	s.cur.Err = ""
	snap := s.cur
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, snap)

	res, err := s.auth.Login(ctx, email, password)

	s.mu.Lock()
	if op != s.loginSeq {
		s.mu.Unlock()
		s.log.Debug().Uint64("op", op).Msg("stale login completion discarded")
		return domain.ErrLoginSuperseded
	}

	if err != nil {
		s.cur = domain.Session{Err: loginFailureMessage(err)}
		snap = s.cur
		subs = s.snapshotSubs()
		s.mu.Unlock()

		var authErr *domain.AuthError
		if errors.As(err, &authErr) && authErr.Network {
			metrics.LoginsTotal.WithLabelValues("network").Inc()
			s.log.Warn().Err(err).Msg("login failed: backend unreachable")
		} else {
			metrics.LoginsTotal.WithLabelValues("rejected").Inc()
			s.log.Info().Err(err).Msg("login rejected")
		}

		notify(subs, snap)
		return err
	}

	cred := domain.Credential{Token: res.Token, UserID: res.UserID, Role: res.Role}
	if saveErr := s.store.Save(cred); saveErr != nil {
		// Session still authenticates in memory; it just won't survive a
		// restart.
		s.log.Warn().Err(saveErr).Msg("failed to persist credentials")
	}
	s.cur = domain.Session{Token: res.Token, UserID: res.UserID, Role: res.Role}
	snap = s.cur
	subs = s.snapshotSubs()
	s.mu.Unlock()

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", res.UserID).Str("role", string(res.Role)).Msg("login succeeded")

	notify(subs, snap)
	return nil
}

// Logout clears the credential store and transitions to Anonymous. Safe to
// call from any state; if a login is in flight its eventual completion is
// discarded. Already-anonymous sessions are left untouched.
func (s *SessionService) Logout() {
	s.mu.Lock()
	s.loginSeq++ // invalidate any in-flight login

	if !s.cur.Authenticated() && !s.cur.Loading && s.cur.Err == "" {
		s.mu.Unlock()
		return
	}

	if err := s.store.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear credential store")
	}
	s.cur = domain.Session{}
	snap := s.cur
	subs := s.snapshotSubs()
	s.mu.Unlock()

	s.log.Info().Msg("logged out")
	notify(subs, snap)
}

// snapshotSubs copies the subscriber list so transitions can notify after
// releasing the lock. Callers must hold s.mu.
func (s *SessionService) snapshotSubs() []func(domain.Session) {
	out := make([]func(domain.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func(domain.Session), snap domain.Session) {
	for _, fn := range subs {
		fn(snap)
	}
}

// loginFailureMessage extracts the user-facing failure text, falling back
// to a generic message when the backend gave none.
func loginFailureMessage(err error) string {
	var authErr *domain.AuthError
	if errors.As(err, &authErr) && authErr.Message != "" {
		return authErr.Message
	}
	return genericLoginFailure
}
