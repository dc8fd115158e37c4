package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/landmarket/landmarket-cli/internal/core/domain"
	"github.com/landmarket/landmarket-cli/internal/core/ports"
)

type stubSession struct {
	cur domain.Session
}

func (s *stubSession) Current() domain.Session { return s.cur }
func (s *stubSession) Initialize()             {}
func (s *stubSession) Login(context.Context, string, string) error {
	return nil
}
func (s *stubSession) Logout() { s.cur = domain.Session{} }
func (s *stubSession) Subscribe(func(domain.Session)) func() {
	return func() {}
}

type stubWishlist struct {
	favorites map[string]bool
	toggleErr error
}

func (s *stubWishlist) Load(context.Context) error { return nil }
func (s *stubWishlist) IsFavorited(landID string) bool {
	return s.favorites[landID]
}
func (s *stubWishlist) Toggle(_ context.Context, landID string) (bool, error) {
	if s.toggleErr != nil {
		return s.favorites[landID], s.toggleErr
	}
	s.favorites[landID] = !s.favorites[landID]
	return s.favorites[landID], nil
}
func (s *stubWishlist) Entries() []domain.WishlistEntry {
	out := make([]domain.WishlistEntry, 0, len(s.favorites))
	for id, fav := range s.favorites {
		out = append(out, domain.WishlistEntry{LandID: id, Favorited: fav})
	}
	return out
}

type stubLands struct {
	lands []domain.Land
}

func (s *stubLands) List(context.Context) ([]domain.Land, error) { return s.lands, nil }
func (s *stubLands) Get(_ context.Context, id string) (*domain.Land, error) {
	for _, land := range s.lands {
		if land.ID == id {
			return &land, nil
		}
	}
	return nil, domain.ErrLandNotFound
}
func (s *stubLands) Create(_ context.Context, _ string, in ports.CreateLandInput) (*domain.Land, error) {
	return &domain.Land{ID: "l-new", Title: in.Title, OwnerID: in.OwnerID}, nil
}

type stubUsers struct {
	user *domain.User
}

func (s *stubUsers) Get(context.Context, string, string) (*domain.User, error) {
	if s.user == nil {
		return nil, domain.ErrUserNotFound
	}
	return s.user, nil
}
func (s *stubUsers) Update(_ context.Context, _, _ string, in ports.UpdateUserInput) (*domain.User, error) {
	s.user.Name = in.Name
	s.user.Email = in.Email
	return s.user, nil
}
func (s *stubUsers) AdminUpdate(_ context.Context, _, _ string, in ports.UpdateUserInput, role domain.Role) (*domain.User, error) {
	s.user.Name = in.Name
	s.user.Role = role
	return s.user, nil
}

func run(t *testing.T, a *app, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	a.out = &buf

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(&buf)
	root.SetErr(&buf)
	if err := root.Execute(); err != nil {
		t.Fatalf("command %v: %v", args, err)
	}
	return buf.String()
}

func testApp(sess domain.Session) *app {
	return &app{
		log:     zerolog.Nop(),
		session: &stubSession{cur: sess},
		wishlist: &stubWishlist{favorites: map[string]bool{
			"l-1": true,
		}},
		lands: &stubLands{lands: []domain.Land{
			{ID: "l-1", Title: "Riverside plot", City: "Carmelo", District: "Colonia", Price: 45000, OwnerID: "u-9"},
			{ID: "l-2", Title: "Hillside acre", City: "Piriápolis", District: "Maldonado", Price: 72000, OwnerID: "u-1"},
		}},
		users: &stubUsers{user: &domain.User{ID: "u-1", Name: "Ana", Email: "ana@example.com", Role: domain.RoleUser}},
	}
}

func authed() domain.Session {
	return domain.Session{Token: "opaque-tok", UserID: "u-1", Role: domain.RoleUser}
}

func TestWhoami_Anonymous(t *testing.T) {
	out := run(t, testApp(domain.Session{}), "whoami")
	if !strings.Contains(out, "Not signed in") {
		t.Fatalf("output = %q", out)
	}
}

func TestWhoami_Authenticated(t *testing.T) {
	out := run(t, testApp(authed()), "whoami")
	for _, want := range []string{"u-1", "USER", "Ana", "ana@example.com"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output %q missing %q", out, want)
		}
	}
}

func TestLandsList_MarksFavoritesWhenSignedIn(t *testing.T) {
	out := run(t, testApp(authed()), "lands", "list")
	if !strings.Contains(out, "* l-1") {
		t.Fatalf("favorited listing not marked: %q", out)
	}
	if strings.Contains(out, "* l-2") {
		t.Fatalf("unfavorited listing marked: %q", out)
	}
}

func TestLandsList_MineFiltersByOwner(t *testing.T) {
	out := run(t, testApp(authed()), "lands", "list", "--mine")
	if strings.Contains(out, "l-1") || !strings.Contains(out, "l-2") {
		t.Fatalf("output = %q", out)
	}
}

func TestLandsCreate_AnonymousGetsGuidance(t *testing.T) {
	out := run(t, testApp(domain.Session{}), "lands", "create", "--title", "X")
	if !strings.Contains(out, "Sign in") {
		t.Fatalf("output = %q", out)
	}
}

func TestWishlistToggle(t *testing.T) {
	a := testApp(authed())
	out := run(t, a, "wishlist", "toggle", "l-2")
	if !strings.Contains(out, "Added l-2") {
		t.Fatalf("output = %q", out)
	}
	out = run(t, a, "wishlist", "toggle", "l-2")
	if !strings.Contains(out, "Removed l-2") {
		t.Fatalf("output = %q", out)
	}
}

func TestWishlistAdd_Idempotent(t *testing.T) {
	out := run(t, testApp(authed()), "wishlist", "add", "l-1")
	if !strings.Contains(out, "Nothing to do") {
		t.Fatalf("output = %q", out)
	}
}

func TestWishlist_AnonymousGetsGuidanceNotError(t *testing.T) {
	out := run(t, testApp(domain.Session{}), "wishlist", "list")
	if !strings.Contains(out, "Sign in") {
		t.Fatalf("output = %q", out)
	}
}

func TestAdminUserUpdate_RequiresAdminTier(t *testing.T) {
	out := run(t, testApp(authed()), "admin", "user-update", "u-2")
	if !strings.Contains(out, "administrator") {
		t.Fatalf("output = %q", out)
	}
}

func TestAdminUserUpdate_ChangesRole(t *testing.T) {
	a := testApp(domain.Session{Token: "tok", UserID: "adm-1", Role: domain.RoleAdmin})
	out := run(t, a, "admin", "user-update", "u-1", "--role", "ADMIN")
	if !strings.Contains(out, "Account updated") || !strings.Contains(out, "ADMIN") {
		t.Fatalf("output = %q", out)
	}
}
