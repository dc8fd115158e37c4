package domain

// Role is the authorization role assigned by the backend. The wire values
// are fixed by the backend contract and stored verbatim in the token.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// Valid reports whether r is one of the roles the backend issues.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Session is the client's current belief about authentication state.
//
// Invariant: Token != "" if and only if the user is considered
// authenticated; Role and UserID are only meaningful while a token is held.
// Err carries the most recent login failure message for display.
type Session struct {
	Token   string
	UserID  string
	Role    Role
	Loading bool
	Err     string
}

// Authenticated reports whether the session holds a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Credential is the durable mirror of an authenticated session: the three
// values written to local storage on login and erased on logout.
type Credential struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
}

// Complete reports whether all three fields are present. A partial record
// is never trusted; the store treats it as absent.
func (c Credential) Complete() bool {
	return c.Token != "" && c.UserID != "" && c.Role != ""
}
