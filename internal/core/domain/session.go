package domain

import (
	"errors"
	"time"
)

// ErrNoSession covers every way a session can fail to resolve: missing
// cookie, bad signature, unknown or expired session ID. Callers redirect to
// the login page without distinguishing the cause.
var ErrNoSession = errors.New("no active session")

// Session binds a client to an authenticated identity and a role snapshot
// taken at login time. Flashes are one-shot messages consumed by the next
// page load.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	Flashes   []string  `json:"flashes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
