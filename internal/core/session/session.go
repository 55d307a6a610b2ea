// Package session owns the client-side session state: the authenticated
// identity, the synced audit history, and the header overlay state.
// All mutation goes through Store methods; reads are snapshot reads.
package session

import (
	"errors"

	"github.com/sadopc/vericheck/internal/core/record"
)

// ErrInvalidIdentity is returned by Login for an identity with an empty
// name or email.
var ErrInvalidIdentity = errors.New("identity requires a name and an email")

// User is the authenticated identity held client-side.
type User struct {
	Name  string
	Email string
}

// Store is the single owner of session state. It is not safe for
// concurrent use; the event loop is the only writer.
type Store struct {
	user    *User
	history []record.Record
	loaded  bool
	overlay Overlay
	epoch   uint64
}

// NewStore returns a store in the logged-out state.
func NewStore() *Store {
	return &Store{}
}

// Login replaces the identity and invalidates any in-flight history
// fetch. The returned epoch tags the fetch the caller should now issue.
// Repeated logins are not de-duplicated: each call bumps the epoch, so
// only the latest login's fetch can ever apply.
func (s *Store) Login(u User) (uint64, error) {
	if u.Name == "" || u.Email == "" {
		return 0, ErrInvalidIdentity
	}
	s.user = &u
	s.epoch++
	return s.epoch, nil
}

// Logout clears identity, history, and overlays. The epoch bump makes
// every response still in flight stale, so nothing fetched for the old
// identity can apply afterwards.
func (s *Store) Logout() {
	s.user = nil
	s.history = nil
	s.loaded = false
	s.overlay = OverlayNone
	s.epoch++
}

// BeginRefresh reserves an epoch for a manual history fetch. ok is
// false while logged out: no fetch may be issued without an identity.
// Reserving a new epoch also invalidates any older in-flight fetch.
func (s *Store) BeginRefresh() (epoch uint64, email string, ok bool) {
	if s.user == nil {
		return 0, "", false
	}
	s.epoch++
	return s.epoch, s.user.Email, true
}

// ApplyHistory commits a wholesale replace of the history if the given
// epoch is still current. Stale responses are discarded and leave the
// last-known-good history untouched. Reports whether it applied.
func (s *Store) ApplyHistory(epoch uint64, records []record.Record) bool {
	if s.user == nil || epoch != s.epoch {
		return false
	}
	s.history = records
	s.loaded = true
	return true
}

// Seed installs cached records as a provisional history without marking
// it synced. A no-op while logged out or once a real sync has applied.
func (s *Store) Seed(records []record.Record) {
	if s.user == nil || s.loaded || len(records) == 0 {
		return
	}
	s.history = records
}

// User returns the current identity, if any.
func (s *Store) User() (User, bool) {
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// LoggedIn reports whether an identity is present. Its presence is the
// sole gate for any authenticated view or operation.
func (s *Store) LoggedIn() bool {
	return s.user != nil
}

// History returns the current history snapshot.
func (s *Store) History() []record.Record {
	return s.history
}

// HistoryLoaded reports whether at least one sync has applied since
// login. It distinguishes "no scans yet" from an empty filter result.
func (s *Store) HistoryLoaded() bool {
	return s.loaded
}

// Epoch returns the current fetch epoch.
func (s *Store) Epoch() uint64 {
	return s.epoch
}
