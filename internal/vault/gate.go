// Package vault implements the session-scoped access gate in front of
// note operations. It is a usability gate keyed by a stored
// passphrase, not a security boundary: the backing file is not
// encrypted and the passphrase lives in the same file it protects.
package vault

import (
	"errors"

	"github.com/jeanpaul/driftnotes/internal/store"
)

// AuthenticationError is returned on a wrong vault password. It never
// carries any detail about the expected password.
type AuthenticationError struct{}

func (e *AuthenticationError) Error() string { return "invalid vault password" }

// ErrLocked is returned by guarded note operations while the gate is
// locked.
var ErrLocked = errors.New("vault is locked")

// Gate is a two-state machine, Locked or Unlocked. Authentication is
// per session: a gate over a locked store starts Locked regardless of
// prior unlocks.
type Gate struct {
	settings *store.Settings
	unlocked bool
}

// NewGate creates the gate for one session.
func NewGate(settings *store.Settings) *Gate {
	return &Gate{settings: settings, unlocked: !settings.Locked}
}

// Unlocked reports whether note operations are currently allowed.
func (g *Gate) Unlocked() bool { return g.unlocked }

// Unlock transitions Locked -> Unlocked on an exact password match.
// On mismatch the gate stays Locked and an AuthenticationError is
// returned.
func (g *Gate) Unlock(password string) error {
	if g.unlocked {
		return nil
	}
	if password != g.settings.VaultPassword {
		return &AuthenticationError{}
	}
	g.unlocked = true
	return nil
}

// SetLocked toggles the persistent lock setting. Toggling is always
// permitted, whatever state the gate is in. Enabling the lock stores
// the password and leaves the current session unlocked; the next
// session starts Locked. Disabling it unlocks immediately.
func (g *Gate) SetLocked(on bool, password string) {
	if on {
		g.settings.Locked = true
		g.settings.VaultPassword = password
		return
	}
	g.settings.Locked = false
	g.unlocked = true
}
