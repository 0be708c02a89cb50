package views

import (
	"context"
	"strings"

	"github.com/SkillSynth-25-26/skillsync-client/internal/identity"
	"github.com/SkillSynth-25-26/skillsync-client/internal/notify"
	"github.com/SkillSynth-25-26/skillsync-client/internal/remote"
	"github.com/SkillSynth-25-26/skillsync-client/internal/remote/domain"
)

// SignIn creates the account and seeds the local identity so the rest of
// the app recognizes the user immediately. The identity store fires its
// own changed signal; no entity topic is involved.
type SignIn struct {
	remote *remote.Client
	store  *identity.Store
	notes  *notify.Notifier
}

func NewSignIn(rc *remote.Client, store *identity.Store, n *notify.Notifier) *SignIn {
	return &SignIn{remote: rc, store: store, notes: n}
}

// Submit registers the user remotely and persists the display name.
func (v *SignIn) Submit(ctx context.Context, username string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, remote.Validationf("sign_in", "username required")
	}

	user, err := v.remote.CreateUser(ctx, username, 1)
	if err != nil {
		v.notes.Show("Failed to create user", notify.ToneError)
		return nil, err
	}

	if err := v.store.SetName(ctx, username); err != nil {
		// the account exists; a failed local write only costs the
		// instant-recognition behavior
		remote.NewLogger(ctx).LogError("sign_in", err)
	}
	return user, nil
}
