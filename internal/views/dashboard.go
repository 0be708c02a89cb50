// Package views implements the independently mounted screens and the
// cache contract they share: one list-fetch on mount, subscribe to the
// relevant topics, re-run the same list-fetch on every signal and replace
// the cache wholesale, unsubscribe on unmount. Refresh is always a full
// re-fetch, never a delta merge; that is what keeps independently owned
// caches consistent without a central store.
package views

import (
	"context"
	"sync"

	"github.com/SkillSynth-25-26/skillsync-client/internal/bus"
	"github.com/SkillSynth-25-26/skillsync-client/internal/notify"
	"github.com/SkillSynth-25-26/skillsync-client/internal/remote"
	"github.com/SkillSynth-25-26/skillsync-client/internal/remote/domain"
)

// Dashboard shows the user's skill mastery bars and owned spaces. It
// mutates nothing except space deletion; it mostly reacts to what the
// other views publish.
type Dashboard struct {
	remote *remote.Client
	bus    *bus.Bus
	notes  *notify.Notifier

	mu     sync.Mutex
	closed bool
	skills []domain.Skill
	spaces []domain.Project

	subs []*bus.Subscription
}

func NewDashboard(rc *remote.Client, b *bus.Bus, n *notify.Notifier) *Dashboard {
	return &Dashboard{remote: rc, bus: b, notes: n}
}

// Mount performs the initial fetches and subscribes to both entity
// topics. The bus is purely an invalidation signal: anything published
// before Mount is never replayed, which is why the initial fetch is
// unconditional.
func (v *Dashboard) Mount(ctx context.Context) {
	v.refreshSkills(ctx)
	v.refreshSpaces(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.subs = append(v.subs,
		v.bus.Subscribe(bus.TopicSkills, func(bus.Topic) { v.refreshSkills(context.Background()) }),
		v.bus.Subscribe(bus.TopicSpaces, func(bus.Topic) { v.refreshSpaces(context.Background()) }),
	)
}

// Unmount tears the view down. In-flight fetches are not cancelled, but
// their responses are discarded rather than applied to a dead cache.
func (v *Dashboard) Unmount() {
	v.mu.Lock()
	v.closed = true
	subs := v.subs
	v.subs = nil
	v.mu.Unlock()

	for _, s := range subs {
		s.Unsubscribe()
	}
}

// Refresh re-runs both list fetches. Used by the refresh scheduler.
func (v *Dashboard) Refresh(ctx context.Context) {
	v.refreshSkills(ctx)
	v.refreshSpaces(ctx)
}

// DeleteSpace removes an owned project. On success the view re-fetches
// its own cache first, so it never waits on its own publish round trip,
// then publishes for the benefit of the other views.
func (v *Dashboard) DeleteSpace(ctx context.Context, id int64) error {
	if err := v.remote.DeleteProject(ctx, id); err != nil {
		v.notes.Show("Error deleting project", notify.ToneError)
		return err
	}
	if !v.live() {
		return nil
	}

	v.refreshSpaces(ctx)
	v.bus.Publish(bus.TopicSpaces)
	v.notes.Show("Project removed", notify.ToneSuccess)
	return nil
}

// Skills returns a copy of the skills cache.
func (v *Dashboard) Skills() []domain.Skill {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]domain.Skill, len(v.skills))
	copy(out, v.skills)
	return out
}

// Spaces returns a copy of the owned-spaces cache.
func (v *Dashboard) Spaces() []domain.Project {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]domain.Project, len(v.spaces))
	copy(out, v.spaces)
	return out
}

func (v *Dashboard) refreshSkills(ctx context.Context) {
	skills, err := v.remote.ListSkills(ctx)
	if err != nil {
		// read failures degrade to "nothing to show", never an error screen
		remote.NewLogger(ctx).LogError("dashboard_skills", err)
		skills = []domain.Skill{}
	}
	v.apply(func() { v.skills = skills })
}

func (v *Dashboard) refreshSpaces(ctx context.Context) {
	spaces, err := v.remote.ListProjects(ctx, true)
	if err != nil {
		remote.NewLogger(ctx).LogError("dashboard_spaces", err)
		spaces = []domain.Project{}
	}
	v.apply(func() { v.spaces = spaces })
}

// apply mutates the caches only while the view is still mounted; a
// response that arrives after Unmount is dropped here.
func (v *Dashboard) apply(fn func()) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return false
	}
	fn()
	return true
}

func (v *Dashboard) live() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.closed
}
