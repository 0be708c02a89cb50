package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/SkillSynth-25-26/skillsync-client/internal/bus"
	"github.com/SkillSynth-25-26/skillsync-client/internal/identity"
	"github.com/SkillSynth-25-26/skillsync-client/internal/notify"
	"github.com/SkillSynth-25-26/skillsync-client/internal/remote"
	"github.com/SkillSynth-25-26/skillsync-client/internal/remote/domain"
)

// Profile manages the user's basic info and their skill list. Basic info
// is a single-view entity: it is written straight to the identity store
// and never goes over the entity bus. Skill mutations follow the shared
// contract: remote write, own re-fetch, then publish.
type Profile struct {
	remote *remote.Client
	store  *identity.Store
	bus    *bus.Bus
	notes  *notify.Notifier

	mu     sync.Mutex
	closed bool
	skills []domain.Skill
	basic  identity.BasicInfo
}

func NewProfile(rc *remote.Client, store *identity.Store, b *bus.Bus, n *notify.Notifier) *Profile {
	return &Profile{remote: rc, store: store, bus: b, notes: n}
}

// Mount loads the persisted basic info (falling back to first-run
// defaults when absent) and fetches the skill list.
func (v *Profile) Mount(ctx context.Context) {
	basic, ok := v.store.Basic(ctx)
	if !ok {
		basic = identity.BasicInfo{
			FullName:     "Demo User",
			Availability: "1-3h",
			Contact:      identity.Contact{Email: "demo@example.com"},
		}
		if name, ok := v.store.Name(ctx); ok {
			basic.FullName = name
		}
	}
	v.apply(func() { v.basic = basic })

	v.refreshSkills(ctx)
}

func (v *Profile) Unmount() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
}

// Refresh re-runs the skill fetch. Used by the refresh scheduler.
func (v *Profile) Refresh(ctx context.Context) { v.refreshSkills(ctx) }

// AddSkill adds a catalog skill. The remote service is the source of
// truth for uniqueness; the local cache check just narrows the catalog
// opportunistically before spending a network call.
func (v *Profile) AddSkill(ctx context.Context, name, category string) error {
	const op = "add_skill"

	if name == "" {
		v.notes.Show("Error adding skill", notify.ToneError)
		return remote.Validationf(op, "skill name required")
	}
	if !CatalogHas(name) {
		v.notes.Show("Error adding skill", notify.ToneError)
		return remote.Validationf(op, "skill %q not in catalog", name)
	}
	if v.hasSkill(name) {
		v.notes.Show("Error adding skill", notify.ToneError)
		return remote.Validationf(op, "skill %q already added", name)
	}

	if _, err := v.remote.CreateSkill(ctx, name, category); err != nil {
		v.notes.Show("Error adding skill", notify.ToneError)
		return err
	}
	if !v.live() {
		return nil
	}

	v.refreshSkills(ctx)
	v.bus.Publish(bus.TopicSkills)
	v.notes.Show("Skill added!", notify.ToneSuccess)
	return nil
}

// SetSkillLevel adjusts the level of a persisted skill.
func (v *Profile) SetSkillLevel(ctx context.Context, id int64, level int) error {
	skill, ok := v.findSkill(id)
	if !ok {
		v.notes.Show("Error updating skill", notify.ToneError)
		return remote.Validationf("update_skill", "skill %d not in view", id)
	}
	skill.Level = level

	if _, err := v.remote.UpdateSkill(ctx, skill); err != nil {
		v.notes.Show("Error updating skill", notify.ToneError)
		return err
	}
	if !v.live() {
		return nil
	}

	v.refreshSkills(ctx)
	v.bus.Publish(bus.TopicSkills)
	v.notes.Show(fmt.Sprintf("%s updated", skill.Name), notify.ToneSuccess)
	return nil
}

// RemoveSkill deletes a skill by identity.
func (v *Profile) RemoveSkill(ctx context.Context, id int64) error {
	if err := v.remote.DeleteSkill(ctx, id); err != nil {
		v.notes.Show("Error removing skill", notify.ToneError)
		return err
	}
	if !v.live() {
		return nil
	}

	v.refreshSkills(ctx)
	v.bus.Publish(bus.TopicSkills)
	v.notes.Show("Skill removed", notify.ToneSuccess)
	return nil
}

// SaveBasic persists the basic info locally. No entity topic is
// published: no other view displays this record.
func (v *Profile) SaveBasic(ctx context.Context, info identity.BasicInfo) error {
	if err := v.store.SetBasic(ctx, info); err != nil {
		v.notes.Show("Failed to save profile", notify.ToneError)
		return err
	}

	// re-read so the read-only email rule is reflected locally
	if stored, ok := v.store.Basic(ctx); ok {
		info = stored
	}
	v.apply(func() { v.basic = info })
	v.notes.Show("Profile saved!", notify.ToneSuccess)
	return nil
}

// Skills returns a copy of the skills cache.
func (v *Profile) Skills() []domain.Skill {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]domain.Skill, len(v.skills))
	copy(out, v.skills)
	return out
}

// Basic returns the current basic info.
func (v *Profile) Basic() identity.BasicInfo {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.basic
}

func (v *Profile) refreshSkills(ctx context.Context) {
	skills, err := v.remote.ListSkills(ctx)
	if err != nil {
		remote.NewLogger(ctx).LogError("profile_skills", err)
		skills = []domain.Skill{}
	}
	v.apply(func() { v.skills = skills })
}

func (v *Profile) hasSkill(name string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, s := range v.skills {
		if s.Name == name {
			return true
		}
	}
	return false
}

func (v *Profile) findSkill(id int64) (domain.Skill, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, s := range v.skills {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Skill{}, false
}

func (v *Profile) apply(fn func()) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return false
	}
	fn()
	return true
}

func (v *Profile) live() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.closed
}
