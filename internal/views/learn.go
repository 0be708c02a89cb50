package views

import (
	"context"
	"fmt"
	"sync"

	"github.com/SkillSynth-25-26/skillsync-client/internal/bus"
	"github.com/SkillSynth-25-26/skillsync-client/internal/generation"
	"github.com/SkillSynth-25-26/skillsync-client/internal/notify"
	"github.com/SkillSynth-25-26/skillsync-client/internal/remote"
	"github.com/SkillSynth-25-26/skillsync-client/internal/remote/domain"
)

// Learn is the generation page: pick a skill, difficulty and weekly time
// budget, generate a project idea, then promote it into a real project
// or discard it. Generated artifacts exist only in this view's cache.
type Learn struct {
	gen    *generation.Service
	remote *remote.Client
	bus    *bus.Bus
	notes  *notify.Notifier

	mu        sync.Mutex
	closed    bool
	artifacts []generation.Artifact
	lastTier  generation.Tier
	lastHours int
}

func NewLearn(gen *generation.Service, rc *remote.Client, b *bus.Bus, n *notify.Notifier) *Learn {
	return &Learn{gen: gen, remote: rc, bus: b, notes: n, lastTier: generation.TierNovice, lastHours: 5}
}

// Mount is a no-op fetch-wise; the view starts empty. It exists so the
// lifecycle matches the other views.
func (v *Learn) Mount(ctx context.Context) {}

func (v *Learn) Unmount() {
	v.mu.Lock()
	v.closed = true
	v.mu.Unlock()
}

// Generate runs one attempt and replaces the artifact cache with the
// result. Whether the artifact came from the service or the fallback
// table is invisible here beyond the toast tone: degradation is a
// default experience, not an alarm.
func (v *Learn) Generate(ctx context.Context, skill string, tier generation.Tier, hours int) generation.Outcome {
	out := v.gen.Generate(ctx, generation.Request{Skill: skill, Tier: tier, WeeklyHours: hours})

	applied := v.apply(func() {
		v.artifacts = []generation.Artifact{out.Artifact}
		v.lastTier = tier
		v.lastHours = hours
	})
	if !applied {
		return out
	}

	if out.Fallback {
		v.notes.Show("AI unavailable - showing default project for this skill.", notify.ToneInfo)
	} else {
		v.notes.Show("Generated project using backend AI!", notify.ToneSuccess)
	}
	return out
}

// Promote turns an artifact into a project creation request. The local
// artifact is cleared first and a failing create does not bring it back.
func (v *Learn) Promote(ctx context.Context, a generation.Artifact) (*domain.Project, error) {
	v.mu.Lock()
	tier := v.lastTier
	hours := v.lastHours
	v.mu.Unlock()

	v.apply(func() { v.removeLocked(a.Title) })

	skills := make([]domain.RequiredSkill, 0, len(a.RelevantSkills))
	for _, name := range a.RelevantSkills {
		skills = append(skills, domain.RequiredSkill{Name: name, Category: "General"})
	}

	draft := domain.Project{
		Name:            a.Title,
		Description:     a.Description,
		DateRange:       fmt.Sprintf("%dh/week", hours),
		RequiredSkills:  skills,
		ExperienceLevel: tier.Level(),
	}

	created, err := v.remote.SaveProject(ctx, draft)
	if err != nil {
		v.notes.Show("Could not add project to backend", notify.ToneError)
		return nil, err
	}
	if !v.live() {
		return created, nil
	}

	v.bus.Publish(bus.TopicSpaces)
	v.notes.Show("Added to Projects & Dashboard!", notify.ToneSuccess)
	return created, nil
}

// Discard drops a generated artifact without touching the remote store.
func (v *Learn) Discard(title string) {
	if v.apply(func() { v.removeLocked(title) }) {
		v.notes.Show("Deleted project", notify.ToneInfo)
	}
}

// Artifacts returns a copy of the artifact cache.
func (v *Learn) Artifacts() []generation.Artifact {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]generation.Artifact, len(v.artifacts))
	copy(out, v.artifacts)
	return out
}

// removeLocked filters an artifact out by title. Caller holds the lock
// via apply.
func (v *Learn) removeLocked(title string) {
	kept := v.artifacts[:0]
	for _, a := range v.artifacts {
		if a.Title != title {
			kept = append(kept, a)
		}
	}
	v.artifacts = kept
}

func (v *Learn) apply(fn func()) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return false
	}
	fn()
	return true
}

func (v *Learn) live() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.closed
}
