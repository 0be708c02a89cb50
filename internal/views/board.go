package views

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/SkillSynth-25-26/skillsync-client/internal/bus"
	"github.com/SkillSynth-25-26/skillsync-client/internal/notify"
	"github.com/SkillSynth-25-26/skillsync-client/internal/remote"
	"github.com/SkillSynth-25-26/skillsync-client/internal/remote/domain"
)

// ProjectDraft is the form state for creating or editing a project.
// A zero ID means create.
type ProjectDraft struct {
	ID          int64
	Title       string
	Description string
	WeeklyHours int
	Skills      []domain.RequiredSkill
}

// Board is the project board: it lists all projects and owns the
// create/edit/delete flows.
type Board struct {
	remote *remote.Client
	bus    *bus.Bus
	notes  *notify.Notifier

	mu       sync.Mutex
	closed   bool
	projects []domain.Project

	sub *bus.Subscription
}

func NewBoard(rc *remote.Client, b *bus.Bus, n *notify.Notifier) *Board {
	return &Board{remote: rc, bus: b, notes: n}
}

func (v *Board) Mount(ctx context.Context) {
	v.refresh(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.sub = v.bus.Subscribe(bus.TopicSpaces, func(bus.Topic) { v.refresh(context.Background()) })
}

func (v *Board) Unmount() {
	v.mu.Lock()
	v.closed = true
	sub := v.sub
	v.sub = nil
	v.mu.Unlock()

	sub.Unsubscribe()
}

// Refresh re-runs the list fetch. Used by the refresh scheduler.
func (v *Board) Refresh(ctx context.Context) { v.refresh(ctx) }

// Save upserts a project from form state. The experience level is
// derived here, not entered: the rounded mean of the required skill
// levels, clamped to [1,5].
func (v *Board) Save(ctx context.Context, d ProjectDraft) (*domain.Project, error) {
	skills := make([]domain.RequiredSkill, 0, len(d.Skills))
	for _, s := range d.Skills {
		if s.Category == "" {
			s.Category = "General"
		}
		skills = append(skills, s)
	}

	payload := domain.Project{
		ID:              d.ID,
		Name:            strings.TrimSpace(d.Title),
		Description:     strings.TrimSpace(d.Description),
		DateRange:       fmt.Sprintf("%dh/week", d.WeeklyHours),
		RequiredSkills:  skills,
		ExperienceLevel: domain.ExperienceLevel(skills),
	}

	saved, err := v.remote.SaveProject(ctx, payload)
	if err != nil {
		v.notes.Show("Error saving project", notify.ToneError)
		return nil, err
	}
	if !v.live() {
		return saved, nil
	}

	v.refresh(ctx)
	v.bus.Publish(bus.TopicSpaces)
	if d.ID == 0 {
		v.notes.Show("Project created!", notify.ToneSuccess)
	} else {
		v.notes.Show("Project updated!", notify.ToneSuccess)
	}
	return saved, nil
}

// Delete removes a project by identity.
func (v *Board) Delete(ctx context.Context, id int64) error {
	if err := v.remote.DeleteProject(ctx, id); err != nil {
		v.notes.Show("Error deleting project", notify.ToneError)
		return err
	}
	if !v.live() {
		return nil
	}

	v.refresh(ctx)
	v.bus.Publish(bus.TopicSpaces)
	v.notes.Show("Project deleted.", notify.ToneSuccess)
	return nil
}

// Projects returns a copy of the cache.
func (v *Board) Projects() []domain.Project {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]domain.Project, len(v.projects))
	copy(out, v.projects)
	return out
}

func (v *Board) refresh(ctx context.Context) {
	projects, err := v.remote.ListProjects(ctx, false)
	if err != nil {
		remote.NewLogger(ctx).LogError("board_projects", err)
		projects = []domain.Project{}
	}
	v.apply(func() { v.projects = projects })
}

func (v *Board) apply(fn func()) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return false
	}
	fn()
	return true
}

func (v *Board) live() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.closed
}
