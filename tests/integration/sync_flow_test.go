package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkillSynth-25-26/skillsync-client/internal/bus"
	"github.com/SkillSynth-25-26/skillsync-client/internal/identity"
	"github.com/SkillSynth-25-26/skillsync-client/internal/notify"
	"github.com/SkillSynth-25-26/skillsync-client/internal/remote"
	"github.com/SkillSynth-25-26/skillsync-client/internal/remote/domain"
	"github.com/SkillSynth-25-26/skillsync-client/internal/views"
)

// memoryBackend is a minimal CRUD service holding skills and projects in
// memory, enough for the full view set to run against.
type memoryBackend struct {
	mu       sync.Mutex
	nextID   int64
	skills   []domain.Skill
	projects []domain.Project
}

func (m *memoryBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /skills", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		out := append([]domain.Skill(nil), m.skills...)
		m.mu.Unlock()
		json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("POST /skills", func(w http.ResponseWriter, r *http.Request) {
		var in domain.Skill
		json.NewDecoder(r.Body).Decode(&in)
		m.mu.Lock()
		m.nextID++
		in.ID = m.nextID
		if in.Level == 0 {
			in.Level = 1
		}
		m.skills = append(m.skills, in)
		m.mu.Unlock()
		json.NewEncoder(w).Encode(in)
	})
	mux.HandleFunc("DELETE /skills/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		m.mu.Lock()
		defer m.mu.Unlock()
		for i := range m.skills {
			if m.skills[i].ID == id {
				m.skills = append(m.skills[:i], m.skills[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		http.Error(w, "not found", http.StatusNotFound)
	})
	mux.HandleFunc("GET /projects", func(w http.ResponseWriter, r *http.Request) {
		m.mu.Lock()
		out := append([]domain.Project(nil), m.projects...)
		m.mu.Unlock()
		json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("POST /projects", func(w http.ResponseWriter, r *http.Request) {
		var in domain.Project
		json.NewDecoder(r.Body).Decode(&in)
		m.mu.Lock()
		m.nextID++
		in.ID = m.nextID
		m.projects = append(m.projects, in)
		m.mu.Unlock()
		json.NewEncoder(w).Encode(in)
	})
	mux.HandleFunc("DELETE /projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		m.mu.Lock()
		defer m.mu.Unlock()
		for i := range m.projects {
			if m.projects[i].ID == id {
				m.projects = append(m.projects[:i], m.projects[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		http.Error(w, "not found", http.StatusNotFound)
	})
	mux.HandleFunc("POST /users", func(w http.ResponseWriter, r *http.Request) {
		var in domain.User
		json.NewDecoder(r.Body).Decode(&in)
		in.ID = 1
		json.NewEncoder(w).Encode(in)
	})

	return mux
}

type fixture struct {
	bus       *bus.Bus
	store     *identity.Store
	remote    *remote.Client
	dashboard *views.Dashboard
	board     *views.Board
	profile   *views.Profile
	signin    *views.SignIn
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	backend := &memoryBackend{}
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	rc := remote.NewClient(server.URL)
	store := identity.NewStore(redisClient)
	topics := bus.New()

	f := &fixture{
		bus:       topics,
		store:     store,
		remote:    rc,
		dashboard: views.NewDashboard(rc, topics, notify.New(time.Minute)),
		board:     views.NewBoard(rc, topics, notify.New(time.Minute)),
		profile:   views.NewProfile(rc, store, topics, notify.New(time.Minute)),
		signin:    views.NewSignIn(rc, store, notify.New(time.Minute)),
	}

	ctx := context.Background()
	f.dashboard.Mount(ctx)
	f.board.Mount(ctx)
	f.profile.Mount(ctx)
	t.Cleanup(func() {
		f.profile.Unmount()
		f.board.Unmount()
		f.dashboard.Unmount()
	})
	return f
}

func TestSkillMutationPropagatesAcrossViews(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.Empty(t, f.dashboard.Skills())

	err := f.profile.AddSkill(ctx, "Docker", "DevOps & Cloud")
	require.NoError(t, err)

	// the dashboard re-fetched on the publish, without touching profile state
	dash := f.dashboard.Skills()
	require.Len(t, dash, 1)
	assert.Equal(t, "Docker", dash[0].Name)

	prof := f.profile.Skills()
	require.Len(t, prof, 1)
	assert.Equal(t, dash[0].ID, prof[0].ID)
}

func TestProjectMutationsConvergeAcrossViews(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	saved, err := f.board.Save(ctx, views.ProjectDraft{
		Title:       "Weather Dashboard",
		Description: "Use a weather API.",
		WeeklyHours: 6,
		Skills:      []domain.RequiredSkill{{Name: "React", Level: 4}},
	})
	require.NoError(t, err)

	spaces := f.dashboard.Spaces()
	require.Len(t, spaces, 1)
	assert.Equal(t, saved.ID, spaces[0].ID)

	// delete from the dashboard; the board converges on the same state
	require.NoError(t, f.dashboard.DeleteSpace(ctx, saved.ID))
	assert.Empty(t, f.board.Projects())
	assert.Empty(t, f.dashboard.Spaces())
}

func TestOverlappingMutationsConverge(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	first, err := f.board.Save(ctx, views.ProjectDraft{Title: "First", Description: "One.", WeeklyHours: 2})
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		f.board.Save(ctx, views.ProjectDraft{Title: "Second", Description: "Two.", WeeklyHours: 3})
	}()
	go func() {
		defer wg.Done()
		f.dashboard.DeleteSpace(ctx, first.ID)
	}()
	wg.Wait()

	// force one more convergence round; every cache must equal the backend
	f.bus.Publish(bus.TopicSpaces)

	boardState := f.board.Projects()
	dashState := f.dashboard.Spaces()
	require.Equal(t, len(boardState), len(dashState))
	require.Len(t, boardState, 1)
	assert.Equal(t, "Second", boardState[0].Name)
}

func TestSignInSeedsProfileIdentity(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	_, err := f.signin.Submit(ctx, "alex")
	require.NoError(t, err)

	// a profile mounted after sign-in picks up the stored name
	profile := views.NewProfile(f.remote, f.store, f.bus, notify.New(time.Minute))
	profile.Mount(ctx)
	defer profile.Unmount()

	assert.Equal(t, "alex", profile.Basic().FullName)
}
