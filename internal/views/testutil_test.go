package views

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/SkillSynth-25-26/skillsync-client/internal/bus"
	"github.com/SkillSynth-25-26/skillsync-client/internal/notify"
	"github.com/SkillSynth-25-26/skillsync-client/internal/remote"
	"github.com/SkillSynth-25-26/skillsync-client/internal/remote/domain"
)

// fakeBackend is an in-memory stand-in for the remote CRUD service.
// Every mutation goes through its lock so tests can race views safely.
type fakeBackend struct {
	mu       sync.Mutex
	nextID   int64
	skills   []domain.Skill
	projects []domain.Project

	delay      time.Duration // applied to every request
	failStatus int           // when set, every request fails with it
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{}
}

func (f *fakeBackend) server(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /skills", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		out := append([]domain.Skill(nil), f.skills...)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("POST /skills", func(w http.ResponseWriter, r *http.Request) {
		var in domain.Skill
		json.NewDecoder(r.Body).Decode(&in)
		f.mu.Lock()
		f.nextID++
		in.ID = f.nextID
		if in.Level == 0 {
			in.Level = 1
		}
		f.skills = append(f.skills, in)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(in)
	})
	mux.HandleFunc("PUT /skills", func(w http.ResponseWriter, r *http.Request) {
		var in domain.Skill
		json.NewDecoder(r.Body).Decode(&in)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.skills {
			if f.skills[i].ID == in.ID {
				f.skills[i] = in
				json.NewEncoder(w).Encode(in)
				return
			}
		}
		http.Error(w, "skill not found", http.StatusNotFound)
	})
	mux.HandleFunc("DELETE /skills/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.skills {
			if f.skills[i].ID == id {
				f.skills = append(f.skills[:i], f.skills[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		http.Error(w, "skill not found", http.StatusNotFound)
	})
	mux.HandleFunc("GET /projects", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		out := append([]domain.Project(nil), f.projects...)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(out)
	})
	mux.HandleFunc("POST /projects", func(w http.ResponseWriter, r *http.Request) {
		var in domain.Project
		json.NewDecoder(r.Body).Decode(&in)
		f.mu.Lock()
		f.nextID++
		in.ID = f.nextID
		f.projects = append(f.projects, in)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(in)
	})
	mux.HandleFunc("PUT /projects", func(w http.ResponseWriter, r *http.Request) {
		var in domain.Project
		json.NewDecoder(r.Body).Decode(&in)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.projects {
			if f.projects[i].ID == in.ID {
				f.projects[i] = in
				json.NewEncoder(w).Encode(in)
				return
			}
		}
		http.Error(w, "project not found", http.StatusNotFound)
	})
	mux.HandleFunc("DELETE /projects/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i := range f.projects {
			if f.projects[i].ID == id {
				f.projects = append(f.projects[:i], f.projects[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		http.Error(w, "project not found", http.StatusNotFound)
	})
	mux.HandleFunc("POST /users", func(w http.ResponseWriter, r *http.Request) {
		var in domain.User
		json.NewDecoder(r.Body).Decode(&in)
		in.ID = 1
		json.NewEncoder(w).Encode(in)
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		delay := f.delay
		fail := f.failStatus
		f.mu.Unlock()

		if delay > 0 {
			time.Sleep(delay)
		}
		if fail != 0 {
			http.Error(w, "forced failure", fail)
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

func (f *fakeBackend) setDelay(d time.Duration) {
	f.mu.Lock()
	f.delay = d
	f.mu.Unlock()
}

func (f *fakeBackend) setFailStatus(code int) {
	f.mu.Lock()
	f.failStatus = code
	f.mu.Unlock()
}

func (f *fakeBackend) addSkill(name, category string, level int) domain.Skill {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	s := domain.Skill{ID: f.nextID, Name: name, Category: category, Level: level}
	f.skills = append(f.skills, s)
	return s
}

func (f *fakeBackend) addProject(name, description string) domain.Project {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p := domain.Project{ID: f.nextID, Name: name, Description: description}
	f.projects = append(f.projects, p)
	return p
}

// setupView wires a view's collaborators against a fake backend.
func setupView(t *testing.T, backend *fakeBackend) (*remote.Client, *bus.Bus, *notify.Notifier) {
	t.Helper()
	server := backend.server(t)
	return remote.NewClient(server.URL), bus.New(), notify.New(time.Minute)
}

func currentToast(t *testing.T, n *notify.Notifier) notify.Message {
	t.Helper()
	msg, ok := n.Current()
	if !ok {
		t.Fatal("expected a toast")
	}
	return msg
}
