package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/SkillSynth-25-26/skillsync-client/internal/remote/domain"
)

// DefaultTimeout bounds any single CRUD round trip.
const DefaultTimeout = 15 * time.Second

// Client is a typed wrapper around the remote CRUD service for skills,
// projects and users. It never touches the event bus or any cache;
// callers decide who needs to know about a successful write.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient creates a client for the given API base URL (for example
// "http://localhost:8080/api").
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: DefaultTimeout},
	}
}

// ListSkills fetches all skills for the active user.
func (c *Client) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	var out []domain.Skill
	if err := c.do(ctx, http.MethodGet, "/skills", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSkill adds a new skill. The remote service assigns the identity
// and the starting level.
func (c *Client) CreateSkill(ctx context.Context, name, category string) (*domain.Skill, error) {
	const op = "create_skill"
	if strings.TrimSpace(name) == "" {
		return nil, Validationf(op, "skill name required")
	}
	if category == "" {
		category = "General"
	}

	in := domain.Skill{Name: name, Category: category}
	var out domain.Skill
	if err := c.do(ctx, http.MethodPost, "/skills", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSkill replaces a persisted skill, typically to adjust its level.
func (c *Client) UpdateSkill(ctx context.Context, s domain.Skill) (*domain.Skill, error) {
	const op = "update_skill"
	if s.ID == 0 {
		return nil, Validationf(op, "skill id required")
	}
	if s.Level < domain.MinSkillLevel || s.Level > domain.MaxSkillLevel {
		return nil, Validationf(op, "skill level %d out of range", s.Level)
	}

	var out domain.Skill
	if err := c.do(ctx, http.MethodPut, "/skills", s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteSkill removes a skill by identity.
func (c *Client) DeleteSkill(ctx context.Context, id int64) error {
	if id == 0 {
		return Validationf("delete_skill", "skill id required")
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/skills/%d", id), nil, nil)
}

// ListProjects fetches projects. With ownerOnly set, only projects owned
// by the active user are returned.
func (c *Client) ListProjects(ctx context.Context, ownerOnly bool) ([]domain.Project, error) {
	path := "/projects"
	if ownerOnly {
		path += "?owner=true"
	}
	var out []domain.Project
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveProject upserts a project: POST when the project has no identity
// yet, PUT otherwise.
func (c *Client) SaveProject(ctx context.Context, p domain.Project) (*domain.Project, error) {
	const op = "save_project"
	if strings.TrimSpace(p.Name) == "" {
		return nil, Validationf(op, "project name required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return nil, Validationf(op, "project description required")
	}

	method := http.MethodPost
	if p.ID != 0 {
		method = http.MethodPut
	}

	var out domain.Project
	if err := c.do(ctx, method, "/projects", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProject removes a project by identity.
func (c *Client) DeleteProject(ctx context.Context, id int64) error {
	if id == 0 {
		return Validationf("delete_project", "project id required")
	}
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil, nil)
}

// CreateUser registers a user at sign-in.
func (c *Client) CreateUser(ctx context.Context, username string, level int) (*domain.User, error) {
	const op = "create_user"
	if strings.TrimSpace(username) == "" {
		return nil, Validationf(op, "username required")
	}
	if level <= 0 {
		level = 1
	}

	in := domain.User{Username: username, Level: level}
	var out domain.User
	if err := c.do(ctx, http.MethodPost, "/users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do runs one request against the remote service and normalizes the
// outcome into the failure taxonomy. A nil out skips body decoding.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	op := strings.ToLower(method) + " " + path
	logger := NewLogger(ctx)

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return Validationf(op, "encode request: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return Validationf(op, "create request: %v", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		logger.LogError(op, err)
		return Transportf(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
		logger.LogWarnf(op, "remote returned status %d", resp.StatusCode)
		return Rejectedf(op, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.LogError(op, err)
		return Degradedf(op, fmt.Errorf("decode response: %w", err))
	}
	return nil
}
