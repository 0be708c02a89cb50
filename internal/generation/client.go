package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/SkillSynth-25-26/skillsync-client/internal/remote"
)

// unavailableSentinel marks a syntactically valid response the generation
// service sends when it cannot actually generate. Matched case-insensitively.
const unavailableSentinel = "ai generation service unavailable"

// DefaultTimeout bounds one generation round trip. The service can be
// slow; a hung call resolves through this transport timeout and is then
// treated as a transport failure.
const DefaultTimeout = 30 * time.Second

// Request is the context for one generation attempt.
type Request struct {
	Skill       string
	Tier        Tier
	WeeklyHours int
}

// Client attempts a single call to the generation service. It returns a
// usable artifact or a classified failure; it never retries and never
// falls back on its own.
type Client struct {
	baseURL string
	httpc   *http.Client
	limiter *rate.Limiter
}

// NewClient creates a generation client for the given API base URL.
// A non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		// one request per second keeps repeated Generate clicks from
		// hammering the model backend
		limiter: rate.NewLimiter(rate.Limit(1), 1),
	}
}

type generateRequest struct {
	MainSkills       []string `json:"main_skills"`
	TimeAvailability int      `json:"time_availability"`
	ExperienceLevel  int      `json:"experience_level"`
}

type generateResponse struct {
	Project *struct {
		ProjectName    string   `json:"project_name"`
		Description    string   `json:"description"`
		RelevantSkills []string `json:"relevant_skills"`
	} `json:"project"`
}

// Generate runs one attempt against POST {base}/ml/generate-project.
// Any returned error is a *remote.Failure carrying the classified kind.
func (c *Client) Generate(ctx context.Context, req Request) (*Artifact, error) {
	const op = "generate_project"

	if strings.TrimSpace(req.Skill) == "" {
		return nil, remote.Validationf(op, "skill required")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, remote.Transportf(op, err)
	}

	body := generateRequest{
		MainSkills:       []string{req.Skill},
		TimeAvailability: req.WeeklyHours,
		ExperienceLevel:  req.Tier.Level(),
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, remote.Validationf(op, "encode request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ml/generate-project", bytes.NewReader(raw))
	if err != nil {
		return nil, remote.Validationf(op, "create request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, remote.Transportf(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, remote.Rejectedf(op, resp.StatusCode, "generation service error")
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, remote.Degradedf(op, fmt.Errorf("decode response: %w", err))
	}

	p := parsed.Project
	if p == nil || !usableDescription(p.Description) {
		return nil, remote.Degradedf(op, fmt.Errorf("service returned unusable payload"))
	}

	title := p.ProjectName
	if title == "" {
		title = fmt.Sprintf("%s Practice Project", req.Skill)
	}
	skills := p.RelevantSkills
	if skills == nil {
		skills = []string{}
	}

	return &Artifact{
		Title:          title,
		Description:    p.Description,
		RelevantSkills: skills,
	}, nil
}

// usableDescription is the success criterion for treating a response as
// real: non-empty and not the explicit unavailability message.
func usableDescription(desc string) bool {
	trimmed := strings.TrimSpace(desc)
	if trimmed == "" {
		return false
	}
	return !strings.Contains(strings.ToLower(trimmed), unavailableSentinel)
}
