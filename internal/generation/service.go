package generation

import (
	"context"

	"github.com/SkillSynth-25-26/skillsync-client/internal/remote"
)

// Outcome is the result of a generation attempt after fallback routing.
// Fallback is set when the artifact came from the resolver instead of the
// service; Reason then records why, for diagnostics only. The user-visible
// behavior is identical for every reason.
type Outcome struct {
	Artifact Artifact
	Fallback bool
	Reason   remote.FailureKind
}

// Service routes every failed generation attempt (transport error,
// remote rejection, malformed body, unusable payload) uniformly into the
// fallback resolver, so callers always get an artifact.
type Service struct {
	client   *Client
	resolver *Resolver
}

func NewService(client *Client, resolver *Resolver) *Service {
	return &Service{client: client, resolver: resolver}
}

// Generate attempts the service once and falls back deterministically.
func (s *Service) Generate(ctx context.Context, req Request) Outcome {
	artifact, err := s.client.Generate(ctx, req)
	if err == nil {
		return Outcome{Artifact: *artifact}
	}

	kind := remote.Classify(err)
	remote.NewLogger(ctx).LogWarnf("generate_project", "falling back (%s): %v", kind, err)

	return Outcome{
		Artifact: s.resolver.Resolve(req.Skill),
		Fallback: true,
		Reason:   kind,
	}
}
