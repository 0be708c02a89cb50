// Package identity persists the active user's display identity in a
// small key-value store so views can render "who is this" without a
// server round trip. Reads never fail loudly: a missing or malformed
// value resolves to an explicit absent state that callers treat as
// first-run.
package identity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/SkillSynth-25-26/skillsync-client/internal/remote"
)

const (
	nameKey  = "profile.name"
	basicKey = "profile.basic"
)

// AvailabilityBands is the fixed enumeration of weekly availability
// ranges a profile may carry.
var AvailabilityBands = []string{"1-3h", "4-7h", "8-12h", "13-20h", "20+h"}

// Contact is the profile contact sub-record. Email is read-only once
// set; Discord stays mutable.
type Contact struct {
	Email   string `json:"email,omitempty"`
	Discord string `json:"discord,omitempty"`
}

// BasicInfo is the locally persisted profile record.
type BasicInfo struct {
	FullName     string  `json:"fullName"`
	Availability string  `json:"availability"`
	Contact      Contact `json:"contact"`
}

// Store wraps the key-value backend. Values are stored as their
// canonical JSON text form. Writes also fire the identity observable so
// concurrently mounted views react to a sign-in without a reload.
type Store struct {
	client  *redis.Client
	changes *Observable
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client, changes: NewObservable()}
}

// Changes exposes the identity-changed observable.
func (s *Store) Changes() *Observable { return s.changes }

// Name returns the stored display name, or ok=false when absent or
// unreadable.
func (s *Store) Name(ctx context.Context) (string, bool) {
	raw, err := s.client.Get(ctx, nameKey).Result()
	if err != nil {
		if err != redis.Nil {
			remote.NewLogger(ctx).LogWarnf("identity_get", "read %s: %v", nameKey, err)
		}
		return "", false
	}

	var name string
	if err := json.Unmarshal([]byte(raw), &name); err != nil || name == "" {
		return "", false
	}
	return name, true
}

// SetName stores the display name and announces the identity change.
func (s *Store) SetName(ctx context.Context, name string) error {
	if name == "" {
		return remote.Validationf("identity_set", "display name required")
	}

	raw, err := json.Marshal(name)
	if err != nil {
		return fmt.Errorf("encode display name: %w", err)
	}
	if err := s.client.Set(ctx, nameKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("store display name: %w", err)
	}

	s.changes.Set(name)
	return nil
}

// Basic returns the stored profile record, or ok=false when absent or
// unreadable.
func (s *Store) Basic(ctx context.Context) (BasicInfo, bool) {
	raw, err := s.client.Get(ctx, basicKey).Result()
	if err != nil {
		if err != redis.Nil {
			remote.NewLogger(ctx).LogWarnf("identity_get", "read %s: %v", basicKey, err)
		}
		return BasicInfo{}, false
	}

	var info BasicInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return BasicInfo{}, false
	}
	return info, true
}

// SetBasic validates and stores the profile record. The availability band
// must come from the fixed enumeration, and a previously set email wins
// over whatever the caller passes in.
func (s *Store) SetBasic(ctx context.Context, info BasicInfo) error {
	const op = "identity_set"

	if info.FullName == "" {
		return remote.Validationf(op, "full name required")
	}
	if !validBand(info.Availability) {
		return remote.Validationf(op, "availability %q not in %v", info.Availability, AvailabilityBands)
	}

	if existing, ok := s.Basic(ctx); ok && existing.Contact.Email != "" {
		info.Contact.Email = existing.Contact.Email
	}

	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.client.Set(ctx, basicKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("store profile: %w", err)
	}

	s.changes.Set(info.FullName)
	return nil
}

func validBand(band string) bool {
	for _, b := range AvailabilityBands {
		if b == band {
			return true
		}
	}
	return false
}
