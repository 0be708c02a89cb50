package domain

import "math"

// Skill is a user skill as stored by the remote service.
// ID is server-assigned; zero means the skill has not been persisted yet.
type Skill struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Level    int    `json:"level"`
}

// RequiredSkill is a skill requirement attached to a project.
type RequiredSkill struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Level    int    `json:"level,omitempty"`
}

// Project is a project record as exchanged with the remote service.
// The wire field names follow the remote contract (projectDescription,
// recommendedSkills, dateRange).
type Project struct {
	ID              int64           `json:"id,omitempty"`
	Name            string          `json:"name"`
	Description     string          `json:"projectDescription"`
	OwnerName       string          `json:"ownerName,omitempty"`
	CreatedAt       string          `json:"createdAt,omitempty"`
	DateRange       string          `json:"dateRange,omitempty"`
	RequiredSkills  []RequiredSkill `json:"recommendedSkills"`
	ExperienceLevel int             `json:"experienceLevel"`
}

// User is the account record created at sign-in.
type User struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Level    int    `json:"level"`
}

const (
	// MinSkillLevel and MaxSkillLevel bound a skill's level slider.
	MinSkillLevel = 1
	MaxSkillLevel = 10

	// DefaultExperienceLevel is used when a project has no required skills
	// or a skill carries an unusable level.
	DefaultExperienceLevel = 3
)

// ExperienceLevel derives a project's experience level from its required
// skills: the rounded mean of the levels, clamped to [1,5]. An empty list
// yields DefaultExperienceLevel.
func ExperienceLevel(skills []RequiredSkill) int {
	if len(skills) == 0 {
		return DefaultExperienceLevel
	}

	sum := 0
	for _, s := range skills {
		lvl := s.Level
		if lvl <= 0 {
			lvl = DefaultExperienceLevel
		}
		sum += lvl
	}

	lvl := int(math.Round(float64(sum) / float64(len(skills))))
	if lvl < 1 {
		lvl = 1
	}
	if lvl > 5 {
		lvl = 5
	}
	return lvl
}
