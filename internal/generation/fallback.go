package generation

import "fmt"

// Artifact is a generated project idea. It lives only in the learn view's
// cache until the user promotes it into a real project or discards it.
type Artifact struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RelevantSkills []string `json:"relevantSkills"`
}

// Resolver maps a skill to a canned artifact whenever the generation
// service cannot supply a usable one. Resolution is deterministic so
// degradation looks like a deliberate default experience.
type Resolver struct {
	table map[string]Artifact
}

// NewResolver returns a resolver seeded with the default project table.
func NewResolver() *Resolver {
	return &Resolver{table: defaultArtifacts()}
}

// Resolve returns the canned artifact for a skill. On a table miss it
// synthesizes a generic one from the skill name alone.
func (r *Resolver) Resolve(skill string) Artifact {
	if a, ok := r.table[skill]; ok {
		return a
	}
	return Artifact{
		Title:          fmt.Sprintf("%s Practice Project", skill),
		Description:    fmt.Sprintf("Build something small using %s. Focus on its core concepts.", skill),
		RelevantSkills: []string{skill},
	}
}

func defaultArtifacts() map[string]Artifact {
	return map[string]Artifact{
		"HTML": {
			Title:          "Build a Personal Portfolio Page",
			Description:    "Create a personal portfolio using HTML and CSS. Include sections for your bio, skills, and links to your projects.",
			RelevantSkills: []string{"HTML", "CSS"},
		},
		"CSS": {
			Title:          "Responsive Landing Page",
			Description:    "Design a visually appealing landing page using Flexbox or Grid. Make it mobile-friendly!",
			RelevantSkills: []string{"CSS", "Responsive Design"},
		},
		"JavaScript": {
			Title:          "To-Do List App",
			Description:    "Build a simple to-do list that lets users add, edit, and delete tasks. Store data in localStorage.",
			RelevantSkills: []string{"JavaScript", "HTML", "CSS"},
		},
		"React": {
			Title:          "Weather Dashboard",
			Description:    "Use a weather API to display current conditions and a 5-day forecast. Learn to handle APIs in React.",
			RelevantSkills: []string{"React", "API Fetching", "Tailwind"},
		},
		"Python": {
			Title:          "Command-Line Quiz Game",
			Description:    "Write a small terminal quiz app that tracks user score. Use dictionaries and control flow.",
			RelevantSkills: []string{"Python", "Logic", "CLI"},
		},
		"Node.js": {
			Title:          "Simple REST API",
			Description:    "Build a basic Express server with CRUD endpoints for managing notes.",
			RelevantSkills: []string{"Node.js", "Express"},
		},
	}
}
