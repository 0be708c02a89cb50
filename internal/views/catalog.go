package views

// skillCatalog is the fixed catalog users pick skills from. Skill names
// are matched case-sensitively against it.
var skillCatalog = map[string][]string{
	"Programming Languages": {"JavaScript", "TypeScript", "Python", "Java", "C#", "C++", "Go", "Rust"},
	"Web Frontend":          {"React", "Next.js", "Vue", "Tailwind CSS", "Redux", "HTML", "CSS"},
	"Web Backend":           {"Node.js", "Spring Boot", "Express", "Django", "Flask", "FastAPI"},
	"Databases":             {"PostgreSQL", "MySQL", "MongoDB", "Redis", "SQLite"},
	"DevOps & Cloud":        {"Docker", "Kubernetes", "AWS", "GCP", "Azure", "CI/CD", "Terraform"},
	"Data & ML":             {"NumPy", "Pandas", "scikit-learn", "PyTorch", "TensorFlow", "Prompt Engineering"},
}

// CatalogSkills returns the skills listed under a category.
func CatalogSkills(category string) []string {
	items := skillCatalog[category]
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// CatalogHas reports whether a skill name appears anywhere in the
// catalog, matched case-sensitively.
func CatalogHas(name string) bool {
	for _, items := range skillCatalog {
		for _, s := range items {
			if s == name {
				return true
			}
		}
	}
	return false
}
