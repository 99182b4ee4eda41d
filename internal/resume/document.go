// Package resume defines the canonical document model: the aggregate a
// session edits, a snapshot persists, and a template renders.
package resume

// PersonalInfo holds the scalar contact fields. All fields are optional
// free text; empty strings are valid.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	JobTitle string `json:"jobTitle"`
}

// Experience is one work history entry. ID is assigned at creation and
// never changes; every other field is freely mutable. Dates are free text,
// not parsed as calendar dates. Description may contain embedded newlines
// representing bullet points.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// Education is one education entry.
type Education struct {
	ID             string `json:"id"`
	School         string `json:"school"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationDate string `json:"graduationDate"`
	Location       string `json:"location"`
}

// Skill is one skill entry. Level is a free-text label such as
// "Beginner", "Intermediate" or "Expert"; it is not constrained to an enum.
type Skill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Project is one project entry. Link is a free-text URL or label.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// DefaultSkillLevel is the level assigned to freshly added skills.
const DefaultSkillLevel = "Intermediate"

// Document is the aggregate root: one PersonalInfo, one summary string and
// four independently ordered sequences. Insertion order within each
// sequence is display order.
type Document struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []Skill      `json:"skills"`
	Projects     []Project    `json:"projects"`
}

// NewDocument returns a fresh document with all scalar fields empty and all
// sequences empty (non-nil, so snapshots serialize as [] rather than null).
func NewDocument() *Document {
	return &Document{
		Experience: []Experience{},
		Education:  []Education{},
		Skills:     []Skill{},
		Projects:   []Project{},
	}
}

// Clone returns a deep copy. Enrichment and persistence operate on clones so
// they never hold a live reference into the session-owned document.
func (d *Document) Clone() *Document {
	c := &Document{
		PersonalInfo: d.PersonalInfo,
		Summary:      d.Summary,
		Experience:   make([]Experience, len(d.Experience)),
		Education:    make([]Education, len(d.Education)),
		Skills:       make([]Skill, len(d.Skills)),
		Projects:     make([]Project, len(d.Projects)),
	}
	copy(c.Experience, d.Experience)
	copy(c.Education, d.Education)
	copy(c.Skills, d.Skills)
	copy(c.Projects, d.Projects)
	return c
}

// IsEmpty reports whether the document carries no user data at all.
func (d *Document) IsEmpty() bool {
	return d.PersonalInfo == (PersonalInfo{}) &&
		d.Summary == "" &&
		len(d.Experience) == 0 &&
		len(d.Education) == 0 &&
		len(d.Skills) == 0 &&
		len(d.Projects) == 0
}

// ExperienceByID returns a pointer into the experience sequence, or nil.
func (d *Document) ExperienceByID(id string) *Experience {
	for i := range d.Experience {
		if d.Experience[i].ID == id {
			return &d.Experience[i]
		}
	}
	return nil
}

// Normalize ensures all sequences are non-nil. Applied after deserializing
// foreign snapshots where sections may be missing or null.
func (d *Document) Normalize() {
	if d.Experience == nil {
		d.Experience = []Experience{}
	}
	if d.Education == nil {
		d.Education = []Education{}
	}
	if d.Skills == nil {
		d.Skills = []Skill{}
	}
	if d.Projects == nil {
		d.Projects = []Project{}
	}
}
