package model

// Go models that match record.schema.json; this is the canonical shape of a
// parsed resume handed to the UI and export layers. Every field is always
// present in serialized output - the reconciler guarantees it.

type SocialLinks struct {
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
	Twitter   string `json:"twitter"`
}

type Experience struct {
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	Duration         string   `json:"duration"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
}

// Identifying reports whether the entry carries enough content to keep.
func (e Experience) Identifying() bool {
	return e.Company != "" || e.Position != ""
}

type Education struct {
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Year        string   `json:"year"`
	GPA         string   `json:"gpa"`
	Coursework  []string `json:"coursework"`
}

func (e Education) Identifying() bool {
	return e.Institution != "" || e.Degree != ""
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
	GitHub       string   `json:"github"`
	Features     []string `json:"features"`
}

func (p Project) Identifying() bool {
	return p.Name != "" || p.Description != ""
}

type FresherDetails struct {
	Internships      []string `json:"internships"`
	AcademicProjects []string `json:"academicProjects"`
	Extracurriculars []string `json:"extracurriculars"`
	Coursework       []string `json:"coursework"`
}

type Record struct {
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	Title          string         `json:"title"`
	Location       string         `json:"location"`
	Summary        string         `json:"summary"`
	Skills         []string       `json:"skills"`
	Languages      []string       `json:"languages"`
	Certifications []string       `json:"certifications"`
	Achievements   []string       `json:"achievements"`
	Hobbies        []string       `json:"hobbies"`
	SocialLinks    SocialLinks    `json:"socialLinks"`
	Experience     []Experience   `json:"experience"`
	Education      []Education    `json:"education"`
	Projects       []Project      `json:"projects"`
	IsFresher      bool           `json:"isFresher"`
	FresherDetails FresherDetails `json:"fresherDetails"`
}
