package ai

import "fmt"

// DefaultPromptBudget bounds how much resume text goes into the prompt,
// keeping well inside the model context window.
const DefaultPromptBudget = 6000

// truncationMarker is appended when the text is cut at the budget.
const truncationMarker = "..."

// Prompt is a bounded instruction prompt built from normalized resume text.
type Prompt struct {
	Text      string
	Truncated bool
}

// promptTemplate is versioned: the field set here and the reconciler's
// expected keys must change in lockstep.
const promptTemplate = `Parse this resume and extract structured information. Return ONLY valid JSON.

RESUME TEXT:
%s

Extract information and return JSON with this structure:
{
  "name": "Full name",
  "email": "email@domain.com",
  "phone": "phone number",
  "title": "job title or role",
  "location": "city, state/country",
  "summary": "professional summary",
  "skills": ["skill1", "skill2"],
  "languages": ["language1", "language2"],
  "certifications": ["cert1", "cert2"],
  "achievements": ["achievement1", "achievement2"],
  "hobbies": ["hobby1", "hobby2"],
  "socialLinks": {
    "linkedin": "LinkedIn URL",
    "github": "GitHub URL",
    "portfolio": "Portfolio URL",
    "twitter": "Twitter URL"
  },
  "experience": [
    {
      "company": "Company Name",
      "position": "Job Title",
      "duration": "Start - End dates",
      "description": "What they did in this role",
      "responsibilities": ["task1", "task2"]
    }
  ],
  "education": [
    {
      "institution": "School Name",
      "degree": "Degree Name",
      "year": "Year or duration",
      "gpa": "GPA if mentioned",
      "coursework": ["course1", "course2"]
    }
  ],
  "projects": [
    {
      "name": "Project Name",
      "description": "What the project does",
      "technologies": ["tech1", "tech2"],
      "link": "project URL if any",
      "github": "repository URL if any",
      "features": ["feature1", "feature2"]
    }
  ],
  "fresherDetails": {
    "internships": ["internship1"],
    "academicProjects": ["project1"],
    "extracurriculars": ["activity1"],
    "coursework": ["course1"]
  }
}

Rules:
- Extract ALL information present
- Use empty strings/arrays for missing data
- Ensure valid JSON format
- No explanations, just JSON`

// BuildPrompt truncates text to the budget, marking the cut, and wraps it
// in the instruction template. Deterministic.
func BuildPrompt(text string, budget int) Prompt {
	if budget <= 0 {
		budget = DefaultPromptBudget
	}
	truncated := false
	if len(text) > budget {
		text = text[:budget] + truncationMarker
		truncated = true
	}
	return Prompt{
		Text:      fmt.Sprintf(promptTemplate, text),
		Truncated: truncated,
	}
}
