package usecase

import (
	"strings"

	"resume-parser/internal/model"
	"resume-parser/internal/textproc"
)

// Fixed defaults applied when neither the parsed completion nor the text
// heuristics produce a value. A record with these defaults is still valid
// and renderable.
const (
	defaultName     = "Unknown User"
	defaultEmail    = "user@example.com"
	defaultPhone    = "+1 (555) 000-0000"
	defaultTitle    = "Professional"
	defaultLocation = "Location Not Specified"
	defaultSummary  = "Dedicated professional with relevant experience and skills."
)

// Reconcile merges the LLM output with heuristic extraction over the raw
// text and fills any remaining gaps with fixed defaults. parsed may be nil
// (LLM unavailable or unparseable); the result is a complete record either
// way. Scalars resolve parsed, then heuristic, then default; arrays are
// filtered to their element type or emptied; isFresher is always derived
// from the final experience list, never trusted from the model.
func Reconcile(parsed map[string]interface{}, text string) *model.Record {
	if parsed == nil {
		parsed = map[string]interface{}{}
	}

	rec := &model.Record{
		Name:     scalar(parsed, "name", textproc.ExtractName(text), defaultName),
		Email:    scalar(parsed, "email", textproc.ExtractEmail(text), defaultEmail),
		Phone:    scalar(parsed, "phone", textproc.ExtractPhone(text), defaultPhone),
		Title:    scalar(parsed, "title", "", defaultTitle),
		Location: scalar(parsed, "location", "", defaultLocation),
		Summary:  scalar(parsed, "summary", "", defaultSummary),
	}

	rec.Skills = stringSlice(parsed, "skills")
	if len(rec.Skills) == 0 {
		rec.Skills = textproc.ExtractSkills(text)
	}
	if rec.Skills == nil {
		rec.Skills = []string{}
	}

	rec.Languages = stringSlice(parsed, "languages")
	if len(rec.Languages) == 0 {
		rec.Languages = []string{"English"}
	}

	rec.Certifications = stringSlice(parsed, "certifications")
	rec.Achievements = stringSlice(parsed, "achievements")
	rec.Hobbies = stringSlice(parsed, "hobbies")

	rec.SocialLinks = reconcileSocialLinks(parsed, text)
	rec.Experience = reconcileExperience(parsed)
	rec.Education = reconcileEducation(parsed)
	rec.Projects = reconcileProjects(parsed)
	rec.FresherDetails = reconcileFresherDetails(parsed)

	rec.IsFresher = len(rec.Experience) == 0

	return rec
}

func reconcileSocialLinks(parsed map[string]interface{}, text string) model.SocialLinks {
	heur := textproc.ExtractSocialLinks(text)
	links := model.SocialLinks{
		LinkedIn:  heur.LinkedIn,
		GitHub:    heur.GitHub,
		Portfolio: heur.Portfolio,
		Twitter:   heur.Twitter,
	}
	m := mapField(parsed, "socialLinks")
	if m == nil {
		return links
	}
	if v := stringField(m, "linkedin"); v != "" {
		links.LinkedIn = v
	}
	if v := stringField(m, "github"); v != "" {
		links.GitHub = v
	}
	if v := stringField(m, "portfolio"); v != "" {
		links.Portfolio = v
	}
	if v := stringField(m, "twitter"); v != "" {
		links.Twitter = v
	}
	return links
}

func reconcileExperience(parsed map[string]interface{}) []model.Experience {
	out := []model.Experience{}
	for _, item := range objectSlice(parsed, "experience") {
		e := model.Experience{
			Company:          stringField(item, "company"),
			Position:         stringField(item, "position"),
			Duration:         stringField(item, "duration"),
			Description:      stringField(item, "description"),
			Responsibilities: stringSlice(item, "responsibilities"),
		}
		if e.Identifying() {
			out = append(out, e)
		}
	}
	return out
}

func reconcileEducation(parsed map[string]interface{}) []model.Education {
	out := []model.Education{}
	for _, item := range objectSlice(parsed, "education") {
		e := model.Education{
			Institution: stringField(item, "institution"),
			Degree:      stringField(item, "degree"),
			Year:        stringField(item, "year"),
			GPA:         stringField(item, "gpa"),
			Coursework:  stringSlice(item, "coursework"),
		}
		if e.Identifying() {
			out = append(out, e)
		}
	}
	return out
}

func reconcileProjects(parsed map[string]interface{}) []model.Project {
	out := []model.Project{}
	for _, item := range objectSlice(parsed, "projects") {
		p := model.Project{
			Name:         stringField(item, "name"),
			Description:  stringField(item, "description"),
			Technologies: stringSlice(item, "technologies"),
			Link:         stringField(item, "link"),
			GitHub:       stringField(item, "github"),
			Features:     stringSlice(item, "features"),
		}
		if p.Identifying() {
			out = append(out, p)
		}
	}
	return out
}

func reconcileFresherDetails(parsed map[string]interface{}) model.FresherDetails {
	m := mapField(parsed, "fresherDetails")
	if m == nil {
		m = map[string]interface{}{}
	}
	return model.FresherDetails{
		Internships:      stringSlice(m, "internships"),
		AcademicProjects: stringSlice(m, "academicProjects"),
		Extracurriculars: stringSlice(m, "extracurriculars"),
		Coursework:       stringSlice(m, "coursework"),
	}
}

// scalar resolves a string field through the three tiers.
func scalar(m map[string]interface{}, key, heuristic, fallback string) string {
	if v := stringField(m, key); v != "" {
		return v
	}
	if heuristic != "" {
		return heuristic
	}
	return fallback
}

func stringField(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	if s, ok := m[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func mapField(m map[string]interface{}, key string) map[string]interface{} {
	if m == nil {
		return nil
	}
	if mm, ok := m[key].(map[string]interface{}); ok {
		return mm
	}
	return nil
}

// stringSlice pulls m[key] as a string array, keeping only non-empty string
// elements. Anything that isn't an array collapses to [].
func stringSlice(m map[string]interface{}, key string) []string {
	out := []string{}
	if m == nil {
		return out
	}
	arr, ok := m[key].([]interface{})
	if !ok {
		return out
	}
	for _, item := range arr {
		if s, ok := item.(string); ok {
			s = strings.TrimSpace(s)
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func objectSlice(m map[string]interface{}, key string) []map[string]interface{} {
	out := []map[string]interface{}{}
	if m == nil {
		return out
	}
	arr, ok := m[key].([]interface{})
	if !ok {
		return out
	}
	for _, item := range arr {
		if obj, ok := item.(map[string]interface{}); ok {
			out = append(out, obj)
		}
	}
	return out
}
