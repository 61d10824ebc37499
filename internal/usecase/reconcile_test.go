package usecase

import (
	"testing"

	"resume-parser/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = `John Smith
Software Engineer
john.smith@example.com
+1 (555) 123-4567
https://github.com/jsmith

Skilled in Python and React. Recent graduate seeking opportunities.`

func TestReconcileNilParsed(t *testing.T) {
	rec := Reconcile(nil, sampleText)
	require.NotNil(t, rec)
	assert.Equal(t, "John Smith", rec.Name)
	assert.Equal(t, "john.smith@example.com", rec.Email)
	assert.Equal(t, "+1 (555) 123-4567", rec.Phone)
	assert.Equal(t, []string{"Python", "React"}, rec.Skills)
	assert.Equal(t, "https://github.com/jsmith", rec.SocialLinks.GitHub)
	assert.True(t, rec.IsFresher)
	assert.Empty(t, rec.Experience)
	// gaps close with fixed defaults
	assert.Equal(t, "Professional", rec.Title)
	assert.Equal(t, "Location Not Specified", rec.Location)
	assert.Equal(t, []string{"English"}, rec.Languages)
	require.NoError(t, model.ValidateRecord(rec))
}

func TestReconcileEmptyEverything(t *testing.T) {
	rec := Reconcile(map[string]interface{}{}, "")
	assert.Equal(t, "Unknown User", rec.Name)
	assert.Equal(t, "user@example.com", rec.Email)
	assert.Equal(t, "+1 (555) 000-0000", rec.Phone)
	assert.Equal(t, "Dedicated professional with relevant experience and skills.", rec.Summary)
	assert.NotNil(t, rec.Skills)
	assert.NotNil(t, rec.Certifications)
	assert.NotNil(t, rec.FresherDetails.Internships)
	assert.True(t, rec.IsFresher)
	require.NoError(t, model.ValidateRecord(rec))
}

func TestReconcileParsedWins(t *testing.T) {
	parsed := map[string]interface{}{
		"name":   "Jane Roe",
		"email":  "jane@corp.io",
		"title":  "Staff Engineer",
		"skills": []interface{}{"Go", "Kubernetes"},
		"socialLinks": map[string]interface{}{
			"linkedin": "https://linkedin.com/in/jane",
		},
	}
	rec := Reconcile(parsed, sampleText)
	assert.Equal(t, "Jane Roe", rec.Name)
	assert.Equal(t, "jane@corp.io", rec.Email)
	assert.Equal(t, "Staff Engineer", rec.Title)
	assert.Equal(t, []string{"Go", "Kubernetes"}, rec.Skills)
	assert.Equal(t, "https://linkedin.com/in/jane", rec.SocialLinks.LinkedIn)
	// heuristic fills subfields the model omitted
	assert.Equal(t, "https://github.com/jsmith", rec.SocialLinks.GitHub)
	// heuristic phone still applies when model omitted it
	assert.Equal(t, "+1 (555) 123-4567", rec.Phone)
}

func TestReconcileWrongTypesCollapse(t *testing.T) {
	parsed := map[string]interface{}{
		"name":        42,
		"skills":      "not an array",
		"experience":  map[string]interface{}{"company": "X"},
		"socialLinks": "nope",
		"languages":   []interface{}{1, 2},
	}
	rec := Reconcile(parsed, "")
	assert.Equal(t, "Unknown User", rec.Name)
	assert.Equal(t, []string{}, rec.Skills)
	assert.Empty(t, rec.Experience)
	assert.Equal(t, []string{"English"}, rec.Languages)
	require.NoError(t, model.ValidateRecord(rec))
}

func TestReconcileEntityFiltering(t *testing.T) {
	parsed := map[string]interface{}{
		"experience": []interface{}{
			map[string]interface{}{"company": "Acme", "position": "Dev"},
			map[string]interface{}{"duration": "2019-2021"}, // no identity, dropped
			"not an object",
		},
		"education": []interface{}{
			map[string]interface{}{"institution": "MIT"},
			map[string]interface{}{"year": "2020"},
		},
		"projects": []interface{}{
			map[string]interface{}{"name": "Parser", "technologies": []interface{}{"Go"}},
			map[string]interface{}{"link": "https://x.dev"},
		},
	}
	rec := Reconcile(parsed, "")
	require.Len(t, rec.Experience, 1)
	assert.Equal(t, "Acme", rec.Experience[0].Company)
	assert.NotNil(t, rec.Experience[0].Responsibilities)
	require.Len(t, rec.Education, 1)
	assert.Equal(t, "MIT", rec.Education[0].Institution)
	require.Len(t, rec.Projects, 1)
	assert.Equal(t, "Parser", rec.Projects[0].Name)
	assert.False(t, rec.IsFresher)
}

func TestReconcileIsFresherAlwaysDerived(t *testing.T) {
	// the model's own isFresher claim is ignored
	parsed := map[string]interface{}{
		"isFresher": false,
	}
	rec := Reconcile(parsed, "")
	assert.True(t, rec.IsFresher)

	parsed = map[string]interface{}{
		"isFresher": true,
		"experience": []interface{}{
			map[string]interface{}{"company": "Acme"},
		},
	}
	rec = Reconcile(parsed, "")
	assert.False(t, rec.IsFresher)
}

func TestReconcileFresherDetails(t *testing.T) {
	parsed := map[string]interface{}{
		"fresherDetails": map[string]interface{}{
			"internships":      []interface{}{"Summer at Acme"},
			"academicProjects": []interface{}{"Compiler project"},
		},
	}
	rec := Reconcile(parsed, "")
	assert.Equal(t, []string{"Summer at Acme"}, rec.FresherDetails.Internships)
	assert.Equal(t, []string{"Compiler project"}, rec.FresherDetails.AcademicProjects)
	assert.Equal(t, []string{}, rec.FresherDetails.Extracurriculars)
}

func TestReconcileArraysDropNonStrings(t *testing.T) {
	parsed := map[string]interface{}{
		"skills": []interface{}{"Go", 7, "", " SQL "},
	}
	rec := Reconcile(parsed, "")
	assert.Equal(t, []string{"Go", "SQL"}, rec.Skills)
}
