package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeRecord() *Record {
	return &Record{
		Name:           "Jane Roe",
		Email:          "jane@example.com",
		Phone:          "+1 (555) 123-4567",
		Title:          "Engineer",
		Location:       "Berlin, Germany",
		Summary:        "Builds backend systems.",
		Skills:         []string{"Go"},
		Languages:      []string{"English"},
		Certifications: []string{},
		Achievements:   []string{},
		Hobbies:        []string{},
		Experience: []Experience{
			{Company: "Acme", Position: "Dev", Duration: "2020-2023", Description: "APIs", Responsibilities: []string{}},
		},
		Education: []Education{
			{Institution: "MIT", Degree: "BSc", Year: "2019", Coursework: []string{}},
		},
		Projects: []Project{},
		FresherDetails: FresherDetails{
			Internships:      []string{},
			AcademicProjects: []string{},
			Extracurriculars: []string{},
			Coursework:       []string{},
		},
	}
}

func TestValidateRecord(t *testing.T) {
	require.NoError(t, ValidateRecord(completeRecord()))
}

func TestValidateRecordEmptyEntities(t *testing.T) {
	rec := completeRecord()
	rec.Experience = []Experience{}
	rec.Education = []Education{}
	rec.IsFresher = true
	require.NoError(t, ValidateRecord(rec))
}

func TestValidateRecordRejectsUnidentifiedEntity(t *testing.T) {
	rec := completeRecord()
	rec.Experience = []Experience{{Duration: "2020", Responsibilities: []string{}}}
	err := ValidateRecord(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}
