// Package render turns a parsed resume record into a static portfolio
// site bundle that can be hosted as-is.
package render

import (
	"archive/zip"
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"resume-parser/internal/model"
)

// DefaultTemplate is used when the requested template id is unknown.
const DefaultTemplate = "modern"

// Bundle holds the generated site files.
type Bundle struct {
	HTML string
	CSS  string
	JS   string
}

var templateStyles = map[string]string{
	"modern": `
body { font-family: 'Inter', sans-serif; margin: 0; padding: 0; background: linear-gradient(135deg, #f8fafc 0%, #e2e8f0 100%); color: #1f2937; line-height: 1.6; }
.header { background: linear-gradient(135deg, #3b82f6 0%, #8b5cf6 100%); color: white; padding: 4rem 0; text-align: center; }
.container { max-width: 1200px; margin: 0 auto; padding: 0 2rem; }
.name { font-size: 3rem; font-weight: bold; margin-bottom: 1rem; }
.title { font-size: 1.25rem; margin-bottom: 1.5rem; }
.contact { display: flex; justify-content: center; gap: 2rem; font-size: 0.875rem; }
.content { padding: 3rem 0; }
.grid { display: grid; grid-template-columns: 2fr 1fr; gap: 2rem; }
.section { margin-bottom: 2rem; }
.section-title { font-size: 1.5rem; font-weight: bold; color: #1f2937; margin-bottom: 1rem; }
.experience-item { border-left: 4px solid #3b82f6; padding-left: 1.5rem; margin-bottom: 1.5rem; }
.skill-tag { display: inline-block; background: #dbeafe; color: #1e40af; padding: 0.25rem 0.75rem; border-radius: 9999px; margin: 0.25rem; font-size: 0.875rem; }
.project-card { background: white; padding: 1.5rem; border-radius: 0.5rem; box-shadow: 0 1px 3px rgba(0,0,0,0.1); margin-bottom: 1rem; }
@media (max-width: 768px) { .grid { grid-template-columns: 1fr; } .container { padding: 0 1rem; } }
`,
	"professional": `
body { font-family: 'Arial', sans-serif; margin: 0; padding: 0; background: #f9fafb; color: #1f2937; line-height: 1.6; }
.header { background: #1f2937; color: white; padding: 2rem 0; }
.container { max-width: 1000px; margin: 0 auto; padding: 0 2rem; background: white; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
.name { font-size: 2rem; font-weight: bold; margin-bottom: 0.5rem; }
.title { font-size: 1.25rem; color: #d1d5db; margin-bottom: 0.75rem; }
.contact { display: flex; gap: 1rem; font-size: 0.875rem; }
.content { padding: 2rem; }
.section { margin-bottom: 2rem; }
.section-title { font-size: 1.25rem; font-weight: bold; color: #1f2937; border-bottom: 2px solid #10b981; padding-bottom: 0.25rem; margin-bottom: 1rem; }
.experience-item { margin-bottom: 2rem; }
.skill-grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 0.5rem; }
.skill-tag { background: #f3f4f6; padding: 0.75rem; border-radius: 0.25rem; text-align: center; font-weight: 500; }
.project-card { border-left: 4px solid #10b981; padding-left: 1rem; margin-bottom: 1rem; }
@media (max-width: 768px) { .skill-grid { grid-template-columns: repeat(2, 1fr); } }
`,
	"tech": `
body { font-family: 'Courier New', monospace; margin: 0; padding: 0; background: #0f172a; color: #10b981; line-height: 1.6; }
.container { max-width: 1200px; margin: 0 auto; }
.terminal { background: #000; border: 1px solid #10b981; border-radius: 0.5rem; margin: 2rem; }
.terminal-header { background: #1f2937; padding: 1rem; border-radius: 0.5rem 0.5rem 0 0; }
.content { padding: 2rem; }
.prompt { color: #3b82f6; }
.comment { color: #3b82f6; }
.section { margin-bottom: 2rem; }
.section-title { color: #3b82f6; font-size: 1.25rem; margin-bottom: 1rem; }
.experience-item { margin-bottom: 1.5rem; padding-left: 1rem; border-left: 2px solid #10b981; }
.skill-tag { display: inline-block; border: 1px solid #10b981; padding: 0.25rem 0.75rem; margin: 0.25rem; }
.project-card { background: #1f2937; padding: 1rem; border-radius: 0.25rem; margin-bottom: 1rem; }
@media (max-width: 768px) { .terminal { margin: 1rem; } }
`,
}

var pageTemplate = template.Must(template.New("portfolio").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Name}} - Portfolio</title>
<link rel="stylesheet" href="styles.css">
</head>
<body>
<div class="header">
  <div class="container">
    <h1 class="name">{{.Name}}</h1>
    <p class="title">{{.Title}}</p>
    <div class="contact">
      <span>{{.Email}}</span>
      <span>{{.Phone}}</span>
      {{if .Location}}<span>{{.Location}}</span>{{end}}
    </div>
  </div>
</div>
<div class="container content">
  <div class="section">
    <h2 class="section-title">About Me</h2>
    <p>{{.Summary}}</p>
  </div>
  <div class="section">
    <h2 class="section-title">Skills</h2>
    <div>{{range .Skills}}<span class="skill-tag">{{.}}</span>{{end}}</div>
  </div>
  {{if .Experience}}
  <div class="section">
    <h2 class="section-title">Experience</h2>
    {{range .Experience}}
    <div class="experience-item">
      <h3>{{.Position}}</h3>
      <p><strong>{{.Company}}</strong>{{if .Duration}} &bull; {{.Duration}}{{end}}</p>
      <p>{{.Description}}</p>
      {{if .Responsibilities}}<ul>{{range .Responsibilities}}<li>{{.}}</li>{{end}}</ul>{{end}}
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .Projects}}
  <div class="section">
    <h2 class="section-title">Projects</h2>
    {{range .Projects}}
    <div class="project-card">
      <h3>{{.Name}}</h3>
      <p>{{.Description}}</p>
      <div>{{range .Technologies}}<span class="skill-tag">{{.}}</span>{{end}}</div>
      {{if .Link}}<p><a href="{{.Link}}" target="_blank">View Project</a></p>{{end}}
      {{if .GitHub}}<p><a href="{{.GitHub}}" target="_blank">Source</a></p>{{end}}
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .Education}}
  <div class="section">
    <h2 class="section-title">Education</h2>
    {{range .Education}}
    <div class="experience-item">
      <h3>{{.Degree}}</h3>
      <p><strong>{{.Institution}}</strong>{{if .Year}} &bull; {{.Year}}{{end}}</p>
      {{if .GPA}}<p>GPA: {{.GPA}}</p>{{end}}
    </div>
    {{end}}
  </div>
  {{end}}
  {{if .IsFresher}}
  <div class="section">
    <h2 class="section-title">Early Career</h2>
    {{if .FresherDetails.Internships}}<h3>Internships</h3><ul>{{range .FresherDetails.Internships}}<li>{{.}}</li>{{end}}</ul>{{end}}
    {{if .FresherDetails.AcademicProjects}}<h3>Academic Projects</h3><ul>{{range .FresherDetails.AcademicProjects}}<li>{{.}}</li>{{end}}</ul>{{end}}
    {{if .FresherDetails.Extracurriculars}}<h3>Extracurriculars</h3><ul>{{range .FresherDetails.Extracurriculars}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </div>
  {{end}}
  {{if .Certifications}}
  <div class="section">
    <h2 class="section-title">Certifications</h2>
    <ul>{{range .Certifications}}<li>{{.}}</li>{{end}}</ul>
  </div>
  {{end}}
  {{if or .SocialLinks.LinkedIn .SocialLinks.GitHub .SocialLinks.Portfolio .SocialLinks.Twitter}}
  <div class="section">
    <h2 class="section-title">Connect</h2>
    {{if .SocialLinks.LinkedIn}}<p><a href="{{.SocialLinks.LinkedIn}}" target="_blank">LinkedIn</a></p>{{end}}
    {{if .SocialLinks.GitHub}}<p><a href="{{.SocialLinks.GitHub}}" target="_blank">GitHub</a></p>{{end}}
    {{if .SocialLinks.Portfolio}}<p><a href="{{.SocialLinks.Portfolio}}" target="_blank">Portfolio</a></p>{{end}}
    {{if .SocialLinks.Twitter}}<p><a href="{{.SocialLinks.Twitter}}" target="_blank">Twitter</a></p>{{end}}
  </div>
  {{end}}
</div>
<script src="script.js"></script>
</body>
</html>
`))

const portfolioJS = `document.addEventListener('DOMContentLoaded', function() {
  var links = document.querySelectorAll('a[href^="#"]');
  links.forEach(function(link) {
    link.addEventListener('click', function(e) {
      e.preventDefault();
      var target = document.querySelector(this.getAttribute('href'));
      if (target) {
        target.scrollIntoView({ behavior: 'smooth' });
      }
    });
  });

  var elements = document.querySelectorAll('.section, .project-card');
  var observer = new IntersectionObserver(function(entries) {
    entries.forEach(function(entry) {
      if (entry.isIntersecting) {
        entry.target.style.opacity = '1';
        entry.target.style.transform = 'translateY(0)';
      }
    });
  });
  elements.forEach(function(el) {
    el.style.opacity = '0';
    el.style.transform = 'translateY(20px)';
    el.style.transition = 'opacity 0.6s ease, transform 0.6s ease';
    observer.observe(el);
  });
});
`

// Render produces a portfolio bundle for the record. Unknown template ids
// fall back to the modern style.
func Render(rec *model.Record, templateID string) (*Bundle, error) {
	css, ok := templateStyles[templateID]
	if !ok {
		css = templateStyles[DefaultTemplate]
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, rec); err != nil {
		return nil, fmt.Errorf("render portfolio html: %w", err)
	}

	return &Bundle{
		HTML: buf.String(),
		CSS:  css,
		JS:   portfolioJS,
	}, nil
}

// Archive packs the bundle plus a short README into a zip.
func (b *Bundle) Archive(rec *model.Record) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := []struct {
		name    string
		content string
	}{
		{"index.html", b.HTML},
		{"styles.css", b.CSS},
		{"script.js", b.JS},
		{"README.md", readme(rec)},
	}
	for _, f := range files {
		w, err := zw.Create(f.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(f.content)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ArchiveName is the suggested download filename for the record's bundle.
func ArchiveName(rec *model.Record) string {
	return strings.ReplaceAll(rec.Name, " ", "_") + "_portfolio.zip"
}

func readme(rec *model.Record) string {
	return fmt.Sprintf(`# %s - Portfolio Website

A static portfolio website. Open index.html in a browser, or upload the
files to any static host (Netlify, Vercel, GitHub Pages).

## Customization
- Edit index.html to update content
- Modify styles.css to change colors and styling
- Update script.js to add interactive features

## Contact
%s
%s
`, rec.Name, rec.Email, rec.Phone)
}
