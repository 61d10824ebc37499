package textproc

import (
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Heuristic extraction is best-effort: every function returns "" (or an
// empty slice) when nothing matches and callers supply the default.

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?[1-9]?[\d\s\-().]{7,15}`)
	namePattern  = regexp.MustCompile(`(?m)^([A-Z][a-z]+ [A-Z][a-z]+)`)
	urlPattern   = regexp.MustCompile(`(?i)(?:https?://|www\.)[a-zA-Z0-9./_~#%?=&+-]+`)
)

// skillVocabulary is matched case-insensitively on word boundaries.
// Results keep this casing and this order.
var skillVocabulary = []string{
	"JavaScript", "TypeScript", "Python", "Java", "React", "Node.js",
	"HTML", "CSS", "SQL", "Git", "AWS", "Docker", "MongoDB", "Angular",
	"Vue.js", "PHP", "C++", "C#",
}

var skillPatterns = buildSkillPatterns()

func buildSkillPatterns() []*regexp.Regexp {
	pats := make([]*regexp.Regexp, len(skillVocabulary))
	for i, skill := range skillVocabulary {
		// \b misbehaves after non-word runes like '+', so word boundaries
		// are spelled out explicitly
		pats[i] = regexp.MustCompile(`(?i)(^|[^a-zA-Z0-9_])` + regexp.QuoteMeta(skill) + `($|[^a-zA-Z0-9_+#])`)
	}
	return pats
}

// ExtractEmail returns the first email-shaped match.
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone-shaped run of 7-15 characters.
func ExtractPhone(text string) string {
	return strings.TrimSpace(phonePattern.FindString(text))
}

// ExtractName returns the first line-leading two-capitalized-word sequence
// that is not immediately followed by contact-block text.
func ExtractName(text string) string {
	for _, loc := range namePattern.FindAllStringSubmatchIndex(text, -1) {
		candidate := text[loc[2]:loc[3]]
		rest := strings.TrimLeft(text[loc[3]:], " \t")
		if strings.HasPrefix(strings.ToLower(rest), "contact") {
			continue
		}
		return candidate
	}
	return ""
}

// ExtractSkills returns the subset of the vocabulary present in the text,
// in vocabulary order and casing.
func ExtractSkills(text string) []string {
	var found []string
	for i, pat := range skillPatterns {
		if pat.MatchString(text) {
			found = append(found, skillVocabulary[i])
		}
	}
	return found
}

// SocialLinks groups URLs recovered from resume text by destination.
type SocialLinks struct {
	LinkedIn  string
	GitHub    string
	Twitter   string
	Portfolio string
}

// ExtractSocialLinks scans for URLs and classifies them by registrable
// domain. The first unclassified http(s) URL becomes the portfolio link.
func ExtractSocialLinks(text string) SocialLinks {
	var links SocialLinks
	for _, raw := range urlPattern.FindAllString(text, -1) {
		raw = strings.TrimRight(raw, ".,;:")
		candidate := raw
		if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
			candidate = "https://" + candidate
		}
		parsed, err := url.Parse(candidate)
		if err != nil || parsed.Hostname() == "" {
			continue
		}
		domain, err := publicsuffix.EffectiveTLDPlusOne(parsed.Hostname())
		if err != nil {
			domain = strings.TrimPrefix(parsed.Hostname(), "www.")
		}
		switch domain {
		case "linkedin.com":
			if links.LinkedIn == "" {
				links.LinkedIn = candidate
			}
		case "github.com":
			if links.GitHub == "" {
				links.GitHub = candidate
			}
		case "twitter.com", "x.com":
			if links.Twitter == "" {
				links.Twitter = candidate
			}
		default:
			if links.Portfolio == "" {
				links.Portfolio = candidate
			}
		}
	}
	return links
}
