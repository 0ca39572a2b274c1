package company

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// namePatterns are tried in order; the first acceptable capture wins.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)(?:at|@|for)\s+([A-Z][A-Za-z0-9\s&]+?)(?:\s+is|\s+seeks|\s+looking|\n|,)`),
	regexp.MustCompile(`(?m)^([A-Z][A-Za-z0-9\s&]+?)\s+(?:is|seeks|looking)`),
	regexp.MustCompile(`(?m)Company:\s*([A-Z][A-Za-z0-9\s&]+)`),
}

const (
	minNameLen = 3
	maxNameLen = 49
)

// ExtractCompanyName guesses the hiring company from a job description.
// Only the first match of each pattern is considered.
func ExtractCompanyName(jobDescription string) (string, bool) {
	for _, re := range namePatterns {
		m := re.FindStringSubmatch(jobDescription)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if n := utf8.RuneCountInString(name); n >= minNameLen && n <= maxNameLen {
			return name, true
		}
	}
	return "", false
}
