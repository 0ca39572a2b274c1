package company

import (
	"strings"

	domcompany "github.com/kailas-cloud/interviewprep/internal/domain/company"
)

// relevanceKeywords select the fragments worth bucketing.
var relevanceKeywords = []string{"interview", "round", "question", "process"}

type bucket struct {
	keywords []string
	limit    int // max fragments kept
	runes    int // per-fragment truncation
	fallback string
}

var (
	processBucket = bucket{
		keywords: []string{"process", "stages", "steps", "phases"},
		limit:    1,
		runes:    500,
		fallback: "Standard multi-round interview process with technical and behavioral assessments.",
	}
	roundsBucket = bucket{
		keywords: []string{"round", "stage", "phase"},
		limit:    3,
		runes:    300,
		fallback: "Typical rounds: Phone Screen → Technical Interview → System Design → Behavioral → Final Round",
	}
	questionsBucket = bucket{
		keywords: []string{"question", "asked", "ask", "quiz"},
		limit:    3,
		runes:    400,
		fallback: "Common questions include technical problem-solving, system design, and behavioral scenarios.",
	}
	tipsBucket = bucket{
		keywords: []string{"tip", "advice", "prepare", "recommendation"},
		limit:    2,
		runes:    300,
		fallback: "Prepare thoroughly, practice coding problems, and understand the company's products and culture.",
	}
)

const bucketSeparator = " | "

// relevant keeps fragments mentioning the interview process.
func relevant(snippets []string) []string {
	var out []string
	for _, s := range snippets {
		if containsAny(s, relevanceKeywords) {
			out = append(out, s)
		}
	}
	return out
}

// summarize sorts fragments into the four insight buckets.
func summarize(snippets []string) domcompany.Info {
	return domcompany.Info{
		Process:   processBucket.fill(snippets),
		Rounds:    roundsBucket.fill(snippets),
		Questions: questionsBucket.fill(snippets),
		Tips:      tipsBucket.fill(snippets),
	}
}

func (b bucket) fill(snippets []string) string {
	var picked []string
	for _, s := range snippets {
		if len(picked) == b.limit {
			break
		}
		if containsAny(s, b.keywords) {
			picked = append(picked, truncate(s, b.runes))
		}
	}
	if len(picked) == 0 {
		return b.fallback
	}
	return strings.Join(picked, bucketSeparator)
}

func containsAny(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
