// Package prompt assembles the generation prompt from ordered optional sections.
package prompt

import (
	"fmt"
	"strings"

	domcompany "github.com/kailas-cloud/interviewprep/internal/domain/company"
)

// Input carries everything the prompt may render. A non-empty PreviousOutput
// selects the follow-up template; Question falls back to JobDescription.
type Input struct {
	Resume           string
	JobDescription   string
	RetrievedContext string
	PreviousOutput   string
	Question         string
	Company          *domcompany.Info
}

// FollowUp reports whether in selects the conversational template.
func (in Input) FollowUp() bool {
	return strings.TrimSpace(in.PreviousOutput) != ""
}

func (in Input) question() string {
	if strings.TrimSpace(in.Question) != "" {
		return in.Question
	}
	return in.JobDescription
}

// section renders one block of the prompt when include holds.
type section struct {
	name    string
	include func(Input) bool
	render  func(Input) string
}

func always(Input) bool { return true }

var fullAnalysis = []section{
	{"rules", always, func(Input) string { return analysisRules }},
	{"knowledge", func(in Input) bool { return strings.TrimSpace(in.RetrievedContext) != "" },
		func(in Input) string { return labelled("=== RETRIEVED KNOWLEDGE BASE ===", in.RetrievedContext) }},
	{"resume", always, func(in Input) string { return labelled("=== CANDIDATE RESUME ===", in.Resume) }},
	{"job_description", always,
		func(in Input) string { return labelled("=== TARGET JOB DESCRIPTION ===", in.JobDescription) }},
	{"company", func(in Input) bool { return in.Company != nil }, renderCompany},
	{"rubric", always, func(Input) string { return analysisRubric }},
	{"closing", always, func(Input) string { return "Begin your analysis now:" }},
}

var followUp = []section{
	{"intro", always, func(Input) string { return followUpIntro }},
	{"previous", always,
		func(in Input) string { return labelled("You previously provided this analysis:", in.PreviousOutput) }},
	{"resume", func(in Input) bool { return strings.TrimSpace(in.Resume) != "" },
		func(in Input) string { return labelled("=== CANDIDATE RESUME ===", in.Resume) }},
	{"job_description", func(in Input) bool {
		return strings.TrimSpace(in.JobDescription) != "" && in.JobDescription != in.question()
	}, func(in Input) string { return labelled("=== TARGET JOB DESCRIPTION ===", in.JobDescription) }},
	{"question", always, func(in Input) string { return fmt.Sprintf("The candidate now asks: %q", in.question()) }},
	{"instructions", always, func(Input) string { return followUpInstructions }},
}

// Build renders the prompt. It is deterministic and never fails.
func Build(in Input) string {
	sections := fullAnalysis
	if in.FollowUp() {
		sections = followUp
	}

	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if s.include(in) {
			parts = append(parts, s.render(in))
		}
	}
	return strings.Join(parts, "\n\n") + "\n"
}

// Sections lists the names of the sections Build would render for in.
func Sections(in Input) []string {
	sections := fullAnalysis
	if in.FollowUp() {
		sections = followUp
	}

	var names []string
	for _, s := range sections {
		if s.include(in) {
			names = append(names, s.name)
		}
	}
	return names
}

func labelled(header, body string) string {
	return header + "\n" + body
}

func renderCompany(in Input) string {
	c := in.Company
	return fmt.Sprintf(companyTemplate, c.Process, c.Rounds, c.Questions, c.Tips)
}
