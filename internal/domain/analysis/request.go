// Package analysis models the two request variants the analysis pipeline accepts.
package analysis

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/interviewprep/internal/domain"
)

// Mode names a request variant for logging and metrics.
type Mode string

const (
	// ModeFull is a first-time structured analysis.
	ModeFull Mode = "full_analysis"
	// ModeFollowUp is a conversational answer about a previous analysis.
	ModeFollowUp Mode = "follow_up"
)

// querySeparator joins resume and job description into one retrieval query.
const querySeparator = "\n\n"

// Request is a sealed sum type: FullAnalysis or FollowUp.
type Request interface {
	Mode() Mode
	Resume() string
	JobDescription() string
	// Query is the retrieval text for this request.
	Query() string
	sealed()
}

// FullAnalysis asks for the complete structured evaluation.
type FullAnalysis struct {
	resume         string
	jobDescription string
}

// NewFullAnalysis validates and creates a full-analysis request.
func NewFullAnalysis(resume, jobDescription string) (FullAnalysis, error) {
	if err := requireText("resume_text", resume); err != nil {
		return FullAnalysis{}, err
	}
	if err := requireText("job_description", jobDescription); err != nil {
		return FullAnalysis{}, err
	}
	return FullAnalysis{resume: resume, jobDescription: jobDescription}, nil
}

func (r FullAnalysis) Mode() Mode { return ModeFull }
func (r FullAnalysis) Resume() string { return r.resume }
func (r FullAnalysis) JobDescription() string { return r.jobDescription }
func (r FullAnalysis) Query() string { return r.resume + querySeparator + r.jobDescription }
func (FullAnalysis) sealed() {}

// FollowUp asks a question about a previously generated analysis.
type FollowUp struct {
	resume         string
	jobDescription string
	question       string
	previousOutput string
}

// NewFollowUp validates and creates a follow-up request.
func NewFollowUp(resume, jobDescription, question, previousOutput string) (FollowUp, error) {
	if err := requireText("resume_text", resume); err != nil {
		return FollowUp{}, err
	}
	if err := requireText("job_description", jobDescription); err != nil {
		return FollowUp{}, err
	}
	if err := requireText("question", question); err != nil {
		return FollowUp{}, err
	}
	if err := requireText("previous_output", previousOutput); err != nil {
		return FollowUp{}, err
	}
	return FollowUp{
		resume:         resume,
		jobDescription: jobDescription,
		question:       question,
		previousOutput: previousOutput,
	}, nil
}

func (r FollowUp) Mode() Mode { return ModeFollowUp }
func (r FollowUp) Resume() string { return r.resume }
func (r FollowUp) JobDescription() string { return r.jobDescription }
func (r FollowUp) Query() string { return r.resume + querySeparator + r.jobDescription }
func (FollowUp) sealed() {}

// Question returns the candidate's follow-up question.
func (r FollowUp) Question() string { return r.question }

// PreviousOutput returns the analysis the question refers to.
func (r FollowUp) PreviousOutput() string { return r.previousOutput }

// Resolve maps the wire shape onto a request variant.
// A non-empty previousOutput selects FollowUp. When newQuestion is empty the
// job description carries the question, which is how older clients send it.
func Resolve(resume, jobDescription, previousOutput, newQuestion string) (Request, error) {
	if previousOutput == "" {
		return NewFullAnalysis(resume, jobDescription)
	}
	question := newQuestion
	if strings.TrimSpace(question) == "" {
		question = jobDescription
	}
	return NewFollowUp(resume, jobDescription, question, previousOutput)
}

func requireText(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%s is required: %w", field, domain.ErrInvalidRequest)
	}
	return nil
}
