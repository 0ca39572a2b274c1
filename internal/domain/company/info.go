// Package company holds interview insights gathered for a hiring company.
package company

// Info is always fully populated, either from scraped fragments or canned text.
type Info struct {
	Process   string
	Rounds    string
	Questions string
	Tips      string
}

// Default returns the insights used when nothing could be scraped.
func Default() Info {
	return Info{
		Process:   "Standard interview process with multiple rounds including technical and behavioral assessments.",
		Rounds:    "Phone Screen → Technical Round → System Design → Behavioral Interview → Final Round",
		Questions: "Technical coding problems, system design scenarios, behavioral questions using STAR method.",
		Tips:      "Practice coding problems, review system design patterns, prepare STAR stories, research company culture.",
	}
}

// Complete reports whether every field carries text.
func (i Info) Complete() bool {
	return i.Process != "" && i.Rounds != "" && i.Questions != "" && i.Tips != ""
}
