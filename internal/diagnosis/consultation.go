package diagnosis

import "strings"

// Source tags where a consultation's text came from.
type Source string

const (
	// SourceAdvisor marks text produced by the external AI advisor.
	SourceAdvisor Source = "advisor"
	// SourceFallback marks text produced by the local keyword rules.
	SourceFallback Source = "fallback"
)

// Consultation is the normalized outcome of the label/advice step, whichever
// path produced it.
type Consultation struct {
	Label  string
	Advice string
	Source Source
}

// SplitAdvisorText normalizes free advisor text into a diagnosis label and an
// advice string by splitting on '.': the first sentence becomes the label,
// the remainder joined with spaces becomes the advice. When the remainder is
// under 5 characters the full text is used as advice instead.
//
// This is a deliberately crude heuristic: it assumes sentence boundaries are
// plain periods, which does not hold for all punctuation conventions.
func SplitAdvisorText(text string) Consultation {
	sentences := strings.Split(text, ".")
	label := sentences[0]
	advice := strings.TrimSpace(strings.Join(sentences[1:], " "))
	if len(advice) < 5 {
		advice = text
	}
	return Consultation{Label: label, Advice: advice, Source: SourceAdvisor}
}
