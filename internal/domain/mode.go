// Package domain defines core business entities and value objects for knock.
//
// The domain layer is independent of infrastructure concerns and represents
// pure business logic and data structures.
package domain

// Mode selects the instruction template, the output token budget, and the
// tag appended to the request text. Exactly one mode is active per request
// and it never changes for the request's lifetime.
type Mode string

const (
	ModeStandard Mode = "standard"
	ModeVerbose  Mode = "verbose"
	ModeAlt      Mode = "alt"
	ModeExplain  Mode = "explain"
)

// Tag returns the marker embedded in the prompt's request element.
// Standard and Explain carry no tag.
func (m Mode) Tag() string {
	switch m {
	case ModeVerbose:
		return " [verbose]"
	case ModeAlt:
		return " [alt]"
	default:
		return ""
	}
}

func (m Mode) String() string {
	return string(m)
}
