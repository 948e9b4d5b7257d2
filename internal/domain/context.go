package domain

import (
	"fmt"
	"strings"
)

// ShellContext is an immutable snapshot of the environment a request
// originates from, captured once per invocation and never mutated.
type ShellContext struct {
	OS         string
	Shell      string
	WorkingDir string
}

// PromptBlock renders the snapshot as the context block embedded verbatim
// in every prompt. Identical environments produce identical output, which
// keeps prompt prefixes consistent with the cache key.
func (c ShellContext) PromptBlock() string {
	var b strings.Builder
	b.WriteString("Environment:\n")
	fmt.Fprintf(&b, "- OS: %s\n", c.OS)
	fmt.Fprintf(&b, "- Shell: %s\n", c.Shell)
	fmt.Fprintf(&b, "- Directory: %s", c.WorkingDir)
	return b.String()
}
