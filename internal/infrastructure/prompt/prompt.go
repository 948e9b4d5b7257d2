// Package prompt composes provider-agnostic prompts and selects the
// instruction body and token budget for a request mode.
//
// Every function here is pure and byte-deterministic: identical inputs
// must produce identical output, since the prompt text feeds both the
// provider request and test fixtures keyed off the cache.
package prompt

import (
	"fmt"

	"github.com/knock-sh/knock/internal/domain"
)

// Build concatenates, in fixed order, the context block, a blank line,
// and the tagged request element.
func Build(ctx domain.ShellContext, input string, mode domain.Mode) string {
	return fmt.Sprintf("%s\n\n<request>%s%s</request>", ctx.PromptBlock(), input, mode.Tag())
}

// Instructions returns the instruction body for the mode. Standard,
// Verbose, and Alt share a single template whose behavior branches on the
// tag embedded in the request; Explain has its own.
func Instructions(mode domain.Mode) string {
	if mode == domain.ModeExplain {
		return explainInstructions
	}
	return translateInstructions
}

// MaxTokens returns the output token budget for the mode.
func MaxTokens(mode domain.Mode) int {
	if mode == domain.ModeStandard {
		return 256
	}
	return 512
}
