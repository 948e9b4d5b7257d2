package prompt

import (
	"strings"
	"testing"

	"github.com/knock-sh/knock/internal/domain"
)

func TestBuildAppendsModeTag(t *testing.T) {
	ctx := domain.ShellContext{OS: "macos", Shell: "zsh", WorkingDir: "/tmp"}

	tests := []struct {
		mode   domain.Mode
		suffix string
	}{
		{domain.ModeStandard, "list files</request>"},
		{domain.ModeVerbose, " [verbose]</request>"},
		{domain.ModeAlt, " [alt]</request>"},
		{domain.ModeExplain, "list files</request>"},
	}

	for _, tt := range tests {
		got := Build(ctx, "list files", tt.mode)
		if !strings.HasSuffix(got, tt.suffix) {
			t.Errorf("Build(%s) = %q, want suffix %q", tt.mode, got, tt.suffix)
		}
	}
}

func TestBuildStartsWithContextBlock(t *testing.T) {
	ctx := domain.ShellContext{OS: "linux", Shell: "bash", WorkingDir: "/home/u"}
	got := Build(ctx, "show disk usage", domain.ModeStandard)

	want := ctx.PromptBlock() + "\n\n<request>show disk usage</request>"
	if got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	ctx := domain.ShellContext{OS: "linux", Shell: "fish", WorkingDir: "/srv"}
	first := Build(ctx, "find large files", domain.ModeVerbose)
	second := Build(ctx, "find large files", domain.ModeVerbose)
	if first != second {
		t.Fatal("Build() output differs across identical calls")
	}
}

func TestInstructionsSharedAcrossTranslationModes(t *testing.T) {
	standard := Instructions(domain.ModeStandard)
	if Instructions(domain.ModeVerbose) != standard {
		t.Error("verbose instructions differ from standard")
	}
	if Instructions(domain.ModeAlt) != standard {
		t.Error("alt instructions differ from standard")
	}
	if Instructions(domain.ModeExplain) == standard {
		t.Error("explain instructions must differ from the translation template")
	}
}

func TestExplainInstructionsCarryFallback(t *testing.T) {
	if !strings.Contains(Instructions(domain.ModeExplain), "Invalid command.") {
		t.Error("explain instructions missing the literal fallback output")
	}
}

func TestMaxTokens(t *testing.T) {
	tests := []struct {
		mode domain.Mode
		want int
	}{
		{domain.ModeStandard, 256},
		{domain.ModeVerbose, 512},
		{domain.ModeAlt, 512},
		{domain.ModeExplain, 512},
	}
	for _, tt := range tests {
		if got := MaxTokens(tt.mode); got != tt.want {
			t.Errorf("MaxTokens(%s) = %d, want %d", tt.mode, got, tt.want)
		}
	}
}
