package shellctx

import (
	"runtime"
	"strings"
	"testing"
)

func TestDetectPopulatesAllFields(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/zsh")

	ctx := NewDetector().Detect()
	if ctx.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", ctx.OS, runtime.GOOS)
	}
	if ctx.Shell != "zsh" {
		t.Errorf("Shell = %q, want %q", ctx.Shell, "zsh")
	}
	if ctx.WorkingDir == "" {
		t.Error("WorkingDir is empty")
	}
}

func TestDetectFallsBackWhenShellUnset(t *testing.T) {
	t.Setenv("SHELL", "")

	ctx := NewDetector().Detect()
	if ctx.Shell != UnknownShell {
		t.Errorf("Shell = %q, want %q", ctx.Shell, UnknownShell)
	}
}

func TestPromptBlockIsDeterministic(t *testing.T) {
	t.Setenv("SHELL", "/bin/bash")

	d := NewDetector()
	first := d.Detect().PromptBlock()
	second := d.Detect().PromptBlock()
	if first != second {
		t.Fatal("identical environments produced different prompt blocks")
	}
	for _, want := range []string{"OS:", "Shell: bash", "Directory:"} {
		if !strings.Contains(first, want) {
			t.Errorf("PromptBlock() missing %q:\n%s", want, first)
		}
	}
}
