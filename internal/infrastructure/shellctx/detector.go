// Package shellctx detects the OS, shell, and working-directory facts
// used to ground every prompt.
package shellctx

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/knock-sh/knock/internal/domain"
	"github.com/knock-sh/knock/internal/ports"
)

// UnknownShell is the placeholder used when $SHELL is not set.
const UnknownShell = "unknown shell"

// Detector captures a ShellContext from the process environment.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect never fails; unknown values fall back to documented placeholders.
// The snapshot is taken once per invocation and never mutated.
func (d *Detector) Detect() domain.ShellContext {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	return domain.ShellContext{
		OS:         runtime.GOOS,
		Shell:      detectShell(),
		WorkingDir: wd,
	}
}

func detectShell() string {
	if shell := os.Getenv("SHELL"); shell != "" {
		return filepath.Base(shell)
	}
	return UnknownShell
}

var _ ports.ContextDetector = (*Detector)(nil)
