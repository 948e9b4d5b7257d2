package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"

	"github.com/knock-sh/knock/internal/ports"
)

// Prompter implements ConfirmationPrompter with an interactive terminal
// prompt.
type Prompter struct{}

// NewPrompter constructs a prompter.
func NewPrompter() *Prompter {
	return &Prompter{}
}

// Confirm asks the user whether the generated command should run.
// Defaults to no.
func (p *Prompter) Confirm(command string) (bool, error) {
	confirmed := false
	q := &survey.Confirm{
		Message: fmt.Sprintf("Execute %q?", command),
		Default: false,
	}
	if err := survey.AskOne(q, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

var _ ports.ConfirmationPrompter = (*Prompter)(nil)
