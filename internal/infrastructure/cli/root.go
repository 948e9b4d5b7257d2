// Package cli implements the cobra command surface for knock.
package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/knock-sh/knock/internal/app"
	"github.com/knock-sh/knock/internal/domain"
	"github.com/knock-sh/knock/internal/infrastructure/executor"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	var (
		verboseMode bool
		altMode     bool
		execute     bool
	)

	root := &cobra.Command{
		Use:   "knock [query]",
		Short: "knock translates natural language into shell commands",
		Long: "knock sends a natural-language request to a configured model provider\n" +
			"and prints the shell command it translates to. Repeat requests are\n" +
			"answered from a local cache.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			mode := domain.ModeStandard
			switch {
			case altMode:
				mode = domain.ModeAlt
			case verboseMode:
				mode = domain.ModeVerbose
			}
			return runQuery(cmd.Context(), container, strings.Join(args, " "), mode, execute)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Flags().BoolVarP(&verboseMode, "verbose", "v", false, "include alternatives and relevant flags")
	root.Flags().BoolVarP(&altMode, "alt", "a", false, "list alternative commands only")
	root.Flags().BoolVarP(&execute, "execute", "x", false, "offer to run the generated command")

	root.AddCommand(newExplainCommand(container))
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newCacheCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}

func runQuery(ctx context.Context, container *app.Container, input string, mode domain.Mode, execute bool) error {
	resp, err := container.TranslateService.Run(domain.TranslateRequest{
		Context: ctx,
		Input:   input,
		Mode:    mode,
	})
	if err != nil {
		return err
	}

	command := CommandLine(resp.Text, mode)

	// Alt mode lists candidates without committing to one: nothing is
	// saved, copied, or executed.
	if mode != domain.ModeAlt {
		if err := container.HistoryStore.Add(domain.HistoryRecord{Query: input, Command: command}); err != nil {
			container.Logger.Warn("history write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	RenderTranslation(resp, mode)

	if mode != domain.ModeAlt {
		clip := NewClipboard()
		if clip.Enabled() {
			if err := clip.Copy(command); err != nil {
				container.Logger.Warn("clipboard copy failed", map[string]interface{}{"error": err.Error()})
			}
		}
	}

	if execute && mode != domain.ModeAlt {
		confirmed, err := NewPrompter().Confirm(command)
		if err != nil || !confirmed {
			return err
		}
		_, err = executor.NewLocalExecutor("").Execute(ctx, command)
		return err
	}
	return nil
}
