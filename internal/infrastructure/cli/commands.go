package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/knock-sh/knock/internal/app"
	"github.com/knock-sh/knock/internal/domain"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

func newExplainCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <command>",
		Short: "Explain what a shell command does",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.Join(args, " ")
			resp, err := container.TranslateService.Run(domain.TranslateRequest{
				Context: cmd.Context(),
				Input:   command,
				Mode:    domain.ModeExplain,
			})
			if err != nil {
				return err
			}
			RenderExplanation(command, resp.Text)
			return nil
		},
	}
}

func newHistoryCommand(container *app.Container) *cobra.Command {
	const recentLimit = 20
	return &cobra.Command{
		Use:   "history [filter]",
		Short: "Show prior translations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				records []domain.HistoryRecord
				err     error
			)
			if len(args) == 0 {
				records, err = container.HistoryStore.Recent(recentLimit)
			} else {
				records, err = container.HistoryStore.Search(args[0])
			}
			if err != nil {
				return err
			}
			RenderHistory(records)
			return nil
		},
	}
}

func newCacheCommand(container *app.Container) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the response cache",
	}
	cacheCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache database path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(container.CacheStore.Path())
			return nil
		},
	})
	cacheCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every cached response",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.CacheStore.Clear(); err != nil {
				return err
			}
			fmt.Println("Cache cleared.")
			return nil
		},
	})
	return cacheCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the knock version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("knock", Version)
		},
	}
}
