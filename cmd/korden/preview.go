package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/korden-tech/korden/internal/preview"
	"github.com/korden-tech/korden/pkg/fx"
)

func newPreviewCommand(configPath *string) *cobra.Command {
	var seed uint64

	kinds := make([]string, len(fx.Kinds))
	for i, k := range fx.Kinds {
		kinds[i] = string(k)
	}

	cmd := &cobra.Command{
		Use:       "preview [" + strings.Join(kinds, "|") + "]",
		Short:     "Run a background effect in the terminal",
		Long:      `Runs one of the site's canvas effects in the terminal with the configured parameters. Move the mouse over it to interact; tab cycles effects.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			kind := fx.KindRipple
			if len(args) == 1 {
				kind = fx.Kind(args[0])
			}
			m, err := preview.New(cfg.FX, kind, seed)
			if err != nil {
				return err
			}

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("preview: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 picks one)")
	return cmd
}
