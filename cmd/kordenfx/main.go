// Command kordenfx opens a desktop window running one of the site's canvas
// effects, for tuning parameters outside the browser.
package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/korden-tech/korden/internal/config"
	"github.com/korden-tech/korden/pkg/fx"
)

func main() {
	var configPath string
	var width, height int
	var seed uint64

	rootCmd := &cobra.Command{
		Use:   "kordenfx [ripple|elastic|particles|scanner]",
		Short: "Run a Korden background effect in a window",
		Long: `Runs an effect at 60 ticks per second with the parameters from korden.yaml.
Move the cursor over the window to interact; tab cycles effects, space pauses.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			kind := fx.KindRipple
			if len(args) == 1 {
				kind = fx.Kind(args[0])
			}
			if !slices.Contains(fx.Kinds, kind) {
				return fmt.Errorf("unknown effect %q", kind)
			}

			ebiten.SetWindowSize(width, height)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			ebiten.SetTPS(60)
			return ebiten.RunGame(newGame(cfg.FX, kind, seed))
		},
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to korden.yaml")
	rootCmd.Flags().IntVar(&width, "width", 1280, "Initial window width")
	rootCmd.Flags().IntVar(&height, "height", 720, "Initial window height")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 picks one)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
