package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/korden-tech/korden/internal/config"
)

func newInitCommand(configPath *string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create korden.yaml interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(*configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", *configPath)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			cfg, err := runWizard()
			if err != nil {
				return err
			}
			if err := cfg.Save(*configPath); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nConfiguration saved to %s\n", *configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

// runWizard asks for the settings most sites change and keeps defaults for the rest
func runWizard() (*config.Config, error) {
	fmt.Println("Let's configure the Korden site.")
	fmt.Println()

	cfg := config.DefaultConfig()

	hostPrompt := promptui.Prompt{Label: "Listen host", Default: cfg.Server.Host}
	host, err := hostPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("host: %w", err)
	}
	cfg.Server.Host = host

	portPrompt := promptui.Prompt{
		Label:   "Listen port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return errors.New("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{"text", "json"},
	}
	_, cfg.Server.LogFormat, err = formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}

	livePrompt := promptui.Select{
		Label: "Live product filter and contact form over websockets",
		Items: []string{"enabled", "disabled (plain links and form posts)"},
	}
	liveIdx, _, err := livePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("live views: %w", err)
	}
	cfg.Live.Enabled = liveIdx == 0

	delayPrompt := promptui.Prompt{
		Label:   "Simulated contact submission delay",
		Default: cfg.Contact.Delay.String(),
		Validate: func(s string) error {
			d, err := time.ParseDuration(s)
			if err != nil || d < 0 {
				return errors.New("enter a duration such as 1.5s")
			}
			return nil
		},
	}
	delayStr, err := delayPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("contact delay: %w", err)
	}
	cfg.Contact.Delay, _ = time.ParseDuration(delayStr)

	outPrompt := promptui.Prompt{Label: "Static export directory", Default: cfg.Export.OutDir}
	out, err := outPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("export dir: %w", err)
	}
	cfg.Export.OutDir = strings.TrimSpace(out)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
