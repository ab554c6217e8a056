package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/korden-tech/korden/internal/assets"
	"github.com/korden-tech/korden/internal/config"
	"github.com/korden-tech/korden/internal/site"
)

func newExportCommand(configPath *string) *cobra.Command {
	var include, exclude []string
	var wasm bool

	cmd := &cobra.Command{
		Use:   "export [dir]",
		Short: "Render every page to static files",
		Long: `Writes each page as index.html under the output directory together with
the static assets. Live views are disabled; filters and the contact form
fall back to plain links and form posts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				cfg.Export.OutDir = args[0]
			}
			if cmd.Flags().Changed("include") {
				cfg.Export.Include = include
			}
			if cmd.Flags().Changed("exclude") {
				cfg.Export.Exclude = append(cfg.Export.Exclude, exclude...)
			}
			cfg.Live.Enabled = false
			cfg.Cache.Enabled = false
			if err := cfg.Validate(); err != nil {
				return err
			}

			if wasm {
				if err := buildClient(cfg.Site.BuildDir); err != nil {
					return err
				}
			}
			return runExport(cfg, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil, "Asset patterns to copy (replaces config)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Extra asset patterns to skip")
	cmd.Flags().BoolVar(&wasm, "wasm", false, "Build the browser client before exporting")

	return cmd
}

func runExport(cfg *config.Config, out io.Writer) error {
	// Route logs would interleave with the bar
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelWarn}))
	s, err := site.New(cfg, logger)
	if err != nil {
		return err
	}

	docs := s.Documents()
	files, err := s.Assets()
	if err != nil {
		return err
	}
	dir := cfg.Export.OutDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	bar := progressbar.NewOptions(len(docs)+len(files),
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("Exporting"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	for _, d := range docs {
		bar.Describe(d.Route)
		if err := s.Render(dir, d); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	for _, f := range files {
		bar.Describe(f.Name)
		if err := f.Copy(dir); err != nil {
			return fmt.Errorf("copy %s: %w", f.Name, err)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	log.Printf("✅ Exported %d pages and %d assets to %s", len(docs), len(files), dir)
	return nil
}

// buildClient compiles app/client to wasm and copies the matching
// wasm_exec.js from the Go installation.
func buildClient(buildDir string) error {
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return err
	}

	log.Println("🔨 Building WASM client...")
	build := exec.Command("go", "build", "-o", filepath.Join(buildDir, assets.WasmFile), "./app/client")
	build.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	if output, err := build.CombinedOutput(); err != nil {
		return fmt.Errorf("wasm build failed: %w\nOutput: %s", err, output)
	}

	root, err := exec.Command("go", "env", "GOROOT").Output()
	if err != nil {
		return fmt.Errorf("locate GOROOT: %w", err)
	}
	goroot := strings.TrimSpace(string(root))
	var src []byte
	for _, candidate := range []string{
		filepath.Join(goroot, "lib", "wasm", assets.WasmExecFile),
		filepath.Join(goroot, "misc", "wasm", assets.WasmExecFile),
	} {
		if src, err = os.ReadFile(candidate); err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("find %s: %w", assets.WasmExecFile, err)
	}
	if err := os.WriteFile(filepath.Join(buildDir, assets.WasmExecFile), src, 0o644); err != nil {
		return err
	}
	log.Println("✅ WASM client built")
	return nil
}
