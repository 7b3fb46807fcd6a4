// Command isologo renders the isometric block logo.
//
// Usage:
//
//	isologo view [--config logo.toml]
//	isologo render --frames 120 --out frames/ [--thumb 160] [--spin 3]
//	isologo dump --at 2s
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/gogpu/isologo"
	"github.com/gogpu/isologo/config"
)

type rootFlags struct {
	config   string
	verbose  bool
	width    int
	height   int
	dragMode string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:          "isologo",
		Short:        "Render the animated isometric block logo",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if f.verbose {
				level = slog.LevelDebug
			}
			isologo.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&f.config, "config", "c", "", "config file (.toml, .yaml)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	pf.IntVar(&f.width, "width", 0, "canvas width, overrides the config")
	pf.IntVar(&f.height, "height", 0, "canvas height, overrides the config")
	pf.StringVar(&f.dragMode, "drag-mode", "", "drag mapping: xy or xy-alt")

	root.AddCommand(newRenderCmd(f), newDumpCmd(f), newViewCmd(f))
	return root
}

// load returns the config file, or the defaults, with flag overrides
// applied and validated.
func (f *rootFlags) load() (*config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}
	if f.width > 0 {
		cfg.Width = f.width
	}
	if f.height > 0 {
		cfg.Height = f.height
	}
	if f.dragMode != "" {
		cfg.DragMode = f.dragMode
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("isologo: %w", err)
	}
	return cfg, nil
}
