package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/isologo/internal/export"
)

func newRenderCmd(f *rootFlags) *cobra.Command {
	var opts export.Options
	var fps int
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write animation frames as PNG files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load()
			if err != nil {
				return err
			}
			if fps > 0 {
				cfg.FPS = fps
			}
			start := time.Now()
			paths, err := export.Frames(cmd.Context(), cfg, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d frames to %s in %s\n",
				len(paths), opts.Dir, time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&opts.Dir, "out", "o", "frames", "output directory")
	fl.IntVarP(&opts.Frames, "frames", "n", 60, "number of frames")
	fl.IntVar(&fps, "fps", 0, "frame rate, overrides the config")
	fl.Float64Var(&opts.Spin, "spin", 0, "scripted drag in pixels per frame")
	fl.IntVar(&opts.Thumb, "thumb", 0, "also write thumbnails this many pixels wide")
	fl.IntVarP(&opts.Workers, "jobs", "j", 0, "concurrent PNG encoders (0 = GOMAXPROCS)")
	return cmd
}

func newDumpCmd(f *rootFlags) *cobra.Command {
	var (
		at     time.Duration
		replay string
	)
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the drawing commands of one frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load()
			if err != nil {
				return err
			}
			rec, err := export.Dump(cmd.OutOrStdout(), cfg, at)
			if err != nil {
				return err
			}
			if replay != "" {
				return export.Replay(rec, replay)
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&at, "at", 2*time.Second, "animation time of the dumped frame")
	cmd.Flags().StringVar(&replay, "png", "", "also replay the commands into this PNG file")
	return cmd
}
