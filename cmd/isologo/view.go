package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gogpu/isologo"
	"github.com/gogpu/isologo/config"
	"github.com/gogpu/isologo/host/ebitenhost"
)

func newViewCmd(f *rootFlags) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the interactive logo in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load()
			if err != nil {
				return err
			}
			g, err := ebitenhost.New(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			if watch && f.config != "" {
				go func() {
					err := config.Watch(ctx, f.config, func(c *config.Config, err error) {
						if err == nil {
							g.Reload(c)
						}
					})
					if err != nil {
						isologo.Logger().Warn("isologo: config watch stopped", "err", err)
					}
				}()
			}
			return ebitenhost.Run(g, "isologo", cfg.FPS)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", true, "reload the config file when it changes")
	return cmd
}
