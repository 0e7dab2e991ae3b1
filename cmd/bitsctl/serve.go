package main

import (
	"os/signal"
	"syscall"

	"github.com/danmuck/bitsctl/internal/node"
	"github.com/danmuck/bitsctl/internal/server"
	"github.com/danmuck/bitsctl/internal/solver"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(c *cli) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /decode, /health and /metrics over HTTP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			gin.SetMode(gin.ReleaseMode)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var n node.Node = server.New(cfg, solver.New(cfg, c.logger), c.logger)
			c.logger.Info().Str("node", n.NodeID()).Str("kind", n.Kind()).Msg("starting")
			return n.Run(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}
