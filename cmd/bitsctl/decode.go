package main

import (
	"github.com/danmuck/bitsctl/internal/report"
	"github.com/danmuck/bitsctl/internal/solver"
	"github.com/spf13/cobra"
)

func newDecodeCmd(c *cli) *cobra.Command {
	var hex string
	cmd := &cobra.Command{
		Use:   "decode [file|-]",
		Short: "Decode a transmission and print its version sum and value.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := c.cfg.ReportFormat()
			if err != nil {
				return err
			}

			input := hex
			if input == "" {
				var arg string
				if len(args) == 1 {
					arg = args[0]
				}
				if input, err = readSource(arg, c.cfg.Input, cmd.InOrStdin()); err != nil {
					return err
				}
			}

			res, err := solver.New(c.cfg, c.logger).Solve(input)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), format, res)
		},
	}
	cmd.Flags().StringVar(&hex, "hex", "", "transmission given inline instead of a file")
	return cmd
}
