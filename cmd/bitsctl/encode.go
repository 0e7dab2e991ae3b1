package main

import (
	"encoding/json"
	"fmt"

	"github.com/danmuck/bitsctl/internal/packet"
	"github.com/danmuck/bitsctl/internal/report"
	"github.com/spf13/cobra"
)

func newEncodeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [file|-]",
		Short: "Encode a JSON report tree (decode --format json) back into hex.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := "-"
			if len(args) == 1 {
				arg = args[0]
			}
			data, err := readSource(arg, "", cmd.InOrStdin())
			if err != nil {
				return err
			}

			var res report.Result
			if err := json.Unmarshal([]byte(data), &res); err != nil {
				return fmt.Errorf("parse report: %w", err)
			}
			p, err := report.Packet(res.Tree)
			if err != nil {
				return err
			}
			hex, err := packet.EncodeHex(p)
			if err != nil {
				return err
			}
			c.logger.Debug().Str("hex", hex).Msg("encoded")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex)
			return err
		},
	}
}
