package config

import (
	"github.com/danmuck/bitsctl/internal/packet"
	"github.com/danmuck/bitsctl/internal/report"
)

func (c Config) Decoder() packet.Decoder {
	return packet.Decoder{MaxDepth: c.MaxDepth}
}

func (c Config) ReportFormat() (report.Format, error) {
	return report.ParseFormat(c.Format)
}
