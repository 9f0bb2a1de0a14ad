package cmd

import (
	"strings"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/relex/gotils/logger"
	"github.com/relex/slog-syslog/defs"
	"github.com/relex/slog-syslog/run"
	"github.com/relex/slog-syslog/syslogprotocol"
	"github.com/relex/slog-syslog/transport"
)

type benchmarkCommandState struct {
	Config string `help:"Configuration file path, transport is always replaced by discard"`
	Repeat int    `help:"Repeat times"`
	Size   string `help:"Size of each message, e.g. '200B', '10KB'. Messages larger than record are split."`
}

var benchCmd = benchmarkCommandState{
	Config: "testdata/config_sample.yml",
	Repeat: 1000000,
	Size:   "200B",
}

func (cmd *benchmarkCommandState) run(_ []string) {
	defs.EnableTestMode()

	var size datasize.ByteSize
	if err := size.UnmarshalText([]byte(cmd.Size)); err != nil {
		logger.Fatalf("invalid size '%s': %s", cmd.Size, err.Error())
	}

	cfg, err := run.LoadConfigFile(cmd.Config)
	if err != nil {
		logger.Fatalf("failed to load config %s: %s", cmd.Config, err.Error())
	}
	cfg.Transport = transport.Config{Type: transport.TypeDiscard}

	slogger, err := cfg.NewLogger(logger.Root(), nil)
	if err != nil {
		logger.Fatalf("failed to create logger: %s", err.Error())
	}
	output := slogger.WithBuffer()
	defer output.Close()

	message := strings.Repeat("x", int(size.Bytes()))
	numFailed := 0
	startTime := time.Now()
	for i := 0; i < cmd.Repeat; i++ {
		if err := output.WriteString(syslogprotocol.SeverityInfo, message); err != nil {
			numFailed++
		}
	}
	elapsed := time.Since(startTime)

	logger.Infof("format=%s recordSize=%d messageSize=%s repeat=%d failed=%d", cfg.Format, output.Syslog().RecordSize(), size.HR(), cmd.Repeat, numFailed)
	logger.Infof("elapsed=%s messages/s=%.0f", elapsed, float64(cmd.Repeat)/elapsed.Seconds())
}

