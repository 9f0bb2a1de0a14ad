package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/relex/gotils/logger"
	"github.com/relex/gotils/promexporter/promreg"
	"github.com/relex/slog-syslog/defs"
	"github.com/relex/slog-syslog/run"
	"github.com/relex/slog-syslog/syslogprotocol"
	"github.com/relex/slog-syslog/util"
)

type sendCommandState struct {
	Config      string `help:"Configuration file path"`
	Severity    string `help:"Severity of messages, e.g. 'info', 'warning'"`
	Exclude     string `help:"Comma-separated glob patterns of messages not to be sent"`
	MetricsAddr string `help:"The listener address to expose Prometheus metrics and debug information, empty to disable"`
	TestMode    bool   `help:"Use test mode config: short timeout"`
}

var sendCmd sendCommandState = sendCommandState{
	Config:      "config.yml",
	Severity:    "notice",
	Exclude:     "",
	MetricsAddr: "",
	TestMode:    false,
}

func (cmd *sendCommandState) run(args []string) {
	if cmd.TestMode {
		defs.EnableTestMode()
	}

	severity, err := syslogprotocol.ParseSeverity(cmd.Severity)
	if err != nil {
		logger.Fatalf("invalid severity: %s", err.Error())
	}

	cfg, err := run.LoadConfigFile(cmd.Config)
	if err != nil {
		logger.Fatalf("failed to load config %s: %s", cmd.Config, err.Error())
	}

	metricFactory := promreg.NewMetricFactory("slogsyslog_", nil, nil)
	if cmd.MetricsAddr != "" {
		msrv := util.LaunchMetricsListener(cmd.MetricsAddr, metricFactory)
		defer func() {
			if err := msrv.Shutdown(context.Background()); err != nil {
				logger.Errorf("error shutting down metrics listener: %v", err)
			}
		}()
	}

	slogger, err := cfg.NewLogger(logger.Root(), metricFactory)
	if err != nil {
		logger.Fatalf("failed to create logger: %s", err.Error())
	}
	output := slogger.WithBuffer()
	defer output.Close()

	sender, err := run.NewSender(logger.Root(), output, severity, splitPatterns(cmd.Exclude))
	if err != nil {
		logger.Fatalf("invalid exclusion pattern: %s", err.Error())
	}

	if len(args) > 0 {
		sender.Send(strings.Join(args, " "))
	} else if err := sender.SendLines(os.Stdin); err != nil {
		logger.Errorf("failed to read stdin: %s", err.Error())
	}

	stats := sender.Stats()
	logger.Infof("sent=%d failed=%d excluded=%d", stats.Sent, stats.Failed, stats.Excluded)
}

func splitPatterns(list string) []string {
	patterns := make([]string, 0, 4)
	for _, p := range strings.Split(list, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}
