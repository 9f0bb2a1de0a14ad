// Package cmd provides list of commands including self-benchmarks and tools
package cmd

import (
	"github.com/relex/gotils/config"
)

func init() {
	config.AddParentCmdWithArgs("", "slog-syslog writes messages to local or remote syslog as RFC 3164 / 5424 records", &rootCmd, rootCmd.preRun, rootCmd.postRun)
	config.AddCmdWithArgs("send ...", "Send message from arguments, or each line of stdin if no argument", &sendCmd, sendCmd.run)
	config.AddCmdWithArgs("benchmark ...", "Benchmark record formatting with discard transport", &benchCmd, benchCmd.run)
}

// Execute parses the command line and runs the specified command
func Execute() {
	// trigger init

	config.Execute()
}
