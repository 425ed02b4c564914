// internal/appconfig/show.go
package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Ignore Case:  %v\n", cfg.IgnoreCase)
	fmt.Fprintf(out, "  Line Numbers: %v\n", cfg.LineNumbers)
	fmt.Fprintf(out, "  Color:        %v\n", cfg.Color)
	fmt.Fprintf(out, "  Debug:        %v\n", cfg.Debug)
	if cfg.LogFilePath() != "" {
		fmt.Fprintf(out, "  Log File:     %s\n", cfg.LogFilePath())
	}
}
