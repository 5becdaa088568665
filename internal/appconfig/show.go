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
	fmt.Fprintf(out, "  Debug:    %v\n", cfg.Debug)
	fmt.Fprintf(out, "  Summary:  %v\n", cfg.Summary)
	fmt.Fprintf(out, "  Color:    %v\n", cfg.ColorEnabled())
	if path := cfg.LogFilePath(); path != "" {
		fmt.Fprintf(out, "  Log File: %s\n", path)
	} else {
		fmt.Fprintln(out, "  Log File: (none)")
	}
}
