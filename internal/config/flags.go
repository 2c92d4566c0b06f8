package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-m master password
//	-log client log file path
//	-clipboard-timeout how long copied secrets stay on the clipboard (e.g., "30s")
//	-d database DSN
//	-s search term applied at start-up
//	-import JSON folder tree to import
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	var masterPassword string
	var logFile string
	var clipboardTimeout time.Duration
	var databaseDSN string
	var searchTerm string
	var importPath string
	var jsonConfigPath string

	fs := flag.CommandLine
	fs.StringVar(&masterPassword, "m", "", "Master password")
	fs.StringVar(&logFile, "log", "", "Log file path")
	fs.DurationVar(&clipboardTimeout, "clipboard-timeout", 0, "Clipboard clear timeout (e.g., 30s)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&searchTerm, "s", "", "Search term applied at start-up")
	fs.StringVar(&importPath, "import", "", "JSON folder tree to import")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			MasterPassword:   masterPassword,
			LogFile:          logFile,
			ClipboardTimeout: clipboardTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Search:         Search{Term: searchTerm},
		ImportFilePath: importPath,
		JSONFilePath:   jsonConfigPath,
	}, nil
}
