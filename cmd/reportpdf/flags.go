package main

import (
	flag "github.com/spf13/pflag"

	"github.com/mss-eng/reportpdf/internal/config"
)

// serverFlags holds command line overrides for the server.
type serverFlags struct {
	config  string
	host    string
	port    int
	workers int
	verbose bool
	version bool
}

// parseFlags parses command line arguments.
func parseFlags(args []string) (*serverFlags, error) {
	fs := flag.NewFlagSet("reportpdf", flag.ContinueOnError)
	f := &serverFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.host, "host", "", "listen host (overrides config)")
	fs.IntVarP(&f.port, "port", "p", 0, "listen port (overrides config)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel converters (0 = auto)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log browser and runtime detail")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	return f, nil
}

// applyFlags layers explicit flags over the loaded configuration.
// Flags beat both file and environment values.
func applyFlags(cfg *config.Config, f *serverFlags) {
	if f.host != "" {
		cfg.Server.Host = f.host
	}
	if f.port > 0 {
		cfg.Server.Port = f.port
	}
	if f.workers > 0 {
		cfg.Render.Workers = f.workers
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}
}
