package config

import (
	"flag"
	"os"
	"time"

	"github.com/cryptiom/cryptiom-server/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   interface to bind to (e.g., "127.0.0.1")
//	-p int      port to listen on
//	-i bool     use the embedded SQLite backend (pass as -i=true / -i=false)
//	-d string   PostgreSQL DSN
//	-f string   SQLite file path
//	-t int      storage operation timeout, seconds
//
// Notes:
//   - The function first filters os.Args to only the flags it recognizes using
//     flagx.FilterArgs, avoiding collisions with other components.
//   - The timeout flag is accepted as an integer in seconds and then converted
//     to a time.Duration value.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-i", "-d", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.BindInterface, "a", config.BindInterface, "interface to bind to")
	fs.IntVar(&config.BindPort, "p", config.BindPort, "port to listen on")
	fs.BoolVar(&config.UseInternalDB, "i", config.UseInternalDB, "use embedded SQLite backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DatabasePath, "f", config.DatabasePath, "SQLite file path")

	storageTimeout := fs.Int("t", int(config.StorageTimeout.Seconds()), "storage timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.StorageTimeout = time.Duration(*storageTimeout) * time.Second
}
