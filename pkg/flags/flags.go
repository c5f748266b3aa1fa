package flags

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Config holds all command-line configuration
type Config struct {
	Port    string
	Storage string
	DBPath  string
	Help    bool
}

// DefaultConfig returns default configuration values
func DefaultConfig() Config {
	return Config{
		Port:    "8080",
		Storage: "",
		DBPath:  "",
		Help:    false,
	}
}

// Parse parses command-line flags and returns configuration
func Parse() Config {
	config := DefaultConfig()

	var (
		port    = flag.String("port", config.Port, "Port number")
		storage = flag.String("storage", config.Storage, "Storage driver (sqlite, postgres, redis, memory)")
		dbPath  = flag.String("db-path", config.DBPath, "SQLite database file path")
		help    = flag.Bool("help", false, "Show this screen")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Coffee Corner Storefront Service\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  coffeecorner [--port <N>] [--storage <driver>] [--db-path <file>]\n")
		fmt.Fprintf(os.Stderr, "  coffeecorner --help\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fmt.Fprintf(os.Stderr, "  --help            Show this screen.\n")
		fmt.Fprintf(os.Stderr, "  --port N          Port number (1-65535).\n")
		fmt.Fprintf(os.Stderr, "  --storage DRIVER  Key-value store backend: sqlite, postgres, redis, memory.\n")
		fmt.Fprintf(os.Stderr, "  --db-path FILE    SQLite database file (sqlite driver only).\n")
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	if err := validatePort(*port); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := validateStorage(*storage); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	return Config{
		Port:    *port,
		Storage: *storage,
		DBPath:  *dbPath,
		Help:    *help,
	}
}

// validatePort validates the port number
func validatePort(port string) error {
	if port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	portNum, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port number '%s': must be a number", port)
	}

	if portNum < 1 || portNum > 65535 {
		return fmt.Errorf("port number %d is out of range: must be between 1 and 65535", portNum)
	}

	if portNum < 1024 {
		fmt.Fprintf(os.Stderr, "Warning: Port %d is a privileged port (1-1023). You may need administrator privileges.\n", portNum)
	}

	return nil
}

// validateStorage validates the storage driver name, empty means use env
func validateStorage(storage string) error {
	switch storage {
	case "", "sqlite", "postgres", "redis", "memory":
		return nil
	default:
		return fmt.Errorf("unknown storage driver '%s': must be sqlite, postgres, redis or memory", storage)
	}
}

// Validate validates the parsed configuration
func (c Config) Validate() error {
	if err := validatePort(c.Port); err != nil {
		return err
	}

	return validateStorage(c.Storage)
}
