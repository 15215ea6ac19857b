package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load reads the given env files (".env" when none) without overriding
// variables already set in the process, then applies the --port flag.
// Missing files are skipped; it reports whether any file was loaded.
func Load(files ...string) (bool, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	existing := make([]string, 0, len(files))
	for _, f := range files {
		_, err := os.Stat(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("stat %s: %w", f, err)
		}
		existing = append(existing, f)
	}

	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return false, fmt.Errorf("load env files: %w", err)
		}
	}

	var portFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.Parse()

	if portFlag != "" {
		if err := os.Setenv("PORT", portFlag); err != nil {
			return false, fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return len(existing) > 0, nil
}
