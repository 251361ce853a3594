// Command hash-generator prints bcrypt hashes for the passwords given as
// arguments, in the format stored in users.hashed_password. It is used to
// seed accounts directly in the database.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/taskboard-api/internal/config"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

func main() {
	cost := flag.Int("cost", config.DefaultBCryptCost, "bcrypt cost factor")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator [-cost N] password...")
		os.Exit(2)
	}

	if err := writeHashes(os.Stdout, auth.NewBcryptHasher(*cost), flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// writeHashes writes one "password<TAB>hash" line per password.
func writeHashes(w io.Writer, hasher auth.PasswordHasher, passwords []string) error {
	for _, password := range passwords {
		hash, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("hash %q: %w", password, err)
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", password, hash); err != nil {
			return err
		}
	}
	return nil
}
