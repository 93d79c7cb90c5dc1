// Command codemod applies rule-based, idempotent rewrites to a source
// tree: Tailwind dark-mode augmentation, error-handling migration of API
// route catch blocks, and generation of marketing page boilerplate.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/oxhq/codemod/internal/model"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, model.ErrRunFailures) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
