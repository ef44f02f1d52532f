package release

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apfromiit/chalice/internal/executor"
)

// Build runs the packaging tool from the project root to produce source and
// wheel distributions. The working directory is changed to root for the
// duration of the call and restored unconditionally, including when the
// packaging subprocess fails.
func Build(ctx context.Context, r executor.Runner, packagingArgv []string, root string, stdout io.Writer) error {
	prev, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	if err := os.Chdir(root); err != nil {
		return fmt.Errorf("enter project root: %w", err)
	}
	defer func() { _ = os.Chdir(prev) }()

	return r.Run(ctx, packagingArgv, "", stdout)
}
