package release

import (
	"context"
	"fmt"
	"io"

	"github.com/apfromiit/chalice/internal/executor"
)

// Tag creates an annotated tag named exactly the current version. It assumes
// a prior bump already updated the version file; it does not check that the
// working tree is clean or that the tag is new — a duplicate tag fails with
// whatever error the version-control tool raises.
func Tag(ctx context.Context, r executor.Runner, gitArgv []string, root, version string, stdout io.Writer) error {
	argv := append(append([]string{}, gitArgv...),
		"tag", "-a", version, "-m", fmt.Sprintf("Tagging the %s release", version))
	return r.Run(ctx, argv, root, stdout)
}
