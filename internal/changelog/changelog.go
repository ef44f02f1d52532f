// Package changelog wraps the external changelog tool. The tool is opaque:
// this package only knows its two actions and propagates failures unmodified.
package changelog

import (
	"context"
	"io"

	"github.com/apfromiit/chalice/internal/executor"
)

// Client invokes the changelog tool inside a project root.
type Client struct {
	runner   executor.Runner
	argv     []string
	template string
	root     string
}

// New returns a Client that runs the given tool argv in root, rendering with
// template.
func New(r executor.Runner, argv []string, template, root string) *Client {
	return &Client{runner: r, argv: argv, template: template, root: root}
}

// NewRelease folds pending change entries into a new release section for
// version. This mutates the tool's own state files and must run before any
// registered file is edited.
func (c *Client) NewRelease(ctx context.Context, version string) error {
	argv := append(append([]string{}, c.argv...), "new-release", "--version", version)
	return c.runner.Run(ctx, argv, c.root, io.Discard)
}

// Render produces the full changelog text on stdout using the configured
// template.
func (c *Client) Render(ctx context.Context) (string, error) {
	argv := append(append([]string{}, c.argv...), "render", "--template", c.template)
	return c.runner.Output(ctx, argv, c.root)
}
