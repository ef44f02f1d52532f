package release

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apfromiit/chalice/internal/changelog"
)

// Bumper applies a version bump across the registered files of one project.
type Bumper struct {
	Root      string
	Changelog *changelog.Client
	Edits     []FileEdit
}

// NewBumper builds a Bumper for root with the static file-edit registry.
func NewBumper(root string, ch *changelog.Client) *Bumper {
	return &Bumper{Root: root, Changelog: ch, Edits: Registry(ch)}
}

// Bump folds pending changelog entries for version, then rewrites every
// registered file in registry order. Edits are independent per file; there is
// no rollback. A failure partway through leaves earlier edits in place and
// aborts — accepted behavior, not a transaction.
func (b *Bumper) Bump(ctx context.Context, version string) error {
	if err := b.Changelog.NewRelease(ctx, version); err != nil {
		return fmt.Errorf("fold changelog entries: %w", err)
	}
	for _, e := range b.Edits {
		if err := b.applyEdit(ctx, e, version); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bumper) applyEdit(ctx context.Context, e FileEdit, version string) error {
	path := filepath.Join(b.Root, e.Path)
	old, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", e.Path, err)
	}
	text, err := e.apply(ctx, version, string(old))
	if err != nil {
		return fmt.Errorf("rewrite %s: %w", e.Path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", e.Path, err)
	}
	return nil
}

// Plan prints the per-file effect of bumping to version without writing
// anything or touching the changelog tool's state. Regex and pure transform
// rules report whether the file would actually change; the changelog rewrite
// is reported unconditionally since its content depends on external state.
func (b *Bumper) Plan(ctx context.Context, version string, w io.Writer) error {
	for _, e := range b.Edits {
		if e.External {
			fmt.Fprintf(w, "would regenerate %s from the changelog tool\n", e.Path)
			continue
		}
		path := filepath.Join(b.Root, e.Path)
		old, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", e.Path, err)
		}
		text, err := e.apply(ctx, version, string(old))
		if err != nil {
			return fmt.Errorf("rewrite %s: %w", e.Path, err)
		}
		if text == string(old) {
			fmt.Fprintf(w, "no change to %s\n", e.Path)
		} else {
			fmt.Fprintf(w, "would update %s\n", e.Path)
		}
	}
	return nil
}
