package release

import (
	"context"
	"regexp"
	"strings"

	"github.com/apfromiit/chalice/internal/changelog"
)

// RegexRule rewrites every match of Pattern with Template, after substituting
// the new version for the "{version}" placeholder in the template.
type RegexRule struct {
	Pattern  *regexp.Regexp
	Template string
}

// TransformFunc replaces a file's full text. It receives the new version and
// the file's current contents and returns the new contents.
type TransformFunc func(ctx context.Context, version, old string) (string, error)

// FileEdit maps a repo-relative path to exactly one rule form: a regex
// substitution or a whole-text transform. Matched explicitly in apply; never
// both set.
type FileEdit struct {
	Path      string
	Regex     *RegexRule
	Transform TransformFunc
	// External marks a transform whose output depends on external tool state
	// rather than the version and old text alone.
	External bool
}

func (e FileEdit) apply(ctx context.Context, version, old string) (string, error) {
	if e.Regex != nil {
		repl := strings.ReplaceAll(e.Regex.Template, "{version}", version)
		return e.Regex.Pattern.ReplaceAllString(old, repl), nil
	}
	return e.Transform(ctx, version, old)
}

// Registry returns the static set of files rewritten by a version bump, in
// application order. Built once per invocation; nothing is added or removed
// at runtime. Target files are not checked for existence up front; a missing
// file surfaces as a read error at edit time.
func Registry(ch *changelog.Client) []FileEdit {
	return []FileEdit{
		{
			Path:  "setup.py",
			Regex: &RegexRule{Pattern: regexp.MustCompile(`version='(.*)'`), Template: "version='{version}'"},
		},
		{
			Path:  "chalice/__init__.py",
			Regex: &RegexRule{Pattern: regexp.MustCompile(`__version__ = '(.*)'`), Template: "__version__ = '{version}'"},
		},
		{
			Path:     "CHANGELOG.rst",
			External: true,
			Transform: func(ctx context.Context, version, old string) (string, error) {
				// The old buffer is discarded; the tool owns the whole file.
				return ch.Render(ctx)
			},
		},
		{
			Path:      "docs/source/conf.py",
			Transform: rewriteDocConf,
		},
	}
}
