package release

import (
	"context"
	"fmt"
	"strings"
)

// rewriteDocConf updates the Sphinx conf.py version metadata line by line:
// the "version" key gets the truncated major.minor form, the "release" key
// gets the full version, every other line passes through verbatim. The output
// always ends with exactly one trailing newline.
func rewriteDocConf(_ context.Context, version, old string) (string, error) {
	var out []string
	for _, line := range strings.Split(strings.TrimRight(old, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "version"):
			out = append(out, fmt.Sprintf("version = u'%s'", ShortVersion(version)))
		case strings.HasPrefix(line, "release"):
			out = append(out, fmt.Sprintf("release = u'%s'", version))
		default:
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n") + "\n", nil
}
