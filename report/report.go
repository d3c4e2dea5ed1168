// Package report serializes a username set to a plain text file.
package report

import (
	"io/ioutil"
	"path/filepath"
	"sort"
	"strings"

	goutilio "github.com/spudtrooper/goutil/io"
	"github.com/spudtrooper/goutil/sets"
)

// Write writes one username per line, lexicographically sorted, overwriting
// whatever is at path. An empty set produces an empty file; callers decide
// whether to call Write at all in that case.
func Write(users sets.StringSet, path string) error {
	var sorted []string
	for u := range users {
		sorted = append(sorted, u)
	}
	sort.Strings(sorted)

	if dir := filepath.Dir(path); dir != "." {
		if _, err := goutilio.MkdirAll(dir); err != nil {
			return err
		}
	}

	var b strings.Builder
	for _, u := range sorted {
		b.WriteString(u)
		b.WriteString("\n")
	}
	return ioutil.WriteFile(path, []byte(b.String()), 0755)
}
