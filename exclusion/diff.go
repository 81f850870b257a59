package exclusion

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff returns a unified diff between the sorted JSON forms of from and
// to. The result is empty when the tables hold the same exclusions.
func UnifiedDiff(from, to *Table, fromName, toName string) (string, error) {
	a, err := from.Sorted().Format()
	if err != nil {
		return "", fmt.Errorf("exclusion: formatting %s: %w", fromName, err)
	}
	b, err := to.Sorted().Format()
	if err != nil {
		return "", fmt.Errorf("exclusion: formatting %s: %w", toName, err)
	}
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: fromName,
		ToFile:   toName,
		Context:  3,
	})
}
