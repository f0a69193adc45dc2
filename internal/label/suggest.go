package label

import (
	"slices"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the known command closest to command by edit distance,
// if one is close enough to be a plausible typo.
func (f *Formatter) Suggest(command string) (string, bool) {
	candidates := append(f.table.Commands(), LayoutCommand)
	slices.Sort(candidates)

	best, bestDist := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(command, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" || bestDist == 0 || bestDist > max(2, len(command)/3) {
		return "", false
	}
	return best, true
}

// Suggest uses the built-in table.
func Suggest(command string) (string, bool) {
	return std.Suggest(command)
}

// Known uses the built-in table.
func Known(command string) bool {
	return std.Known(command)
}
