package vtscreen

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// segmentClusters splits s into user-perceived grapheme clusters.
//
// This delegates boundary detection to uniseg's UAX #29 implementation
// rather than the narrower combining-mark/ZWJ/variation-selector/skin-tone
// rule set the clustering contract describes directly: a full Unicode
// segmenter is an explicitly allowed substitute, and its boundaries are a
// superset that still agrees with the narrower rule on plain text.
func segmentClusters(s string) []string {
	if s == "" {
		return nil
	}
	var clusters []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}

// isCombiningRune reports whether r is a combining mark, zero-width joiner,
// variation selector, or emoji skin-tone modifier: the set of code points
// that attach to a preceding cell rather than occupying one of their own.
func isCombiningRune(r rune) bool {
	switch {
	case r == 0x200D: // ZERO WIDTH JOINER
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r >= 0x1F3FB && r <= 0x1F3FF: // emoji skin tone modifiers
		return true
	case unicode.Is(unicode.Mn, r), unicode.Is(unicode.Me, r):
		return true
	default:
		return false
	}
}

// isCombiningCluster reports whether every code point in a cluster is a
// combining code point, meaning the cluster has no base character of its
// own and must attach to whatever preceded it.
func isCombiningCluster(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !isCombiningRune(r) {
			return false
		}
	}
	return true
}
