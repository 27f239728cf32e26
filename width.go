package vtscreen

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/mattn/go-runewidth"
)

// widthCacheSize bounds the memoized set of recent cluster-width queries,
// per the "MAY memoize a bounded set of recent width queries" allowance.
const widthCacheSize = 4096

// widthCache memoizes clusterWidth results. Terminal output is heavily
// repetitive (the same handful of clusters drawn over and over), so this
// cache turns most draw() calls into a map lookup instead of a
// rune-category walk.
var widthCache = newWidthCache()

func newWidthCache() *lru.Cache {
	c, err := lru.New(widthCacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// widthCacheSize never is.
		panic(err)
	}
	return c
}

// clusterWidth returns the display width of a single grapheme cluster: 1
// for a normal cell, 2 for East-Asian wide, 0 for zero-width/combining, and
// a negative value for an unprintable cluster that should stop drawing.
func clusterWidth(cluster string) int {
	if v, ok := widthCache.Get(cluster); ok {
		return v.(int)
	}
	w := computeClusterWidth(cluster)
	widthCache.Add(cluster, w)
	return w
}

func computeClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	runes := []rune(cluster)
	first := runes[0]

	if first < 0x20 || first == 0x7f {
		return -1
	}
	if isCombiningCluster(cluster) {
		return 0
	}

	w := runewidth.StringWidth(cluster)
	switch {
	case w <= 0:
		return 0
	case w >= 2:
		return 2
	default:
		return 1
	}
}
