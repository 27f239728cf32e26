package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentClustersASCII(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, segmentClusters("abc"))
	assert.Nil(t, segmentClusters(""))
}

func TestSegmentClustersCombiningMark(t *testing.T) {
	// "e" + COMBINING ACUTE ACCENT (U+0301) forms one cluster.
	base := "éx"
	clusters := segmentClusters(base)
	assert.Equal(t, []string{"é", "x"}, clusters)
}

func TestSegmentClustersWideRune(t *testing.T) {
	clusters := segmentClusters("aあb")
	assert.Equal(t, []string{"a", "あ", "b"}, clusters)
}

func TestIsCombiningRune(t *testing.T) {
	assert.True(t, isCombiningRune(0x200D))
	assert.True(t, isCombiningRune(0xFE0F))
	assert.True(t, isCombiningRune(0x1F3FC))
	assert.True(t, isCombiningRune(0x0301))
	assert.False(t, isCombiningRune('a'))
}

func TestIsCombiningCluster(t *testing.T) {
	assert.True(t, isCombiningCluster("́"))
	assert.False(t, isCombiningCluster("é"))
	assert.False(t, isCombiningCluster(""))
}
