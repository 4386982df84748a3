package es

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildQueryFiltersBrand(t *testing.T) {
	q := BuildQuery("password reset", "blorcs", 10)
	boolQuery := q["query"].(map[string]any)["bool"].(map[string]any)

	filter, ok := boolQuery["filter"].([]any)
	assert.True(t, ok)
	assert.Len(t, filter, 1)
	assert.Equal(t, 10, q["size"])
}

func TestBuildQueryAllBrandsIsUnfiltered(t *testing.T) {
	for _, brand := range []string{"", "all"} {
		q := BuildQuery("vpn", brand, 5)
		boolQuery := q["query"].(map[string]any)["bool"].(map[string]any)
		_, ok := boolQuery["filter"]
		assert.False(t, ok, "brand %q", brand)
	}
}
