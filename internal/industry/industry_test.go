package industry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_KnownIndustries(t *testing.T) {
	for _, key := range Keys() {
		cfg, ok := Lookup(key)
		require.True(t, ok, key)
		assert.Contains(t, cfg.SearchQuery, "{location}", key)
		assert.NotEmpty(t, cfg.Keywords, key)
		assert.NotEmpty(t, cfg.RealWebsites, key)
		assert.NotEmpty(t, cfg.NameTemplates, key)
		for _, site := range cfg.RealWebsites {
			assert.True(t, strings.HasPrefix(site.URL, "https://"), site.URL)
			assert.NotEmpty(t, site.Name)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := Lookup("plumbing")
	assert.False(t, ok)
}
