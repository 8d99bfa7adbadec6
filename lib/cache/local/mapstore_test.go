package local

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/cache"
)

func TestLocal(t *testing.T) {
	c := New(0)
	key := cache.Key("I want to go home.")

	lookup, err := c.Get(key)
	require.NoError(t, err)
	assert.Nil(t, lookup)

	want := &cache.Lookup{Model: "en_core_web_sm", Tokens: []byte(`[]`)}
	require.NoError(t, c.Set(key, want))

	lookup, err = c.Get(key)
	require.NoError(t, err)
	assert.Equal(t, want, lookup)
	assert.True(t, c.Ready())

	c.Delete(key)
	lookup, _ = c.Get(key)
	assert.Nil(t, lookup)
}

func TestLocal_Bounded(t *testing.T) {
	c := New(2)
	for _, text := range []string{"one", "two", "three", "four"} {
		require.NoError(t, c.Set(cache.Key(text), &cache.Lookup{Model: text}))
		assert.LessOrEqual(t, c.Len(), 2)
	}

	// overwriting an existing key never evicts
	require.NoError(t, c.Set(cache.Key("four"), &cache.Lookup{Model: "4"}))
	assert.Equal(t, 2, c.Len())
	lookup, _ := c.Get(cache.Key("four"))
	assert.Equal(t, "4", lookup.Model)
}

func TestKey(t *testing.T) {
	assert.Equal(t, cache.Key("same"), cache.Key("same"))
	assert.NotEqual(t, cache.Key("Same"), cache.Key("same"))
	assert.Len(t, cache.Key("x"), len("parse:")+64)
}
