package eblp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := GenerateID()
		assert.Regexp(t, generatedIDPattern, id)
		assert.True(t, ValidID(id))
		seen[id] = true
	}
	assert.Greater(t, len(seen), 90)
}

func TestNewIDGeneratorUsesReader(t *testing.T) {
	t.Parallel()

	src := bytes.Repeat([]byte{0xab, 0xcd, 0x01, 0x2f}, 8)
	gen := NewIDGenerator(bytes.NewReader(src))

	assert.Equal(t, "eblan.abcd012f", gen())
	assert.Equal(t, "eblan.abcd012f", gen())
	assert.Panics(t, func() { gen() })
}

func TestValidID(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidID("eblan.myplugin"))
	assert.True(t, ValidID("eblan.A-1"))
	assert.False(t, ValidID("eblan."))
	assert.False(t, ValidID("eblan.my plugin"))
	assert.False(t, ValidID("xeblan.abc"))
	assert.False(t, ValidID("eblan.abc_d"))
}
