package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryMappingLookup(t *testing.T) {
	t.Run("without default", func(t *testing.T) {
		m := NewCategoryMapping(nil)
		m.Set("blue", 3)
		m.Set("red", 2)

		stat, ok := m.Lookup("blue")
		assert.True(t, ok)
		assert.Equal(t, 3.0, stat)

		// 未知カテゴリは参照失敗になる
		_, ok = m.Lookup("yellow")
		assert.False(t, ok)

		_, hasDefault := m.Default()
		assert.False(t, hasDefault)
	})

	t.Run("with zero default", func(t *testing.T) {
		zero := 0.0
		m := NewCategoryMapping(&zero)
		m.Set("blue", 3)

		// 未知カテゴリは既定値0を返す
		stat, ok := m.Lookup("yellow")
		assert.True(t, ok)
		assert.Equal(t, 0.0, stat)

		// Containsは既定値を考慮しない
		assert.True(t, m.Contains("blue"))
		assert.False(t, m.Contains("yellow"))

		def, hasDefault := m.Default()
		assert.True(t, hasDefault)
		assert.Equal(t, 0.0, def)
	})
}

func TestCategoryMappingOrder(t *testing.T) {
	m := NewCategoryMapping(nil)
	m.Set("blue", 1)
	m.Set("red", 2)
	m.Set("green", 3)
	// 既存カテゴリの上書きは順序を変えない
	m.Set("blue", 4)

	assert.Equal(t, []any{"blue", "red", "green"}, m.Categories())
	assert.Equal(t, 3, m.Len())

	stat, _ := m.Lookup("blue")
	assert.Equal(t, 4.0, stat)
}

func TestCategoryMappingStatsIsCopy(t *testing.T) {
	m := NewCategoryMapping(nil)
	m.Set("blue", 3)

	stats := m.Stats()
	stats["blue"] = 99

	stat, _ := m.Lookup("blue")
	assert.Equal(t, 3.0, stat)
}

func TestCategoryMappingClone(t *testing.T) {
	zero := 0.0
	m := NewCategoryMapping(&zero)
	m.Set("blue", 3)
	m.Set("red", 2)

	c := m.clone()
	c.Set("blue", 99)
	c.Set("green", 1)

	// クローンの変更は元に影響しない
	stat, _ := m.Lookup("blue")
	require.Equal(t, 3.0, stat)
	assert.False(t, m.Contains("green"))

	// 既定値と順序は引き継がれる
	_, hasDefault := c.Default()
	assert.True(t, hasDefault)
	assert.Equal(t, []any{"blue", "red", "green"}, c.Categories())
}
