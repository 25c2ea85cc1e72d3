package encoding

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/featgo/core/model"
	"github.com/YuminosukeSato/featgo/dataset"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	enc, err := NewCountFrequencyEncoder(WithMethod(Frequency))
	require.NoError(t, err)
	require.NoError(t, enc.Fit(colourFrame(t)))

	path := filepath.Join(t.TempDir(), "encoder.gob")
	require.NoError(t, enc.Save(path))

	loaded := &CountFrequencyEncoder{}
	require.NoError(t, loaded.Load(path))

	// 設定と学習済み状態が復元され、fitなしで変換できる
	assert.True(t, loaded.IsFitted())
	assert.Equal(t, Frequency, loaded.Method)
	assert.Equal(t, enc.FittedVariables, loaded.FittedVariables)
	assert.Equal(t, enc.FeatureNamesIn, loaded.FeatureNamesIn)
	assert.Equal(t, enc.NFeaturesIn, loaded.NFeaturesIn)

	test, err := dataset.New(dataset.Column{
		Name:   "colour",
		Values: []any{"green", "blue"},
	})
	require.NoError(t, err)

	want, err := enc.Transform(test)
	require.NoError(t, err)
	got, err := loaded.Transform(test)
	require.NoError(t, err)

	a, _ := want.Column("colour")
	b, _ := got.Column("colour")
	assert.Equal(t, a, b)
}

func TestLoadPreservesZeroDefault(t *testing.T) {
	enc, err := NewCountFrequencyEncoder(WithUnseenPolicy(UnseenZero))
	require.NoError(t, err)
	require.NoError(t, enc.Fit(colourFrame(t)))

	path := filepath.Join(t.TempDir(), "encoder.gob")
	require.NoError(t, enc.Save(path))

	loaded := &CountFrequencyEncoder{}
	require.NoError(t, loaded.Load(path))

	// 再読み込み後も未知カテゴリは0になる（既定値がマッピングごと復元される）
	test, err := dataset.New(dataset.Column{
		Name:   "colour",
		Values: []any{"yellow"},
	})
	require.NoError(t, err)

	out, err := loaded.Transform(test)
	require.NoError(t, err)
	col, _ := out.Column("colour")
	assert.Equal(t, 0.0, col[0])

	// 既定値そのものも復元されている（ゼロ値でも有無が失われない）
	m, err := loaded.Mapping("colour")
	require.NoError(t, err)
	def, ok := m.Default()
	assert.True(t, ok)
	assert.Equal(t, 0.0, def)
}

func TestLoadPreservesTieBreakOrder(t *testing.T) {
	f, err := dataset.New(dataset.Column{
		Name:   "colour",
		Values: []any{"blue", "blue", "red", "red"},
	})
	require.NoError(t, err)

	enc, err := NewCountFrequencyEncoder()
	require.NoError(t, err)
	require.NoError(t, enc.Fit(f))

	path := filepath.Join(t.TempDir(), "encoder.gob")
	require.NoError(t, enc.Save(path))

	loaded := &CountFrequencyEncoder{}
	require.NoError(t, loaded.Load(path))

	// 初出順が直列化されているため、曖昧な逆引きの結果も変わらない
	encoded, err := dataset.New(dataset.Column{
		Name:   "colour",
		Values: []any{2.0},
	})
	require.NoError(t, err)

	restored, err := loaded.InverseTransform(encoded)
	require.NoError(t, err)
	col, _ := restored.Column("colour")
	assert.Equal(t, []any{"blue"}, col)
}

func TestSaveLoadCompressed(t *testing.T) {
	enc, err := NewCountFrequencyEncoder()
	require.NoError(t, err)
	require.NoError(t, enc.Fit(colourFrame(t)))

	path := filepath.Join(t.TempDir(), "encoder.gob.zst")
	require.NoError(t, model.SaveModelCompressed(enc, path))

	loaded := &CountFrequencyEncoder{}
	require.NoError(t, model.LoadModelCompressed(loaded, path))

	assert.True(t, loaded.IsFitted())

	m, err := loaded.Mapping("colour")
	require.NoError(t, err)
	assert.Equal(t, map[any]float64{"blue": 3, "red": 2, "green": 5}, m.Stats())
}

func TestStateHash(t *testing.T) {
	enc, err := NewCountFrequencyEncoder()
	require.NoError(t, err)

	// 未学習ではハッシュを計算できない
	_, err = enc.StateHash()
	require.Error(t, err)

	require.NoError(t, enc.Fit(colourFrame(t)))

	h1, err := enc.StateHash()
	require.NoError(t, err)
	h2, err := enc.StateHash()
	require.NoError(t, err)
	// 同じ学習済み状態からは常に同じ値
	assert.Equal(t, h1, h2)

	// 保存・再読み込みをまたいでも一致する
	path := filepath.Join(t.TempDir(), "encoder.gob")
	require.NoError(t, enc.Save(path))
	loaded := &CountFrequencyEncoder{}
	require.NoError(t, loaded.Load(path))

	h3, err := loaded.StateHash()
	require.NoError(t, err)
	assert.Equal(t, h1, h3)

	// 異なるデータで再学習すれば値は変わる
	g, err := dataset.New(dataset.Column{
		Name:   "colour",
		Values: []any{"yellow", "purple"},
	})
	require.NoError(t, err)
	require.NoError(t, enc.Fit(g))

	h4, err := enc.StateHash()
	require.NoError(t, err)
	assert.NotEqual(t, h1, h4)
}

func TestSaveLoadViaWriter(t *testing.T) {
	enc, err := NewCountFrequencyEncoder()
	require.NoError(t, err)
	require.NoError(t, enc.Fit(colourFrame(t)))

	path := filepath.Join(t.TempDir(), "encoder.gob")
	require.NoError(t, model.SaveModel(enc, path))

	loaded := &CountFrequencyEncoder{}
	require.NoError(t, model.LoadModel(loaded, path))
	assert.True(t, loaded.IsFitted())
}

func TestWriterRoundTripZeroPolicy(t *testing.T) {
	enc, err := NewCountFrequencyEncoder(WithUnseenPolicy(UnseenZero))
	require.NoError(t, err)
	require.NoError(t, enc.Fit(colourFrame(t)))

	var buf bytes.Buffer
	require.NoError(t, model.SaveModelToWriter(enc, &buf))

	loaded := &CountFrequencyEncoder{}
	require.NoError(t, model.LoadModelFromReader(loaded, &buf))

	test, err := dataset.New(dataset.Column{
		Name:   "colour",
		Values: []any{"blue", "yellow"},
	})
	require.NoError(t, err)

	out, err := loaded.Transform(test)
	require.NoError(t, err)
	col, _ := out.Column("colour")
	assert.Equal(t, []any{3.0, 0.0}, col)
}
