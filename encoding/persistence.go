package encoding

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/YuminosukeSato/featgo/core/model"
	"github.com/YuminosukeSato/featgo/pkg/errors"
)

// gobはインターフェース値として送られる具象型の事前登録を要求する。
// カテゴリとして現れうる型をここで登録しておく。
func init() {
	gob.Register("")
	gob.Register(float64(0))
	gob.Register(int(0))
}

// categoryMappingPayload はCategoryMappingの永続化表現。
// カテゴリは初出順のまま直列化されるため、復元後も逆変換のタイブレークと
// 既定値による参照動作が変わらない。
//
// gobはゼロ値のフィールドを送信しないため、既定値0はポインタのままでは
// 復元できない。有無をHasDefaultで明示的に持つ。
type categoryMappingPayload struct {
	Categories []any
	Stats      []float64
	HasDefault bool
	Default    float64
}

// GobEncode はマッピングを初出順を保ったまま直列化する。
func (m *CategoryMapping) GobEncode() ([]byte, error) {
	p := categoryMappingPayload{
		Categories: m.order,
		Stats:      make([]float64, len(m.order)),
	}
	if m.def != nil {
		p.HasDefault = true
		p.Default = *m.def
	}
	for i, cat := range m.order {
		p.Stats[i] = m.entries[cat]
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode はマッピングを復元する。既定値（zeroポリシーの参照動作）も
// 保存されたキーと値だけでなく再構築される。
func (m *CategoryMapping) GobDecode(data []byte) error {
	var p categoryMappingPayload
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return err
	}
	if len(p.Categories) != len(p.Stats) {
		return fmt.Errorf("corrupted category mapping: %d categories, %d stats", len(p.Categories), len(p.Stats))
	}
	m.entries = make(map[any]float64, len(p.Categories))
	m.order = nil
	m.def = nil
	if p.HasDefault {
		v := p.Default
		m.def = &v
	}
	for i, cat := range p.Categories {
		m.Set(cat, p.Stats[i])
	}
	return nil
}

// encoderSnapshot はCountFrequencyEncoderの永続化表現。
// 学習済み状態の有無も含め、再読み込み後にfitなしで変換を再開できる。
type encoderSnapshot struct {
	Method          Method
	Unseen          UnseenPolicy
	Variables       []string
	IgnoreFormat    bool
	Fitted          bool
	FittedVariables []string
	EncoderDict     map[string]*CategoryMapping
	FeatureNamesIn  []string
	NFeaturesIn     int
	NSamples        int
}

// GobEncode はエンコーダの設定と学習済み状態を直列化する。
func (e *CountFrequencyEncoder) GobEncode() ([]byte, error) {
	_, nSamples := e.state.GetDimensions()
	snap := encoderSnapshot{
		Method:          e.Method,
		Unseen:          e.Unseen,
		Variables:       e.Variables,
		IgnoreFormat:    e.IgnoreFormat,
		Fitted:          e.state.IsFitted(),
		FittedVariables: e.FittedVariables,
		EncoderDict:     e.EncoderDict,
		FeatureNamesIn:  e.FeatureNamesIn,
		NFeaturesIn:     e.NFeaturesIn,
		NSamples:        nSamples,
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode はエンコーダを復元する。学習済みであれば状態管理も学習済みとして
// 再構築され、そのままTransform/InverseTransformを呼び出せる。
func (e *CountFrequencyEncoder) GobDecode(data []byte) error {
	var snap encoderSnapshot
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&snap); err != nil {
		return err
	}
	e.Method = snap.Method
	e.Unseen = snap.Unseen
	e.Variables = snap.Variables
	e.IgnoreFormat = snap.IgnoreFormat
	e.FittedVariables = snap.FittedVariables
	e.EncoderDict = snap.EncoderDict
	e.FeatureNamesIn = snap.FeatureNamesIn
	e.NFeaturesIn = snap.NFeaturesIn
	e.state = model.NewStateManager()
	if snap.Fitted {
		e.state.SetFitted()
		e.state.SetDimensions(snap.NFeaturesIn, snap.NSamples)
	}
	return nil
}

// Save はエンコーダをファイルに保存する
func (e *CountFrequencyEncoder) Save(path string) error {
	return model.SaveModel(e, path)
}

// Load はファイルからエンコーダを読み込む
func (e *CountFrequencyEncoder) Load(path string) error {
	return model.LoadModel(e, path)
}

// StateHash は学習済み状態の決定的なハッシュ値を返す
//
// 変数・カテゴリを学習時の順序で走査するため、同じ学習済み状態からは常に
// 同じ値が得られる。保存・再読み込みをまたいだ整合性の検証に使える。
//
// 戻り値:
//   - string: 16進数表現のハッシュ値
//   - error: 未学習の場合のNotFittedError
func (e *CountFrequencyEncoder) StateHash() (string, error) {
	if !e.state.IsFitted() {
		return "", errors.NewNotFittedError("CountFrequencyEncoder", "StateHash")
	}

	d := xxhash.New()
	for _, v := range e.FittedVariables {
		_, _ = io.WriteString(d, v)
		_, _ = d.Write([]byte{0})
		m := e.EncoderDict[v]
		for _, cat := range m.Categories() {
			stat, _ := m.Lookup(cat)
			_, _ = fmt.Fprintf(d, "%T:%v=%016x;", cat, cat, math.Float64bits(stat))
		}
		if def, ok := m.Default(); ok {
			_, _ = fmt.Fprintf(d, "default=%016x;", math.Float64bits(def))
		}
		_, _ = d.Write([]byte{1})
	}
	for _, name := range e.FeatureNamesIn {
		_, _ = io.WriteString(d, name)
		_, _ = d.Write([]byte{2})
	}
	return fmt.Sprintf("%016x", d.Sum64()), nil
}
