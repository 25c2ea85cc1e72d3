package encoding

// CategoryMapping は1変数分のカテゴリ→統計量マッピング。
//
// 未知カテゴリを0に置き換えるポリシーでは、参照に失敗した場合の既定値を
// マッピング自身がタグとして保持する（Pythonのdefaultdict相当）。既定値は
// マッピングの性質であり変換処理の性質ではないため、永続化して復元しても
// 同じ参照動作が再現される。
//
// カテゴリの観測順（学習データでの初出順）も保持する。逆変換で統計量が
// 衝突した場合のタイブレークに使われる。
type CategoryMapping struct {
	entries map[any]float64
	order   []any
	def     *float64
}

// NewCategoryMapping は新しいCategoryMappingを作成する。
// defaultValueがnilでない場合、存在しないカテゴリの参照はその値を返す。
func NewCategoryMapping(defaultValue *float64) *CategoryMapping {
	m := &CategoryMapping{
		entries: make(map[any]float64),
	}
	if defaultValue != nil {
		v := *defaultValue
		m.def = &v
	}
	return m
}

// Set はカテゴリに統計量を設定する。初出のカテゴリは観測順に追記される。
func (m *CategoryMapping) Set(category any, stat float64) {
	if _, seen := m.entries[category]; !seen {
		m.order = append(m.order, category)
	}
	m.entries[category] = stat
}

// Lookup はカテゴリの統計量を返す。
// カテゴリが存在しない場合、既定値が設定されていればそれを返し、
// なければ参照失敗を通知する。
func (m *CategoryMapping) Lookup(category any) (float64, bool) {
	if stat, ok := m.entries[category]; ok {
		return stat, true
	}
	if m.def != nil {
		return *m.def, true
	}
	return 0, false
}

// Contains はカテゴリが学習済みかどうかを返す（既定値は考慮しない）。
func (m *CategoryMapping) Contains(category any) bool {
	_, ok := m.entries[category]
	return ok
}

// Len は学習されたカテゴリ数を返す。
func (m *CategoryMapping) Len() int {
	return len(m.entries)
}

// Categories は学習データでの初出順にカテゴリを返す。
func (m *CategoryMapping) Categories() []any {
	return append([]any(nil), m.order...)
}

// Default は既定値とその有無を返す。
func (m *CategoryMapping) Default() (float64, bool) {
	if m.def == nil {
		return 0, false
	}
	return *m.def, true
}

// Stats はカテゴリ→統計量のコピーを返す。
func (m *CategoryMapping) Stats() map[any]float64 {
	stats := make(map[any]float64, len(m.entries))
	for cat, stat := range m.entries {
		stats[cat] = stat
	}
	return stats
}

// clone はマッピングの深いコピーを返す。
func (m *CategoryMapping) clone() *CategoryMapping {
	c := NewCategoryMapping(m.def)
	for _, cat := range m.order {
		c.Set(cat, m.entries[cat])
	}
	return c
}
