// Package encoding はカテゴリ変数を数値に置き換える変換器を提供します。
// feature-engineのカテゴリエンコーダと互換のfit/transform/inverse-transform
// 契約に従います。
package encoding

import (
	"fmt"

	"github.com/YuminosukeSato/featgo/core/model"
	"github.com/YuminosukeSato/featgo/dataset"
	"github.com/YuminosukeSato/featgo/pkg/errors"
)

// CountFrequencyEncoder はカテゴリをそのカテゴリの観測数または相対頻度で
// 置き換える変換器。
//
// 例えばcolour列で10行がblueの場合、blueは10に置き換えられる（count）。
// 観測の10%がblueの場合、blueは0.1に置き換えられる（frequency）。
//
// デフォルトではカテゴリ型（文字列）の列のみをエンコードする。エンコード
// 対象の列リストを明示的に渡すこともでき、渡さなければカテゴリ型の全列を
// 自動的に選択する。IgnoreFormatをtrueにすると数値列もエンコードできる。
//
// fitでカテゴリごとの統計量を学習し、transformでカテゴリをその数値に置き
// 換える。学習済み状態はfit成功時にのみ公開され、以後は読み取り専用となる。
// 複数goroutineからの並行したTransform/InverseTransformは安全だが、再fitは
// 排他的な書き込みとして扱うこと。
type CountFrequencyEncoder struct {
	state *model.StateManager

	// Method はエンコーディング方式（count または frequency）
	Method Method

	// Unseen は未知カテゴリの扱い（ignore、raise、zero）
	Unseen UnseenPolicy

	// Variables はエンコード対象として明示的に指定された列名（nilなら自動選択）
	Variables []string

	// IgnoreFormat はカテゴリ型以外の列もエンコード対象にするかどうか
	IgnoreFormat bool

	// EncoderDict は変数ごとのカテゴリ→統計量マッピング（fit後に設定）
	EncoderDict map[string]*CategoryMapping

	// FittedVariables は実際に学習された変数の順序（fit時に固定）
	FittedVariables []string

	// FeatureNamesIn は学習データセットの全列名（エンコード対象外も含む）
	FeatureNamesIn []string

	// NFeaturesIn は学習データセットの列数
	NFeaturesIn int
}

// 静的なインターフェース適合の確認
var (
	_ model.Encoder         = (*CountFrequencyEncoder)(nil)
	_ model.ParameterGetter = (*CountFrequencyEncoder)(nil)
	_ model.Persistable     = (*CountFrequencyEncoder)(nil)
)

// NewCountFrequencyEncoder は新しいCountFrequencyEncoderを作成する
//
// パラメータ:
//   - opts: エンコーダの設定オプション
//
// 戻り値:
//   - *CountFrequencyEncoder: 新しいエンコーダインスタンス
//   - error: 設定値が不正な場合のValidationError
//
// 使用例:
//
//	enc, err := encoding.NewCountFrequencyEncoder(
//	    encoding.WithMethod(encoding.Frequency),
//	    encoding.WithUnseenPolicy(encoding.UnseenRaise),
//	)
func NewCountFrequencyEncoder(opts ...Option) (*CountFrequencyEncoder, error) {
	e := &CountFrequencyEncoder{
		state:  model.NewStateManager(),
		Method: Count,
		Unseen: UnseenIgnore,
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := validateParams(e.Method, e.Unseen); err != nil {
		return nil, err
	}
	return e, nil
}

// IsFitted はエンコーダが学習済みかどうかを返す
func (e *CountFrequencyEncoder) IsFitted() bool {
	return e.state.IsFitted()
}

// Fit は訓練データからカテゴリごとの観測数または相対頻度を学習する
//
// 変数ごとに欠損値を除いた値をカテゴリで集計し、観測数（count）または
// 観測数を非欠損行数で割った値（frequency）をマッピングとして記録する。
// 未知カテゴリのポリシーがzeroの場合、学習されたマッピング全体を走査し、
// 統計量が0のカテゴリが存在すればConsistencyErrorで失敗する。失敗した
// 場合、学習済み状態は一切公開されない。
//
// パラメータ:
//   - X: 訓練データセット。エンコード対象以外の列を含んでいてよい
//
// 戻り値:
//   - error: エラーが発生した場合
func (e *CountFrequencyEncoder) Fit(X *dataset.Frame) error {
	const op = "CountFrequencyEncoder.Fit"

	if X == nil || X.NumRows() == 0 || X.NumCols() == 0 {
		return errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}

	variables, err := selectVariables(op, X, e.Variables, e.IgnoreFormat)
	if err != nil {
		return err
	}

	dict := make(map[string]*CategoryMapping, len(variables))
	for _, v := range variables {
		col, err := X.Column(v)
		if err != nil {
			return err
		}

		counts := make(map[any]float64)
		var order []any
		n := 0
		for _, cell := range col {
			if dataset.IsMissing(cell) {
				continue
			}
			if _, seen := counts[cell]; !seen {
				order = append(order, cell)
			}
			counts[cell]++
			n++
		}
		if n == 0 {
			return errors.NewModelError(op, "variable '"+v+"' has no non-missing values", errors.ErrEmptyData)
		}

		m := NewCategoryMapping(e.defaultStat())
		for _, cat := range order {
			stat := counts[cat]
			if e.Method == Frequency {
				stat /= float64(n)
			}
			m.Set(cat, stat)
		}
		dict[v] = m
	}

	if err := checkEncodingDictionary(dict, variables, e.Unseen); err != nil {
		return err
	}

	// fitが成功した場合のみ学習済み状態を公開する
	e.EncoderDict = dict
	e.FittedVariables = variables
	e.FeatureNamesIn = X.ColumnNames()
	e.NFeaturesIn = X.NumCols()
	e.state.SetFitted()
	e.state.SetDimensions(X.NumCols(), X.NumRows())
	return nil
}

// Transform は学習済みマッピングを使ってカテゴリを統計量に置き換える
//
// データセットは学習時と同じ列構成（集合と順序）でなければならず、不一致は
// ポリシーによらずSchemaErrorになる。欠損値はそのまま出力される。学習済み
// マッピングに存在しないカテゴリの扱いはポリシーに従う:
//   - ignore: 欠損値に置き換え、UnseenCategoryWarningを発生させる
//   - raise:  該当変数すべてを列挙したUnseenCategoryErrorで失敗し、部分的な
//     出力は返さない
//   - zero:   0に置き換える（マッピング自身の既定値による）
//
// パラメータ:
//   - X: 変換するデータセット
//
// 戻り値:
//   - *dataset.Frame: 変換された新しいデータセット。入力は変更されない
//   - error: エラーが発生した場合
func (e *CountFrequencyEncoder) Transform(X *dataset.Frame) (*dataset.Frame, error) {
	const op = "CountFrequencyEncoder.Transform"

	if !e.state.IsFitted() {
		return nil, errors.NewNotFittedError("CountFrequencyEncoder", "Transform")
	}
	if err := e.checkSchema(op, X); err != nil {
		return nil, err
	}

	out := X.Clone()
	var unseen []string
	for _, v := range e.FittedVariables {
		m := e.EncoderDict[v]
		col, err := X.Column(v)
		if err != nil {
			return nil, err
		}
		sawUnseen := false
		for i, cell := range col {
			if dataset.IsMissing(cell) {
				continue
			}
			stat, ok := m.Lookup(cell)
			if !ok {
				sawUnseen = true
				col[i] = nil
				continue
			}
			col[i] = stat
		}
		if sawUnseen {
			unseen = append(unseen, v)
		}
		if err := out.SetColumn(v, col); err != nil {
			return nil, err
		}
	}

	if len(unseen) > 0 {
		switch e.Unseen {
		case UnseenRaise:
			return nil, errors.NewUnseenCategoryError(op, unseen)
		case UnseenIgnore:
			errors.Warn(errors.NewUnseenCategoryWarning("CountFrequencyEncoder", unseen))
		}
	}
	return out, nil
}

// FitTransform は訓練データで学習し、同じデータを変換する
func (e *CountFrequencyEncoder) FitTransform(X *dataset.Frame) (*dataset.Frame, error) {
	if err := e.Fit(X); err != nil {
		return nil, err
	}
	return e.Transform(X)
}

// InverseTransform は統計量を元のカテゴリに戻す
//
// 変数ごとに学習済みマッピングから逆引きマップ（統計量→カテゴリ）を構築し、
// 数値を対応するカテゴリに置き換える。逆引きマップは学習データでのカテゴリ
// 初出順に構築されるため、複数のカテゴリが同じ統計量を持つ場合は先に観測
// されたカテゴリが決定的に選ばれる。これは既知の制限である。
//
// 逆引きマップに存在しない値（未知カテゴリ由来の0や、ignoreポリシーによる
// 欠損値など）はエラーにならず、そのまま出力される。列構成の不一致のみが
// SchemaErrorになる。
//
// パラメータ:
//   - X: 変換済みのデータセット
//
// 戻り値:
//   - *dataset.Frame: カテゴリが復元された新しいデータセット
//   - error: エラーが発生した場合
func (e *CountFrequencyEncoder) InverseTransform(X *dataset.Frame) (*dataset.Frame, error) {
	const op = "CountFrequencyEncoder.InverseTransform"

	if !e.state.IsFitted() {
		return nil, errors.NewNotFittedError("CountFrequencyEncoder", "InverseTransform")
	}
	if err := e.checkSchema(op, X); err != nil {
		return nil, err
	}

	out := X.Clone()
	for _, v := range e.FittedVariables {
		m := e.EncoderDict[v]

		reverse := make(map[float64]any, m.Len())
		for _, cat := range m.Categories() {
			stat, _ := m.Lookup(cat)
			if _, dup := reverse[stat]; !dup {
				reverse[stat] = cat
			}
		}

		col, err := X.Column(v)
		if err != nil {
			return nil, err
		}
		for i, cell := range col {
			if dataset.IsMissing(cell) {
				continue
			}
			x, ok := dataset.AsFloat(cell)
			if !ok {
				continue
			}
			if cat, ok := reverse[x]; ok {
				col[i] = cat
			}
		}
		if err := out.SetColumn(v, col); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Mapping は指定した変数の学習済みマッピングのコピーを返す
func (e *CountFrequencyEncoder) Mapping(variable string) (*CategoryMapping, error) {
	if !e.state.IsFitted() {
		return nil, errors.NewNotFittedError("CountFrequencyEncoder", "Mapping")
	}
	m, ok := e.EncoderDict[variable]
	if !ok {
		return nil, errors.NewValueError("CountFrequencyEncoder.Mapping", "variable was not encoded: "+variable)
	}
	return m.clone(), nil
}

// GetParams はエンコーダのパラメータを取得する
func (e *CountFrequencyEncoder) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"encoding_method": string(e.Method),
		"unseen":          string(e.Unseen),
		"variables":       append([]string(nil), e.Variables...),
		"ignore_format":   e.IgnoreFormat,
	}
}

// String はエンコーダの文字列表現を返す
func (e *CountFrequencyEncoder) String() string {
	if !e.state.IsFitted() {
		return fmt.Sprintf("CountFrequencyEncoder(encoding_method=%s, unseen=%s)", e.Method, e.Unseen)
	}
	return fmt.Sprintf("CountFrequencyEncoder(encoding_method=%s, unseen=%s, n_variables=%d)",
		e.Method, e.Unseen, len(e.FittedVariables))
}

// defaultStat はポリシーに応じたマッピングの既定値を返す。
// zeroポリシーの場合のみ0を既定値とし、それ以外は既定値なし。
func (e *CountFrequencyEncoder) defaultStat() *float64 {
	if e.Unseen == UnseenZero {
		zero := 0.0
		return &zero
	}
	return nil
}

// checkSchema は列の集合と順序が学習時と一致することを検証する。
func (e *CountFrequencyEncoder) checkSchema(op string, X *dataset.Frame) error {
	if X == nil {
		return errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}
	got := X.ColumnNames()
	if len(got) != len(e.FeatureNamesIn) {
		return errors.NewSchemaError(op, e.FeatureNamesIn, got)
	}
	for i := range got {
		if got[i] != e.FeatureNamesIn[i] {
			return errors.NewSchemaError(op, e.FeatureNamesIn, got)
		}
	}
	return nil
}

// checkEncodingDictionary は学習されたマッピングが未知カテゴリの予約値と
// 衝突しないことを検証する。zeroポリシーでのみ意味を持つ。
//
// 観測数が0のカテゴリは構築上マッピングに現れないため、このチェックは
// 退化した入力（頻度のアンダーフローなど）に対する品質ゲートである。
func checkEncodingDictionary(dict map[string]*CategoryMapping, variables []string, policy UnseenPolicy) error {
	if policy != UnseenZero {
		return nil
	}
	for _, v := range variables {
		m := dict[v]
		for _, cat := range m.Categories() {
			if stat, _ := m.Lookup(cat); stat == 0 {
				return errors.NewConsistencyError(v, cat, string(policy))
			}
		}
	}
	return nil
}
