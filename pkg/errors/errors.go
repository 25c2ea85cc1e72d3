// Package errors はプロジェクト全体のエラーハンドリングと警告システムを提供します。
// feature-engineの例外階層にインスパイアされており、構造化されたエラー情報を提供します。
package errors

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("featgo-Warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// これにより、UnseenCategoryWarningなどのカスタム警告の処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが利用可能な場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	// zerologが設定されている場合は優先的に使用
	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	// フォールバック: 従来のハンドラ
	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	エンコーディング警告型
//
// ===========================================================================

// UnseenCategoryWarning は学習時に存在しなかったカテゴリが変換時に現れ、
// 欠損値として出力された場合に発生する警告です（ignoreポリシー時のみ）。
type UnseenCategoryWarning struct {
	Transformer string
	Variables   []string
}

func (w *UnseenCategoryWarning) Error() string {
	return fmt.Sprintf("%s: unseen categories were encoded as missing values in variables: %s. "+
		"Consider grouping rare categories before fitting, or use a different unseen policy.",
		w.Transformer, strings.Join(w.Variables, ", "))
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *UnseenCategoryWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("transformer", w.Transformer).
		Strs("variables", w.Variables).
		Str("type", "UnseenCategoryWarning")
}

// NewUnseenCategoryWarning は新しいUnseenCategoryWarningを作成します。
func NewUnseenCategoryWarning(transformer string, variables []string) *UnseenCategoryWarning {
	return &UnseenCategoryWarning{Transformer: transformer, Variables: variables}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// NotFittedError は変換器が未学習の状態で `Transform` や `InverseTransform` を
// 呼び出した場合のエラーです。
type NotFittedError struct {
	ModelName string
	Method    string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("featgo: %s: this transformer is not fitted yet. Call Fit() before using %s()", e.ModelName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("model_name", e.ModelName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(modelName, method string) error {
	err := &NotFittedError{ModelName: modelName, Method: method}
	return errors.WithStack(err)
}

// ValidationError は入力パラメータの検証に失敗した場合のエラーです。
// 不正なエンコーディング方式や未知カテゴリポリシーなど、構築時の設定不備を示します。
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("featgo: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError は新しいValidationErrorを作成し、スタックトレースを付与します。
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(err)
}

// SchemaError は変換に渡されたデータセットの列構成が学習時と一致しない場合のエラーです。
// 列の集合だけでなく順序も一致する必要があります。
type SchemaError struct {
	Op       string
	Expected []string
	Got      []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("featgo: %s: dataset columns do not match the columns seen during Fit(). Expected %v, got %v",
		e.Op, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *SchemaError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Strs("expected", e.Expected).
		Strs("got", e.Got).
		Str("type", "SchemaError")
}

// NewSchemaError は新しいSchemaErrorを作成し、スタックトレースを付与します。
func NewSchemaError(op string, expected, got []string) error {
	err := &SchemaError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// UnseenCategoryError は未知カテゴリポリシーがraiseの場合に、学習済みマッピングに
// 存在しないカテゴリが変換時に現れたことを示すエラーです。
// 学習済み状態は破壊されないため、データを修正して再度Transform()を呼び出せます。
type UnseenCategoryError struct {
	Op        string
	Variables []string
}

func (e *UnseenCategoryError) Error() string {
	vars := append([]string(nil), e.Variables...)
	sort.Strings(vars)
	return fmt.Sprintf("featgo: %s: during the encoding, categories not present in the training set were found in variables: %s",
		e.Op, strings.Join(vars, ", "))
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *UnseenCategoryError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Strs("variables", e.Variables).
		Str("type", "UnseenCategoryError")
}

// NewUnseenCategoryError は新しいUnseenCategoryErrorを作成し、スタックトレースを付与します。
func NewUnseenCategoryError(op string, variables []string) error {
	err := &UnseenCategoryError{Op: op, Variables: variables}
	return errors.WithStack(err)
}

// ConsistencyError は学習されたマッピングに、未知カテゴリの代替値として予約された
// 0が含まれていた場合のエラーです。0の代替ポリシーでは正当な統計量と未知カテゴリが
// 区別できなくなるため、学習自体を失敗させます。
type ConsistencyError struct {
	Variable string
	Category interface{}
	Policy   string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("featgo: category '%v' of variable '%s' maps to 0, which is reserved for unseen categories under the '%s' policy. "+
		"Use a different unseen policy or clean the data.", e.Category, e.Variable, e.Policy)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *ConsistencyError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("variable", e.Variable).
		Interface("category", e.Category).
		Str("policy", e.Policy).
		Str("type", "ConsistencyError")
}

// NewConsistencyError は新しいConsistencyErrorを作成し、スタックトレースを付与します。
func NewConsistencyError(variable string, category interface{}, policy string) error {
	err := &ConsistencyError{Variable: variable, Category: category, Policy: policy}
	return errors.WithStack(err)
}

// ValueError は引数の値が不適切または不正な場合に発生するエラーです。
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("featgo: %s: %s", e.Op, e.Message)
}

// NewValueError は新しいValueErrorを作成し、スタックトレースを付与します。
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ModelError は変換器に関する一般的なエラーです。
type ModelError struct {
	Op   string
	Kind string
	Err  error
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("featgo: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("featgo: %s: %s", e.Op, e.Kind)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// NewModelError は新しいModelErrorを作成し、スタックトレースを付与します。
func NewModelError(op, kind string, err error) error {
	modelErr := &ModelError{Op: op, Kind: kind, Err: err}
	return errors.WithStack(modelErr)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")

	// ErrNoVariables はエンコード対象の変数が一つも解決できなかった場合のエラーです。
	ErrNoVariables = New("no variables to encode")
)
