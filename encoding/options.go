package encoding

import "github.com/YuminosukeSato/featgo/pkg/errors"

// Method はカテゴリを置き換える統計量の種類
type Method string

const (
	// Count はカテゴリごとの観測数で置き換える
	Count Method = "count"

	// Frequency はカテゴリごとの相対頻度（観測数 / 総観測数）で置き換える
	Frequency Method = "frequency"
)

// UnseenPolicy は学習時に存在しなかったカテゴリの変換時の扱い
type UnseenPolicy string

const (
	// UnseenIgnore は未知カテゴリを欠損値に置き換える（デフォルト）
	UnseenIgnore UnseenPolicy = "ignore"

	// UnseenRaise は未知カテゴリを検出した時点で変換全体を失敗させる
	UnseenRaise UnseenPolicy = "raise"

	// UnseenZero は未知カテゴリを0に置き換える。
	// 0は未知カテゴリ専用の値として予約されるため、学習された統計量が
	// 0になる場合はfitがConsistencyErrorで失敗する。
	UnseenZero UnseenPolicy = "zero"
)

// Option is a function that configures CountFrequencyEncoder
type Option func(*CountFrequencyEncoder)

// WithMethod sets the encoding method ("count" or "frequency")
func WithMethod(m Method) Option {
	return func(e *CountFrequencyEncoder) {
		e.Method = m
	}
}

// WithVariables sets the explicit list of variables to encode.
// When not set, all categorical variables are selected at fit time.
func WithVariables(variables ...string) Option {
	return func(e *CountFrequencyEncoder) {
		e.Variables = append([]string(nil), variables...)
	}
}

// WithIgnoreFormat makes non-categorical columns eligible for encoding
func WithIgnoreFormat(ignore bool) Option {
	return func(e *CountFrequencyEncoder) {
		e.IgnoreFormat = ignore
	}
}

// WithUnseenPolicy sets the behavior for categories not seen during fit
func WithUnseenPolicy(p UnseenPolicy) Option {
	return func(e *CountFrequencyEncoder) {
		e.Unseen = p
	}
}

// validateParams は構築時の設定値を検証する。データを見る前に呼ばれる。
func validateParams(method Method, unseen UnseenPolicy) error {
	switch method {
	case Count, Frequency:
	default:
		return errors.NewValidationError("encoding_method",
			"takes only values 'count' and 'frequency'", string(method))
	}

	switch unseen {
	case UnseenIgnore, UnseenRaise, UnseenZero:
	default:
		return errors.NewValidationError("unseen",
			"takes only values 'ignore', 'raise' and 'zero'", string(unseen))
	}

	return nil
}
