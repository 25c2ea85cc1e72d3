package encoding

import (
	"github.com/YuminosukeSato/featgo/dataset"
	"github.com/YuminosukeSato/featgo/pkg/errors"
)

// selectVariables はエンコード対象の変数を解決する。
//
// 明示的なリストが与えられた場合は、全変数がデータセットに存在することを
// 検証する。ignoreFormatがfalseの場合はカテゴリ型であることも要求する。
// リストが与えられなかった場合は、カテゴリ型の全列（ignoreFormatがtrueなら
// 全列）を列順に選択する。解決結果が空の場合はエラーになる。
func selectVariables(op string, X *dataset.Frame, requested []string, ignoreFormat bool) ([]string, error) {
	if len(requested) > 0 {
		for _, v := range requested {
			if !X.HasColumn(v) {
				return nil, errors.NewValueError(op, "variable not found in dataset: "+v)
			}
			if ignoreFormat {
				continue
			}
			categorical, err := X.IsCategorical(v)
			if err != nil {
				return nil, err
			}
			if !categorical {
				return nil, errors.NewValidationError("variables",
					"variable is not categorical; set ignore_format to encode it", v)
			}
		}
		return append([]string(nil), requested...), nil
	}

	var selected []string
	for _, name := range X.ColumnNames() {
		if ignoreFormat {
			selected = append(selected, name)
			continue
		}
		categorical, err := X.IsCategorical(name)
		if err != nil {
			return nil, err
		}
		if categorical {
			selected = append(selected, name)
		}
	}
	if len(selected) == 0 {
		return nil, errors.NewModelError(op, "no categorical variables found in dataset", errors.ErrNoVariables)
	}
	return selected, nil
}
