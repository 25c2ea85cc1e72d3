package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewModelError(t *testing.T) {
	tests := []struct {
		name     string
		op       string
		kind     string
		err      error
		wantMsg  string
		hasStack bool
	}{
		{
			name:     "with original error",
			op:       "Fit",
			kind:     "invalid input",
			err:      fmt.Errorf("test error"),
			wantMsg:  "featgo: Fit: invalid input: test error",
			hasStack: true,
		},
		{
			name:     "without original error",
			op:       "Transform",
			kind:     "not fitted",
			err:      nil,
			wantMsg:  "featgo: Transform: not fitted",
			hasStack: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewModelError(tt.op, tt.kind, tt.err)

			// 基本的なエラーメッセージの確認
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// スタックトレースの存在確認
			if tt.hasStack {
				formatted := fmt.Sprintf("%+v", err)
				if !strings.Contains(formatted, "errors_test.go") {
					t.Error("Expected stack trace to contain test file name")
				}
			}

			// ModelError型にキャスト可能か確認
			var modelErr *ModelError
			if !As(err, &modelErr) {
				t.Error("Error should be castable to *ModelError")
			}
		})
	}
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("CountFrequencyEncoder", "Transform")

	// 基本的なエラーメッセージの確認
	want := "featgo: CountFrequencyEncoder: this transformer is not fitted yet. Call Fit() before using Transform()"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	// NotFittedError型にキャスト可能か確認
	var notFitted *NotFittedError
	if !As(err, &notFitted) {
		t.Error("Error should be castable to *NotFittedError")
	}
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("encoding_method", "takes only values 'count' and 'frequency'", "ratio")

	want := "featgo: validation failed for parameter 'encoding_method': takes only values 'count' and 'frequency' (got: ratio)"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValidationError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValidationError")
	}
	if valErr.ParamName != "encoding_method" {
		t.Errorf("ParamName = %v, want encoding_method", valErr.ParamName)
	}
}

func TestNewSchemaError(t *testing.T) {
	err := NewSchemaError("Transform", []string{"colour", "size"}, []string{"size", "colour"})

	if !strings.Contains(err.Error(), "do not match the columns seen during Fit()") {
		t.Errorf("unexpected message: %v", err.Error())
	}

	var schemaErr *SchemaError
	if !As(err, &schemaErr) {
		t.Error("Error should be castable to *SchemaError")
	}
	if len(schemaErr.Expected) != 2 || len(schemaErr.Got) != 2 {
		t.Errorf("Expected/Got not preserved: %v / %v", schemaErr.Expected, schemaErr.Got)
	}
}

func TestNewUnseenCategoryError(t *testing.T) {
	err := NewUnseenCategoryError("Transform", []string{"size", "colour"})

	// 変数名はソートされて報告される
	want := "featgo: Transform: during the encoding, categories not present in the training set were found in variables: colour, size"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var unseenErr *UnseenCategoryError
	if !As(err, &unseenErr) {
		t.Error("Error should be castable to *UnseenCategoryError")
	}
}

func TestNewConsistencyError(t *testing.T) {
	err := NewConsistencyError("colour", "blue", "zero")

	if !strings.Contains(err.Error(), "reserved for unseen categories") {
		t.Errorf("unexpected message: %v", err.Error())
	}

	var consErr *ConsistencyError
	if !As(err, &consErr) {
		t.Error("Error should be castable to *ConsistencyError")
	}
	if consErr.Variable != "colour" {
		t.Errorf("Variable = %v, want colour", consErr.Variable)
	}
}

func TestWarningHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) {
		captured = w
	})
	defer SetWarningHandler(func(w error) {})

	warning := NewUnseenCategoryWarning("CountFrequencyEncoder", []string{"colour"})
	Warn(warning)

	if captured == nil {
		t.Fatal("warning handler was not invoked")
	}
	if !strings.Contains(captured.Error(), "unseen categories were encoded as missing values") {
		t.Errorf("unexpected warning message: %v", captured.Error())
	}
}

func TestErrorChaining(t *testing.T) {
	base := NewValidationError("unseen", "unknown policy", "explode")
	wrapped := Wrap(base, "constructing encoder")

	// ラップ後もIs/Asで元の型に到達できる
	var valErr *ValidationError
	if !As(wrapped, &valErr) {
		t.Error("wrapped error should still be castable to *ValidationError")
	}
	if !strings.Contains(wrapped.Error(), "constructing encoder") {
		t.Errorf("wrap message missing: %v", wrapped.Error())
	}
}
