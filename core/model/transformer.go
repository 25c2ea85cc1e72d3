package model

import "github.com/YuminosukeSato/featgo/dataset"

// Fittable is the capability of learning state from a training dataset.
type Fittable interface {
	// Fit learns the parameters required for transformation.
	Fit(X *dataset.Frame) error
}

// CategoryMapper is the capability of applying and reversing a learned
// per-category mapping. Implementations never mutate their input; a new
// frame is produced by every call.
type CategoryMapper interface {
	// Transform replaces category values with their learned statistic.
	Transform(X *dataset.Frame) (*dataset.Frame, error)

	// InverseTransform maps encoded values back to the original categories.
	InverseTransform(X *dataset.Frame) (*dataset.Frame, error)
}

// Encoder is a transformer composed of the Fittable and CategoryMapper
// capabilities, plus the usual fit-then-transform convenience.
type Encoder interface {
	Fittable
	CategoryMapper

	// FitTransform runs Fit and Transform on the same dataset.
	FitTransform(X *dataset.Frame) (*dataset.Frame, error)
}

// ParameterGetter is the interface for transformers that expose their
// configuration parameters.
type ParameterGetter interface {
	// GetParams returns the transformer's hyperparameters.
	GetParams() map[string]interface{}
}

// Persistable is the interface for transformers that can be saved and loaded.
type Persistable interface {
	// Save saves the transformer to a file.
	Save(path string) error

	// Load loads the transformer from a file.
	Load(path string) error
}
