// Package log defines standard attribute keys for encoding operations.
//
// This file contains predefined attribute keys that provide consistency across
// all logging operations in featgo. Using these standard keys enables better
// log analysis, monitoring, and debugging of feature engineering pipelines.
//
// The keys follow a hierarchical naming convention (e.g., "transformer.name",
// "data.rows") to enable structured log analysis and filtering.
package log

// Transformer and Operation Context
// These attributes identify the transformer type, instance, and operation being performed.
const (
	// TransformerNameKey identifies the type of transformer.
	// Examples: "CountFrequencyEncoder"
	TransformerNameKey = "transformer.name"

	// TransformerIDKey provides a unique identifier for a specific transformer instance.
	// Examples: "cfe-001", UUID strings
	TransformerIDKey = "transformer.id"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "transform", "fit_transform", "inverse_transform"
	OperationKey = "encoding.operation"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "encoding", "dataset"
	ComponentKey = "encoding.component"
)

// Data Shape and Characteristics
// These attributes describe the structure and properties of data being processed.
const (
	// RowsKey indicates the number of rows in the dataset.
	RowsKey = "data.rows"

	// ColumnsKey indicates the number of columns in the dataset.
	ColumnsKey = "data.columns"

	// VariablesKey indicates the number of variables selected for encoding.
	VariablesKey = "data.variables"

	// CategoriesKey indicates the number of distinct categories observed for a variable.
	CategoriesKey = "data.categories"

	// MissingKey indicates the number of missing cells encountered.
	MissingKey = "data.missing"
)

// Configuration Context
// These attributes capture encoder configuration for reproducibility.
const (
	// MethodKey records the encoding method ("count" or "frequency").
	MethodKey = "config.encoding_method"

	// UnseenPolicyKey records the unseen-category policy ("ignore", "raise" or "zero").
	UnseenPolicyKey = "config.unseen_policy"

	// IgnoreFormatKey records whether non-categorical columns are eligible for encoding.
	IgnoreFormatKey = "config.ignore_format"
)

// Error and Warning Context
// These attributes provide additional context for error and warning messages.
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	// Examples: "NOT_FITTED", "SCHEMA_MISMATCH", "UNSEEN_CATEGORY"
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "ValidationError", "SchemaError", "ConsistencyError"
	ErrorTypeKey = "error.type"

	// SuggestionKey provides helpful suggestions for resolving issues.
	// Examples: "Call Fit() first", "Use a different unseen policy"
	SuggestionKey = "error.suggestion"
)

// Standard attribute value constants for common operations.
// Using these constants ensures consistency across the codebase.
const (
	// Standard operations
	OperationFit              = "fit"
	OperationTransform        = "transform"
	OperationFitTransform     = "fit_transform"
	OperationInverseTransform = "inverse_transform"

	// Standard error codes
	ErrorNotFitted      = "NOT_FITTED"
	ErrorSchemaMismatch = "SCHEMA_MISMATCH"
	ErrorUnseenCategory = "UNSEEN_CATEGORY"
	ErrorEmptyData      = "EMPTY_DATA"
	ErrorInvalidInput   = "INVALID_INPUT"
	ErrorInconsistent   = "ZERO_SENTINEL_COLLISION"
)
