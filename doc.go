// Package featgo provides feature engineering transformers for Go,
// designed for backend services that prepare tabular data for machine
// learning models.
//
// featgo offers a feature-engine-like API that makes it easy for data
// scientists and engineers familiar with Python's ecosystem to build
// preprocessing pipelines in Go.
//
// # Features
//
// - Count and frequency encoding of categorical variables
// - Configurable handling of categories unseen during training
// - Reversible transformations via InverseTransform
// - Robust error handling with structured error types
// - Serializable fitted state, with optional zstd compression
//
// # Installation
//
// Install featgo using go get:
//
//	go get github.com/YuminosukeSato/featgo
//
// # Quick Start
//
// Here's a simple example of count encoding:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/featgo/dataset"
//	    "github.com/YuminosukeSato/featgo/encoding"
//	)
//
//	func main() {
//	    // Create training data
//	    train, err := dataset.New(dataset.Column{
//	        Name:   "colour",
//	        Values: []any{"blue", "blue", "blue", "red", "red"},
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Create and fit the encoder
//	    enc, err := encoding.NewCountFrequencyEncoder()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := enc.Fit(train); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Encode new data
//	    encoded, err := enc.Transform(train)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(encoded)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - encoding: Categorical encoders (CountFrequencyEncoder)
//   - dataset: Column-oriented tabular container
//   - core/model: Core interfaces, fitted-state management and persistence
//   - pkg/errors: Structured error types and the warning system
//   - pkg/log: Structured logging utilities
//
// # Concurrency
//
// Fitted state is read-only after Fit completes, so a fitted encoder may be
// shared by concurrent Transform and InverseTransform calls. Re-fitting is
// an exclusive write; callers that need to re-fit concurrently with readers
// must synchronize externally or use separate encoder instances.
//
// # License
//
// featgo is released under the MIT License.
package featgo
