// Package model provides state management and core interfaces for featgo
// transformers.
package model

import (
	"fmt"
	"sync"
)

// StateManager manages the fitted state of a transformer in a thread-safe
// manner. It replaces a base-estimator embedding pattern with composition.
//
// The fitted state is written once by Fit and is read-only afterwards, so
// concurrent Transform/InverseTransform calls may share it freely. Re-fitting
// is an exclusive write and must not run concurrently with readers.
type StateManager struct {
	fitted bool
	mu     sync.RWMutex

	// Schema metadata recorded at fit time
	nFeatures int
	nSamples  int
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted returns whether the transformer has been fitted.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// SetFitted marks the transformer as fitted.
func (s *StateManager) SetFitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = true
}

// Reset resets the fitted state.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = false
	s.nFeatures = 0
	s.nSamples = 0
}

// SetDimensions sets the number of features and samples seen during fitting.
func (s *StateManager) SetDimensions(nFeatures, nSamples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nFeatures = nFeatures
	s.nSamples = nSamples
}

// GetDimensions returns the number of features and samples seen during fitting.
func (s *StateManager) GetDimensions() (nFeatures, nSamples int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nFeatures, s.nSamples
}

// RequireFitted returns an error if the transformer has not been fitted.
func (s *StateManager) RequireFitted() error {
	if !s.IsFitted() {
		return fmt.Errorf("transformer has not been fitted yet. Call Fit() first")
	}
	return nil
}
