// Package core defines the shared language of the leaprange system.
//
// This package contains:
//   - Error kinds (ErrInvalidArgument, ErrUnsupportedOperation, ErrTypeMismatch)
//   - The element domain contract (Domain, Class, Comparator)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
