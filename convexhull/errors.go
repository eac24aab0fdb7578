// SPDX-License-Identifier: MIT
// Package: courselab/convexhull
//
// errors.go: sentinel errors for the convexhull package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.

package convexhull

import "errors"

// ErrNoPoints indicates an empty point set.
var ErrNoPoints = errors.New("convexhull: no points")

// ErrTooFewPoints indicates a non-positive point count for RandomPoints.
var ErrTooFewPoints = errors.New("convexhull: point count must be positive")

// ErrBadRange indicates a non-positive coordinate range.
var ErrBadRange = errors.New("convexhull: coordinate range must be positive")
