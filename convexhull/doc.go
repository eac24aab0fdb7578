// SPDX-License-Identifier: MIT
// Package: courselab/convexhull
//
// Package convexhull finds the edges of the convex hull of a planar point
// set by brute force, plus a seeded random point generator to feed it.
//
// Canonical model:
//   - For every unordered pair {p_i, p_j} (i<j) take the line
//     a·x + b·y = c through both points.
//   - The segment p_i→p_j is a hull edge iff no two input points lie
//     strictly on opposite sides of that line.
//   - Points on the line do not disqualify the pair, so collinear points
//     along a hull edge yield every sub-segment between them.
//
// Contract:
//   - BruteForce needs at least one point (else ErrNoPoints).
//   - Coincident pairs are skipped; they define no line.
//   - Arithmetic is done in int64 so coordinates up to ±2^30 cannot overflow.
//
// Complexity:
//   - Time: O(n³), O(n²) pairs × O(n) side tests.
//   - Space: O(h) for the h returned segments.
//
// Determinism:
//   - Segments are emitted in pair order: i asc, then j asc.
//   - RandomPoints draws x then y per point from the configured RNG.
package convexhull
