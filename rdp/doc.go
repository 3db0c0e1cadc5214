// Package rdp simplifies polylines with the Ramer–Douglas–Peucker algorithm.
//
// Algorithm Outline:
//  1. Polylines of ≤2 points are returned unchanged.
//  2. For the chord first→last, find the interior point with the largest
//     perpendicular distance d_max (first index wins ties). A zero-length
//     chord gives every interior point distance 0.
//  3. If d_max > epsilon, keep that point and repeat on both halves;
//     otherwise drop every interior point of the range.
//
// The recursion is unrolled onto an explicit range stack, so pathologically
// long raw contours cannot exhaust the goroutine stack. Output is identical
// to the recursive formulation.
//
// Guarantees:
//   - len(Simplify(p, eps)) ≤ len(p).
//   - Simplify(Simplify(p, eps), eps) == Simplify(p, eps).
//   - The first and last points are always kept.
//
// Complexity: O(n log n) typical, O(n²) worst case; Memory: O(n).
package rdp
