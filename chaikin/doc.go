// Package chaikin smooths polylines by Chaikin corner cutting.
//
// Each iteration replaces every consecutive pair (p, q) with the points at
// ¼ and ¾ along the segment and discards the original vertices. The chain is
// treated as open: endpoints are cut like any other vertex, so after k
// iterations an n-point input has 2^k·(n−2)+2 points (2(n−1) after one pass).
//
// Complexity: O(n·2^k) time and memory.
package chaikin
