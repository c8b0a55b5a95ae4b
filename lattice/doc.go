// Package lattice enumerates the triangular cells of a truncated kaleidoscope
// reflection tiling.
//
// What
//
//   - Start from the origin cell (empty path, position (0,0)) in a frame whose
//     unit is the distance between neighboring cell centers.
//   - Expand breadth-first: a cell discovered at depth i spawns one candidate
//     per direction of the triad for depth i, at position + (cos θ, sin θ),
//     with θ appended to its path.
//     Even depths use {90°, 210°, 330°}, odd depths {30°, 150°, 270°}.
//   - Deduplicate by Key: the position scaled by 100 and rounded to integers,
//     i.e. two decimals. The first path that reaches a key wins; breadth-first
//     order makes it a shortest one.
//   - Stop after maxDepth expansions.
//
// Why
//
//	Cell centers of a triangle tiling form a honeycomb graph, so depth d adds
//	exactly 3·d cells: Build(7) returns 1 + 3·(1+…+7) = 85 cells. Each
//	cell's Path is the sequence of mirror edges crossed from the origin;
//	transform.Compose(Path) maps the origin triangle's content into the cell.
//
// Determinism & concurrency
//
//	Build is a pure function of maxDepth; cells come back in discovery order.
//	Cache memoizes Build per depth and is safe for concurrent use; the slices
//	it hands out are shared and must be treated as read-only.
//
// Complexity
//
//   - Time:   O(N) for N = 1 + 3·D(D+1)/2 cells (3 candidates per cell).
//   - Memory: O(N·D) for the paths.
package lattice
