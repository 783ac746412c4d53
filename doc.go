// Package kintsugi simulates the destruction and golden repair of a ceramic
// vessel: organic crack paths grow across a disc, the disc separates into
// irregular fragments that scatter and settle, and gold lacquer then flows
// back along the exact crack geometry while the fragments return home.
//
// # Cracks, fragments, and gold
//
// The package is built around one idea: the crack network is generated once
// and rendered twice. [CrackPath] polylines grow procedurally — step-wise
// heading updates with a per-crack sinusoidal wander, a constant curl bias,
// and fresh jitter, plus probabilistic branching into exclusively owned child
// cracks. [Fracturer.CreateFracture] drives a crack set to completion and
// projects it into four views of the same dataset:
//
//   - [SmoothedPath]: Catmull-Rom-smoothed lines for crack and lacquer
//     rendering
//   - [Seam]: straight sub-segments of the smoothed lines
//   - [Pool]: seam crossings where lacquer collects into beads
//   - [Fragment]: closed polygons whose edges ARE the grown crack curves,
//     closed by jittered rim arcs
//
// Because fragments consume the crack geometry as their edges, the visible
// cracks and the fragment silhouettes always agree exactly.
//
// # Hosting
//
// The package is pure computation with no I/O and no internal goroutines; a
// host animation loop drives it one tick at a time. During a hold gesture the
// host calls [Fracturer.GrowTensionCracks] once per tick, on release it calls
// [Fracturer.CreateFracture], then it alternates [Scatter.Step] and
// [Mend.Step] to animate the break and the repair. All randomness flows
// through the injectable source on [Fracturer].
//
// Degenerate geometry never fails an operation: sparse crack sets are padded
// with synthetic wedges, sliver and malformed fragments are dropped, and
// growth that refuses to converge is cut off at a bounded sweep count.
package kintsugi
