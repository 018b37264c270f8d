// Package linalg provides the dense matrix primitives the policy network
// (package policy) needs: row-major storage, matrix multiply/transpose/add/
// scale, and the small elementwise helpers (ReLU, softmax, dropout) a
// two-layer projection requires.
//
// It is adapted from lvlath's matrix package: Dense keeps the same flat
// row-major layout, but the surface is trimmed to what a
// feature-accumulation + pairwise-score pipeline uses, and the package
// defines no matrix interface — every operation takes *Dense directly.
// Eigen/LU/QR/Floyd-Warshall decompositions from the original package are
// not ported — see DESIGN.md for why nothing in this module needs them.
package linalg
