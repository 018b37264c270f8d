// Package poligras is the module root for Poligras: a graph summarization
// engine that compresses a large simple graph into a much smaller summary
// graph plus two correction sets, together with a lossless recipe for
// reconstructing the original.
//
// The module has no root-level API; it exists to host cross-package
// documentation and to anchor `go doc github.com/katalvlaran/poligras`.
// The working packages are organized by the three core subsystems and their
// supporting infrastructure:
//
//	supergraph/ — the weighted, materialized-edge supernode graph
//	partition/ — locality-sensitive bucketing of supernodes
//	linalg/ — the dense matrix primitives backing the policy and the
//	 per-node feature accumulation
//	policy/ — the two-layer REINFORCE-trained selection network
//	reward/ — the exhaustive neighborhood-case reward evaluator
//	engine/ — the outer/inner merge loop tying partitioning, selection,
//	 and reward evaluation together
//	summary/ — the superedge/correction encoder and JSON artifact
//	dynamic/ — the streaming add/remove update engine
//	datasets/ — gob-encoded graph/feature file I/O
//	internal/cli/ — the cobra command tree (see cmd/poligras)
//
// See DESIGN.md at the module root for the per-package design notes.
package poligras
