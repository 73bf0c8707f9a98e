// Package strata is an in-memory toolkit for preparing geotechnical
// borehole sample batches for downstream depth-based calculations.
//
// 🚀 What is strata?
//
//	A small, dependency-light library that brings together:
//		• Record model: samples and intervals as plain records with
//		  caller-chosen field keys, plus numeric coercion & predicates
//		• Interval derivation: center depths → contiguous [start,end]
//		  spans via midpoint bisection
//		• Continuity validation: exact end-to-start contiguity checks
//		  that report every defect in one pass
//		• Range grouping: partition depth-sorted samples into
//		  caller-given target ranges, first enclosing range wins
//
// ✨ Why choose strata?
//
//   - Batch-oriented – one call per batch, no shared state between calls
//   - Pure transformations – inputs are never mutated; outputs are new records
//   - Complete diagnostics – validation collects every offending element
//     before failing, so a user sees the full defect set at once
//   - Pure Go – no cgo, single-threaded, CPU-bound
//
// Everything is organized under four subpackages:
//
//	record/     — record model, coercion, predicates, depth-order checker
//	derive/     — center depths → contiguous depth intervals
//	continuity/ — interval contiguity validation, soft violation reporting
//	group/      — depth-range partitioning with a depleting sample pool
//
// Quick ASCII example:
//
//	center depths:  0        6             20
//	intervals:      [0───3][3─────13][13──────20]
//
//	each interior boundary is the midpoint of its two neighbors,
//	so adjacent intervals share an exact boundary value.
//
// Dive into each package's doc.go for contracts, error sets and examples.
//
//	go get github.com/katalvlaran/strata
package strata
