// Package record defines the data model shared by every strata operation:
// samples and intervals as plain map records with caller-chosen field keys,
// plus the numeric coercion, predicates, depth-order checking and
// accumulated-validation machinery built on top of them.
//
// What:
//
//   - Record — map[string]any; one numeric depth (or start/end) field plus
//     arbitrary caller-defined fields, preserved untouched by every operation.
//   - Float / IsNumeric / IsNonEmptyString / IsRecord — coercion of arbitrary
//     values to finite float64 and the shape predicates used during validation.
//   - Clone / CloneAll — shallow copies; operations that add output fields or
//     reorder batches always work on copies, never on caller state.
//   - SortByField — stable ascending sort by a numeric field on a fresh slice.
//   - CheckAscending — the depth gap/duplicate checker: one violation string
//     per adjacent pair whose depths do not strictly increase.
//   - Issue / ValidationError — accumulated validation: every offending
//     element is collected before an operation fails, and the combined error
//     unwraps to the operation's sentinel for errors.Is matching.
//
// Why:
//
//   - Downstream geotechnical calculations consume depth-tagged or
//     depth-grouped sample batches and rely on the non-duplication and
//     contiguity guarantees established on this model.
//   - Field keys are configurable because upstream data sources disagree on
//     naming; defaults are depth / depthStart / depthEnd / rows.
//
// Complexity:
//
//   - Float, predicates, Clone: O(1) per value / O(k) per record fields.
//   - SortByField: O(n log n) time, O(n) extra memory.
//   - CheckAscending: O(n) time, O(v) memory for v violations.
//
// Errors:
//
//   - ErrNotNumeric: a value cannot be coerced to float64.
//   - ErrNotFinite: a value coerces to NaN or ±Inf.
//   - ValidationError: a sentinel-tagged accumulation of Issues; match the
//     operation sentinel with errors.Is, inspect entries via Issues().
package record
