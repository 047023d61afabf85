// Package diagnostic provides structured, source-attributed errors and
// warnings for variable binding generation.
//
// Key capabilities:
//   - Stable MVB diagnostic codes
//   - Attribution to containing type, field and source position
//   - Accumulation and merging across resolution passes
package diagnostic
