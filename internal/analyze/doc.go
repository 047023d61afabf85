// Package analyze loads Go packages and projects their symbol
// information into the inputs of the resolve package: annotated-field
// candidates and a pre-classified type member catalog. All go/types
// traversal lives here; resolution itself is pure.
package analyze
