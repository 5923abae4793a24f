// Package libdiff computes differences between document trees.
//
// Diff produces a list of changes addressed by path, which can be
// reversed, rendered, or turned into an RFC 6902 patch.  TextDiff produces
// a line diff of the canonical texts.
package libdiff
