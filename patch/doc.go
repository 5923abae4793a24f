// Package patch applies RFC 6902 JSON patches and RFC 7386 merge patches
// to document trees.
package patch
