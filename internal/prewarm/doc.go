// Package prewarm bridges a single language identifier to an alignment model
// loader.
//
// LoadModel is intentionally thin: it hands the identifier to the loader
// verbatim, drops the returned model handle, and returns the loader's error
// value untouched. Caching, downloads, and language validation all belong to
// the Loader implementation.
package prewarm
