// Package language renders language identifiers for display.
//
// It is presentation-only: identifiers handed to the model loader are never
// rewritten through this package.
package language
