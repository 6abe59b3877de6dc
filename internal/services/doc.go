// Package services defines helpers shared by the external integrations.
//
// It carries the per-invocation context values (run identifier, language) that
// logging picks up, and the sentinel-tagged error wrapper integrations use to
// describe which external step failed.
package services
