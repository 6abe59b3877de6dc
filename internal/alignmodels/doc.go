// Package alignmodels describes the default forced-alignment models WhisperX
// selects per language and reports whether they are already present in the
// local torch or Hugging Face caches.
//
// Lookups are by exact language code, the same way WhisperX resolves them, so
// an identifier missing here is one WhisperX will reject unless an explicit
// model name is configured.
package alignmodels
