// Command alignwarm loads the WhisperX forced-alignment model for a language so
// later alignment runs find it already downloaded.
//
//	alignwarm <language>
//
// The language identifier is handed to whisperx.load_align_model exactly as
// typed. Supporting subcommands inspect configuration (config), the default
// model catalog and cache state (models), and the local environment (doctor).
package main
