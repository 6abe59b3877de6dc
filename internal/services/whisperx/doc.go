// Package whisperx loads WhisperX forced-alignment models through uvx.
//
// Service implements prewarm.Loader by running whisperx.load_align_model in an
// ephemeral uvx environment. The language identifier reaches Python exactly as
// it was given; WhisperX decides whether it is supported. Subprocess stdout and
// stderr are streamed through untouched, and the small metadata summary the
// script writes is returned as the model handle.
//
// Loads that share a model cache can be serialised with a file lock so two
// processes never race on the same partial download.
package whisperx
