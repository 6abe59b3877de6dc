package prewarm

import "context"

// Model describes a loaded alignment model as reported by a Loader.
type Model struct {
	// Language is the identifier the model was loaded for.
	Language string
	// Source names where the model came from ("torchaudio" or "huggingface").
	Source string
	// DictionarySize is the number of symbols in the model's alphabet.
	DictionarySize int
}

// Loader loads the forced-alignment model for a language.
type Loader interface {
	LoadAlignModel(ctx context.Context, language string) (Model, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(ctx context.Context, language string) (Model, error)

// LoadAlignModel calls f.
func (f LoaderFunc) LoadAlignModel(ctx context.Context, language string) (Model, error) {
	return f(ctx, language)
}

// LoadModel asks loader to load the alignment model for language and discards
// the result. Errors from the loader are returned as-is.
func LoadModel(ctx context.Context, loader Loader, language string) error {
	_, err := loader.LoadAlignModel(ctx, language)
	return err
}
