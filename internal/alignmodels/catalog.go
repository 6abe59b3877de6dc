package alignmodels

import (
	"sort"
	"strings"
)

// Source identifies where an alignment model is fetched from.
type Source string

const (
	SourceTorchaudio  Source = "torchaudio"
	SourceHuggingFace Source = "huggingface"
)

// Entry is a default alignment model for one language.
type Entry struct {
	Language string
	Source   Source
	// ModelID is a torchaudio pipeline bundle name or a Hugging Face repo id.
	ModelID string
	// Checkpoint is the torch hub checkpoint file name for torchaudio bundles.
	Checkpoint string
}

var torchaudioDefaults = []Entry{
	{Language: "en", ModelID: "WAV2VEC2_ASR_BASE_960H", Checkpoint: "wav2vec2_fairseq_base_ls960_asr_ls960.pth"},
	{Language: "fr", ModelID: "VOXPOPULI_ASR_BASE_10K_FR", Checkpoint: "wav2vec2_voxpopuli_base_10k_asr_fr.pt"},
	{Language: "de", ModelID: "VOXPOPULI_ASR_BASE_10K_DE", Checkpoint: "wav2vec2_voxpopuli_base_10k_asr_de.pt"},
	{Language: "es", ModelID: "VOXPOPULI_ASR_BASE_10K_ES", Checkpoint: "wav2vec2_voxpopuli_base_10k_asr_es.pt"},
	{Language: "it", ModelID: "VOXPOPULI_ASR_BASE_10K_IT", Checkpoint: "wav2vec2_voxpopuli_base_10k_asr_it.pt"},
}

var huggingFaceDefaults = map[string]string{
	"ja": "jonatasgrosman/wav2vec2-large-xlsr-53-japanese",
	"zh": "jonatasgrosman/wav2vec2-large-xlsr-53-chinese-zh-cn",
	"nl": "jonatasgrosman/wav2vec2-large-xlsr-53-dutch",
	"uk": "Yehor/wav2vec2-xls-r-300m-uk-with-small-lm",
	"pt": "jonatasgrosman/wav2vec2-large-xlsr-53-portuguese",
	"ar": "jonatasgrosman/wav2vec2-large-xlsr-53-arabic",
	"cs": "comodoro/wav2vec2-xls-r-300m-cs-250",
	"ru": "jonatasgrosman/wav2vec2-large-xlsr-53-russian",
	"pl": "jonatasgrosman/wav2vec2-large-xlsr-53-polish",
	"hu": "jonatasgrosman/wav2vec2-large-xlsr-53-hungarian",
	"fi": "jonatasgrosman/wav2vec2-large-xlsr-53-finnish",
	"fa": "jonatasgrosman/wav2vec2-large-xlsr-53-persian",
	"el": "jonatasgrosman/wav2vec2-large-xlsr-53-greek",
	"tr": "mpoyraz/wav2vec2-xls-r-300m-cv7-turkish",
	"da": "saattrupdan/wav2vec2-xls-r-300m-ftspeech",
	"he": "imvladikon/wav2vec2-xls-r-300m-hebrew",
	"vi": "nguyenvulebinh/wav2vec2-base-vi",
	"ko": "kresnik/wav2vec2-large-xlsr-korean",
	"ur": "kingabzpro/wav2vec2-large-xls-r-300m-Urdu",
	"te": "anuragshas/wav2vec2-large-xlsr-53-telugu",
	"hi": "theainerd/Wav2Vec2-large-xlsr-hindi",
	"ca": "softcatala/wav2vec2-large-xlsr-catala",
	"ml": "gvs/wav2vec2-large-xlsr-malayalam",
	"no": "NbAiLab/nb-wav2vec2-1b-bokmaal",
	"nn": "NbAiLab/nb-wav2vec2-300m-nynorsk",
}

var byLanguage map[string]Entry

func init() {
	byLanguage = make(map[string]Entry, len(torchaudioDefaults)+len(huggingFaceDefaults))
	for _, e := range torchaudioDefaults {
		e.Source = SourceTorchaudio
		byLanguage[e.Language] = e
	}
	for lang, repo := range huggingFaceDefaults {
		byLanguage[lang] = Entry{Language: lang, Source: SourceHuggingFace, ModelID: repo}
	}
}

// Lookup returns the default model for an exact language code.
func Lookup(language string) (Entry, bool) {
	e, ok := byLanguage[language]
	return e, ok
}

// All returns every catalog entry ordered by language code.
func All() []Entry {
	entries := make([]Entry, 0, len(byLanguage))
	for _, e := range byLanguage {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Language < entries[j].Language
	})
	return entries
}

// ForModel describes an explicitly configured model name. Names without a
// slash are treated as torchaudio bundles, matching WhisperX's own rule.
func ForModel(language, modelID string) Entry {
	modelID = strings.TrimSpace(modelID)
	if modelID == "" {
		if e, ok := Lookup(language); ok {
			return e
		}
		return Entry{Language: language}
	}
	if isTorchaudioBundle(modelID) {
		for _, e := range torchaudioDefaults {
			if e.ModelID == modelID {
				e.Language = language
				e.Source = SourceTorchaudio
				return e
			}
		}
		return Entry{Language: language, Source: SourceTorchaudio, ModelID: modelID}
	}
	return Entry{Language: language, Source: SourceHuggingFace, ModelID: modelID}
}

func isTorchaudioBundle(modelID string) bool {
	return !strings.Contains(modelID, "/") && strings.ToUpper(modelID) == modelID
}
