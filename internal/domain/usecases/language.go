package usecases

// Language is an ISO 639-1 code. English is the pivot language: retrieval
// and generation always run in English, other languages are translated
// to and from it at the pipeline edges.
type Language string

const (
	English    Language = "en"
	Turkish    Language = "tr"
	Spanish    Language = "es"
	French     Language = "fr"
	German     Language = "de"
	Italian    Language = "it"
	Portuguese Language = "pt"
	Russian    Language = "ru"
	Arabic     Language = "ar"
	Chinese    Language = "zh"
	Japanese   Language = "ja"
	Korean     Language = "ko"
)

var displayNames = map[Language]string{
	English:    "English",
	Turkish:    "Turkish",
	Spanish:    "Spanish",
	French:     "French",
	German:     "German",
	Italian:    "Italian",
	Portuguese: "Portuguese",
	Russian:    "Russian",
	Arabic:     "Arabic",
	Chinese:    "Chinese",
	Japanese:   "Japanese",
	Korean:     "Korean",
}

// DisplayName returns the English name used in translation prompts.
// Unrecognized codes pass through as the raw code string.
func (l Language) DisplayName() string {
	if name, ok := displayNames[l]; ok {
		return name
	}
	return string(l)
}
