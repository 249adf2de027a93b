package configuration

import (
	"os"
	"strings"
)

// defaultLanguages is the product's caption preference order. The regional
// variant is tried before the generic codes on purpose; keep the order.
var defaultLanguages = []string{"en-IN", "hi", "en"}

// TranscriptConfig represents transcript retrieval configuration
type TranscriptConfig struct {
	Languages []string `mapstructure:"languages"`
}

// GetTranscriptConfig returns the transcript language preference chain from
// JSON config, overridable via TRANSCRIPT_LANGUAGES (comma separated).
func GetTranscriptConfig() *TranscriptConfig {
	languages := C.Transcript.Languages
	if v := os.Getenv("TRANSCRIPT_LANGUAGES"); v != "" {
		languages = splitLanguages(v)
	}
	if len(languages) == 0 {
		languages = append([]string(nil), defaultLanguages...)
	}
	return &TranscriptConfig{Languages: languages}
}

func splitLanguages(raw string) []string {
	parts := strings.Split(raw, ",")
	languages := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			languages = append(languages, trimmed)
		}
	}
	return languages
}
