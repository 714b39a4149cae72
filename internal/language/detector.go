package language

import "strings"

// Tag identifies the register a user message appears to be written in.
type Tag string

const (
	English  Tag = "english"
	Hindi    Tag = "hindi"
	Hinglish Tag = "hinglish"
)

// Devanagari Unicode block, inclusive.
const (
	devanagariLo = 0x0900
	devanagariHi = 0x097F
)

// hinglishMarkers are common Roman-script Hindi words used as a cheap
// code-mixing signal. Matching is substring-based on the lowercased text,
// so e.g. "mainly" trips the "main" marker. That over-match is deliberate
// and kept compatible with existing transcripts.
var hinglishMarkers = []string{
	"hai", "nahi", "kya", "kaise", "kyun", "mera", "meri", "tum", "main", "ho", "tha", "chahiye",
}

// Detect maps any input text to exactly one tag. Order is the tie-break
// policy: Devanagari script wins over Hinglish markers, which win over the
// english fallback.
func Detect(text string) Tag {
	for _, r := range text {
		if r >= devanagariLo && r <= devanagariHi {
			return Hindi
		}
	}

	lowered := strings.ToLower(text)
	for _, marker := range hinglishMarkers {
		if strings.Contains(lowered, marker) {
			return Hinglish
		}
	}

	return English
}
