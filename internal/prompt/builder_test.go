package prompt

import (
	"strings"
	"testing"

	"github.com/mindscan-ai/mindscan/backend/internal/language"
)

func TestBuildEmbedsMessageVerbatim(t *testing.T) {
	message := `she said "it's fine" -- but 100% it wasn't`
	for _, tag := range []language.Tag{language.English, language.Hindi, language.Hinglish} {
		built := Build(message, tag)
		if !strings.Contains(built, message) {
			t.Fatalf("prompt for %s does not contain the literal message", tag)
		}
	}
}

func TestBuildSelectsPersonaByTag(t *testing.T) {
	if got := Build("hello", language.Hindi); !strings.Contains(got, "आप MindScan हैं") {
		t.Fatalf("hindi prompt missing hindi persona header: %q", got)
	}
	if got := Build("hello", language.Hinglish); !strings.Contains(got, "informal Hinglish") {
		t.Fatalf("hinglish prompt missing register instruction: %q", got)
	}
	if got := Build("hello", language.English); !strings.Contains(got, "Avoid sounding robotic") {
		t.Fatalf("english prompt missing persona rules: %q", got)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	first := Build("I feel stuck.", language.English)
	second := Build("I feel stuck.", language.English)
	if first != second {
		t.Fatal("expected identical prompts for identical input")
	}
}
