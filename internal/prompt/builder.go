// Package prompt turns a classified user message into the full instruction
// prompt sent to the chat model. Each language tag maps to a fixed MindScan
// persona template; the raw user message is embedded verbatim.
package prompt

import (
	"fmt"

	"github.com/mindscan-ai/mindscan/backend/internal/language"
)

const hindiTemplate = `आप MindScan हैं, एक दयालु और समझदार AI मानसिक स्वास्थ्य सहायक।
आप उपयोगकर्ता के भावनाओं को सुनते हैं और सहानुभूति से जवाब देते हैं।
कृपया हिंदी में उत्तर दें।

यूजर का मैसेज:
"%s"`

const hinglishTemplate = `You are MindScan, a warm and caring AI mental health assistant.
You speak in informal Hinglish (Hindi written in Roman script) matching the user's style.
Listen actively and respond supportively and kindly.

User message:
"%s"`

const englishTemplate = `You are MindScan, a warm, compassionate AI mental health assistant. Your task is to:
- Listen actively and kindly
- Respond supportively and encouragingly
- Avoid sounding robotic
- Ask gently reflective questions if needed

Now respond empathetically to this user message:
"%s"`

// Build returns the persona prompt for the given tag with userMessage
// interpolated unmodified. Pure and total: unknown tags fall back to the
// english persona, which is the most general register.
func Build(userMessage string, tag language.Tag) string {
	switch tag {
	case language.Hindi:
		return fmt.Sprintf(hindiTemplate, userMessage)
	case language.Hinglish:
		return fmt.Sprintf(hinglishTemplate, userMessage)
	default:
		return fmt.Sprintf(englishTemplate, userMessage)
	}
}
