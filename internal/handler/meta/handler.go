package meta

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mindscan-ai/mindscan/backend/pkg/utils"
)

const aboutMarkdown = `# 🧠 MindScan – AI Mental Health Chatbot
Welcome to MindScan, your personal AI companion for emotional well-being.

### What I can do:
- Listen without judgment 🧏
- Support you during tough times 🧘
- Help you reflect and breathe 🌱

*This tool is not a substitute for professional therapy.*
`

var sampleInputs = []string{
	"I feel like nobody understands me.",
	"I'm overwhelmed with work.",
	"I just want someone to talk to.",
	"Life seems meaningless these days.",
	"I'm tired of pretending to be okay.",
	"Mujhe lagta hai koi meri baat nahi samajhta.",
	"Main bahut stress mein hoon.",
	"Zindagi bekar si lag rahi hai.",
}

// Handler serves the static frontend content: the About section and the
// example prompts shown before the first turn.
type Handler struct{}

// New creates the meta handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the meta routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/about", h.handleAbout)
	r.Get("/examples", h.handleExamples)
}

func (h *Handler) handleAbout(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"about": aboutMarkdown})
}

func (h *Handler) handleExamples(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, sampleInputs)
}
