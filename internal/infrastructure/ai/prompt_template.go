package ai

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/doeshing/hey-go/assets"
	"github.com/doeshing/hey-go/internal/ports"
)

var (
	commandTemplate = template.Must(template.New("command").Parse(assets.CommandPromptTemplate))
	explainTemplate = template.Must(template.New("explain").Parse(assets.ExplainPromptTemplate))
)

type templateData struct {
	Shell    string
	Platform string
}

// systemPrompt renders the system message. The explain variant only names the
// shell; the platform hint is carried by the command variant alone.
func systemPrompt(req ports.ChatRequest) (string, error) {
	tmpl := commandTemplate
	if req.Explain {
		tmpl = explainTemplate
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{Shell: req.Shell, Platform: req.Platform}); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

func renderMessages(req ports.ChatRequest) ([]chatMessage, error) {
	system, err := systemPrompt(req)
	if err != nil {
		return nil, err
	}
	return []chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: req.Prompt},
	}, nil
}
