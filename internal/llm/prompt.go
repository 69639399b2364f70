package llm

import (
	"bytes"
	"embed"
	"text/template"
)

// Template names, one per file under templates/.
const (
	TemplateAskSystem     = "ask_system.tmpl"
	TemplateAskHuman      = "ask_human.tmpl"
	TemplateSeedHuman     = "seed_human.tmpl"
	TemplateSeedAssistant = "seed_assistant.tmpl"
	TemplateFormHuman     = "form_human.tmpl"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("prompts").ParseFS(templateFS, "templates/*.tmpl"))

// PromptData holds the variables available in the prompt templates.
type PromptData struct {
	Portfolio string
	Query     string
	FormHTML  string
}

// Render executes the named embedded template. Values are inserted verbatim;
// text/template does no HTML escaping, so form markup reaches the model as-is.
func Render(name string, data PromptData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
