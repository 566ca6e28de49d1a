package generation

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/phrazzld/outfit-api/internal/domain"
)

//go:embed templates/outfits.tmpl
var templateFS embed.FS

const defaultTemplateName = "templates/outfits.tmpl"

// SystemInstruction is sent alongside every prompt as the model's system role.
const SystemInstruction = "You are a JSON-only fashion stylist AI."

// promptData represents the data passed to the prompt template.
type promptData struct {
	// WishlistJSON is the pretty-printed JSON array of wishlist items.
	WishlistJSON string
}

// PromptBuilder renders the outfit-building instruction for a wishlist.
// It is safe for concurrent use.
type PromptBuilder struct {
	tmpl *template.Template
}

var defaultBuilder = mustDefaultBuilder()

func mustDefaultBuilder() *PromptBuilder {
	tmpl := template.Must(template.ParseFS(templateFS, defaultTemplateName))
	return &PromptBuilder{tmpl: tmpl}
}

// DefaultPromptBuilder returns the builder backed by the embedded template.
func DefaultPromptBuilder() *PromptBuilder {
	return defaultBuilder
}

// NewPromptBuilder loads a prompt template from path. An empty path selects
// the embedded default template.
func NewPromptBuilder(path string) (*PromptBuilder, error) {
	if path == "" {
		return defaultBuilder, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
			ErrInvalidConfig, path, err)
	}

	tmpl, err := template.New("outfits").Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", ErrInvalidConfig, err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build renders the prompt for items. With the embedded template the only
// possible failure is a template execution error from a custom template.
func (b *PromptBuilder) Build(items []domain.WishlistItem) (string, error) {
	wishlistJSON, err := renderItems(items)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, promptData{WishlistJSON: wishlistJSON}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return buf.String(), nil
}

// BuildPrompt renders the default prompt for items.
func BuildPrompt(items []domain.WishlistItem) string {
	prompt, err := defaultBuilder.Build(items)
	if err != nil {
		// Marshalling plain string fields into the embedded template cannot fail.
		panic(err)
	}
	return prompt
}

// renderItems pretty-prints items as a JSON array with two-space indentation.
// HTML escaping is disabled so the model sees the caller's text verbatim.
func renderItems(items []domain.WishlistItem) (string, error) {
	if items == nil {
		items = []domain.WishlistItem{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return "", fmt.Errorf("failed to encode wishlist items: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
