// Package templates provides the embedded scaffolding templates for new
// skills. Template text lives in external resource files under files/ and is
// keyed by file name, keeping the payload out of the control logic.
package templates

import (
	"bytes"
	"embed"
	"sort"
	"text/template"

	"github.com/spetersoncode/skillinit/internal/errors"
)

//go:embed files
var templateFS embed.FS

// Template names, matching the embedded file names under files/.
const (
	// SkillDoc is the primary SKILL.md document. Substitutes Name and Title.
	SkillDoc = "skill.md.tmpl"

	// ExampleScript is the executable script placeholder. Substitutes Name.
	ExampleScript = "example_script.tmpl"

	// APIReference is the reference document placeholder. Substitutes Title.
	APIReference = "api_reference.tmpl"

	// ExampleAsset is the asset placeholder. Written verbatim via Raw.
	ExampleAsset = "example_asset.txt"
)

// Data holds the substitution values available to the templates.
type Data struct {
	// Name is the hyphenated skill identifier, e.g. "data-analyzer".
	Name string

	// Title is the human-readable title derived from Name, e.g. "Data Analyzer".
	Title string
}

// Parsed once at startup; a malformed embedded template is a programming
// error, not a runtime condition.
var parsed = template.Must(template.ParseFS(templateFS, "files/*.tmpl"))

// Render executes the named template with the given data.
func Render(name string, data Data) ([]byte, error) {
	t := parsed.Lookup(name)
	if t == nil {
		return nil, errors.General("unknown template %q", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, errors.KindGeneral, "failed to render template %q", name)
	}
	return buf.Bytes(), nil
}

// Raw returns the named embedded file verbatim, with no substitution.
func Raw(name string) ([]byte, error) {
	b, err := templateFS.ReadFile("files/" + name)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindGeneral, "unknown template %q", name)
	}
	return b, nil
}

// Names returns the names of all embedded template files, sorted.
func Names() []string {
	entries, err := templateFS.ReadDir("files")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}
