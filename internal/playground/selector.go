package playground

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jmcampanini/folio/internal/piston"
)

// PlaceholderSource is the editor text when no snippet fits the selection.
const PlaceholderSource = "// Select a language and write code"

var snippets = map[string]string{
	"bash":       `echo "Hello, World!"`,
	"c":          "#include <stdio.h>\n\nint main(void) {\n    printf(\"Hello, World!\\n\");\n    return 0;\n}",
	"go":         "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"Hello, World!\")\n}",
	"java":       "public class Main {\n    public static void main(String[] args) {\n        System.out.println(\"Hello, World!\");\n    }\n}",
	"javascript": `console.log("Hello, World!");`,
	"python":     `print("Hello, World!")`,
	"ruby":       `puts "Hello, World!"`,
	"rust":       "fn main() {\n    println!(\"Hello, World!\");\n}",
	"typescript": `console.log("Hello, World!");`,
}

// Snippet returns a hello-world program for language, if one is known.
func Snippet(language string) (string, bool) {
	s, ok := snippets[language]
	return s, ok
}

// Option is one entry of the language selector. Version travels with the
// option so runs use exactly the advertised version.
type Option struct {
	Label    string `json:"label"`
	Language string `json:"language"`
	Version  string `json:"version"`
}

// Value identifies the option in a form field as "<language>@<version>".
// Languages can be listed more than once with different versions.
func (o Option) Value() string {
	return o.Language + "@" + o.Version
}

// ParseOptionValue splits a value produced by Option.Value. A bare language
// yields an empty version.
func ParseOptionValue(value string) (language, version string) {
	language, version, _ = strings.Cut(value, "@")
	return language, version
}

// Selector is the render instruction for the playground controls.
type Selector struct {
	Options         []Option `json:"options"`
	Selected        string   `json:"selected"`
	SelectedVersion string   `json:"selectedVersion"`
	Source          string   `json:"source"`
}

// NewSelector builds the selector from discovered runtimes, sorted by
// language. The preferred language is selected with its hello-world program
// when available; otherwise the first option is selected with the
// placeholder.
func NewSelector(runtimes []piston.Runtime, preferred string) Selector {
	sorted := slices.Clone(runtimes)
	slices.SortStableFunc(sorted, func(a, b piston.Runtime) int {
		return strings.Compare(a.Language, b.Language)
	})

	options := make([]Option, len(sorted))
	for i, rt := range sorted {
		options[i] = Option{
			Label:    fmt.Sprintf("%s (%s)", rt.Language, rt.Version),
			Language: rt.Language,
			Version:  rt.Version,
		}
	}

	sel := Selector{Options: options, Source: PlaceholderSource}
	if version, ok := sel.Version(preferred); ok {
		sel.Selected = preferred
		sel.SelectedVersion = version
		if snippet, ok := Snippet(preferred); ok {
			sel.Source = snippet
		}
	} else if len(options) > 0 {
		sel.Selected = options[0].Language
		sel.SelectedVersion = options[0].Version
	}
	return sel
}

// IsSelected reports whether o is the selected option.
func (s Selector) IsSelected(o Option) bool {
	return o.Language == s.Selected && o.Version == s.SelectedVersion
}

// Version returns the version carried by the first option for language.
func (s Selector) Version(language string) (string, bool) {
	for _, o := range s.Options {
		if o.Language == language {
			return o.Version, true
		}
	}
	return "", false
}

// Select switches to the option for language and version and presets the
// editor with its snippet, or the placeholder when none is known. An empty
// version picks the first option for language. Unknown options leave s
// unchanged.
func (s Selector) Select(language, version string) Selector {
	if version == "" {
		var ok bool
		if version, ok = s.Version(language); !ok {
			return s
		}
	}
	if !slices.ContainsFunc(s.Options, func(o Option) bool {
		return o.Language == language && o.Version == version
	}) {
		return s
	}
	s.Selected = language
	s.SelectedVersion = version
	s.Source = PlaceholderSource
	if snippet, ok := Snippet(language); ok {
		s.Source = snippet
	}
	return s
}
