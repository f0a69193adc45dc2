package sheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/llehouerou/cheatsheet/internal/keymap"
	"github.com/llehouerou/cheatsheet/internal/value"
)

// Format is an export file format.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTOML     Format = "toml"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatMarkdown, FormatJSON, FormatYAML, FormatTOML}

// ParseFormat accepts a format name or a common file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

// Binding is the serialized form of a row.
type Binding struct {
	Label    string   `json:"label"              yaml:"label"              toml:"label"`
	Keys     string   `json:"keys"               yaml:"keys"               toml:"keys"`
	Combos   []string `json:"combos"             yaml:"combos"             toml:"combos"`
	Command  string   `json:"command"            yaml:"command"            toml:"command"`
	Args     any      `json:"args,omitempty"     yaml:"args,omitempty"     toml:"-"`
	ArgsJSON string   `json:"-"                  yaml:"-"                  toml:"args,omitempty"`
	Package  string   `json:"package,omitempty"  yaml:"package,omitempty"  toml:"package,omitempty"`
	Context  string   `json:"context,omitempty"  yaml:"context,omitempty"  toml:"context,omitempty"`
}

// Document is the top-level exported value.
type Document struct {
	Bindings  []Binding     `json:"bindings"            yaml:"bindings"            toml:"binding"`
	Conflicts []ConflictRow `json:"conflicts,omitempty" yaml:"conflicts,omitempty" toml:"conflict,omitempty"`
}

// NewDocument converts rows and conflicts into an exportable document.
func NewDocument(rows []Row, conflicts []ConflictRow) Document {
	doc := Document{Bindings: make([]Binding, 0, len(rows)), Conflicts: conflicts}
	for _, r := range rows {
		b := Binding{
			Label:   r.Label,
			Keys:    keymap.Prettify(r.Entry.Keys),
			Combos:  r.Entry.Keys,
			Command: r.Entry.Command,
			Package: r.Entry.Package,
			Context: keymap.DescribeContext(r.Entry),
		}
		if r.Entry.HasArgs() {
			b.Args = value.ToAny(r.Entry.Args)
			if data, err := r.Entry.Args.MarshalJSON(); err == nil {
				b.ArgsJSON = string(data)
			}
		}
		doc.Bindings = append(doc.Bindings, b)
	}
	return doc
}

// Export writes doc to w in the given format.
func Export(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(doc))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		data, err := toml.Marshal(doc)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}
	return fmt.Errorf("unknown export format %q", format)
}

// Markdown renders doc as a markdown cheat sheet with one table per
// package, configured commands last, then the conflicts.
func Markdown(doc Document) string {
	var buf bytes.Buffer
	buf.WriteString("# Key Bindings\n")

	current := "\x00"
	for _, b := range doc.Bindings {
		if b.Package != current {
			current = b.Package
			name := b.Package
			if name == "" {
				name = "Custom Commands"
			}
			fmt.Fprintf(&buf, "\n## %s\n\n| Keys | Command |\n| --- | --- |\n", mdEscape(name))
		}
		keys := b.Keys
		if keys == "" {
			keys = strings.Join(b.Combos, ", ")
		}
		fmt.Fprintf(&buf, "| %s | %s |\n", mdCode(keys), mdEscape(b.Label))
	}

	if len(doc.Conflicts) > 0 {
		buf.WriteString("\n## Conflicts\n\n| Keys | Commands |\n| --- | --- |\n")
		for _, c := range doc.Conflicts {
			fmt.Fprintf(&buf, "| %s | %s |\n", mdCode(c.Combo), mdEscape(c.Description))
		}
	}
	return buf.String()
}

func mdEscape(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}

func mdCode(s string) string {
	if s == "" {
		return ""
	}
	if strings.Contains(s, "`") {
		return "`` " + mdEscape(s) + " ``"
	}
	return "`" + mdEscape(s) + "`"
}
