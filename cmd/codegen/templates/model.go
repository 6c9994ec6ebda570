package templates

import (
	"errors"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Model describes the reactive records to generate for one package.
type Model struct {
	Package string `yaml:"package"`
	Types   []Type `yaml:"types"`
}

type Type struct {
	Name   string  `yaml:"name"`
	Doc    string  `yaml:"doc"`
	Fields []Field `yaml:"fields"`
}

// Field is one key of the record. Key defaults to Name with a lower case
// first letter.
type Field struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
	Type string `yaml:"type"`
}

var errNoPackage = errors.New("model has no package")

func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := ParseModel(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseModel decodes a YAML model, fills defaults and rejects anything that
// would not produce compilable code.
func ParseModel(data []byte) (*Model, error) {
	m := &Model{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("decoding model: %w", err)
	}
	if err := m.normalize(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) normalize() error {
	if m.Package == "" {
		return errNoPackage
	}
	if !token.IsIdentifier(m.Package) {
		return fmt.Errorf("package %q is not an identifier", m.Package)
	}
	if len(m.Types) == 0 {
		return fmt.Errorf("package %s declares no types", m.Package)
	}

	typeNames := map[string]bool{}
	for i := range m.Types {
		t := &m.Types[i]
		if !token.IsIdentifier(t.Name) || !token.IsExported(t.Name) {
			return fmt.Errorf("type %q must be an exported identifier", t.Name)
		}
		if typeNames[t.Name] {
			return fmt.Errorf("type %s declared twice", t.Name)
		}
		typeNames[t.Name] = true

		if t.Doc == "" {
			t.Doc = t.Name + " is a reactive record."
		}
		t.Doc = strings.Join(strings.Fields(t.Doc), " ")

		if len(t.Fields) == 0 {
			return fmt.Errorf("type %s has no fields", t.Name)
		}
		if err := t.normalizeFields(); err != nil {
			return fmt.Errorf("type %s: %w", t.Name, err)
		}
	}
	return nil
}

func (t *Type) normalizeFields() error {
	names := map[string]bool{"Object": true}
	keys := map[string]bool{}
	params := map[string]bool{}
	for i := range t.Fields {
		f := &t.Fields[i]
		if !token.IsIdentifier(f.Name) || !token.IsExported(f.Name) {
			return fmt.Errorf("field %q must be an exported identifier", f.Name)
		}
		if names[f.Name] {
			return fmt.Errorf("field name %s is taken", f.Name)
		}
		names[f.Name] = true

		if f.Key == "" {
			f.Key = lowerFirst(f.Name)
		}
		if keys[f.Key] {
			return fmt.Errorf("key %q used twice", f.Key)
		}
		keys[f.Key] = true

		p := paramName(*f)
		if params[p] {
			return fmt.Errorf("field %s: constructor parameter %s clashes with another field", f.Name, p)
		}
		params[p] = true

		if f.Type == "" {
			return fmt.Errorf("field %s has no type", f.Name)
		}
		if _, err := parser.ParseExpr(f.Type); err != nil {
			return fmt.Errorf("field %s: bad type %q: %w", f.Name, f.Type, err)
		}
	}
	return nil
}

// Generate renders the accessors for m and gofmts the result.
func Generate(m *Model) ([]byte, error) {
	src, err := format.Source([]byte(Accessors(m)))
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}
