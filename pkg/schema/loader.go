package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Fields []fieldFile `json:"fields" yaml:"fields"`
}

type fieldFile struct {
	Key              string   `json:"key" yaml:"key"`
	Kind             string   `json:"kind" yaml:"kind"`
	Label            string   `json:"label" yaml:"label"`
	Tooltip          string   `json:"tooltip" yaml:"tooltip"`
	Default          string   `json:"default" yaml:"default"`
	Width            int      `json:"width" yaml:"width"`
	Visible          *bool    `json:"visible" yaml:"visible"`
	Copyable         *bool    `json:"copyable" yaml:"copyable"`
	Choices          []string `json:"choices" yaml:"choices"`
	ControlOrder     int      `json:"controlOrder" yaml:"controlOrder"`
	SpreadsheetOrder int      `json:"spreadsheetOrder" yaml:"spreadsheetOrder"`
}

// LoadFile reads a JSON or YAML schema document from disk.
func LoadFile(path string) ([]FieldDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads every schema document found in fsys and concatenates their
// rows. Keys must stay unique across files.
func LoadFS(fsys fs.FS) ([]FieldDefinition, error) {
	if fsys == nil {
		return nil, nil
	}

	var defs []FieldDefinition
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}
		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}
		defs = append(defs, normaliseFields(doc.Fields)...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortByControlOrder(defs)
	if err := Validate(defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// Parse decodes a schema document. source is only used in error messages.
func Parse(data []byte, source string) ([]FieldDefinition, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}
	defs := normaliseFields(doc.Fields)
	sortByControlOrder(defs)
	if err := Validate(defs); err != nil {
		return nil, fmt.Errorf("schema: %s: %w", source, err)
	}
	return defs, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("schema: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("schema: parse %s: invalid JSON or YAML", source)
}

func normaliseFields(raw []fieldFile) []FieldDefinition {
	defs := make([]FieldDefinition, 0, len(raw))
	for _, field := range raw {
		def := FieldDefinition{
			Key:              strings.TrimSpace(field.Key),
			Kind:             Kind(strings.TrimSpace(field.Kind)),
			Label:            SanitizeText(field.Label),
			Tooltip:          SanitizeText(field.Tooltip),
			DefaultValue:     field.Default,
			Width:            field.Width,
			Visible:          field.Visible == nil || *field.Visible,
			Copyable:         field.Copyable == nil || *field.Copyable,
			ControlOrder:     field.ControlOrder,
			SpreadsheetOrder: field.SpreadsheetOrder,
		}
		if len(field.Choices) > 0 {
			def.Choices = append([]string(nil), field.Choices...)
		}
		defs = append(defs, def)
	}
	return defs
}

func sortByControlOrder(defs []FieldDefinition) {
	sort.SliceStable(defs, func(i, j int) bool {
		return defs[i].ControlOrder < defs[j].ControlOrder
	})
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
