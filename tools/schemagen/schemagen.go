// Package main generates JSON schemas for the gitxray report document
// and its per-section payloads.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/busfactor"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/coupling"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/decay"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/hotspots"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/trend"
	"github.com/Sumatoshi-tech/gitxray/pkg/report"
)

// Schema is the subset of JSON Schema draft-07 the generator emits.
type Schema struct {
	Schema      string             `json:"$schema,omitempty"`
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	Type        string             `json:"type,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Ref         string             `json:"$ref,omitempty"`
	Definitions map[string]*Schema `json:"definitions,omitempty"`
}

// target is one schema file to generate.
type target struct {
	name  string
	value any
	title string
	desc  string
}

func targets() []target {
	return []target{
		{"report", &report.Report{}, "Gitxray Report", "JSON schema for a full gitxray report document"},
		{"hotspots", &hotspots.Metrics{}, "Hotspots Section", "JSON schema for the hotspots section of a gitxray report"},
		{"bus-factor", &busfactor.Metrics{}, "Bus Factor Section", "JSON schema for the bus-factor section of a gitxray report"},
		{"coupling", &coupling.Metrics{}, "Coupling Section", "JSON schema for the coupling section of a gitxray report"},
		{"decay", &decay.Metrics{}, "Decay Section", "JSON schema for the decay section of a gitxray report"},
		{"trend", &trend.Metrics{}, "Trend Section", "JSON schema for the trend section of a gitxray report"},
	}
}

var jsonMarshalerType = reflect.TypeOf((*json.Marshaler)(nil)).Elem()

func main() {
	var outputDir string

	flag.StringVar(&outputDir, "o", "docs/schemas", "Output directory for schemas")
	flag.Parse()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	for _, tgt := range targets() {
		schema := generateSchema(tgt)
		if err := writeSchema(outputDir, tgt.name, schema); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing schema for %s: %v\n", tgt.name, err)
			os.Exit(1)
		}

		fmt.Printf("Generated schema for %s\n", tgt.name)
	}

	fmt.Println("All schemas generated successfully")
}

func generateSchema(tgt target) *Schema {
	t := reflect.TypeOf(tgt.value)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	defs := make(map[string]*Schema)
	props, required := structToProperties(t, defs)

	schema := &Schema{
		Schema:      "https://json-schema.org/draft-07/schema#",
		Title:       tgt.title,
		Description: tgt.desc,
		Type:        "object",
		Properties:  props,
		Required:    required,
	}

	if len(defs) > 0 {
		schema.Definitions = defs
	}

	return schema
}

func structToProperties(t reflect.Type, defs map[string]*Schema) (map[string]*Schema, []string) {
	props := make(map[string]*Schema)

	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" || jsonTag == "" {
			continue
		}

		parts := strings.Split(jsonTag, ",")
		jsonName := parts[0]
		isOmitempty := len(parts) > 1 && parts[1] == "omitempty"

		props[jsonName] = typeToSchema(field.Type, defs)

		if !isOmitempty {
			required = append(required, jsonName)
		}
	}

	return props, required
}

func typeToSchema(t reflect.Type, defs map[string]*Schema) *Schema {
	// Timestamps and label enums carry custom marshalers that encode
	// as strings, so resolve those before switching on the kind.
	if t == reflect.TypeOf(time.Time{}) {
		return &Schema{Type: "string", Description: "ISO 8601 timestamp"}
	}

	if t.Implements(jsonMarshalerType) {
		return &Schema{Type: "string"}
	}

	switch t.Kind() {
	case reflect.String:
		return &Schema{Type: "string"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}

	case reflect.Bool:
		return &Schema{Type: "boolean"}

	case reflect.Slice:
		return &Schema{
			Type:  "array",
			Items: typeToSchema(t.Elem(), defs),
		}

	case reflect.Map:
		return &Schema{
			Type: "object",
			Description: fmt.Sprintf("Map with %s keys and %s values",
				t.Key().Kind().String(), t.Elem().Kind().String()),
		}

	case reflect.Struct:
		name := defName(t)
		if name == "" {
			props, required := structToProperties(t, defs)

			return &Schema{Type: "object", Properties: props, Required: required}
		}

		if _, exists := defs[name]; !exists {
			// Reserve the slot first so self-referential types terminate.
			defs[name] = &Schema{}

			props, required := structToProperties(t, defs)
			defs[name] = &Schema{Type: "object", Properties: props, Required: required}
		}

		return &Schema{Ref: "#/definitions/" + name}

	case reflect.Ptr:
		return typeToSchema(t.Elem(), defs)

	default:
		return &Schema{Type: "object"}
	}
}

// defName builds a package-qualified definition name so same-named types
// from different analyzer packages cannot collide inside one document.
func defName(t reflect.Type) string {
	if t.Name() == "" {
		return ""
	}

	pkg := path.Base(t.PkgPath())
	if pkg == "" || pkg == "." {
		return t.Name()
	}

	return titleWord(pkg) + t.Name()
}

func titleWord(word string) string {
	if word == "" {
		return word
	}

	return strings.ToUpper(word[:1]) + word[1:]
}

func writeSchema(outputDir, name string, schema *Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	data = append(data, '\n')

	return os.WriteFile(filepath.Join(outputDir, name+".json"), data, 0o644)
}
