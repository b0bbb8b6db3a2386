package report

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"

	"github.com/aledsdavies/rescode/core/colorcode"
)

//go:embed schema.json
var schemaJSON string

const schemaURL = "schema://report.json"

// Validator checks raw report documents against the report schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the report schema.
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	if compiler.Formats == nil {
		compiler.Formats = make(map[string]func(interface{}) bool)
	}
	for name, validator := range formatValidators() {
		compiler.Formats[name] = validator
	}

	// The schema is embedded; nothing else may be loaded.
	compiler.LoadURL = func(url string) (io.ReadCloser, error) {
		return nil, fmt.Errorf("$ref not allowed: %s", url)
	}

	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("add report schema: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile report schema: %w", err)
	}
	return &Validator{schema: schema}, nil
}

// Decode validates one JSON document and returns the report it holds.
func (v *Validator) Decode(data []byte) (Report, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return Report{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := v.schema.Validate(doc); err != nil {
		return Report{}, err
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("invalid report: %w", err)
	}
	return r, nil
}

func formatValidators() map[string]func(interface{}) bool {
	return map[string]func(interface{}) bool{
		"semver": func(v interface{}) bool {
			s, ok := v.(string)
			if !ok {
				return true // type validation happens separately
			}
			// semver.IsValid requires the "v" prefix
			if !strings.HasPrefix(s, "v") {
				s = "v" + s
			}
			return semver.IsValid(s)
		},
		"band-color": func(v interface{}) bool {
			s, ok := v.(string)
			if !ok {
				return true
			}
			_, err := colorcode.LookupColor(s)
			return err == nil
		},
	}
}
