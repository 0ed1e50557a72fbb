// Package cfn builds CloudFormation templates from explicitly registered
// resource values.
//
// Resources are declared as package-level wetwire structs (apigateway.RestApi,
// dynamodb.Table, ...) and registered on a Stack under their logical IDs:
//
//	stack.Add("RecordsTable", RecordsTable)
//
// Build serializes every registered resource by reflection. A property whose
// value equals another registered resource is emitted as {"Ref": <id>}, so
// declarations can reference each other directly.
package cfn

import (
	"encoding/json"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Resource represents a CloudFormation resource.
// All wetwire resource types (apigateway.RestApi, iam.Role, etc.) implement it.
type Resource interface {
	// ResourceType returns the CloudFormation type (e.g., "AWS::DynamoDB::Table")
	ResourceType() string
}

// Entry is a single registered resource.
type Entry struct {
	// Name is the logical ID in the generated template
	Name string
	// Resource is the wetwire resource value
	Resource Resource
	// DependsOn lists logical IDs that must be created first
	DependsOn []string
}

// Parameter is a CloudFormation template parameter.
type Parameter struct {
	Type          string   `json:"Type"`
	Description   string   `json:"Description,omitempty"`
	Default       any      `json:"Default,omitempty"`
	AllowedValues []string `json:"AllowedValues,omitempty"`
}

// Output is a CloudFormation stack output.
type Output struct {
	Description string `json:"Description,omitempty"`
	Value       any    `json:"Value"`
}

// ResourceDef is a single resource in the generated template.
type ResourceDef struct {
	Type       string         `json:"Type"`
	Properties map[string]any `json:"Properties,omitempty"`
	DependsOn  []string       `json:"DependsOn,omitempty"`
}

// Template is a CloudFormation template.
type Template struct {
	AWSTemplateFormatVersion string                 `json:"AWSTemplateFormatVersion"`
	Description              string                 `json:"Description,omitempty"`
	Parameters               map[string]Parameter   `json:"Parameters,omitempty"`
	Resources                map[string]ResourceDef `json:"Resources"`
	Outputs                  map[string]Output      `json:"Outputs,omitempty"`
}

// Stack is an ordered collection of resources plus template parameters
// and outputs.
type Stack struct {
	Description string
	Parameters  map[string]Parameter
	Outputs     map[string]Output

	entries []Entry
}

// Add registers a resource under its logical ID.
func (s *Stack) Add(name string, res Resource, dependsOn ...string) {
	s.entries = append(s.entries, Entry{Name: name, Resource: res, DependsOn: dependsOn})
}

// Entries returns the registered resources in registration order.
func (s *Stack) Entries() []Entry {
	return s.entries
}

// Build serializes the stack into a CloudFormation template.
func (s *Stack) Build() (*Template, error) {
	refs := &refTable{}
	seen := make(map[string]bool, len(s.entries))

	for _, e := range s.entries {
		if e.Name == "" {
			return nil, fmt.Errorf("resource of type %T has no logical ID", e.Resource)
		}
		if e.Resource == nil {
			return nil, fmt.Errorf("resource %s is nil", e.Name)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("duplicate logical ID: %s", e.Name)
		}
		seen[e.Name] = true
		if prior, ok := refs.lookup(e.Resource); ok {
			return nil, fmt.Errorf("resources %s and %s are identical, references would be ambiguous", prior, e.Name)
		}
		refs.add(e.Name, e.Resource)
	}

	template := &Template{
		AWSTemplateFormatVersion: "2010-09-09",
		Description:              s.Description,
		Resources:                make(map[string]ResourceDef, len(s.entries)),
	}

	if len(s.Parameters) > 0 {
		template.Parameters = s.Parameters
	}
	if len(s.Outputs) > 0 {
		template.Outputs = s.Outputs
	}

	for _, e := range s.entries {
		for _, dep := range e.DependsOn {
			if !seen[dep] {
				return nil, fmt.Errorf("resource %s depends on unknown resource %s", e.Name, dep)
			}
		}

		props, err := serializeResource(e.Resource, refs)
		if err != nil {
			return nil, fmt.Errorf("serializing %s: %w", e.Name, err)
		}

		def := ResourceDef{
			Type:       e.Resource.ResourceType(),
			Properties: props,
		}
		if len(e.DependsOn) > 0 {
			def.DependsOn = append([]string(nil), e.DependsOn...)
			sort.Strings(def.DependsOn)
		}
		template.Resources[e.Name] = def
	}

	return template, nil
}

// JSON renders the template as indented CloudFormation JSON.
func (t *Template) JSON() ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// YAML renders the template as CloudFormation YAML. The template goes
// through its JSON form first so intrinsic functions keep their Fn:: shape.
func (t *Template) YAML() ([]byte, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}
