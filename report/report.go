// Package report models configuration-management run reports as
// order-preserving YAML trees so that unknown fields survive a
// decode/encode cycle untouched.
package report

import (
	"bytes"
	"strings"

	"github.com/crmarques/heckler-report/faults"
	"github.com/crmarques/heckler-report/yamlutil"
	"go.yaml.in/yaml/v3"
)

const (
	KeyLogs                 = "logs"
	KeyResourceStatuses     = "resource_statuses"
	KeyConfigurationVersion = "configuration_version"
	KeyHost                 = "host"

	encodeIndent = 2
)

// Report is a decoded run report. The zero value is not usable; build one
// with Decode.
type Report struct {
	doc *yaml.Node
}

// Log is the typed view of one entry of the report's logs sequence.
type Log struct {
	Source  string
	Level   string
	Message string
}

// ResourceStatus is the typed view of one resource_statuses entry.
type ResourceStatus struct {
	Key      string
	Resource string
	Events   int
}

// Retained reports whether the status must be kept in a filtered report.
func (s ResourceStatus) Retained(sources SourceSet) bool {
	return s.Events > 0 || sources.Has(s.Resource)
}

func Decode(data []byte) (*Report, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, validationError("report is empty", nil)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, validationError("invalid report payload", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, validationError("report is empty", nil)
	}

	r := &Report{doc: &doc}
	if err := r.validateShape(); err != nil {
		return nil, err
	}
	return r, nil
}

// Encode renders the report as block-style YAML. Flow collections coming
// from JSON input are emitted as block collections; values are unchanged.
func (r *Report) Encode() ([]byte, error) {
	return yamlutil.MarshalWithIndent(cloneNode(r.doc, map[*yaml.Node]*yaml.Node{}, true), encodeIndent)
}

// Clone returns a deep copy of the report.
func (r *Report) Clone() *Report {
	return &Report{doc: cloneNode(r.doc, map[*yaml.Node]*yaml.Node{}, false)}
}

// Value decodes the report into plain Go maps, slices and scalars.
func (r *Report) Value() (any, error) {
	var value any
	if err := r.root().Decode(&value); err != nil {
		return nil, validationError("failed to decode report value", err)
	}
	return value, nil
}

func (r *Report) Host() string {
	node := yamlutil.Resolve(yamlutil.MappingValue(r.root(), KeyHost))
	if node == nil || node.Kind != yaml.ScalarNode || yamlutil.IsNull(node) {
		return ""
	}
	return strings.TrimSpace(node.Value)
}

// ConfigurationVersion returns the content-addressed version the run
// applied. It must be present, a string scalar and non-empty.
func (r *Report) ConfigurationVersion() (string, error) {
	node := yamlutil.Resolve(yamlutil.MappingValue(r.root(), KeyConfigurationVersion))
	switch {
	case node == nil:
		return "", invalidVersionError("configuration_version is missing")
	case node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str":
		return "", invalidVersionError("configuration_version must be a string")
	case node.Value == "":
		return "", invalidVersionError("configuration_version must not be empty")
	}
	return node.Value, nil
}

func (r *Report) Logs() []Log {
	sequence := yamlutil.Resolve(yamlutil.MappingValue(r.root(), KeyLogs))
	if sequence == nil || sequence.Kind != yaml.SequenceNode {
		return nil
	}

	logs := make([]Log, 0, len(sequence.Content))
	for _, item := range sequence.Content {
		entry := yamlutil.Resolve(item)
		if entry == nil || entry.Kind != yaml.MappingNode {
			continue
		}
		logs = append(logs, Log{
			Source:  scalarField(entry, "source"),
			Level:   scalarField(entry, "level"),
			Message: scalarField(entry, "message"),
		})
	}
	return logs
}

// ResourceStatuses lists the resource_statuses entries in document order.
func (r *Report) ResourceStatuses() []ResourceStatus {
	mapping := r.statusesNode()
	if mapping == nil {
		return nil
	}

	statuses := make([]ResourceStatus, 0, len(mapping.Content)/2)
	for idx := 0; idx+1 < len(mapping.Content); idx += 2 {
		statuses = append(statuses, newResourceStatus(mapping.Content[idx], mapping.Content[idx+1]))
	}
	return statuses
}

func (r *Report) root() *yaml.Node {
	if r == nil || r.doc == nil || len(r.doc.Content) == 0 {
		return nil
	}
	return yamlutil.Resolve(r.doc.Content[0])
}

func (r *Report) statusesNode() *yaml.Node {
	mapping := yamlutil.Resolve(yamlutil.MappingValue(r.root(), KeyResourceStatuses))
	if mapping == nil || mapping.Kind != yaml.MappingNode {
		return nil
	}
	return mapping
}

func (r *Report) validateShape() error {
	root := r.root()
	if root == nil || root.Kind != yaml.MappingNode {
		return validationError("report must be a mapping", nil)
	}

	logs := yamlutil.MappingValue(root, KeyLogs)
	if !yamlutil.IsNull(logs) && yamlutil.Resolve(logs).Kind != yaml.SequenceNode {
		return validationError("report logs must be a sequence", nil)
	}

	statuses := yamlutil.MappingValue(root, KeyResourceStatuses)
	if !yamlutil.IsNull(statuses) && yamlutil.Resolve(statuses).Kind != yaml.MappingNode {
		return validationError("report resource_statuses must be a mapping", nil)
	}
	return nil
}

func newResourceStatus(keyNode *yaml.Node, valueNode *yaml.Node) ResourceStatus {
	status := ResourceStatus{}
	if key := yamlutil.Resolve(keyNode); key != nil && key.Kind == yaml.ScalarNode {
		status.Key = key.Value
	}

	value := yamlutil.Resolve(valueNode)
	status.Resource = scalarField(value, "resource")
	if status.Resource == "" {
		status.Resource = status.Key
	}

	events := yamlutil.Resolve(yamlutil.MappingValue(value, "events"))
	if events != nil {
		switch events.Kind {
		case yaml.SequenceNode:
			status.Events = len(events.Content)
		case yaml.MappingNode:
			status.Events = len(events.Content) / 2
		}
	}
	return status
}

func scalarField(mapping *yaml.Node, key string) string {
	node := yamlutil.Resolve(yamlutil.MappingValue(mapping, key))
	if node == nil || node.Kind != yaml.ScalarNode || yamlutil.IsNull(node) {
		return ""
	}
	return node.Value
}

// cloneNode deep-copies a node tree. seen keeps alias targets pointing at
// their copies. When block is set, flow styles are dropped from collections.
func cloneNode(node *yaml.Node, seen map[*yaml.Node]*yaml.Node, block bool) *yaml.Node {
	if node == nil {
		return nil
	}
	if copied, ok := seen[node]; ok {
		return copied
	}

	copied := *node
	seen[node] = &copied

	if block && (node.Kind == yaml.MappingNode || node.Kind == yaml.SequenceNode) {
		copied.Style &^= yaml.FlowStyle
	}
	if node.Alias != nil {
		copied.Alias = cloneNode(node.Alias, seen, block)
	}
	if node.Content != nil {
		copied.Content = make([]*yaml.Node, len(node.Content))
		for idx, child := range node.Content {
			copied.Content[idx] = cloneNode(child, seen, block)
		}
	}
	return &copied
}

func validationError(message string, cause error) error {
	return faults.NewTypedError(faults.ValidationError, message, cause)
}

func invalidVersionError(message string) error {
	return faults.NewTypedError(faults.InvalidVersionError, message, nil)
}
