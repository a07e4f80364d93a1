package domain

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedFrontMatter is returned when a front-matter block exists but
// cannot be parsed as YAML. Callers must leave the file untouched.
var ErrMalformedFrontMatter = errors.New("malformed front matter")

const frontMatterDelimiter = "---"

// Value wraps a YAML node so callers never deal with yaml.v3 directly.
// Keeping the original node preserves scalar styles and nested structure
// through a parse/render round trip.
type Value struct {
	node *yaml.Node
}

// String creates a string value
func String(s string) *Value {
	return &Value{node: &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}}
}

// Bool creates a boolean value
func Bool(b bool) *Value {
	v := "false"
	if b {
		v = "true"
	}
	return &Value{node: &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v}}
}

// Null creates an empty value, rendered as a bare key
func Null() *Value {
	return &Value{node: &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: ""}}
}

// EmptyList creates an empty YAML sequence
func EmptyList() *Value {
	return &Value{node: &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}}
}

// List creates a YAML sequence of strings
func List(items ...string) *Value {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, item := range items {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item})
	}
	return &Value{node: n}
}

// IsNull reports whether the value is YAML null (explicit or bare key)
func (v *Value) IsNull() bool {
	if v == nil || v.node == nil {
		return true
	}
	return v.node.Kind == yaml.ScalarNode && v.node.Tag == "!!null"
}

// AsString returns the scalar string form of the value.
// ok is false for null and non-scalar values.
func (v *Value) AsString() (string, bool) {
	if v.IsNull() || v.node.Kind != yaml.ScalarNode {
		return "", false
	}
	return v.node.Value, true
}

// AsBool returns the boolean form of the value
func (v *Value) AsBool() (bool, bool) {
	if v.IsNull() || v.node.Kind != yaml.ScalarNode || v.node.Tag != "!!bool" {
		return false, false
	}
	return v.node.Value == "true" || v.node.Value == "True", true
}

// AsStringList returns the value as a list of scalar strings.
// A scalar value yields a single-element list; null yields nil.
func (v *Value) AsStringList() []string {
	if v.IsNull() {
		return nil
	}
	switch v.node.Kind {
	case yaml.ScalarNode:
		return []string{v.node.Value}
	case yaml.SequenceNode:
		var out []string
		for _, item := range v.node.Content {
			if item.Kind == yaml.ScalarNode && item.Tag != "!!null" {
				out = append(out, item.Value)
			}
		}
		return out
	default:
		return nil
	}
}

// FrontMatter is an order-preserving front-matter mapping.
// The zero value is an empty mapping ready for use.
type FrontMatter struct {
	keys   []string
	values map[string]*Value
}

// NewFrontMatter creates an empty front-matter mapping
func NewFrontMatter() *FrontMatter {
	return &FrontMatter{values: make(map[string]*Value)}
}

// Keys returns the property names in insertion order
func (fm *FrontMatter) Keys() []string {
	if fm == nil {
		return nil
	}
	out := make([]string, len(fm.keys))
	copy(out, fm.keys)
	return out
}

// Len returns the number of properties
func (fm *FrontMatter) Len() int {
	if fm == nil {
		return 0
	}
	return len(fm.keys)
}

// Has reports whether a key is present (even with a null value)
func (fm *FrontMatter) Has(key string) bool {
	if fm == nil {
		return false
	}
	_, ok := fm.values[key]
	return ok
}

// Get returns the value for a key
func (fm *FrontMatter) Get(key string) (*Value, bool) {
	if fm == nil {
		return nil, false
	}
	v, ok := fm.values[key]
	return v, ok
}

// Set stores a value, appending the key if it is new
func (fm *FrontMatter) Set(key string, v *Value) {
	if fm.values == nil {
		fm.values = make(map[string]*Value)
	}
	if _, ok := fm.values[key]; !ok {
		fm.keys = append(fm.keys, key)
	}
	fm.values[key] = v
}

// StringValue returns the scalar string for a key, or "" when absent/null
func (fm *FrontMatter) StringValue(key string) string {
	v, ok := fm.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.AsString()
	return s
}

// IsNull reports whether a key is absent or holds a null value
func (fm *FrontMatter) IsNull(key string) bool {
	v, ok := fm.Get(key)
	if !ok {
		return true
	}
	return v.IsNull()
}

// Clone returns a deep copy of the mapping
func (fm *FrontMatter) Clone() *FrontMatter {
	out := NewFrontMatter()
	if fm == nil {
		return out
	}
	for _, key := range fm.keys {
		out.Set(key, &Value{node: cloneNode(fm.values[key].node)})
	}
	return out
}

func cloneNode(n *yaml.Node) *yaml.Node {
	if n == nil {
		return nil
	}
	c := *n
	c.Content = make([]*yaml.Node, len(n.Content))
	for i, child := range n.Content {
		c.Content[i] = cloneNode(child)
	}
	return &c
}

// Parse splits markdown content into front matter and body.
// When the file has no leading front-matter block, fm is nil and body is
// the whole content. A block that exists but fails to parse returns
// ErrMalformedFrontMatter.
func Parse(content string) (fm *FrontMatter, body string, err error) {
	block, body, found := splitFrontMatter(content)
	if !found {
		return nil, content, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return nil, content, fmt.Errorf("%w: %v", ErrMalformedFrontMatter, err)
	}
	if len(doc.Content) == 0 {
		return NewFrontMatter(), body, nil
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, content, fmt.Errorf("%w: front matter is not a mapping", ErrMalformedFrontMatter)
	}

	fm = NewFrontMatter()
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i]
		val := mapping.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			continue
		}
		fm.Set(key.Value, &Value{node: val})
	}
	return fm, body, nil
}

// splitFrontMatter extracts the leading --- delimited block.
// Returns the raw YAML between the delimiters and the remaining body,
// which starts right after the closing delimiter's newline.
func splitFrontMatter(content string) (block, body string, found bool) {
	rest, ok := strings.CutPrefix(content, frontMatterDelimiter+"\n")
	if !ok {
		return "", content, false
	}

	// Empty block: the closing delimiter is the very next line
	if after, ok := strings.CutPrefix(rest, frontMatterDelimiter+"\n"); ok {
		return "", after, true
	}
	if rest == frontMatterDelimiter {
		return "", "", true
	}

	if idx := strings.Index(rest, "\n"+frontMatterDelimiter+"\n"); idx >= 0 {
		return rest[:idx+1], rest[idx+len(frontMatterDelimiter)+2:], true
	}
	if strings.HasSuffix(rest, "\n"+frontMatterDelimiter) {
		return rest[:len(rest)-len(frontMatterDelimiter)], "", true
	}
	return "", content, false
}

// Render serializes the front matter followed by the body.
// Property order is exactly the mapping's insertion order.
func (fm *FrontMatter) Render(body string) (string, error) {
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range fm.Keys() {
		v := fm.values[key]
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
		valNode := v.node
		if valNode == nil {
			valNode = Null().node
		}
		mapping.Content = append(mapping.Content, keyNode, valNode)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(mapping); err != nil {
		return "", fmt.Errorf("failed to render front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to render front matter: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(frontMatterDelimiter)
	sb.WriteString("\n")
	sb.Write(buf.Bytes())
	sb.WriteString(frontMatterDelimiter)
	sb.WriteString("\n")
	sb.WriteString(body)
	return sb.String(), nil
}
