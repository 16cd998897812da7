package snapshot

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Record is one data row of a snapshot. Records are built once by the parser
// and are not modified afterwards; accessors return copies.
type Record struct {
	ID     string
	Source string

	props *orderedmap.OrderedMap[string, Value]
}

// Property is a single column of a Record.
type Property struct {
	Key   string
	Value Value
}

func newRecord(id, source string) Record {
	return Record{ID: id, Source: source, props: orderedmap.New[string, Value]()}
}

// Get returns the value stored under the exact header text key.
func (r Record) Get(key string) (Value, bool) {
	if r.props == nil {
		return Value{}, false
	}
	return r.props.Get(key)
}

// Len returns the number of properties.
func (r Record) Len() int {
	if r.props == nil {
		return 0
	}
	return r.props.Len()
}

// Keys returns the property keys in header order.
func (r Record) Keys() []string {
	out := make([]string, 0, r.Len())
	for _, p := range r.Properties() {
		out = append(out, p.Key)
	}
	return out
}

// Properties returns the properties in header order.
func (r Record) Properties() []Property {
	if r.props == nil {
		return nil
	}
	out := make([]Property, 0, r.props.Len())
	for pair := r.props.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Property{Key: pair.Key, Value: pair.Value})
	}
	return out
}

type recordJSON struct {
	ID         string                                `json:"id"`
	Source     string                                `json:"source"`
	Properties *orderedmap.OrderedMap[string, Value] `json:"properties"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	props := r.props
	if props == nil {
		props = orderedmap.New[string, Value]()
	}
	return json.Marshal(recordJSON{ID: r.ID, Source: r.Source, Properties: props})
}

// MarshalYAML renders r with properties in header order.
func (r Record) MarshalYAML() (any, error) {
	props := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range r.Properties() {
		var k, v yaml.Node
		k.SetString(p.Key)
		if err := v.Encode(p.Value); err != nil {
			return nil, err
		}
		props.Content = append(props.Content, &k, &v)
	}
	var id, source yaml.Node
	id.SetString(r.ID)
	source.SetString(r.Source)
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "id"}, &id,
			{Kind: yaml.ScalarNode, Value: "source"}, &source,
			{Kind: yaml.ScalarNode, Value: "properties"}, props,
		},
	}, nil
}
