package printer

import (
	"encoding/base64"
	"strconv"

	"github.com/joshuapare/bencodekit/pkg/ast"
	"gopkg.in/yaml.v3"
)

// printYAML writes v as a YAML document. Mappings are built as nodes so
// keys stay in byte order rather than yaml.v3's natural map ordering.
func (p *Printer) printYAML(v ast.Value) error {
	enc := yaml.NewEncoder(p.writer)
	if p.opts.IndentSize > 0 {
		enc.SetIndent(p.opts.IndentSize)
	}
	if err := enc.Encode(yamlNode(v)); err != nil {
		return err
	}
	return enc.Close()
}

func yamlNode(v ast.Value) *yaml.Node {
	switch {
	case v.IsInteger():
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v.Int(), 10)}
	case v.IsByteString():
		b, _ := v.Bytes()
		return yamlString(b)
	case v.IsList():
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.List() {
			n.Content = append(n.Content, yamlNode(item))
		}
		return n
	default:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for key, val := range v.(*ast.Dictionary).All() {
			n.Content = append(n.Content, yamlString([]byte(key)), yamlNode(val))
		}
		return n
	}
}

func yamlString(b []byte) *yaml.Node {
	if s, ok := ast.Bytes(b).Text(); ok {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!binary", Value: base64.StdEncoding.EncodeToString(b)}
}
