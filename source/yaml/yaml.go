// Package yaml provides a godec input driver backed by gopkg.in/yaml.v3.
// yaml.Node preserves mapping order, so object entries keep the order they
// have in the document, same as the JSON driver.
package yaml

import (
	"fmt"
	"strconv"

	yamlv3 "gopkg.in/yaml.v3"

	godec "github.com/reoring/godec"
)

// Driver returns a godec.Driver that parses YAML documents.
func Driver() godec.Driver { return yamlDriver{} }

type yamlDriver struct{}

func (yamlDriver) Name() string { return "yaml.v3" }

func (yamlDriver) Parse(data []byte) (godec.Value, error) { return Parse(data) }

// Parse converts one YAML document into a Value tree.
func Parse(data []byte) (godec.Value, error) {
	var root yamlv3.Node
	if err := yamlv3.Unmarshal(data, &root); err != nil {
		return godec.Undefined(), fmt.Errorf("yaml: parse: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		// empty document
		return godec.Null(), nil
	}
	return fromNode(root.Content[0])
}

func fromNode(n *yamlv3.Node) (godec.Value, error) {
	switch n.Kind {
	case yamlv3.AliasNode:
		return fromNode(n.Alias)
	case yamlv3.ScalarNode:
		return fromScalar(n)
	case yamlv3.SequenceNode:
		elems := make([]godec.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return godec.Undefined(), err
			}
			elems = append(elems, v)
		}
		return godec.Array(elems...), nil
	case yamlv3.MappingNode:
		entries := make([]godec.Entry, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind == yamlv3.AliasNode {
				k = k.Alias
			}
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return godec.Undefined(), err
			}
			entries = append(entries, godec.Entry{Key: k.Value, Value: v})
		}
		return godec.Object(entries...), nil
	}
	return godec.Undefined(), fmt.Errorf("yaml: unsupported node kind %d at line %d", n.Kind, n.Line)
}

func fromScalar(n *yamlv3.Node) (godec.Value, error) {
	switch n.Tag {
	case "!!null":
		return godec.Null(), nil
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return godec.Undefined(), fmt.Errorf("yaml: bad bool %q at line %d", n.Value, n.Line)
		}
		return godec.Bool(b), nil
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return godec.Undefined(), fmt.Errorf("yaml: bad int %q at line %d", n.Value, n.Line)
		}
		return godec.NumberLiteral(strconv.FormatInt(i, 10)), nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return godec.Undefined(), fmt.Errorf("yaml: bad float %q at line %d", n.Value, n.Line)
		}
		return godec.Number(f), nil
	default:
		return godec.String(n.Value), nil
	}
}
