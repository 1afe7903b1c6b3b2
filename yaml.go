package mdtable

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func readYAML(r io.Reader) (TableData, error) {
	// Read up front: the yaml decoder flattens reader errors into strings.
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInput, YAML, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, nil
	}
	var rows [][]yaml.Node
	if err := yaml.Unmarshal(b, &rows); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInput, YAML, err)
	}
	data := make(TableData, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, node := range row {
			cell, err := yamlCell(&node)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: line %d: %w", ErrInvalidInput, YAML, node.Line, err)
			}
			cells[j] = cell
		}
		data[i] = cells
	}
	return data, nil
}

// yamlCell keeps scalars as written, so 1.50 stays "1.50" rather than 1.5.
func yamlCell(node *yaml.Node) (string, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return "", nil
		}
		return node.Value, nil
	default:
		return "", fmt.Errorf("cell must be a scalar, got %s", yamlKind(node.Kind))
	}
}

func yamlKind(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.DocumentNode:
		return "document"
	default:
		return "node"
	}
}
