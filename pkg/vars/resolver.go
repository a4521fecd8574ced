package vars

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-scaffold/internal/logging"
)

// Conventional context file names. The JSON form is the primary source; the
// YAML form is consulted only when the JSON file is absent.
const (
	DefaultContextFile  = "scaffold.json"
	FallbackContextFile = "scaffold.yml"
)

// Resolve loads the context from contextFile and applies overlay on top as a
// shallow per-key overwrite. When contextFile is empty the conventional
// default is used, falling back to the YAML variant if the default is absent.
//
// Both encodings are decoded through the same order-preserving document
// parser, so key order always matches the authored file. A source that is
// missing or fails to decode yields a *LoadError.
func Resolve(contextFile string, overlay *Context) (*Context, error) {
	log := logging.GetLogger("vars")

	if contextFile == "" {
		contextFile = DefaultContextFile
		if _, err := os.Stat(contextFile); os.IsNotExist(err) {
			if _, err := os.Stat(FallbackContextFile); err == nil {
				contextFile = FallbackContextFile
			}
		}
	}

	data, err := os.ReadFile(contextFile)
	if err != nil {
		return nil, &LoadError{Path: contextFile, Err: err}
	}

	ctx, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Path: contextFile, Err: err}
	}

	ctx.Overlay(overlay)
	log.Debug().Str("file", contextFile).Strs("keys", ctx.Keys()).Msg("context resolved")
	return ctx, nil
}

// Parse decodes a JSON or YAML object into an ordered Context. YAML is a
// superset of JSON, so a single node-level decode covers both encodings
// while keeping the mapping's key order intact.
func Parse(data []byte) (*Context, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("context document is empty")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("context document must be an object, got %s", nodeKind(root))
	}
	return decodeMapping(root)
}

func decodeMapping(node *yaml.Node) (*Context, error) {
	ctx := New()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return nil, fmt.Errorf("decode key at line %d: %w", keyNode.Line, err)
		}
		if ctx.Has(key) {
			return nil, fmt.Errorf("duplicate key %q at line %d", key, keyNode.Line)
		}

		value, err := decodeValue(valueNode)
		if err != nil {
			return nil, fmt.Errorf("decode value for %q: %w", key, err)
		}
		ctx.Set(key, value)
	}
	return ctx, nil
}

func decodeValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.MappingNode:
		nested := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var key string
			if err := node.Content[i].Decode(&key); err != nil {
				return nil, err
			}
			value, err := decodeValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			nested[key] = value
		}
		return nested, nil
	case yaml.SequenceNode:
		seq := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := decodeValue(item)
			if err != nil {
				return nil, err
			}
			seq = append(seq, value)
		}
		return seq, nil
	case yaml.AliasNode:
		return decodeValue(node.Alias)
	default:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, err
		}
		return value, nil
	}
}

func nodeKind(node *yaml.Node) string {
	switch node.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "unknown"
	}
}
