// Package agent loads agent configuration files.
//
// An agent configuration is a single YAML document whose root is a mapping
// from string keys to arbitrary values. [Load] keeps the keys in document
// order so that checks and diagnostics are deterministic.
package agent

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/agentlint/internal/errors"
	"github.com/thoreinstein/agentlint/pkg/fileutil"
)

// Load failures. Each error returned by Load matches exactly one of these
// with errors.Is.
var (
	// ErrFileNotFound indicates the path does not reference an existing file.
	ErrFileNotFound = errors.New("file does not exist")

	// ErrRead indicates the file exists but could not be read.
	ErrRead = errors.New("error reading file")

	// ErrInvalidYAML indicates the content is not a single well-formed YAML document.
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrEmpty indicates the document is empty, null or an empty collection.
	ErrEmpty = errors.New("empty configuration file")

	// ErrNotMapping indicates the document root is not a mapping.
	ErrNotMapping = errors.New("configuration root is not a mapping")
)

// NotMappingError describes a document whose root is not a mapping.
type NotMappingError struct {
	// Kind is "a list", "a scalar" or "an unsupported node".
	Kind string
}

func (e *NotMappingError) Error() string {
	return "configuration root must be a mapping, got " + e.Kind
}

// Config is a parsed agent configuration: an ordered mapping from keys to
// decoded YAML values. Mappings decode to map[string]any, sequences to []any
// and scalars to string, int, uint64, float64, *big.Int, bool, time.Time or
// nil.
type Config struct {
	// Path is the file the configuration was loaded from.
	Path string

	keys   []string
	values map[string]any
}

// Keys returns the top-level keys in document order.
func (c *Config) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Get returns the value stored under key.
func (c *Config) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key is present, regardless of its value.
func (c *Config) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// Len returns the number of top-level keys.
func (c *Config) Len() int {
	return len(c.keys)
}

// set records key, keeping the position of its first occurrence and the
// value of its last.
func (c *Config) set(key string, v any) {
	if _, seen := c.values[key]; !seen {
		c.keys = append(c.keys, key)
	}
	c.values[key] = v
}

// Load reads and parses the agent configuration at path.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Mark(errors.Wrap(err, path), ErrFileNotFound)
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Mark(err, ErrRead)
	}

	return Parse(path, data)
}

// Parse decodes data as an agent configuration. path is only recorded.
func Parse(path string, data []byte) (*Config, error) {
	root, err := decodeSingleDocument(data)
	if err != nil {
		return nil, err
	}
	if root == nil || isEmptyNode(root) {
		return nil, ErrEmpty
	}
	if root.Kind != yaml.MappingNode {
		return nil, errors.Mark(&NotMappingError{Kind: kindName(root)}, ErrNotMapping)
	}

	cfg := &Config{Path: path, values: make(map[string]any)}
	if err := cfg.fill(root); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeSingleDocument returns the root node of the only document in data,
// or nil when data holds no document at all.
func decodeSingleDocument(data []byte) (*yaml.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Mark(err, ErrInvalidYAML)
	}

	var next yaml.Node
	switch err := dec.Decode(&next); {
	case err == nil:
		return nil, errors.Mark(errors.New("expected a single document in the stream, but found another document"), ErrInvalidYAML)
	case !errors.Is(err, io.EOF):
		return nil, errors.Mark(err, ErrInvalidYAML)
	}

	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil, nil
		}
		return resolve(doc.Content[0]), nil
	}
	return resolve(&doc), nil
}

// fill copies the pairs of a mapping node into c.
func (c *Config) fill(mapping *yaml.Node) error {
	pairs, err := mappingPairs(mapping)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		c.set(p.key, p.value)
	}
	return nil
}

type pair struct {
	key   string
	value any
}

// mappingPairs flattens a mapping node into ordered pairs, expanding merge
// keys. A repeated key keeps the position of its first occurrence and the
// value of its last; explicit keys win over merged ones regardless of
// position.
func mappingPairs(n *yaml.Node) ([]pair, error) {
	var pairs []pair
	index := make(map[string]int)
	set := func(key string, v any) {
		if i, ok := index[key]; ok {
			pairs[i].value = v
			return
		}
		index[key] = len(pairs)
		pairs = append(pairs, pair{key: key, value: v})
	}

	var merged []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge" {
			merged = append(merged, v)
			continue
		}

		key, err := keyString(k)
		if err != nil {
			return nil, err
		}
		val, err := nodeValue(v)
		if err != nil {
			return nil, errors.Wrapf(err, "decoding %q", key)
		}
		set(key, val)
	}

	for _, m := range merged {
		extra, err := mergePairs(m)
		if err != nil {
			return nil, err
		}
		for _, p := range extra {
			if _, ok := index[p.key]; !ok {
				set(p.key, p.value)
			}
		}
	}
	return pairs, nil
}

// mergePairs returns the pairs a merge key contributes. In a sequence of
// mappings the earlier mapping wins.
func mergePairs(n *yaml.Node) ([]pair, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.MappingNode:
		return mappingPairs(n)
	case yaml.SequenceNode:
		var out []pair
		seen := make(map[string]bool)
		for _, item := range n.Content {
			ps, err := mergePairs(item)
			if err != nil {
				return nil, err
			}
			for _, p := range ps {
				if !seen[p.key] {
					seen[p.key] = true
					out = append(out, p)
				}
			}
		}
		return out, nil
	default:
		return nil, errors.Mark(errors.Newf("line %d: merge value must be a mapping", n.Line), ErrInvalidYAML)
	}
}

// bigInt matches plain integers too large for int64 and uint64, which yaml.v3
// resolves as floats.
var bigInt = regexp.MustCompile(`^[-+]?[0-9]+$`)

// nodeValue converts a node into plain Go values. Mappings become
// map[string]any with the same duplicate-key rule as the document root and
// sequences become []any.
func nodeValue(n *yaml.Node) (any, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return nodeValue(n.Content[0])
	case yaml.MappingNode:
		pairs, err := mappingPairs(n)
		if err != nil {
			return nil, err
		}
		m := make(map[string]any, len(pairs))
		for _, p := range pairs {
			m[p.key] = p.value
		}
		return m, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := nodeValue(item)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil
	case yaml.ScalarNode:
		if n.Style&yaml.TaggedStyle == 0 && n.ShortTag() == "!!float" && bigInt.MatchString(n.Value) {
			if i, ok := new(big.Int).SetString(strings.TrimPrefix(n.Value, "+"), 10); ok {
				return i, nil
			}
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, errors.Mark(err, ErrInvalidYAML)
		}
		return v, nil
	default:
		return nil, errors.Mark(errors.Newf("line %d: unsupported node", n.Line), ErrInvalidYAML)
	}
}

func keyString(k *yaml.Node) (string, error) {
	k = resolve(k)
	if k.Kind == yaml.ScalarNode {
		return k.Value, nil
	}
	var v any
	if err := k.Decode(&v); err != nil {
		return "", errors.Mark(errors.Wrap(err, "decoding key"), ErrInvalidYAML)
	}
	return fmt.Sprint(v), nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// isEmptyNode reports whether a document root counts as an empty
// configuration: null, false, zero, an empty string or an empty collection.
func isEmptyNode(n *yaml.Node) bool {
	switch n.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		return len(n.Content) == 0
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return false
		}
		switch x := v.(type) {
		case nil:
			return true
		case string:
			return x == ""
		case bool:
			return !x
		case int:
			return x == 0
		case float64:
			return x == 0
		}
	}
	return false
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "a list"
	case yaml.ScalarNode:
		return "a scalar"
	default:
		return "an unsupported node"
	}
}
