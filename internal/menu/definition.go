package menu

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidEntry reports a menu definition entry that is neither a valid
// title nor a valid item.
var ErrInvalidEntry = errors.New("invalid menu entry")

// Definition is the on-disk shape of a menu file.
//
//	active: Theme
//	items:
//	  - title: Theme
//	  - label: Theme
//	    shortcut: [shift, t]
//	    action: theme
//	  - label: Index Page
//	    children:
//	      - title: Pages
//	      - label: Home
//	        href: /
type Definition struct {
	Active string `yaml:"active"`
	Items  List   `yaml:"items"`
}

type rawEntry struct {
	Title    *string  `yaml:"title"`
	Label    string   `yaml:"label"`
	Shortcut []string `yaml:"shortcut"`
	Icon     string   `yaml:"icon"`
	Href     string   `yaml:"href"`
	Action   string   `yaml:"action"`
	Children *List    `yaml:"children"`
}

// UnmarshalYAML decodes either a `title` mapping or a `label` mapping.
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: %w: expected a mapping", node.Line, ErrInvalidEntry)
	}
	var raw rawEntry
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Title != nil {
		if raw.Label != "" || raw.Children != nil || len(raw.Shortcut) > 0 || raw.Href != "" || raw.Action != "" || raw.Icon != "" {
			return fmt.Errorf("line %d: %w: title %q carries item fields", node.Line, ErrInvalidEntry, *raw.Title)
		}
		*e = Title(strings.TrimSpace(*raw.Title))
		return nil
	}
	label := strings.TrimSpace(raw.Label)
	if label == "" {
		label = prettyLabel(raw.Action)
	}
	if label == "" {
		return fmt.Errorf("line %d: %w: entry needs a title or a label", node.Line, ErrInvalidEntry)
	}
	if raw.Action != "" {
		if _, ok := ActionHandlers()[raw.Action]; !ok {
			return fmt.Errorf("line %d: %w: unknown action %q", node.Line, ErrInvalidEntry, raw.Action)
		}
	}
	*e = Entry{
		Kind:     KindItem,
		Label:    label,
		Shortcut: raw.Shortcut,
		Icon:     raw.Icon,
		Href:     strings.TrimSpace(raw.Href),
		Action:   raw.Action,
	}
	if raw.Children != nil {
		e.Children = *raw.Children
		if e.Children == nil {
			e.Children = List{}
		}
	}
	return nil
}

// Parse decodes a menu definition and assigns entry IDs.
func Parse(data []byte) (Definition, error) {
	var def Definition
	if len(bytes.TrimSpace(data)) == 0 {
		return def, fmt.Errorf("empty menu definition")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return Definition{}, fmt.Errorf("decode menu definition: %w", err)
	}
	if len(def.Items) == 0 {
		return Definition{}, fmt.Errorf("menu definition has no items")
	}
	def.Active = strings.TrimSpace(def.Active)
	def.Items = Build(def.Items)
	return def, nil
}

// Load reads and parses the menu definition at path.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read menu %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}
