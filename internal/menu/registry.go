package menu

import "strings"

// Registry exposes lookup utilities over a built menu tree.
type Registry struct {
	root    List
	entries map[string]Entry
	titles  int
}

// NewRegistry indexes every entry of a tree produced by Build.
func NewRegistry(root List) *Registry {
	r := &Registry{root: root, entries: make(map[string]Entry)}
	var walk func(List)
	walk = func(l List) {
		for _, entry := range l {
			if entry.ID != "" {
				r.entries[entry.ID] = entry
			}
			if entry.Kind == KindTitle {
				r.titles++
			}
			if entry.Children != nil {
				walk(entry.Children)
			}
		}
	}
	walk(root)
	return r
}

// Root returns the top-level list.
func (r *Registry) Root() List {
	return r.root
}

// Find locates an entry by ID.
func (r *Registry) Find(id string) (Entry, bool) {
	entry, ok := r.entries[id]
	return entry, ok
}

// Parent resolves the entry whose child list holds id. Root entries have no
// parent.
func (r *Registry) Parent(id string) (Entry, bool) {
	parentID, _ := parentKey(id)
	if parentID == "" {
		return Entry{}, false
	}
	return r.Find(parentID)
}

// Path returns the labels of the ancestors of id, outermost first.
func (r *Registry) Path(id string) []string {
	var labels []string
	for {
		parent, ok := r.Parent(id)
		if !ok {
			break
		}
		labels = append([]string{parent.Label}, labels...)
		id = parent.ID
	}
	return labels
}

// Count returns the number of indexed entries and how many of them are titles.
func (r *Registry) Count() (entries, titles int) {
	return len(r.entries), r.titles
}

// Depth returns the deepest nesting level of the tree (1 for a flat list).
func (r *Registry) Depth() int {
	max := 0
	for id := range r.entries {
		if d := strings.Count(id, idSeparator) + 1; d > max {
			max = d
		}
	}
	return max
}

func parentKey(id string) (string, string) {
	idx := strings.LastIndex(id, idSeparator)
	if idx < 0 {
		return "", id
	}
	return id[:idx], id[idx+1:]
}
