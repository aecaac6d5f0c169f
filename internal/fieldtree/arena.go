// Package fieldtree stores recursive template field trees in a flat arena.
//
// Nodes reference their parent and children by index into the arena instead of by
// pointer, so a tree can be walked, checked and rebuilt without pointer cycles.
package fieldtree

import (
	"sort"

	"valuation-backend/internal/database/models"
)

// NoParent marks a root node
const NoParent = -1

// Kind distinguishes leaf fields from group fields
type Kind int

const (
	KindLeaf Kind = iota
	KindGroup
)

// Node is one field stored in the arena. Field.SubFields is always nil inside the
// arena; children are listed in Children.
type Node struct {
	Field    models.Field
	Kind     Kind
	Parent   int
	Depth    int
	Children []int
}

// Arena holds a forest of fields in pre-order
type Arena struct {
	nodes []Node
	roots []int
}

// New returns an empty arena
func New() *Arena {
	return &Arena{}
}

// FromFields flattens fields (and their sub-fields) into a new arena
func FromFields(fields []models.Field) *Arena {
	a := New()
	a.AppendRoots(fields)
	return a
}

// AppendRoots adds fields as new roots, preserving their order
func (a *Arena) AppendRoots(fields []models.Field) {
	for _, f := range fields {
		a.roots = append(a.roots, a.add(f, NoParent, 0))
	}
}

func (a *Arena) add(f models.Field, parent, depth int) int {
	children := f.SubFields
	f.SubFields = nil

	kind := KindLeaf
	if f.IsGroup() {
		kind = KindGroup
	}

	idx := len(a.nodes)
	a.nodes = append(a.nodes, Node{Field: f, Kind: kind, Parent: parent, Depth: depth})
	for _, child := range children {
		childIdx := a.add(child, idx, depth+1)
		a.nodes[idx].Children = append(a.nodes[idx].Children, childIdx)
	}
	return idx
}

// Len returns the number of nodes in the arena
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Node returns the node at index i
func (a *Arena) Node(i int) Node {
	return a.nodes[i]
}

// IDs returns every field id in pre-order
func (a *Arena) IDs() []string {
	ids := make([]string, 0, len(a.nodes))
	for _, n := range a.nodes {
		ids = append(ids, n.Field.FieldID)
	}
	return ids
}

// FirstDuplicate returns the first field id seen twice in pre-order
func (a *Arena) FirstDuplicate() (string, bool) {
	seen := make(map[string]struct{}, len(a.nodes))
	for _, n := range a.nodes {
		if _, ok := seen[n.Field.FieldID]; ok {
			return n.Field.FieldID, true
		}
		seen[n.Field.FieldID] = struct{}{}
	}
	return "", false
}

// SortBySortOrder orders the roots and every child list by SortOrder. Ties keep
// their insertion order.
func (a *Arena) SortBySortOrder() {
	a.sortIndexes(a.roots)
	for i := range a.nodes {
		a.sortIndexes(a.nodes[i].Children)
	}
}

func (a *Arena) sortIndexes(idx []int) {
	sort.SliceStable(idx, func(i, j int) bool {
		return a.nodes[idx[i]].Field.SortOrder < a.nodes[idx[j]].Field.SortOrder
	})
}

// Fields rebuilds the nested field slice from the arena
func (a *Arena) Fields() []models.Field {
	out := make([]models.Field, 0, len(a.roots))
	for _, r := range a.roots {
		out = append(out, a.build(r))
	}
	return out
}

func (a *Arena) build(i int) models.Field {
	n := a.nodes[i]
	f := n.Field
	if len(n.Children) > 0 {
		f.SubFields = make([]models.Field, 0, len(n.Children))
		for _, c := range n.Children {
			f.SubFields = append(f.SubFields, a.build(c))
		}
	}
	return f
}
