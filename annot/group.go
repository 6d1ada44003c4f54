package annot

import "fmt"

// Group names a logical collection of entities. Wire kind "group".
type Group struct {
	base
	name    string
	members []string
}

// NewGroup creates a group annotation over the given entity ids. The
// member slice is copied; at least 1 member is required. An empty
// targetID leaves the group unanchored.
func NewGroup(id, targetID, name string, memberIDs []string) (*Group, error) {
	owned := make([]string, len(memberIDs))
	copy(owned, memberIDs)
	if len(owned) < 1 {
		return nil, fmt.Errorf("group requires at least 1 member, got %d", len(owned))
	}
	return &Group{
		base:    base{id: id, target: targetID},
		name:    name,
		members: owned,
	}, nil
}

// Kind returns KindGroup.
func (g *Group) Kind() Kind { return KindGroup }

// Name returns the group name.
func (g *Group) Name() string { return g.name }

// MemberIDs returns a copy of the member entity ids, in order.
func (g *Group) MemberIDs() []string {
	out := make([]string, len(g.members))
	copy(out, g.members)
	return out
}

// MemberCount returns the number of members without copying.
func (g *Group) MemberCount() int { return len(g.members) }
