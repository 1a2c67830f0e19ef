// Package proxytree holds the navigable proxy-group tree the dashboard
// renders: an owned-value copy of one controller snapshot, plus the
// UI-local cursor state that must survive refreshes.
package proxytree

import (
	"errors"
	"fmt"
	"sort"

	"clashview/internal/model"
)

var (
	// ErrMissingMember indicates a group references a member name with no
	// corresponding record in the snapshot. The snapshot is malformed and
	// rejected wholesale.
	ErrMissingMember = errors.New("group member missing from snapshot")
	// ErrUnknownCurrent indicates a group's reported active member is not
	// in its own member list. Also a wholesale rejection.
	ErrUnknownCurrent = errors.New("active member not in group")
)

// NoCurrent is the Current value of a group with no reported active member.
const NoCurrent = -1

// Item is one concrete proxy inside a group. Items are built fresh on
// every snapshot conversion and never mutated afterwards.
type Item struct {
	Name    string
	Type    model.ProxyType
	History *model.History
	UDP     bool
}

// Delay returns the newest measured delay and whether a usable sample
// exists. A recorded delay of 0 counts as "no measurement".
func (i Item) Delay() (uint16, bool) {
	if i.History == nil {
		return 0, false
	}
	return i.History.Delay, true
}

// Group is a named proxy group plus its navigation state. Cursor is
// UI-local and the only field a merge preserves; everything else is
// replaced wholesale when the group's content changes.
type Group struct {
	Name    string
	Type    model.ProxyType
	Members []Item
	// Current is the index of the backend-reported active member, or
	// NoCurrent when the backend reported none.
	Current int
	Cursor  int `hash:"ignore"`
}

// Tree is the full ordered group collection plus top-level navigation
// state. Cursor and Expanded belong to the UI and are excluded from
// content comparison during merges.
type Tree struct {
	Groups   []*Group
	Cursor   int  `hash:"ignore"`
	Expanded bool `hash:"ignore"`
}

// FromProxies converts one controller snapshot into a fresh tree. Every
// field is copied out of the snapshot; the tree never holds references
// into caller-owned data. Groups come out sorted by name ascending.
//
// A member name that does not resolve in the snapshot, or a "now" value
// that does not match any member, rejects the whole snapshot.
func FromProxies(ps model.Proxies) (*Tree, error) {
	tree := &Tree{Groups: make([]*Group, 0, len(ps))}

	for _, name := range ps.GroupNames() {
		raw := ps[name]
		members := make([]Item, 0, len(raw.All))
		for _, member := range raw.All {
			rec, ok := ps[member]
			if !ok {
				return nil, fmt.Errorf("%w: %q in group %q", ErrMissingMember, member, name)
			}
			members = append(members, Item{
				Name:    member,
				Type:    rec.Type,
				History: rec.Latest(),
				UDP:     rec.UDP,
			})
		}

		current := NoCurrent
		if raw.Now != "" {
			for i := range members {
				if members[i].Name == raw.Now {
					current = i
					break
				}
			}
			if current == NoCurrent {
				return nil, fmt.Errorf("%w: %q in group %q", ErrUnknownCurrent, raw.Now, name)
			}
		}

		cursor := 0
		if current != NoCurrent {
			cursor = current
		}

		tree.Groups = append(tree.Groups, &Group{
			Name:    name,
			Type:    raw.Type,
			Members: members,
			Current: current,
			Cursor:  cursor,
		})
	}

	sort.Slice(tree.Groups, func(i, j int) bool {
		return tree.Groups[i].Name < tree.Groups[j].Name
	})
	return tree, nil
}

// CurrentGroup returns the group under the tree cursor, clamping a stale
// cursor instead of indexing out of range. Nil for an empty tree.
func (t *Tree) CurrentGroup() *Group {
	if len(t.Groups) == 0 {
		return nil
	}
	t.Cursor = clamp(t.Cursor, len(t.Groups))
	return t.Groups[t.Cursor]
}

func clamp(i, length int) int {
	if length <= 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= length {
		return length - 1
	}
	return i
}
