package proxytree

import (
	"reflect"

	"github.com/mitchellh/hashstructure/v2"
)

// Merge reconciles a freshly converted tree into the live one in place,
// consuming next. Content comparison excludes cursor state, so refreshes
// never disturb navigation:
//
//   - identical content is a no-op (hash short-circuit),
//   - an unchanged group is left untouched,
//   - a changed group is replaced wholesale except for its cursor, which
//     is clamped if the group shrank,
//   - groups new to the snapshot are appended in the order encountered,
//   - groups absent from the snapshot are retained.
//
// Retention and append order are deliberate: a group that vanishes for
// one poll (controller reload, provider refresh) keeps its place and its
// cursor instead of flickering out, so after repeated merges group order
// is first-insertion order rather than lexicographic.
func (t *Tree) Merge(next *Tree) {
	if contentEqual(t.Groups, next.Groups) {
		return
	}

	incoming := make(map[string]*Group, len(next.Groups))
	order := make([]string, 0, len(next.Groups))
	for _, g := range next.Groups {
		incoming[g.Name] = g
		order = append(order, g.Name)
	}

	for _, g := range t.Groups {
		ng, ok := incoming[g.Name]
		if !ok {
			continue
		}
		delete(incoming, g.Name)
		if contentEqual(g, ng) {
			continue
		}
		ng.Cursor = clamp(g.Cursor, len(ng.Members))
		*g = *ng
	}

	for _, name := range order {
		if g, ok := incoming[name]; ok {
			t.Groups = append(t.Groups, g)
		}
	}
}

// contentEqual compares two values ignoring hash:"ignore" fields. The
// structural hash is an optimization; if hashing fails for either side we
// fall back to deep equality on hash-relevant copies being unequal, which
// at worst makes the merge walk groups it could have skipped.
func contentEqual(a, b any) bool {
	ha, errA := hashstructure.Hash(a, hashstructure.FormatV2, nil)
	hb, errB := hashstructure.Hash(b, hashstructure.FormatV2, nil)
	if errA != nil || errB != nil {
		return reflect.DeepEqual(a, b)
	}
	return ha == hb
}
