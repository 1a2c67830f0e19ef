package proxytree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clashview/internal/model"
)

func makeGroup(name string, memberCount, current int) *Group {
	members := make([]Item, memberCount)
	for i := range members {
		members[i] = Item{
			Name: name + "-" + string(rune('a'+i)),
			Type: model.TypeVmess,
		}
	}
	return &Group{
		Name:    name,
		Type:    model.TypeSelector,
		Members: members,
		Current: current,
	}
}

func cloneGroup(g *Group) *Group {
	c := *g
	c.Members = append([]Item(nil), g.Members...)
	return &c
}

func cloneTree(t *Tree) *Tree {
	c := &Tree{Cursor: t.Cursor, Expanded: t.Expanded}
	for _, g := range t.Groups {
		c.Groups = append(c.Groups, cloneGroup(g))
	}
	return c
}

func TestMergeIdenticalIsNoOp(t *testing.T) {
	live := &Tree{Groups: []*Group{makeGroup("A", 3, 0), makeGroup("B", 2, NoCurrent)}}
	live.Cursor = 1
	live.Groups[0].Cursor = 2

	next := cloneTree(live)
	// Cursor state differs on the incoming tree; content comparison must
	// not care.
	next.Cursor = 0
	next.Groups[0].Cursor = 0

	live.Merge(next)

	assert.Equal(t, 1, live.Cursor)
	assert.Equal(t, 2, live.Groups[0].Cursor)
	assert.Len(t, live.Groups, 2)
}

func TestMergePreservesCursorOnChange(t *testing.T) {
	live := &Tree{Groups: []*Group{makeGroup("A", 3, 0)}}
	live.Groups[0].Cursor = 2

	// "A" gained a member at the end.
	next := &Tree{Groups: []*Group{makeGroup("A", 4, 0)}}

	live.Merge(next)

	require.Len(t, live.Groups, 1)
	assert.Len(t, live.Groups[0].Members, 4)
	assert.Equal(t, 2, live.Groups[0].Cursor)
}

func TestMergeClampsCursorWhenGroupShrinks(t *testing.T) {
	live := &Tree{Groups: []*Group{makeGroup("A", 5, 0)}}
	live.Groups[0].Cursor = 4

	next := &Tree{Groups: []*Group{makeGroup("A", 2, 0)}}

	live.Merge(next)

	require.Len(t, live.Groups[0].Members, 2)
	assert.Equal(t, 1, live.Groups[0].Cursor)
}

func TestMergeAppendsNewGroups(t *testing.T) {
	live := &Tree{Groups: []*Group{makeGroup("A", 2, 0)}}

	next := &Tree{Groups: []*Group{
		makeGroup("A", 2, 0),
		makeGroup("B", 3, NoCurrent),
	}}

	live.Merge(next)

	require.Len(t, live.Groups, 2)
	assert.Equal(t, "A", live.Groups[0].Name)
	assert.Equal(t, "B", live.Groups[1].Name)
}

func TestMergeRetainsVanishedGroups(t *testing.T) {
	live := &Tree{Groups: []*Group{
		makeGroup("A", 2, 0),
		makeGroup("C", 2, 0),
	}}

	// "C" is gone from the new snapshot; it stays in the live tree.
	next := &Tree{Groups: []*Group{makeGroup("A", 3, 0)}}

	live.Merge(next)

	require.Len(t, live.Groups, 2)
	assert.Equal(t, "C", live.Groups[1].Name)
	assert.Len(t, live.Groups[0].Members, 3)
}

func TestMergeReplacesChangedContent(t *testing.T) {
	live := &Tree{Groups: []*Group{makeGroup("A", 2, 0)}}

	next := &Tree{Groups: []*Group{makeGroup("A", 2, 1)}}
	next.Groups[0].Members[0].History = &model.History{Delay: 150}

	live.Merge(next)

	assert.Equal(t, 1, live.Groups[0].Current)
	delay, ok := live.Groups[0].Members[0].Delay()
	require.True(t, ok)
	assert.Equal(t, uint16(150), delay)
}

func TestMergeKeepsUntouchedGroupIdentity(t *testing.T) {
	a := makeGroup("A", 2, 0)
	b := makeGroup("B", 2, 0)
	live := &Tree{Groups: []*Group{a, b}}

	next := &Tree{Groups: []*Group{
		cloneGroup(a),
		makeGroup("B", 4, 0),
	}}

	live.Merge(next)

	// The unchanged group is the same object, not a copy.
	assert.Same(t, a, live.Groups[0])
	assert.Len(t, live.Groups[1].Members, 4)
}
