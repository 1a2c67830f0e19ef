package proxytree

// Toggle flips between the collapsed overview and the expanded view of
// the group under the cursor. Instant and side-effect free.
func (t *Tree) Toggle() {
	t.Expanded = !t.Expanded
}

// Up moves the active cursor one step back: the member cursor of the
// expanded group when expanded, the group cursor otherwise.
func (t *Tree) Up() {
	if t.Expanded {
		if g := t.CurrentGroup(); g != nil {
			g.Cursor = clamp(g.Cursor-1, len(g.Members))
		}
		return
	}
	t.Cursor = clamp(t.Cursor-1, len(t.Groups))
}

// Down is the counterpart of Up.
func (t *Tree) Down() {
	if t.Expanded {
		if g := t.CurrentGroup(); g != nil {
			g.Cursor = clamp(g.Cursor+1, len(g.Members))
		}
		return
	}
	t.Cursor = clamp(t.Cursor+1, len(t.Groups))
}

// SelectedName returns the name under the cursor: the pointed member when
// expanded, the pointed group otherwise. Empty for an empty tree.
func (t *Tree) SelectedName() string {
	g := t.CurrentGroup()
	if g == nil {
		return ""
	}
	if t.Expanded && len(g.Members) > 0 {
		g.Cursor = clamp(g.Cursor, len(g.Members))
		return g.Members[g.Cursor].Name
	}
	return g.Name
}
