package airfoil

import "testing"

func TestMemSceneAddRemove(t *testing.T) {
	s := NewMemScene()
	id := s.AddItem(MakeContourPolygon([]Point{Pt(0, 0), Pt(1, 0)}, Style{}))
	if s.Len() != 1 {
		t.Fatalf("got %d items, want 1", s.Len())
	}
	if !s.Visible(id) {
		t.Error("freshly added item is not visible")
	}
	s.RemoveItem(id)
	if s.Len() != 0 {
		t.Fatalf("got %d items after removal, want 0", s.Len())
	}
	// Removing an unknown handle is a no-op.
	s.RemoveItem(id)
}

func TestMemSceneGroups(t *testing.T) {
	s := NewMemScene()
	ms := MakeMarkers([]Point{Pt(0, 0), Pt(0.5, 0.05), Pt(1, 0)}, 0.035, Style{})
	gid := s.CreateItemGroup(ms.Renderables())
	if s.Len() != 3 || s.GroupLen(gid) != 3 {
		t.Fatalf("got %d items in scene, %d in group, want 3 and 3", s.Len(), s.GroupLen(gid))
	}

	s.SetGroupVisible(gid, false)
	if len(s.Snapshot()) != 0 {
		t.Error("hidden group still appears in the snapshot")
	}
	s.SetGroupVisible(gid, true)

	s.RemoveGroup(gid)
	if s.Len() != 0 {
		t.Fatalf("got %d items after group removal, want 0", s.Len())
	}
}

func TestMemSceneSnapshotOrder(t *testing.T) {
	s := NewMemScene()
	a := MakeContourPolygon([]Point{Pt(0, 0)}, Style{})
	b := MakeContourPolygon([]Point{Pt(1, 1)}, Style{})
	c := MakeContourPolygon([]Point{Pt(2, 2)}, Style{})
	idA := s.AddItem(a)
	s.AddItem(b)
	s.AddItem(c)
	s.SetZ(idA, 10)

	snap := s.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("got %d snapshot items, want 3", len(snap))
	}
	// b and c keep insertion order at z 0; a paints last at z 10.
	if snap[0].Renderable != b || snap[1].Renderable != c || snap[2].Renderable != a {
		t.Errorf("snapshot order wrong: %v", snap)
	}
}

func TestMemSceneGroupZOverridesMembers(t *testing.T) {
	s := NewMemScene()
	ms := MakeMarkers([]Point{Pt(0, 0)}, 0.035, Style{})
	gid := s.CreateItemGroup(ms.Renderables())
	lone := s.AddItem(MakeContourPolygon([]Point{Pt(1, 1)}, Style{}))
	s.SetZ(lone, 50)
	s.SetGroupZ(gid, 100)

	snap := s.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("got %d snapshot items, want 2", len(snap))
	}
	if snap[1].Z != 100 {
		t.Errorf("group member z is %v, want 100", snap[1].Z)
	}
}

func TestMemSceneBounds(t *testing.T) {
	s := NewMemScene()
	s.AddItem(MakeContourPolygon([]Point{Pt(0, 0), Pt(1, 0.1)}, Style{}))
	hidden := s.AddItem(MakeContourPolygon([]Point{Pt(5, 5), Pt(6, 6)}, Style{}))
	s.SetVisible(hidden, false)
	diff(t, Rect{0, 0, 1, 0.1}, s.Bounds())
}
