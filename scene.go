package airfoil

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// Renderable is an opaque geometry handle a scene can display. The concrete
// types produced by this package are *ContourGeometry, *ChordLine and
// Marker.
type Renderable interface {
	Bounds() Rect
}

// ItemID identifies a renderable installed in a scene.
type ItemID string

// GroupID identifies a set of items managed jointly.
type GroupID string

// Scene is the display collaborator an airfoil installs its geometry into.
// It is passed in explicitly wherever geometry is built; the core never
// reaches into ambient application state.
type Scene interface {
	// AddItem installs a renderable and returns its handle.
	AddItem(r Renderable) ItemID
	// RemoveItem releases an installed renderable. Unknown handles are
	// ignored.
	RemoveItem(id ItemID)

	// CreateItemGroup installs the renderables and groups them for joint
	// visibility and z-order control.
	CreateItemGroup(items []Renderable) GroupID
	// RemoveGroup releases a group and all its members. Unknown handles are
	// ignored.
	RemoveGroup(id GroupID)

	SetVisible(id ItemID, visible bool)
	SetGroupVisible(id GroupID, visible bool)
	SetZ(id ItemID, z float64)
	SetGroupZ(id GroupID, z float64)
}

// MemScene is a retained in-memory Scene. It backs tests and headless
// tooling, and the render subpackage rasterizes its snapshots.
//
// MemScene is not safe for concurrent use; like the rest of the package it
// assumes the single-owner, single-thread model.
type MemScene struct {
	items  map[ItemID]*memItem
	groups map[GroupID]*memGroup
	seq    int
}

type memItem struct {
	r       Renderable
	z       float64
	visible bool
	group   GroupID
	seq     int
}

type memGroup struct {
	members []ItemID
	z       float64
	zSet    bool
	visible bool
}

var _ Scene = (*MemScene)(nil)

// NewMemScene returns an empty scene.
func NewMemScene() *MemScene {
	return &MemScene{
		items:  make(map[ItemID]*memItem),
		groups: make(map[GroupID]*memGroup),
	}
}

func (s *MemScene) addItem(r Renderable, group GroupID) ItemID {
	id := ItemID(uuid.NewString())
	s.seq++
	s.items[id] = &memItem{r: r, visible: true, group: group, seq: s.seq}
	return id
}

// AddItem implements [Scene].
func (s *MemScene) AddItem(r Renderable) ItemID {
	return s.addItem(r, "")
}

// RemoveItem implements [Scene].
func (s *MemScene) RemoveItem(id ItemID) {
	delete(s.items, id)
}

// CreateItemGroup implements [Scene].
func (s *MemScene) CreateItemGroup(items []Renderable) GroupID {
	gid := GroupID(uuid.NewString())
	g := &memGroup{visible: true}
	for _, r := range items {
		g.members = append(g.members, s.addItem(r, gid))
	}
	s.groups[gid] = g
	return gid
}

// RemoveGroup implements [Scene].
func (s *MemScene) RemoveGroup(id GroupID) {
	g, ok := s.groups[id]
	if !ok {
		return
	}
	for _, mid := range g.members {
		delete(s.items, mid)
	}
	delete(s.groups, id)
}

// SetVisible implements [Scene].
func (s *MemScene) SetVisible(id ItemID, visible bool) {
	if it, ok := s.items[id]; ok {
		it.visible = visible
	}
}

// SetGroupVisible implements [Scene].
func (s *MemScene) SetGroupVisible(id GroupID, visible bool) {
	if g, ok := s.groups[id]; ok {
		g.visible = visible
	}
}

// SetZ implements [Scene].
func (s *MemScene) SetZ(id ItemID, z float64) {
	if it, ok := s.items[id]; ok {
		it.z = z
	}
}

// SetGroupZ implements [Scene]. A group z-order overrides the z-order of
// every member.
func (s *MemScene) SetGroupZ(id GroupID, z float64) {
	if g, ok := s.groups[id]; ok {
		g.z = z
		g.zSet = true
	}
}

// Len returns the number of installed items, grouped or not.
func (s *MemScene) Len() int {
	return len(s.items)
}

// GroupLen returns the number of members of a group, or 0 for unknown
// handles.
func (s *MemScene) GroupLen(id GroupID) int {
	if g, ok := s.groups[id]; ok {
		return len(g.members)
	}
	return 0
}

// Visible reports whether an item is effectively visible, taking its
// group's visibility into account.
func (s *MemScene) Visible(id ItemID) bool {
	it, ok := s.items[id]
	if !ok {
		return false
	}
	return s.effectiveVisible(it)
}

// GroupVisible reports whether a group is visible.
func (s *MemScene) GroupVisible(id GroupID) bool {
	g, ok := s.groups[id]
	return ok && g.visible
}

// Z returns the effective z-order of an item.
func (s *MemScene) Z(id ItemID) float64 {
	it, ok := s.items[id]
	if !ok {
		return 0
	}
	return s.effectiveZ(it)
}

func (s *MemScene) effectiveVisible(it *memItem) bool {
	if !it.visible {
		return false
	}
	if it.group == "" {
		return true
	}
	g, ok := s.groups[it.group]
	return ok && g.visible
}

func (s *MemScene) effectiveZ(it *memItem) float64 {
	if it.group != "" {
		if g, ok := s.groups[it.group]; ok && g.zSet {
			return g.z
		}
	}
	return it.z
}

// SceneItem is one entry of a scene snapshot.
type SceneItem struct {
	Renderable Renderable
	Z          float64
}

// Snapshot returns the visible items in paint order: ascending z, insertion
// order within equal z.
func (s *MemScene) Snapshot() []SceneItem {
	type entry struct {
		item SceneItem
		seq  int
	}
	entries := make([]entry, 0, len(s.items))
	for _, it := range s.items {
		if !s.effectiveVisible(it) {
			continue
		}
		entries = append(entries, entry{
			item: SceneItem{Renderable: it.r, Z: s.effectiveZ(it)},
			seq:  it.seq,
		})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(a.item.Z, b.item.Z); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	items := make([]SceneItem, len(entries))
	for i, e := range entries {
		items[i] = e.item
	}
	return items
}

// Bounds returns the union of the bounding boxes of all visible items, or
// the zero Rect for an empty scene.
func (s *MemScene) Bounds() Rect {
	var r Rect
	first := true
	for _, it := range s.items {
		if !s.effectiveVisible(it) {
			continue
		}
		if first {
			r = it.r.Bounds()
			first = false
		} else {
			r = r.Union(it.r.Bounds())
		}
	}
	return r
}
