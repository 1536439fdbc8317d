package world

import (
	"testing"

	"github.com/Megaman222111/gift/pkg/engine/geom"
)

func testRegistry() *Registry {
	return NewRegistry([]*Object{
		{ID: "rug", Rect: geom.NewRect(0, 0, 100, 100)},
		{ID: "desk", Rect: geom.NewRect(10, 10, 30, 20), Solid: true},
		{ID: "lamp", Rect: geom.NewRect(20, 10, 10, 10)},
	})
}

func TestObjectAtTopmostWins(t *testing.T) {
	r := testRegistry()
	// (25, 15) is inside rug, desk, and lamp; lamp registered last.
	o := r.ObjectAt(25, 15)
	if o == nil || o.ID != "lamp" {
		t.Fatalf("ObjectAt = %v, want lamp", o)
	}
	// (12, 12) is inside rug and desk only.
	o = r.ObjectAt(12, 12)
	if o == nil || o.ID != "desk" {
		t.Fatalf("ObjectAt = %v, want desk", o)
	}
}

func TestObjectAtMiss(t *testing.T) {
	r := testRegistry()
	if o := r.ObjectAt(500, 500); o != nil {
		t.Errorf("ObjectAt outside all rects = %v, want nil", o)
	}
}

func TestSolidsFiltered(t *testing.T) {
	r := testRegistry()
	solids := r.Solids()
	if len(solids) != 1 || solids[0].ID != "desk" {
		t.Fatalf("Solids() = %v, want [desk]", solids)
	}
}

func TestNearestInteractablePicksClosestCenter(t *testing.T) {
	r := NewRegistry([]*Object{
		{ID: "far", Rect: geom.NewRect(40, 0, 10, 10)},
		{ID: "near", Rect: geom.NewRect(22, 0, 10, 10)},
	})
	player := geom.NewRect(0, 0, 16, 16)
	o := r.NearestInteractable(player, 12)
	if o == nil || o.ID != "near" {
		t.Fatalf("NearestInteractable = %v, want near", o)
	}
}

func TestNearestInteractableOutOfReach(t *testing.T) {
	r := NewRegistry([]*Object{
		{ID: "far", Rect: geom.NewRect(100, 100, 10, 10)},
	})
	player := geom.NewRect(0, 0, 16, 16)
	if o := r.NearestInteractable(player, 8); o != nil {
		t.Errorf("NearestInteractable = %v, want nil", o)
	}
}

func TestNearestInteractableTieBreaksByRegistrationOrder(t *testing.T) {
	// Two objects mirrored around the player center, equidistant.
	r := NewRegistry([]*Object{
		{ID: "first", Rect: geom.NewRect(20, 0, 10, 16)},
		{ID: "second", Rect: geom.NewRect(-14, 0, 10, 16)},
	})
	player := geom.NewRect(0, 0, 16, 16)
	o := r.NearestInteractable(player, 20)
	if o == nil || o.ID != "first" {
		t.Fatalf("NearestInteractable = %v, want first (registration order)", o)
	}
}

func TestRegistryCopiesInput(t *testing.T) {
	objs := []*Object{{ID: "a", Rect: geom.NewRect(0, 0, 1, 1)}}
	r := NewRegistry(objs)
	objs[0] = &Object{ID: "b"}
	if r.Objects()[0].ID != "a" {
		t.Error("registry should not alias the caller's slice")
	}
}
