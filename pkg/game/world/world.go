// Package world provides the static scene-object registry and its
// hit-testing queries. The registry is built once at startup and is
// read-only afterwards, so collision, rendering, and input routing read
// it freely without coordination.
package world

import (
	"github.com/Megaman222111/gift/pkg/engine/geom"
)

// Kind selects one of a closed set of object behaviors. It is resolved
// once at registry construction time; nothing dispatches on ID strings
// at runtime.
type Kind int

const (
	// KindProp triggers a dialogue when activated.
	KindProp Kind = iota
	// KindPoemBook opens the poem reader.
	KindPoemBook
	// KindArcade opens the mini-game arcade.
	KindArcade
	// KindAlbum runs an outbound-link side effect (album shelf).
	KindAlbum
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindProp:
		return "prop"
	case KindPoemBook:
		return "poem-book"
	case KindArcade:
		return "arcade"
	case KindAlbum:
		return "album"
	default:
		return "unknown"
	}
}

// DialogueFunc produces the dialogue shown when an object is activated.
// visits is the number of times the object has been activated before, so
// producers can cycle through alternate lines on revisits.
type DialogueFunc func(visits int) (title string, text string)

// Object is an entity in the room. Objects never own each other's
// rectangles; everything is compared by overlap of value copies.
type Object struct {
	ID     string
	Kind   Kind
	Rect   geom.Rect
	Solid  bool // participates in player collision
	Z      int  // draw order hint for the renderer
	Sprite string

	// Dialogue produces the text shown on activation. Required for
	// KindProp, optional decoration for the other kinds.
	Dialogue DialogueFunc

	// SideEffect runs on activation of KindAlbum objects (opening an
	// outbound link). The implementation is injected at setup; the
	// registry treats it as opaque.
	SideEffect func()
}

// Registry holds the room's objects in registration order. Later
// registrations are drawn on top and therefore win click hit-tests.
type Registry struct {
	objects []*Object
	solids  []*Object
}

// NewRegistry builds a registry from the given objects. The slice is
// copied; the registry never mutates after construction.
func NewRegistry(objects []*Object) *Registry {
	r := &Registry{objects: make([]*Object, len(objects))}
	copy(r.objects, objects)
	for _, o := range r.objects {
		if o.Solid {
			r.solids = append(r.solids, o)
		}
	}
	return r
}

// Objects returns all objects in registration order. Callers must not
// modify the returned slice.
func (r *Registry) Objects() []*Object {
	return r.objects
}

// Solids returns the objects that participate in player collision.
func (r *Registry) Solids() []*Object {
	return r.solids
}

// ObjectAt returns the topmost object whose rectangle contains the
// point, scanning in reverse registration order, or nil.
func (r *Registry) ObjectAt(x, y float64) *Object {
	for i := len(r.objects) - 1; i >= 0; i-- {
		if r.objects[i].Rect.Contains(x, y) {
			return r.objects[i]
		}
	}
	return nil
}

// NearestInteractable returns the object closest to the player among
// those overlapping the player's rectangle expanded by margin, or nil.
// Distance is center-to-center Euclidean; ties break by registration
// order.
func (r *Registry) NearestInteractable(player geom.Rect, margin float64) *Object {
	reach := player.Expand(margin)
	center := player.Center()

	var best *Object
	bestDist := 0.0
	for _, o := range r.objects {
		if !reach.Overlaps(o.Rect) {
			continue
		}
		d := center.DistanceTo(o.Rect.Center())
		if best == nil || d < bestDist {
			best = o
			bestDist = d
		}
	}
	return best
}
