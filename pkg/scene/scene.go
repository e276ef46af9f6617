// Package scene holds a named, ordered collection of shapes produced by
// evaluating a shape script, together with its validation tiers.
//
// A Scene is built once per evaluation and treated as immutable
// afterwards; each evaluation produces a new scene.
package scene

import (
	"errors"
	"fmt"

	"github.com/chazu/planar/pkg/shape"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrDuplicateName is returned by Add when the name is already taken.
var ErrDuplicateName = errors.New("scene: duplicate shape name")

// namespace seeds content-addressed entry IDs.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/chazu/planar/scene"))

// EntryID is a content-addressed identifier derived from an entry's name.
// The same name always yields the same ID across evaluations.
type EntryID uuid.UUID

// NewEntryID returns the ID for name.
func NewEntryID(name string) EntryID {
	return EntryID(uuid.NewSHA1(namespace, []byte(name)))
}

func (id EntryID) String() string {
	return uuid.UUID(id).String()
}

// Short returns the first 8 hex characters, enough for messages.
func (id EntryID) Short() string {
	return id.String()[:8]
}

// IsZero reports whether id is the zero value.
func (id EntryID) IsZero() bool {
	return id == EntryID{}
}

func (id EntryID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *EntryID) UnmarshalText(b []byte) error {
	u, err := uuid.ParseBytes(b)
	if err != nil {
		return fmt.Errorf("scene: entry id: %w", err)
	}
	*id = EntryID(u)
	return nil
}

// SourceRef points back to the script location that defined an entry.
type SourceRef struct {
	Line int `json:"line,omitempty"`
	Col  int `json:"col,omitempty"`
}

// Op selects how an entry combines with the entries before it when the
// scene is composed into a single field.
type Op int

const (
	OpUnion Op = iota
	OpDifference
	OpIntersection
)

func (o Op) String() string {
	switch o {
	case OpUnion:
		return "union"
	case OpDifference:
		return "difference"
	case OpIntersection:
		return "intersection"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// ParseOp accepts "union", "difference" or "intersection".
func ParseOp(s string) (Op, error) {
	switch s {
	case "union":
		return OpUnion, nil
	case "difference":
		return OpDifference, nil
	case "intersection":
		return OpIntersection, nil
	}
	return 0, fmt.Errorf("scene: unknown op %q", s)
}

// Placement is a rigid motion applied to an entry's shape when composed:
// rotation about the origin first, then translation.
type Placement struct {
	Offset   r2.Vec  `json:"offset"`
	Rotation float64 `json:"rotation,omitempty"` // degrees, counter-clockwise
}

// IsIdentity reports whether the placement leaves the shape in place.
func (p Placement) IsIdentity() bool {
	return p.Offset == (r2.Vec{}) && p.Rotation == 0
}

// Entry is one named shape in the scene.
type Entry struct {
	ID        EntryID     `json:"id"`
	Name      string      `json:"name"`
	Shape     shape.Shape `json:"-"`
	Op        Op          `json:"op"`
	Placement Placement   `json:"placement"`
	Source    SourceRef   `json:"source"`
}

// Scene is the top-level collection produced by an evaluation.
type Scene struct {
	Entries   map[EntryID]*Entry `json:"entries"`
	Order     []EntryID          `json:"order"`
	NameIndex map[string]EntryID `json:"name_index"`
	Version   uint64             `json:"version"`
}

// New creates an empty Scene.
func New() *Scene {
	return &Scene{
		Entries:   make(map[EntryID]*Entry),
		NameIndex: make(map[string]EntryID),
	}
}

// Add registers s under name and returns the new entry.
func (sc *Scene) Add(name string, s shape.Shape, src SourceRef) (*Entry, error) {
	if _, ok := sc.NameIndex[name]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	e := &Entry{
		ID:     NewEntryID(name),
		Name:   name,
		Shape:  s,
		Source: src,
	}
	sc.Entries[e.ID] = e
	sc.Order = append(sc.Order, e.ID)
	sc.NameIndex[name] = e.ID
	return e, nil
}

// Lookup returns the entry with the given name, or nil.
func (sc *Scene) Lookup(name string) *Entry {
	id, ok := sc.NameIndex[name]
	if !ok {
		return nil
	}
	return sc.Entries[id]
}

// MustLookup returns the entry with the given name, or panics.
func (sc *Scene) MustLookup(name string) *Entry {
	e := sc.Lookup(name)
	if e == nil {
		panic(fmt.Sprintf("scene: no shape named %q", name))
	}
	return e
}

// Get returns the entry with the given ID, or nil.
func (sc *Scene) Get(id EntryID) *Entry {
	return sc.Entries[id]
}

// Shapes returns the entries in insertion order.
func (sc *Scene) Shapes() []*Entry {
	out := make([]*Entry, 0, len(sc.Order))
	for _, id := range sc.Order {
		if e := sc.Entries[id]; e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of entries.
func (sc *Scene) Len() int {
	return len(sc.Entries)
}
