package life

// Pattern is a named stamp: a list of live-cell offsets relative to an
// anchor at (0, 0). Offsets are normalized so the bounding box starts at the
// anchor.
type Pattern struct {
	Name    string
	Offsets []Point
}

// Size returns the number of cells the pattern stamps.
func (p Pattern) Size() int { return len(p.Offsets) }

// Bounds returns the inclusive bounding rectangle of the offsets. The zero
// Rect is returned for an empty pattern.
func (p Pattern) Bounds() Rect {
	var r Rect
	for i, o := range p.Offsets {
		if i == 0 {
			r = Rect{Min: o, Max: o}
			continue
		}
		if o.X < r.Min.X {
			r.Min.X = o.X
		}
		if o.X > r.Max.X {
			r.Max.X = o.X
		}
		if o.Y < r.Min.Y {
			r.Min.Y = o.Y
		}
		if o.Y > r.Max.Y {
			r.Max.Y = o.Y
		}
	}
	return r
}

var (
	patterns     = map[string]Pattern{}
	patternOrder []string
)

// Register adds a pattern to the catalog under its name. Empty names and
// empty offset lists are ignored; re-registering a name replaces the entry
// but keeps its position in the catalog order.
func Register(p Pattern) {
	if p.Name == "" || len(p.Offsets) == 0 {
		return
	}
	if _, exists := patterns[p.Name]; !exists {
		patternOrder = append(patternOrder, p.Name)
	}
	patterns[p.Name] = p
}

// Lookup returns the catalog pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Names lists the catalog pattern names in registration order.
func Names() []string {
	return append([]string(nil), patternOrder...)
}
