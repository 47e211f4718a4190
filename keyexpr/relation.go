package keyexpr

// SetIntersectionLevel is the ordered relation between the key sets of two
// key expressions: Disjoint < Intersects < Includes < Equals.
//
// Equals implies Includes, which implies Intersects. Check for intersection
// with level >= Intersects and for inclusion with level >= Includes.
type SetIntersectionLevel int

const (
	// Disjoint: the two sets share no key.
	Disjoint SetIntersectionLevel = iota

	// Intersects: the two sets share at least one key.
	Intersects

	// Includes: the first set contains every key of the second.
	Includes

	// Equals: the two sets are the same set.
	Equals
)

// String returns the level name.
func (l SetIntersectionLevel) String() string {
	switch l {
	case Disjoint:
		return "Disjoint"
	case Intersects:
		return "Intersects"
	case Includes:
		return "Includes"
	case Equals:
		return "Equals"
	default:
		return "Unknown"
	}
}
