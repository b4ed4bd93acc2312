package core

// =============================================================================
// Class
// =============================================================================

// Class is the capability marker of an element domain. It decides whether
// extremal queries can be answered arithmetically instead of by enumeration.
type Class int

// Domain classes.
const (
	// ClassGeneric domains have no arithmetic fast path.
	ClassGeneric Class = iota
	// ClassInteger domains are numeric and discrete; an exclusive upper
	// bound can be stepped down by one.
	ClassInteger
	// ClassFloat domains are numeric but not discrete.
	ClassFloat
)

// String returns the string representation of the class.
func (c Class) String() string {
	switch c {
	case ClassGeneric:
		return "generic"
	case ClassInteger:
		return "integer"
	case ClassFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Numeric reports whether the class is eligible for the numeric fast path.
func (c Class) Numeric() bool {
	return c == ClassInteger || c == ClassFloat
}

// =============================================================================
// Domain
// =============================================================================

// Comparator orders two elements: negative when a sorts before b, zero when
// they are equal, positive when a sorts after b.
type Comparator[T any] func(a, b T) int

// Domain describes the ordered set interval elements are drawn from.
// Compare must be a total order over every value of T the caller uses.
type Domain[T any] interface {
	// Name identifies the domain in messages, e.g. "int64".
	Name() string
	// Class is the domain's fast-path capability.
	Class() Class
	// Compare is the natural order of the domain.
	Compare(a, b T) int
	// Succ returns the value following v. It reports false when v has no
	// successor, either because the domain is not discrete or because v is
	// the largest representable value.
	Succ(v T) (T, bool)
	// Pred returns the value preceding v, reporting false like Succ.
	Pred(v T) (T, bool)
}
