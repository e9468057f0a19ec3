package rowan

// Flags is a per-node set of boolean facts packed into one word so the hot
// paths can test several of them with a single AND.
type Flags uint32

const (
	// FlagInvalidMatrix marks the cached concatenated matrix stale.
	// Propagates downward: a parent transform change invalidates all
	// descendants.
	FlagInvalidMatrix Flags = 1 << iota

	// FlagInvalidTint marks the cached concatenated tint stale.
	// Propagates downward like FlagInvalidMatrix.
	FlagInvalidTint

	// FlagInvalidBounds marks both cached bounds variants stale.
	// Propagates upward: a child's content change invalidates every
	// ancestor, since a parent's bounds are the union of its children's.
	FlagInvalidBounds

	// FlagVisible is the node's visibility bit. Not a cache guard.
	FlagVisible

	// FlagConstructed is set once construction has completed.
	FlagConstructed

	// FlagDestroyed is set when the node is permanently removed from the
	// scene. No further mutation is expected.
	FlagDestroyed

	// FlagTimelineOwned marks a node whose lifecycle is controlled by an
	// external animation driver rather than user code.
	FlagTimelineOwned

	// FlagTimelineAnimated permits further timeline mutation. Cleared
	// permanently by the first user-initiated mutation.
	FlagTimelineAnimated
)

// flagsAllInvalid is the dirty state of a freshly constructed node.
const flagsAllInvalid = FlagInvalidMatrix | FlagInvalidTint | FlagInvalidBounds

// Set turns the given flags on.
func (f *Flags) Set(flags Flags) {
	*f |= flags
}

// Clear turns the given flags off.
func (f *Flags) Clear(flags Flags) {
	*f &^= flags
}

// Toggle turns the given flags on or off.
func (f *Flags) Toggle(flags Flags, on bool) {
	if on {
		*f |= flags
	} else {
		*f &^= flags
	}
}

// HasAll reports whether every one of the given flags is set.
func (f Flags) HasAll(flags Flags) bool {
	return f&flags == flags
}

// HasAny reports whether at least one of the given flags is set.
func (f Flags) HasAny(flags Flags) bool {
	return f&flags != 0
}
