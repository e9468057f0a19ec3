package rowan

import (
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene owns the node tree and the registry of all live nodes. The registry
// exists so external per-frame systems (such as a Timeline) can enumerate
// live nodes; the invalidation engine itself never consults it. Registry
// entries are added by the factory constructors and removed by Destroy.
type Scene struct {
	root  *Node
	nodes map[uint32]*Node
}

// NewScene creates a scene with a pre-created root container.
func NewScene() *Scene {
	s := &Scene{nodes: make(map[uint32]*Node)}
	s.root = s.NewContainer("root")
	return s
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// newNode is the single construction path: flags defaulted, caches seeded
// with identities, registry entry added.
func (s *Scene) newNode(name string, role Role, content Content) *Node {
	n := &Node{
		ID:           nextNodeID(),
		Name:         name,
		Role:         role,
		local:        identityMatrix,
		scaleX:       1,
		scaleY:       1,
		tint:         identityTint,
		content:      content,
		concatMatrix: identityMatrix,
		concatTint:   identityTint,
		scene:        s,
	}
	if n.Name == "" {
		n.Name = "node-" + uuid.NewString()
	}
	n.flags = flagsAllInvalid | FlagVisible | FlagConstructed
	s.nodes[n.ID] = n
	return n
}

// NewContainer creates a container node with no content of its own.
// An empty name is replaced with a generated unique one.
func (s *Scene) NewContainer(name string) *Node {
	return s.newNode(name, RoleContainer, nil)
}

// NewShape creates a leaf drawable node with explicit geometry.
func (s *Scene) NewShape(name string, content ShapeContent) *Node {
	return s.newNode(name, RoleShape, content)
}

// NewSprite creates a leaf drawable node backed by an ebiten image.
func (s *Scene) NewSprite(name string, img *ebiten.Image) *Node {
	return s.newNode(name, RoleSprite, ImageContent{Image: img})
}

// Instantiate creates a node seeded from a symbol template. The template's
// matrix, tint, bounds, clip depth, and timeline-ownership flags are
// consumed once, at construction.
func (s *Scene) Instantiate(sym Symbol) *Node {
	n := s.newNode(sym.Name, sym.Role, sym.Content)
	if sym.Matrix != (Matrix{}) {
		n.local = sym.Matrix
		_, _, n.scaleX, n.scaleY, n.rotation = sym.Matrix.decompose()
	}
	if sym.Tint != (ColorTransform{}) {
		n.tint = sym.Tint
	}
	if !sym.Bounds.Empty() {
		// Pre-validated bounds: the template already knows its extent.
		n.fillBounds = sym.Bounds
		n.strokeBounds = sym.Bounds.Union(sym.StrokeBounds)
		n.flags.Clear(FlagInvalidBounds)
	}
	n.clipDepth = sym.ClipDepth
	if sym.TimelineOwned {
		n.flags.Set(FlagTimelineOwned | FlagTimelineAnimated)
	}
	return n
}

// Node returns the live node with the given ID, or nil.
func (s *Scene) Node(id uint32) *Node {
	return s.nodes[id]
}

// Len returns the number of live nodes, the root included.
func (s *Scene) Len() int {
	return len(s.nodes)
}

// Each calls fn for every live node until fn returns false.
// Enumeration order is unspecified.
func (s *Scene) Each(fn func(*Node) bool) {
	for _, n := range s.nodes {
		if !fn(n) {
			return
		}
	}
}

// SetDebugMode enables or disables debug mode. When enabled, destroyed-node
// use in tree operations panics and tree depth warnings are printed to
// stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// globalDebug holds the debug mode so that node operations (which lack a
// Scene pointer on every path) can check it cheaply. Only valid with a
// single Scene; multiple Scenes with differing debug modes will reflect
// whichever called SetDebugMode last.
var globalDebug bool
