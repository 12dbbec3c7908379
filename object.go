package thicket

// Object is anything that can live in a ContainerState tree. Concrete objects
// embed Node and override the hooks they care about; Node supplies no-op
// defaults for the rest.
type Object interface {
	// OnUpdate runs once per tick, before the object's children are updated.
	OnUpdate()
	// OnRender submits draw state for this frame to r.
	OnRender(r *RendererContainer)
	// OnWakeup delivers the arguments of a popped state to this object.
	OnWakeup(args ...any)
	// OnDestroy runs exactly once when the object leaves the tree, before any
	// of its children's OnDestroy.
	OnDestroy()

	objectNode() *Node
}

// --- ID counter ---

// objectIDCounter is a plain counter (no atomic, thicket is single-threaded).
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// --- Node ---

// Node holds the tree bookkeeping shared by every Object: the destruction
// mark, the owned children in traversal order, and the owner link.
//
// A *Node on its own is also an Object with empty hooks, which is handy for
// grouping.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	parent   *Node
	owned    bool
	children []Object

	// Lifecycle
	destroy   bool
	destroyed bool
}

// NewNode creates a grouping object with no behavior of its own.
func NewNode(name string) *Node {
	return &Node{ID: nextObjectID(), Name: name}
}

func (n *Node) objectNode() *Node { return n }

// OnUpdate does nothing.
func (n *Node) OnUpdate() {}

// OnRender does nothing.
func (n *Node) OnRender(*RendererContainer) {}

// OnWakeup does nothing.
func (n *Node) OnWakeup(...any) {}

// OnDestroy does nothing.
func (n *Node) OnDestroy() {}

// --- Tree manipulation ---

// AddChild appends child to this node's children. It is safe to call from any
// hook, including while this node's own children are being traversed.
// Panics if child is nil, already owned, destroyed, or an ancestor of this
// node (cycle).
func (n *Node) AddChild(child Object) {
	if child == nil {
		panic("thicket: cannot add nil child")
	}
	if globalDebug {
		debugCheckDestroyed(n, "AddChild (parent)")
	}
	c := child.objectNode()
	checkAttachable(c)
	if isAncestor(c, n) {
		panic("thicket: adding child would create a cycle")
	}
	if c.ID == 0 {
		c.ID = nextObjectID()
	}
	c.parent = n
	c.owned = true
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(c)
		debugCheckChildCount(n)
	}
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []Object {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) Object {
	return n.children[index]
}

// Parent returns the owning node, or nil for top-level and detached objects.
func (n *Node) Parent() *Node {
	return n.parent
}

// --- Destruction ---

// MarkForDestruction flags this object for removal. The object and its whole
// subtree are destroyed and unlinked by the next render pass that reaches its
// parent. Update passes skip a marked object but never sweep it.
func (n *Node) MarkForDestruction() {
	n.destroy = true
}

// MarkedForDestruction reports whether MarkForDestruction has been called.
func (n *Node) MarkedForDestruction() bool {
	return n.destroy
}

// IsDestroyed reports whether OnDestroy has already run for this object.
func (n *Node) IsDestroyed() bool {
	return n.destroyed
}

// --- Tree operations ---

// updateTree runs OnUpdate on o and then on every unmarked child. Children
// appended while the pass is running are not visited until the next pass.
func updateTree(o Object) {
	n := o.objectNode()
	if globalDebug {
		debugCheckDestroyed(n, "update")
	}
	children := n.children
	o.OnUpdate()
	for _, child := range children {
		if !child.objectNode().destroy {
			updateTree(child)
		}
	}
}

// renderTree runs OnRender on o and then walks its children with an index
// cursor, sweeping marked ones and rendering the rest. Children appended
// during the walk are reached before it ends.
func renderTree(o Object, r *RendererContainer) {
	n := o.objectNode()
	if globalDebug {
		debugCheckDestroyed(n, "render")
	}
	r.rendered++
	o.OnRender(r)
	sweepOrRender(&n.children, r)
}

// sweepOrRender is the removal-safe walk shared by renderTree and
// ContainerState.Render. The list is re-read on every step so that objects
// appended by hooks during the walk are reached.
func sweepOrRender(list *[]Object, r *RendererContainer) {
	for i := 0; i < len(*list); {
		child := (*list)[i]
		if child.objectNode().destroy {
			*list = removeAt(*list, i)
			destroyTree(child)
			r.swept++
			continue
		}
		renderTree(child, r)
		i++
	}
}

// wakeupTree delivers args to o and every current descendant, pre-order,
// without looking at destruction marks.
func wakeupTree(o Object, args []any) {
	n := o.objectNode()
	if globalDebug {
		debugCheckDestroyed(n, "wakeup")
	}
	o.OnWakeup(args...)
	for _, child := range n.children {
		wakeupTree(child, args)
	}
}

// destroyTree runs OnDestroy on o and then on its whole subtree, pre-order,
// regardless of marks. Each object is destroyed at most once.
func destroyTree(o Object) {
	n := o.objectNode()
	if n.destroyed {
		if globalDebug {
			debugCheckDestroyed(n, "destroy")
		}
		return
	}
	n.destroyed = true
	o.OnDestroy()
	for _, child := range n.children {
		destroyTree(child)
	}
	n.children = nil
	n.parent = nil
}

// --- Helpers ---

// checkAttachable panics if c cannot take a new owner.
func checkAttachable(c *Node) {
	if c.destroyed {
		panic("thicket: cannot add a destroyed object")
	}
	if c.owned {
		panic("thicket: object already has an owner")
	}
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeAt removes list[i] preserving order.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func removeAt(list []Object, i int) []Object {
	copy(list[i:], list[i+1:])
	list[len(list)-1] = nil
	return list[:len(list)-1]
}
