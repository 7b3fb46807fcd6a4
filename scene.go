package isologo

// Node is an element of the scene graph: a *SceneModel, *Shape or *Corner.
type Node interface {
	isNode()
}

// SceneModel is a scene graph node with its own local transform.
//
// Transforms compose lazily: Transform only touches Xform, and
// EachRenderable multiplies the ancestors' current transforms at traversal
// time. Animating a node's Xform is therefore enough to move its subtree
// on the next frame without rebuilding the tree.
type SceneModel struct {
	Children []Node
	Xform    *Matrix
}

// NewSceneModel creates a node with an identity transform.
func NewSceneModel(children ...Node) *SceneModel {
	return &SceneModel{Children: children, Xform: NewMatrix()}
}

// Group is an alias for NewSceneModel that reads better when nesting.
func Group(children ...Node) *SceneModel {
	return NewSceneModel(children...)
}

// Add appends children to the node.
func (s *SceneModel) Add(children ...Node) *SceneModel {
	s.Children = append(s.Children, children...)
	return s
}

// Transform composes m into the node's local transform.
func (s *SceneModel) Transform(m *Matrix) *SceneModel {
	s.Xform.Multiply(m)
	return s
}

// EachRenderable walks the subtree depth-first, pre-order, and calls fn for
// every Shape and Corner with its effective transform: the node's own Xform
// followed by parent. The matrix passed to fn is freshly allocated per node
// and may be retained.
func (s *SceneModel) EachRenderable(parent *Matrix, fn func(n Node, m *Matrix)) {
	composed := s.Xform.Copy().Multiply(parent)
	for _, child := range s.Children {
		switch c := child.(type) {
		case *SceneModel:
			c.EachRenderable(composed, fn)
		default:
			fn(c, composed)
		}
	}
}

func (*SceneModel) isNode() {}
