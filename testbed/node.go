package testbed

import (
	"github.com/spaghettifunk/extramath/engine/math"
)

// Node is a position/rotation/scale triple with an optional parent. The local
// transform is rebuilt lazily after a setter marks the node dirty.
type Node[T math.Real] struct {
	Name     string
	Position math.Vector3[T]
	Rotation math.Quaternion[T]
	Scale    math.Vector3[T]
	Parent   *Node[T]

	local   math.Transform[T]
	isDirty bool
}

func NewNode[T math.Real](name string) *Node[T] {
	n := &Node[T]{Name: name}
	n.SetPositionRotationScale(math.Vector3Zero[T](), math.QuaternionIdentity[T](), math.Vector3One[T]())
	return n
}

func (n *Node[T]) SetPosition(position math.Vector3[T]) {
	n.Position = position
	n.isDirty = true
}

func (n *Node[T]) Translate(translation math.Vector3[T]) {
	n.Position = n.Position.Add(translation)
	n.isDirty = true
}

func (n *Node[T]) SetRotation(rotation math.Quaternion[T]) {
	n.Rotation = rotation
	n.isDirty = true
}

// Rotate applies rotation after the current one, in local space.
func (n *Node[T]) Rotate(rotation math.Quaternion[T]) {
	n.Rotation = n.Rotation.Mul(rotation).Normalized()
	n.isDirty = true
}

func (n *Node[T]) SetScale(scale math.Vector3[T]) {
	n.Scale = scale
	n.isDirty = true
}

func (n *Node[T]) SetPositionRotationScale(position math.Vector3[T], rotation math.Quaternion[T], scale math.Vector3[T]) {
	n.Position = position
	n.Rotation = rotation
	n.Scale = scale
	n.isDirty = true
}

// SetTransform decomposes t into position, rotation and scale. Shear is lost.
func (n *Node[T]) SetTransform(t math.Transform[T]) {
	n.SetPositionRotationScale(t.Origin, t.Basis.RotationQuat(), t.Basis.Scale())
}

// LookAt turns the node so -Z points at target, expressed in parent space.
// It reports false and leaves the rotation alone when target sits on the
// node or the view direction is parallel to up.
func (n *Node[T]) LookAt(target, up math.Vector3[T]) bool {
	dir := target.Sub(n.Position)
	if math.IsZeroApprox(dir.LengthSquared()) || math.IsZeroApprox(dir.Cross(up).LengthSquared()) {
		return false
	}
	t := math.NewTransform(math.BasisIdentity[T](), n.Position).LookingAt(target, up)
	n.Rotation = t.Basis.RotationQuat()
	n.isDirty = true
	return true
}

// GetLocal returns T·R·S relative to the parent.
func (n *Node[T]) GetLocal() math.Transform[T] {
	if n == nil {
		return math.TransformIdentity[T]()
	}
	if n.isDirty {
		n.local = math.NewTransform(math.NewBasisFromQuaternionScale(n.Rotation, n.Scale), n.Position)
		n.isDirty = false
	}
	return n.local
}

// GetWorld composes the parent chain: parent world * local.
func (n *Node[T]) GetWorld() math.Transform[T] {
	if n == nil {
		return math.TransformIdentity[T]()
	}
	l := n.GetLocal()
	if n.Parent != nil {
		return n.Parent.GetWorld().Mul(l)
	}
	return l
}

// Depth is the number of ancestors.
func (n *Node[T]) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}
