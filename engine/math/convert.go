package math

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

/**
 * Conversion boundary with host engine types.
 *
 * mgl32 is the native single precision representation; mgl64 is its double
 * twin and r3 (gonum) the second ecosystem. The XFromMgl32 / XFromMgl64 /
 * XFromR3 functions are widening for the float64 tier and always safe. ToMgl32
 * narrows and loses precision on the float64 tier. ToMgl64 and ToR3 never lose
 * precision.
 */

func Vector2FromMgl32[T Real](v mgl32.Vec2) Vector2[T] {
	return Vector2[T]{T(v[0]), T(v[1])}
}

func Vector2FromMgl64[T Real](v mgl64.Vec2) Vector2[T] {
	return Vector2[T]{T(v[0]), T(v[1])}
}

func (v Vector2[T]) ToMgl32() mgl32.Vec2 {
	return mgl32.Vec2{float32(v.X), float32(v.Y)}
}

func (v Vector2[T]) ToMgl64() mgl64.Vec2 {
	return mgl64.Vec2{float64(v.X), float64(v.Y)}
}

func Vector3FromMgl32[T Real](v mgl32.Vec3) Vector3[T] {
	return Vector3[T]{T(v[0]), T(v[1]), T(v[2])}
}

func Vector3FromMgl64[T Real](v mgl64.Vec3) Vector3[T] {
	return Vector3[T]{T(v[0]), T(v[1]), T(v[2])}
}

func (v Vector3[T]) ToMgl32() mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (v Vector3[T]) ToMgl64() mgl64.Vec3 {
	return mgl64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)}
}

func Vector3FromR3[T Real](v r3.Vec) Vector3[T] {
	return Vector3[T]{T(v.X), T(v.Y), T(v.Z)}
}

func (v Vector3[T]) ToR3() r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func Vector4FromMgl32[T Real](v mgl32.Vec4) Vector4[T] {
	return Vector4[T]{T(v[0]), T(v[1]), T(v[2]), T(v[3])}
}

func Vector4FromMgl64[T Real](v mgl64.Vec4) Vector4[T] {
	return Vector4[T]{T(v[0]), T(v[1]), T(v[2]), T(v[3])}
}

func (v Vector4[T]) ToMgl32() mgl32.Vec4 {
	return mgl32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

func (v Vector4[T]) ToMgl64() mgl64.Vec4 {
	return mgl64.Vec4{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)}
}

func QuaternionFromMgl32[T Real](q mgl32.Quat) Quaternion[T] {
	return Quaternion[T]{T(q.V[0]), T(q.V[1]), T(q.V[2]), T(q.W)}
}

func QuaternionFromMgl64[T Real](q mgl64.Quat) Quaternion[T] {
	return Quaternion[T]{T(q.V[0]), T(q.V[1]), T(q.V[2]), T(q.W)}
}

func (q Quaternion[T]) ToMgl32() mgl32.Quat {
	return mgl32.Quat{W: float32(q.W), V: mgl32.Vec3{float32(q.X), float32(q.Y), float32(q.Z)}}
}

func (q Quaternion[T]) ToMgl64() mgl64.Quat {
	return mgl64.Quat{W: float64(q.W), V: mgl64.Vec3{float64(q.X), float64(q.Y), float64(q.Z)}}
}

// BasisFromMgl32 reads a column-major mgl32 matrix.
func BasisFromMgl32[T Real](mat mgl32.Mat3) Basis[T] {
	return NewBasis(
		Vector3FromMgl32[T](mat.Col(0)),
		Vector3FromMgl32[T](mat.Col(1)),
		Vector3FromMgl32[T](mat.Col(2)))
}

func BasisFromMgl64[T Real](mat mgl64.Mat3) Basis[T] {
	return NewBasis(
		Vector3FromMgl64[T](mat.Col(0)),
		Vector3FromMgl64[T](mat.Col(1)),
		Vector3FromMgl64[T](mat.Col(2)))
}

func (b Basis[T]) ToMgl32() mgl32.Mat3 {
	return mgl32.Mat3FromCols(b.X().ToMgl32(), b.Y().ToMgl32(), b.Z().ToMgl32())
}

func (b Basis[T]) ToMgl64() mgl64.Mat3 {
	return mgl64.Mat3FromCols(b.X().ToMgl64(), b.Y().ToMgl64(), b.Z().ToMgl64())
}

// TransformFromMgl32 takes the upper 3x3 block and the translation column of
// an affine mgl32 matrix. The bottom row is ignored.
func TransformFromMgl32[T Real](mat mgl32.Mat4) Transform[T] {
	return NewTransformFromColumns(
		Vector3FromMgl32[T](mat.Col(0).Vec3()),
		Vector3FromMgl32[T](mat.Col(1).Vec3()),
		Vector3FromMgl32[T](mat.Col(2).Vec3()),
		Vector3FromMgl32[T](mat.Col(3).Vec3()))
}

func TransformFromMgl64[T Real](mat mgl64.Mat4) Transform[T] {
	return NewTransformFromColumns(
		Vector3FromMgl64[T](mat.Col(0).Vec3()),
		Vector3FromMgl64[T](mat.Col(1).Vec3()),
		Vector3FromMgl64[T](mat.Col(2).Vec3()),
		Vector3FromMgl64[T](mat.Col(3).Vec3()))
}

func (t Transform[T]) ToMgl32() mgl32.Mat4 {
	return mgl32.Mat4FromCols(
		t.Basis.X().ToMgl32().Vec4(0),
		t.Basis.Y().ToMgl32().Vec4(0),
		t.Basis.Z().ToMgl32().Vec4(0),
		t.Origin.ToMgl32().Vec4(1))
}

func (t Transform[T]) ToMgl64() mgl64.Mat4 {
	return mgl64.Mat4FromCols(
		t.Basis.X().ToMgl64().Vec4(0),
		t.Basis.Y().ToMgl64().Vec4(0),
		t.Basis.Z().ToMgl64().Vec4(0),
		t.Origin.ToMgl64().Vec4(1))
}

func AABBFromR3Box[T Real](box r3.Box) AABB[T] {
	position := Vector3FromR3[T](box.Min)
	return AABB[T]{Position: position, Size: Vector3FromR3[T](box.Max).Sub(position)}
}

// ToR3Box canonicalizes negative sizes, since r3.Box expects Min <= Max.
func (b AABB[T]) ToR3Box() r3.Box {
	abs := b.Abs()
	return r3.Box{Min: abs.Position.ToR3(), Max: abs.End().ToR3()}
}

/**
 * Integer vectors. Narrowing from floating point rounds half away from zero;
 * it does not truncate.
 */

func Vector2iFrom[T Real](v Vector2[T]) Vector2i {
	return Vector2i{int(Round(v.X)), int(Round(v.Y))}
}

func Vector2FromInt[T Real](v Vector2i) Vector2[T] {
	return Vector2[T]{T(v.X), T(v.Y)}
}

func Vector3iFrom[T Real](v Vector3[T]) Vector3i {
	return Vector3i{int(Round(v.X)), int(Round(v.Y)), int(Round(v.Z))}
}

func Vector3FromInt[T Real](v Vector3i) Vector3[T] {
	return Vector3[T]{T(v.X), T(v.Y), T(v.Z)}
}

func Vector3iFromMgl32(v mgl32.Vec3) Vector3i {
	return Vector3iFrom(Vector3FromMgl32[float32](v))
}

func (v Vector2i) ToMgl32() mgl32.Vec2 {
	return mgl32.Vec2{float32(v.X), float32(v.Y)}
}

func (v Vector3i) ToMgl32() mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}

func (v Vector3i) ToR3() r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

/**
 * Precision tiers. Widen* is lossless, Narrow* rounds to the nearest float32.
 */

func convertVector2[To, From Real](v Vector2[From]) Vector2[To] {
	return Vector2[To]{To(v.X), To(v.Y)}
}

func convertVector3[To, From Real](v Vector3[From]) Vector3[To] {
	return Vector3[To]{To(v.X), To(v.Y), To(v.Z)}
}

func convertBasis[To, From Real](b Basis[From]) Basis[To] {
	return Basis[To]{convertVector3[To](b.Row0), convertVector3[To](b.Row1), convertVector3[To](b.Row2)}
}

func WidenVector2(v Vector2f) Vector2d { return convertVector2[float64](v) }
func NarrowVector2(v Vector2d) Vector2f { return convertVector2[float32](v) }

func WidenVector3(v Vector3f) Vector3d { return convertVector3[float64](v) }
func NarrowVector3(v Vector3d) Vector3f { return convertVector3[float32](v) }

func WidenVector4(v Vector4f) Vector4d {
	return Vector4d{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)}
}

func NarrowVector4(v Vector4d) Vector4f {
	return Vector4f{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

func WidenQuaternion(q Quaternionf) Quaterniond {
	return Quaterniond{float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)}
}

func NarrowQuaternion(q Quaterniond) Quaternionf {
	return Quaternionf{float32(q.X), float32(q.Y), float32(q.Z), float32(q.W)}
}

func WidenBasis(b Basisf) Basisd { return convertBasis[float64](b) }
func NarrowBasis(b Basisd) Basisf { return convertBasis[float32](b) }

func WidenTransform(t Transformf) Transformd {
	return Transformd{Basis: WidenBasis(t.Basis), Origin: WidenVector3(t.Origin)}
}

func NarrowTransform(t Transformd) Transformf {
	return Transformf{Basis: NarrowBasis(t.Basis), Origin: NarrowVector3(t.Origin)}
}

func WidenTransform2D(t Transform2Df) Transform2Dd {
	return Transform2Dd{X: WidenVector2(t.X), Y: WidenVector2(t.Y), Origin: WidenVector2(t.Origin)}
}

func NarrowTransform2D(t Transform2Dd) Transform2Df {
	return Transform2Df{X: NarrowVector2(t.X), Y: NarrowVector2(t.Y), Origin: NarrowVector2(t.Origin)}
}

func WidenPlane(p Planef) Planed { return Planed{Normal: WidenVector3(p.Normal), D: float64(p.D)} }
func NarrowPlane(p Planed) Planef { return Planef{Normal: NarrowVector3(p.Normal), D: float32(p.D)} }
func WidenAABB(b AABBf) AABBd { return AABBd{Position: WidenVector3(b.Position), Size: WidenVector3(b.Size)} }
func NarrowAABB(b AABBd) AABBf { return AABBf{Position: NarrowVector3(b.Position), Size: NarrowVector3(b.Size)} }
func WidenRect2(r Rect2f) Rect2d { return Rect2d{Position: WidenVector2(r.Position), Size: WidenVector2(r.Size)} }
func NarrowRect2(r Rect2d) Rect2f { return Rect2f{Position: NarrowVector2(r.Position), Size: NarrowVector2(r.Size)} }
