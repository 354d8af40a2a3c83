package testbed

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/spaghettifunk/extramath/engine/core"
	"github.com/spaghettifunk/extramath/engine/math"
)

// NodeReport is the resolved world placement of one node.
type NodeReport struct {
	Name        string     `toml:"name" yaml:"name"`
	Parent      string     `toml:"parent,omitempty" yaml:"parent,omitempty"`
	Origin      [3]float64 `toml:"origin" yaml:"origin"`
	EulerDeg    [3]float64 `toml:"euler_degrees" yaml:"euler_degrees"`
	Scale       [3]float64 `toml:"scale" yaml:"scale"`
	Determinant float64    `toml:"determinant" yaml:"determinant"`
	Orthogonal  int        `toml:"orthogonal_index" yaml:"orthogonal_index"`
}

// QueryReport is the outcome of one query. Err is set instead of the values
// when the query could not be answered, e.g. a singular basis.
type QueryReport struct {
	Name     string     `toml:"name" yaml:"name"`
	Kind     QueryKind  `toml:"kind" yaml:"kind"`
	Origin   [3]float64 `toml:"origin,omitempty" yaml:"origin,omitempty"`
	EulerDeg [3]float64 `toml:"euler_degrees,omitempty" yaml:"euler_degrees,omitempty"`
	Value    float64    `toml:"value,omitempty" yaml:"value,omitempty"`
	Err      string     `toml:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the result of evaluating a rig once.
type Report struct {
	RunID     string        `toml:"run_id" yaml:"run_id"`
	Rig       string        `toml:"rig" yaml:"rig"`
	Precision Precision     `toml:"precision" yaml:"precision"`
	Nodes     []NodeReport  `toml:"node" yaml:"nodes"`
	Queries   []QueryReport `toml:"query" yaml:"queries"`
	BoundsMin [3]float64    `toml:"bounds_min" yaml:"bounds_min"`
	BoundsMax [3]float64    `toml:"bounds_max" yaml:"bounds_max"`
	Elapsed   time.Duration `toml:"elapsed" yaml:"elapsed"`
}

// Evaluate resolves every node of the rig to world space and answers its
// queries at the precision the rig asks for.
func Evaluate(cfg *Config) (*Report, error) {
	clock := core.NewClock()
	clock.Start()

	var (
		report *Report
		err    error
	)
	switch cfg.Precision {
	case PrecisionDouble:
		report, err = evaluate[float64](cfg)
	case PrecisionSingle, "":
		report, err = evaluate[float32](cfg)
	default:
		err = invalid("unknown precision %q", cfg.Precision)
	}
	if err != nil {
		return nil, err
	}

	clock.Update()
	clock.Stop()
	report.Elapsed = clock.Elapsed()
	core.MetricsUpdate(report.Elapsed)

	core.LogDebug("rig %s evaluated in %s (run %s)", report.Rig, report.Elapsed, report.RunID)
	return report, nil
}

// BuildNodes turns the configuration into a linked hierarchy. The map is
// keyed by node name.
func BuildNodes[T math.Real](cfg *Config) (map[string]*Node[T], error) {
	nodes := make(map[string]*Node[T], len(cfg.Nodes))
	for _, nc := range cfg.Nodes {
		n := NewNode[T](nc.Name)
		if nc.Position != nil {
			n.SetPosition(vec3[T](nc.Position))
		}
		switch {
		case nc.Rotation != nil:
			euler := vec3[T](nc.Rotation).MulScalar(math.K_DEG2RAD_MULTIPLIER)
			n.SetRotation(math.NewQuaternionFromEuler(euler))
		case nc.Quaternion != nil:
			q := math.NewQuaternion(T(nc.Quaternion[0]), T(nc.Quaternion[1]), T(nc.Quaternion[2]), T(nc.Quaternion[3]))
			if q.LengthSquared() == 0 {
				return nil, invalid("node %q: zero quaternion", nc.Name)
			}
			n.SetRotation(q.Normalized())
		}
		if nc.Scale != nil {
			n.SetScale(vec3[T](nc.Scale))
		}
		if nc.LookAt != nil {
			up := math.Vector3Up[T]()
			if nc.LookAt.Up != nil {
				up = vec3[T](nc.LookAt.Up)
			}
			if !n.LookAt(vec3[T](nc.LookAt.Target), up) {
				return nil, invalid("node %q: look_at target coincides with the node or lies along up", nc.Name)
			}
		}
		nodes[nc.Name] = n
	}

	for _, nc := range cfg.Nodes {
		if nc.Parent == "" {
			continue
		}
		parent, ok := nodes[nc.Parent]
		if !ok {
			return nil, invalid("node %q has unknown parent %q", nc.Name, nc.Parent)
		}
		nodes[nc.Name].Parent = parent
	}
	return nodes, nil
}

func evaluate[T math.Real](cfg *Config) (*Report, error) {
	nodes, err := BuildNodes[T](cfg)
	if err != nil {
		return nil, err
	}

	report := &Report{
		RunID:     uuid.NewString(),
		Rig:       cfg.Name,
		Precision: cfg.Precision,
	}

	origins := make([]math.Vector3[T], 0, len(cfg.Nodes))
	for _, nc := range cfg.Nodes {
		world := nodes[nc.Name].GetWorld()
		origins = append(origins, world.Origin)
		report.Nodes = append(report.Nodes, NodeReport{
			Name:        nc.Name,
			Parent:      nc.Parent,
			Origin:      arr3(world.Origin),
			EulerDeg:    arr3(world.Basis.GetEuler().MulScalar(math.K_RAD2DEG_MULTIPLIER)),
			Scale:       arr3(world.Basis.Scale()),
			Determinant: float64(world.Basis.Determinant()),
			Orthogonal:  world.Basis.Orthonormalized().GetOrthogonalIndex(),
		})
	}

	if box, ok := math.BoundingBox(origins); ok {
		report.BoundsMin = arr3(box.Position)
		report.BoundsMax = arr3(box.End())
	}

	for i, q := range cfg.Queries {
		report.Queries = append(report.Queries, runQuery(i, q, nodes))
	}
	return report, nil
}

func runQuery[T math.Real](i int, q QueryConfig, nodes map[string]*Node[T]) QueryReport {
	out := QueryReport{Name: q.Name, Kind: q.Kind}
	if out.Name == "" {
		out.Name = fmt.Sprintf("#%d", i)
	}

	from := nodes[q.From].GetWorld()

	switch q.Kind {
	case QueryInterpolate:
		to := nodes[q.To].GetWorld()
		blended := from.InterpolateWith(to, T(q.Weight))
		out.Origin = arr3(blended.Origin)
		out.EulerDeg = arr3(blended.Basis.GetEuler().MulScalar(math.K_RAD2DEG_MULTIPLIER))
		out.Value = float64(q.Weight)
	case QueryInverse:
		inv, err := from.AffineInverse()
		if err != nil {
			out.Err = err.Error()
			core.LogWarn("query %s: %s", out.Name, err)
			return out
		}
		out.Origin = arr3(inv.Origin)
		out.EulerDeg = arr3(inv.Basis.GetEuler().MulScalar(math.K_RAD2DEG_MULTIPLIER))
		out.Value = float64(inv.Basis.Determinant())
	case QueryXform:
		p := from.Xform(vec3[T](q.Point))
		out.Origin = arr3(p)
	case QueryDistance:
		to := nodes[q.To].GetWorld()
		out.Value = float64(from.Origin.DistanceTo(to.Origin))
	}
	return out
}

func vec3[T math.Real](v []float64) math.Vector3[T] {
	return math.NewVector3(T(v[0]), T(v[1]), T(v[2]))
}

func arr3[T math.Real](v math.Vector3[T]) [3]float64 {
	return [3]float64{float64(v.X), float64(v.Y), float64(v.Z)}
}
