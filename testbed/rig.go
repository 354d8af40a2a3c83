package testbed

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/spaghettifunk/extramath/engine/core"
)

// Precision selects which tier of the math package evaluates a rig.
type Precision string

const (
	PrecisionSingle Precision = "single"
	PrecisionDouble Precision = "double"
)

// LookAtConfig orients a node toward a point in its parent space.
type LookAtConfig struct {
	Target []float64 `toml:"target" yaml:"target"`
	Up     []float64 `toml:"up" yaml:"up"`
}

// NodeConfig is one node of the rig hierarchy. Rotation is given either as
// YXZ Euler angles in degrees or as a quaternion (x, y, z, w), not both.
type NodeConfig struct {
	Name       string        `toml:"name" yaml:"name"`
	Parent     string        `toml:"parent" yaml:"parent"`
	Position   []float64     `toml:"position" yaml:"position"`
	Rotation   []float64     `toml:"rotation_degrees" yaml:"rotation_degrees"`
	Quaternion []float64     `toml:"quaternion" yaml:"quaternion"`
	Scale      []float64     `toml:"scale" yaml:"scale"`
	LookAt     *LookAtConfig `toml:"look_at" yaml:"look_at"`
}

// QueryKind names an evaluation performed on the resolved hierarchy.
type QueryKind string

const (
	// Blends the world transforms of From and To by Weight.
	QueryInterpolate QueryKind = "interpolate"
	// Affine inverse of the world transform of From.
	QueryInverse QueryKind = "inverse"
	// Maps Point from the local space of From to world space.
	QueryXform QueryKind = "xform"
	// Distance between the world origins of From and To.
	QueryDistance QueryKind = "distance"
)

type QueryConfig struct {
	Name   string    `toml:"name" yaml:"name"`
	Kind   QueryKind `toml:"kind" yaml:"kind"`
	From   string    `toml:"from" yaml:"from"`
	To     string    `toml:"to" yaml:"to"`
	Weight float64   `toml:"weight" yaml:"weight"`
	Point  []float64 `toml:"point" yaml:"point"`
}

// Config is a rig file: a named hierarchy of transforms plus queries.
type Config struct {
	Name      string        `toml:"name" yaml:"name"`
	Precision Precision     `toml:"precision" yaml:"precision"`
	Nodes     []NodeConfig  `toml:"node" yaml:"nodes"`
	Queries   []QueryConfig `toml:"query" yaml:"queries"`
}

// LoadConfig reads a rig from path. The format follows the extension: .toml,
// .yaml or .yml.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rig %s: %w", path, err)
	}

	cfg, err := ParseConfig(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("rig %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes and validates a rig. ext selects the decoder and
// includes the leading dot.
func ParseConfig(data []byte, ext string) (*Config, error) {
	cfg := &Config{}

	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported rig format %q: %w", ext, core.ErrInvalidRig)
	}

	if cfg.Precision == "" {
		cfg.Precision = PrecisionSingle
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), core.ErrInvalidRig)
}

// Validate checks names, vector arities, parents and queries. Parent chains
// must not form cycles.
func (c *Config) Validate() error {
	switch c.Precision {
	case PrecisionSingle, PrecisionDouble:
	default:
		return invalid("unknown precision %q", c.Precision)
	}

	byName := make(map[string]*NodeConfig, len(c.Nodes))
	for i := range c.Nodes {
		n := &c.Nodes[i]
		if n.Name == "" {
			return invalid("node %d has no name", i)
		}
		if _, dup := byName[n.Name]; dup {
			return invalid("duplicate node %q", n.Name)
		}
		byName[n.Name] = n

		if err := checkArity(n.Name, "position", n.Position, 3); err != nil {
			return err
		}
		if err := checkArity(n.Name, "rotation_degrees", n.Rotation, 3); err != nil {
			return err
		}
		if err := checkArity(n.Name, "quaternion", n.Quaternion, 4); err != nil {
			return err
		}
		if err := checkArity(n.Name, "scale", n.Scale, 3); err != nil {
			return err
		}
		if n.Rotation != nil && n.Quaternion != nil {
			return invalid("node %q sets both rotation_degrees and quaternion", n.Name)
		}
		if n.LookAt != nil {
			if n.LookAt.Target == nil {
				return invalid("node %q: look_at needs a target", n.Name)
			}
			if err := checkArity(n.Name, "look_at.target", n.LookAt.Target, 3); err != nil {
				return err
			}
			if err := checkArity(n.Name, "look_at.up", n.LookAt.Up, 3); err != nil {
				return err
			}
		}
	}

	// Every parent must exist before any chain is walked.
	for _, n := range c.Nodes {
		if n.Parent == "" {
			continue
		}
		if _, ok := byName[n.Parent]; !ok {
			return invalid("node %q has unknown parent %q", n.Name, n.Parent)
		}
	}
	for _, n := range c.Nodes {
		// Walk up the chain; more steps than nodes means a cycle.
		steps := 0
		for p := n.Parent; p != ""; p = byName[p].Parent {
			steps++
			if steps > len(c.Nodes) {
				return invalid("node %q is part of a parent cycle", n.Name)
			}
		}
	}

	for i, q := range c.Queries {
		name := q.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		if _, ok := byName[q.From]; !ok {
			return invalid("query %s: unknown node %q", name, q.From)
		}
		switch q.Kind {
		case QueryInterpolate, QueryDistance:
			if _, ok := byName[q.To]; !ok {
				return invalid("query %s: unknown node %q", name, q.To)
			}
		case QueryXform:
			if err := checkArity(name, "point", q.Point, 3); err != nil {
				return err
			}
			if q.Point == nil {
				return invalid("query %s: xform needs a point", name)
			}
		case QueryInverse:
		default:
			return invalid("query %s: unknown kind %q", name, q.Kind)
		}
	}

	return nil
}

func checkArity(owner, field string, v []float64, n int) error {
	if v != nil && len(v) != n {
		return invalid("%s: %s has %d components, want %d", owner, field, len(v), n)
	}
	return nil
}
