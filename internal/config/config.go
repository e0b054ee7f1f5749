// SPDX-License-Identifier: MIT

// Package config loads rotconv batch job files.
//
// A job file is YAML:
//
//	workers: 4          # concurrent jobs, default runtime.NumCPU()
//	unit: deg           # deg | rad, default deg
//	order: XYZ          # default Euler order
//	jobs:
//	  - name: yaw
//	    kind: convert   # convert | compose | slerp | transform
//	    rotations:
//	      - euler: [0, 0, 90]
//
// Each rotation gives exactly one of euler (3 angles), axis_angle
// (x, y, z, angle) or quat (w, x, y, z).
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/katalvlaran/lvgeom/rotation"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoJobs is returned for a file without jobs.
	ErrNoJobs = errors.New("config: no jobs")

	// ErrUnknownKind is returned for a job kind other than the four below.
	ErrUnknownKind = errors.New("config: unknown job kind")

	// ErrBadInput reports a malformed rotation, point or parameter.
	ErrBadInput = errors.New("config: bad input")
)

// Job kinds.
const (
	KindConvert   = "convert"
	KindCompose   = "compose"
	KindSlerp     = "slerp"
	KindTransform = "transform"
)

// Angle units.
const (
	UnitDeg = "deg"
	UnitRad = "rad"
)

// File is a decoded job file.
type File struct {
	Workers int    `yaml:"workers"`
	Unit    string `yaml:"unit"`
	Order   string `yaml:"order"`
	Jobs    []Job  `yaml:"jobs"`
}

// Rotation is one rotation in any supported representation.
type Rotation struct {
	Euler     []float64 `yaml:"euler,omitempty,flow"`
	Order     string    `yaml:"order,omitempty"`
	AxisAngle []float64 `yaml:"axis_angle,omitempty,flow"`
	Quat      []float64 `yaml:"quat,omitempty,flow"`
}

// Job is a single unit of work.
type Job struct {
	Name      string      `yaml:"name"`
	Kind      string      `yaml:"kind"`
	Rotations []Rotation  `yaml:"rotations"`
	T         float64     `yaml:"t,omitempty"`
	Scale     *float64    `yaml:"scale,omitempty"`
	Translate []float64   `yaml:"translate,omitempty,flow"`
	Points    [][]float64 `yaml:"points,omitempty"`
	Invert    bool        `yaml:"invert,omitempty"`
}

// Load decodes, defaults and validates a job file.
func Load(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoJobs
		}
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer fh.Close()
	return Load(fh)
}

func (f *File) applyDefaults() {
	if f.Workers <= 0 {
		f.Workers = runtime.NumCPU()
	}
	f.Unit = strings.ToLower(strings.TrimSpace(f.Unit))
	if f.Unit == "" {
		f.Unit = UnitDeg
	}
	for i := range f.Jobs {
		if f.Jobs[i].Name == "" {
			f.Jobs[i].Name = fmt.Sprintf("job-%d", i+1)
		}
		f.Jobs[i].Kind = strings.ToLower(strings.TrimSpace(f.Jobs[i].Kind))
	}
}

// DefaultOrder parses the file-level Euler order.
func (f *File) DefaultOrder() (rotation.Order, error) {
	o, err := rotation.ParseOrder(f.Order)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadInput, err)
	}
	return o, nil
}

// Validate checks the shape of every job. Values are checked again when
// jobs run.
func (f *File) Validate() error {
	if len(f.Jobs) == 0 {
		return ErrNoJobs
	}
	if f.Unit != UnitDeg && f.Unit != UnitRad {
		return fmt.Errorf("%w: unit %q", ErrBadInput, f.Unit)
	}
	if _, err := f.DefaultOrder(); err != nil {
		return err
	}
	for i := range f.Jobs {
		if err := f.Jobs[i].Validate(); err != nil {
			return fmt.Errorf("job %q: %w", f.Jobs[i].Name, err)
		}
	}
	return nil
}

// Validate checks the rotation count for the kind and every rotation.
func (j *Job) Validate() error {
	n := len(j.Rotations)
	switch j.Kind {
	case KindConvert:
		if n != 1 {
			return fmt.Errorf("%w: convert takes 1 rotation, got %d", ErrBadInput, n)
		}
	case KindCompose:
		if n < 2 {
			return fmt.Errorf("%w: compose takes at least 2 rotations, got %d", ErrBadInput, n)
		}
	case KindSlerp:
		if n != 2 {
			return fmt.Errorf("%w: slerp takes 2 rotations, got %d", ErrBadInput, n)
		}
	case KindTransform:
		if n > 1 {
			return fmt.Errorf("%w: transform takes at most 1 rotation, got %d", ErrBadInput, n)
		}
		if len(j.Translate) != 0 && len(j.Translate) != 3 {
			return fmt.Errorf("%w: translate needs 3 components", ErrBadInput)
		}
		for k, p := range j.Points {
			if len(p) != 3 {
				return fmt.Errorf("%w: point %d needs 3 components", ErrBadInput, k)
			}
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, j.Kind)
	}
	for k := range j.Rotations {
		if err := j.Rotations[k].Validate(); err != nil {
			return fmt.Errorf("rotation %d: %w", k, err)
		}
	}
	return nil
}

// Validate checks that exactly one representation is set with the right
// number of components.
func (r *Rotation) Validate() error {
	set := 0
	if r.Euler != nil {
		set++
		if len(r.Euler) != 3 {
			return fmt.Errorf("%w: euler needs 3 angles", ErrBadInput)
		}
		if _, err := rotation.ParseOrder(r.Order); err != nil {
			return fmt.Errorf("%w: %w", ErrBadInput, err)
		}
	}
	if r.AxisAngle != nil {
		set++
		if len(r.AxisAngle) != 4 {
			return fmt.Errorf("%w: axis_angle needs x, y, z, angle", ErrBadInput)
		}
		if r.AxisAngle[0] == 0 && r.AxisAngle[1] == 0 && r.AxisAngle[2] == 0 {
			return fmt.Errorf("%w: zero rotation axis", ErrBadInput)
		}
	}
	if r.Quat != nil {
		set++
		if len(r.Quat) != 4 {
			return fmt.Errorf("%w: quat needs w, x, y, z", ErrBadInput)
		}
		if r.Quat[0] == 0 && r.Quat[1] == 0 && r.Quat[2] == 0 && r.Quat[3] == 0 {
			return fmt.Errorf("%w: zero quaternion", ErrBadInput)
		}
	}
	if set != 1 {
		return fmt.Errorf("%w: give exactly one of euler, axis_angle, quat", ErrBadInput)
	}
	return nil
}
