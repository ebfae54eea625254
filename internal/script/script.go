// Package script decodes and executes YAML scripts of list operations.
package script

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Op is the list operation executed by a step.
type Op string

// Supported operations.
const (
	OpAdd      Op = "add"
	OpInsert   Op = "insert"
	OpDelete   Op = "delete"
	OpGet      Op = "get"
	OpSize     Op = "size"
	OpClear    Op = "clear"
	OpDescribe Op = "describe"
)

var (
	// ErrUnknownOp is returned when step refers to operation not supported by the list.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrInvalidStep is returned when step misses the arguments required by its operation.
	ErrInvalidStep = errors.New("invalid step")
)

// Step is a single operation applied to the list.
type Step struct {
	Op     Op      `yaml:"op"`
	Value  *string `yaml:"value,omitempty"`
	Index  *int    `yaml:"index,omitempty"`
	Expect *string `yaml:"expect,omitempty"`
	Fail   bool    `yaml:"fail,omitempty"`
}

// Script is a named sequence of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Parse decodes and validates the script.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, errors.Wrap(err, "decoding script failed")
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return Script{}, errors.WithMessagef(err, "step %d", i)
		}
	}
	return s, nil
}

// Load reads the script from file. Script without name is named after the file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, errors.WithStack(err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, errors.WithMessagef(err, "script %s", path)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

func (s Step) validate() error {
	switch s.Op {
	case OpAdd:
		if s.Value == nil {
			return errors.Wrapf(ErrInvalidStep, "%s requires value", s.Op)
		}
	case OpInsert:
		if s.Value == nil || s.Index == nil {
			return errors.Wrapf(ErrInvalidStep, "%s requires value and index", s.Op)
		}
	case OpDelete, OpGet:
		if s.Index == nil {
			return errors.Wrapf(ErrInvalidStep, "%s requires index", s.Op)
		}
	case OpSize, OpClear, OpDescribe:
	default:
		return errors.Wrapf(ErrUnknownOp, "%q", s.Op)
	}
	return nil
}
