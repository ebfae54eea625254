package script

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/zhanar2709/linkedlist"
)

// ErrUnexpectedOutput is returned when step produces output different from the expected one.
var ErrUnexpectedOutput = errors.New("unexpected output")

// ErrExpectedFailure is returned when step marked as failing succeeds.
var ErrExpectedFailure = errors.New("step was expected to fail")

// Result is the outcome of script execution.
type Result struct {
	Name string
	// Outputs holds textual output of each step, empty for steps producing nothing.
	Outputs []string
	Values  []string
	// Err is the error returned by Run, carried here for results delivered over channels.
	Err error
}

// Run applies steps of the script to a new list. Failing steps don't stop the execution, all the failures
// are returned together.
func Run(ctx context.Context, s Script) (Result, error) {
	l := linkedlist.New[string]()
	res := Result{
		Name:    s.Name,
		Outputs: make([]string, 0, len(s.Steps)),
	}

	var errs error
	for i, step := range s.Steps {
		if ctx.Err() != nil {
			return Result{}, errors.WithStack(ctx.Err())
		}

		if err := step.validate(); err != nil {
			res.Outputs = append(res.Outputs, "")
			errs = multierr.Append(errs, errors.WithMessagef(err, "step %d", i))
			continue
		}

		out, err := apply(l, step)
		res.Outputs = append(res.Outputs, out)

		switch {
		case step.Fail && err == nil:
			err = errors.WithStack(ErrExpectedFailure)
		case step.Fail && errors.Is(err, linkedlist.ErrIndexOutOfRange):
			err = nil
		case err == nil && step.Expect != nil && *step.Expect != out:
			err = errors.Wrapf(ErrUnexpectedOutput, "expected %q, got %q", *step.Expect, out)
		}
		if err != nil {
			errs = multierr.Append(errs, errors.WithMessagef(err, "step %d (%s)", i, step.Op))
		}
	}

	res.Values = l.Values()
	res.Err = errs
	return res, errs
}

func apply(l *linkedlist.List[string], step Step) (string, error) {
	switch step.Op {
	case OpAdd:
		l.Add(*step.Value)
		return "", nil
	case OpInsert:
		return "", l.Insert(*step.Value, *step.Index)
	case OpDelete:
		return "", l.Delete(*step.Index)
	case OpGet:
		return l.Get(*step.Index)
	case OpSize:
		return strconv.Itoa(l.Size()), nil
	case OpClear:
		l.Clear()
		return "", nil
	case OpDescribe:
		return l.String(), nil
	default:
		return "", errors.Wrapf(ErrUnknownOp, "%q", step.Op)
	}
}
