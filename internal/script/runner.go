package script

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/edu-luc-cs-leo/comp-271-su-2025-week-05-jknott1/array"
	"github.com/edu-luc-cs-leo/comp-271-su-2025-week-05-jknott1/internal/config"
)

const Absent = "<absent>"

type (
	Result struct {
		Op     string
		Output string
	}

	Runner struct {
		cfg    *config.Config
		logger *zap.Logger

		// interned holds the shared instance of every text seen so far
		interned map[string]string
	}
)

func NewRunner(cfg *config.Config, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{
		cfg:      cfg,
		logger:   logger,
		interned: make(map[string]string),
	}
}

// Run executes the script against a new array and returns one result per op.
// Results produced before a failing op are returned along with the error.
func (r *Runner) Run(s *Script) ([]Result, error) {
	capacity := r.cfg.Capacity
	if s.Capacity != nil {
		capacity = *s.Capacity
	}

	var a *array.Array[string]
	if r.cfg.Equality == config.EqualityIdentity {
		a = array.NewFunc[string](capacity, array.SameString, r.cfg.Options()...)
	} else {
		a = array.New[string](capacity, r.cfg.Options()...)
	}

	r.logger.Info("running script",
		zap.Int("ops", len(s.Ops)),
		zap.Int("capacity", a.Cap()),
		zap.String("equality", r.cfg.Equality),
	)

	results := make([]Result, 0, len(s.Ops))
	for i, op := range s.Ops {
		out, err := r.apply(a, op)
		if err != nil {
			r.logger.Error("op failed", zap.Int("position", i), zap.String("op", op.Op), zap.Error(err))
			return results, errors.Wrapf(err, "op %d (%s)", i, op.Op)
		}

		r.logger.Debug("op applied",
			zap.Int("position", i),
			zap.String("op", op.Op),
			zap.String("output", out),
			zap.Int("len", a.Len()),
			zap.Int("cap", a.Cap()),
		)
		results = append(results, Result{Op: op.Op, Output: out})
	}

	return results, nil
}

func (r *Runner) apply(a *array.Array[string], op Op) (string, error) {
	switch op.Op {
	case OpAppend:
		values := op.Values
		if len(values) == 0 {
			values = []string{op.Value}
		}
		for _, v := range values {
			if err := a.Append(r.text(v, op.Fresh)); err != nil {
				return "", err
			}
		}
		return "len=" + strconv.Itoa(a.Len()) + " cap=" + strconv.Itoa(a.Cap()), nil
	case OpAt:
		return orAbsent(a.At(op.Index)), nil
	case OpIndexOf:
		return strconv.Itoa(a.IndexOf(r.text(op.Value, op.Fresh))), nil
	case OpContains:
		return strconv.FormatBool(a.Contains(r.text(op.Value, op.Fresh))), nil
	case OpCountOf:
		return strconv.Itoa(a.CountOf(r.text(op.Value, op.Fresh))), nil
	case OpRemoveAt:
		return orAbsent(a.RemoveAt(op.Index)), nil
	case OpRemove:
		return orAbsent(a.Remove(r.text(op.Value, op.Fresh))), nil
	case OpLen:
		return strconv.Itoa(a.Len()), nil
	case OpCap:
		return strconv.Itoa(a.Cap()), nil
	case OpRender:
		return a.String(), nil
	default:
		return "", errors.Wrapf(ErrUnknownOp, "%q", op.Op)
	}
}

// text returns the shared instance of v, or a new one when fresh is set.
func (r *Runner) text(v string, fresh bool) string {
	if fresh {
		return strings.Clone(v)
	}

	if shared, ok := r.interned[v]; ok {
		return shared
	}
	r.interned[v] = v
	return v
}

func orAbsent(v string, ok bool) string {
	if !ok {
		return Absent
	}
	return v
}
