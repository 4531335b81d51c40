package cases

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/ajroetker/go-shortvec/svec"
)

var sentinels = map[string]error{
	"width":          svec.ErrWidth,
	"lane_count":     svec.ErrLaneCount,
	"lane_range":     svec.ErrLaneRange,
	"width_mismatch": svec.ErrWidthMismatch,
	"odd_width":      svec.ErrOddWidth,
}

func errorNames() []string {
	names := lo.Keys(sentinels)
	slices.Sort(names)
	return names
}

type runner func(Case) ([]float64, []bool, error)

var runners = map[string]runner{
	"float32": func(c Case) ([]float64, []bool, error) { return eval[float32](c, svec.FMA[float32]) },
	"float64": func(c Case) ([]float64, []bool, error) { return eval[float64](c, svec.FMA[float64]) },
	"int32":   func(c Case) ([]float64, []bool, error) { return eval[int32](c, nil) },
	"uint8":   func(c Case) ([]float64, []bool, error) { return eval[uint8](c, nil) },
}

type fmaFunc[T svec.Lanes] func(a, b, c svec.Vec[T]) svec.Vec[T]

// eval runs c with lane type T. Shape panics are recovered and returned as
// errors so that expected failures can be checked like construction errors.
// fma is nil for integer lane types.
func eval[T svec.Lanes](c Case, fma fmaFunc[T]) (lanes []float64, mask []bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				e = fmt.Errorf("panic: %v", r)
			}
			err = e
		}
	}()

	var out svec.Vec[T]
	switch c.Kind {
	case KindConstruct:
		parts := make([]svec.Part[T], 0, len(c.Parts))
		for _, p := range c.Parts {
			if len(p) == 1 {
				parts = append(parts, svec.Scalar(T(p[0])))
				continue
			}
			v, err := vec[T](p)
			if err != nil {
				return nil, nil, err
			}
			parts = append(parts, v)
		}
		out, err = svec.New(c.Width, parts...)

	case KindSplat:
		if len(c.A) != 1 {
			return nil, nil, fmt.Errorf("splat needs one scalar in a, got %d", len(c.A))
		}
		out = svec.Splat(c.Width, T(c.A[0]))

	case KindAdd, KindMul, KindFMA, KindLess:
		if c.Kind == KindFMA && fma == nil {
			return nil, nil, fmt.Errorf("fma needs a float lane type, got %s", c.Type)
		}
		a, b, cv, err := operands[T](c)
		if err != nil {
			return nil, nil, err
		}
		switch c.Kind {
		case KindAdd:
			out = svec.Add(a, b)
		case KindMul:
			out = svec.Mul(a, b)
		case KindFMA:
			out = fma(a, b, cv)
		case KindLess:
			m := svec.LessThan(a, b)
			mask = make([]bool, m.NumLanes())
			for i := range mask {
				mask[i] = m.GetBit(i)
			}
			return nil, mask, nil
		}

	case KindSwizzleAssign:
		if out, err = vec[T](c.A); err != nil {
			return nil, nil, err
		}
		out.Swizzle(c.Target...).Assign(out.Swizzle(c.Source...))

	case KindLoHi:
		v, err := vec[T](c.A)
		if err != nil {
			return nil, nil, err
		}
		if out, err = svec.New(v.NumLanes(), svec.Part[T](v.Lo()), svec.Part[T](v.Hi())); err != nil {
			return nil, nil, err
		}
	}
	if err != nil {
		return nil, nil, err
	}
	return floats(out), nil, nil
}

// operands builds a, b and, for fma, c. Operands share the width of a.
func operands[T svec.Lanes](c Case) (a, b, cv svec.Vec[T], err error) {
	if a, err = vec[T](c.A); err != nil {
		return
	}
	if b, err = vec[T](c.B); err != nil {
		return
	}
	if c.Kind == KindFMA {
		cv, err = vec[T](c.C)
	}
	return
}

func vec[T svec.Lanes](xs []float64) (svec.Vec[T], error) {
	return svec.Of(lo.Map(xs, func(x float64, _ int) T { return T(x) })...)
}

func floats[T svec.Lanes](v svec.Vec[T]) []float64 {
	return lo.Map(v.Slice(), func(x T, _ int) float64 { return float64(x) })
}
