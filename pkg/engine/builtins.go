package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chazu/planar/pkg/scene"
	"github.com/chazu/planar/pkg/shape"
	zygo "github.com/glycerine/zygomys/zygo"
	"gonum.org/v1/gonum/spatial/r2"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms shape script source before passing it to
// zygomys. It performs three transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: round-factors -> round_factors
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
//  3. Line comments: ; and ;; become //.
//
// All transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec2 wraps an r2.Vec.
type sexpVec2 struct {
	vec r2.Vec
}

func (v *sexpVec2) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec2 %g %g)", v.vec.X, v.vec.Y)
}
func (v *sexpVec2) Type() *zygo.RegisteredType { return nil }

// sexpRoundFactors wraps a shape.RoundFactors.
type sexpRoundFactors struct {
	rf shape.RoundFactors
}

func (r *sexpRoundFactors) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(round-factors %g %g %g %g)", r.rf.TopLeft, r.rf.TopRight, r.rf.BottomLeft, r.rf.BottomRight)
}
func (r *sexpRoundFactors) Type() *zygo.RegisteredType { return nil }

// sexpShape wraps a shape value returned by circle, rectangle or hexagon.
type sexpShape struct {
	s shape.Shape
}

func (s *sexpShape) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(%s area=%g)", s.s.Kind(), s.s.Area())
}
func (s *sexpShape) Type() *zygo.RegisteredType { return nil }

// sexpShapeRef is returned by defshape and shape; it names a scene entry.
type sexpShapeRef struct {
	id    scene.EntryID
	name  string
	shape shape.Shape
}

func (r *sexpShapeRef) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(shape %q)", r.name)
}
func (r *sexpShapeRef) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Trailing keyword with no value.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// unknownKeywords reports keywords outside allowed.
func (a kwArgs) unknownKeywords(allowed ...string) error {
	ok := make(map[string]bool, len(allowed))
	for _, k := range allowed {
		ok[k] = true
	}
	var bad []string
	for k := range a.kw {
		if !ok[k] {
			bad = append(bad, ":"+k)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	sort.Strings(bad)
	return fmt.Errorf("unknown keyword(s) %s", strings.Join(bad, ", "))
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_vertical) and plain strings.
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toVec2 extracts an r2.Vec from a sexpVec2.
func toVec2(s zygo.Sexp) (r2.Vec, error) {
	if v, ok := s.(*sexpVec2); ok {
		return v.vec, nil
	}
	return r2.Vec{}, fmt.Errorf("expected vec2, got %T (%s)", s, s.SexpString(nil))
}

// toRoundFactors accepts a round-factors value or a single number applied
// to every corner.
func toRoundFactors(s zygo.Sexp) (shape.RoundFactors, error) {
	if rf, ok := s.(*sexpRoundFactors); ok {
		return rf.rf, nil
	}
	if r, err := toFloat64(s); err == nil {
		return shape.NewUniformRoundFactors(r), nil
	}
	return shape.RoundFactors{}, fmt.Errorf("expected round-factors or number, got %T (%s)", s, s.SexpString(nil))
}

// toOrientation converts :horizontal or :vertical.
func toOrientation(s zygo.Sexp) (shape.Orientation, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected orientation keyword (:horizontal, :vertical): %w", err)
	}
	return shape.ParseOrientation(name)
}

// toShape extracts a shape from a shape value or a scene reference.
func toShape(s zygo.Sexp) (shape.Shape, error) {
	switch v := s.(type) {
	case *sexpShape:
		return v.s, nil
	case *sexpShapeRef:
		return v.shape, nil
	}
	return nil, fmt.Errorf("expected shape, got %T (%s)", s, s.SexpString(nil))
}

// kwFloat reads an optional numeric keyword.
func kwFloat(pa kwArgs, key string, def float64) (float64, error) {
	v, ok := pa.kw[key]
	if !ok {
		return def, nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

// kwVec2 reads an optional vector keyword.
func kwVec2(pa kwArgs, key string, def r2.Vec) (r2.Vec, error) {
	v, ok := pa.kw[key]
	if !ok {
		return def, nil
	}
	vec, err := toVec2(v)
	if err != nil {
		return r2.Vec{}, fmt.Errorf("%s: %w", key, err)
	}
	return vec, nil
}

// requireKW fails when a keyword is missing.
func requireKW(pa kwArgs, keys ...string) error {
	for _, k := range keys {
		if _, ok := pa.kw[k]; !ok {
			return fmt.Errorf(":%s is required", k)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the shape DSL builtins into a zygomys
// environment. The builtins populate sc during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, sc *scene.Scene) {

	// -----------------------------------------------------------------------
	// (vec2 x y)
	// -----------------------------------------------------------------------
	env.AddFunction("vec2", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("vec2 requires exactly 2 arguments, got %d", len(args))
		}
		x, err := toFloat64(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec2: x: %w", err)
		}
		y, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("vec2: y: %w", err)
		}
		return &sexpVec2{vec: r2.Vec{X: x, Y: y}}, nil
	})

	// -----------------------------------------------------------------------
	// (round-factors tl tr bl br) or (round-factors r)
	// -----------------------------------------------------------------------
	env.AddFunction("round_factors", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		vals := make([]float64, len(args))
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("round-factors: argument %d: %w", i+1, err)
			}
			vals[i] = f
		}
		switch len(vals) {
		case 1:
			return &sexpRoundFactors{rf: shape.NewUniformRoundFactors(vals[0])}, nil
		case 4:
			return &sexpRoundFactors{rf: shape.NewRoundFactors(vals[0], vals[1], vals[2], vals[3])}, nil
		}
		return zygo.SexpNull, fmt.Errorf("round-factors requires 1 or 4 arguments, got %d", len(vals))
	})

	// -----------------------------------------------------------------------
	// (circle :center (vec2 0 0) :radius 5)
	// -----------------------------------------------------------------------
	env.AddFunction("circle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := pa.unknownKeywords("center", "radius"); err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: %w", err)
		}
		if err := requireKW(pa, "radius"); err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: %w", err)
		}

		spec := shape.Spec{Kind: shape.KindCircle}
		var err error
		if spec.Center, err = kwVec2(pa, "center", r2.Vec{}); err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: %w", err)
		}
		if spec.Radius, err = kwFloat(pa, "radius", 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("circle: %w", err)
		}
		return build(spec)
	})

	// -----------------------------------------------------------------------
	// (rectangle :center (vec2 0 0) :size (vec2 20 10) :rotation 45
	//            :round (round-factors 1 1 0 0))
	// -----------------------------------------------------------------------
	env.AddFunction("rectangle", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := pa.unknownKeywords("center", "size", "rotation", "round"); err != nil {
			return zygo.SexpNull, fmt.Errorf("rectangle: %w", err)
		}
		if err := requireKW(pa, "size"); err != nil {
			return zygo.SexpNull, fmt.Errorf("rectangle: %w", err)
		}

		spec := shape.Spec{Kind: shape.KindRectangle}
		var err error
		if spec.Center, err = kwVec2(pa, "center", r2.Vec{}); err != nil {
			return zygo.SexpNull, fmt.Errorf("rectangle: %w", err)
		}
		if spec.Dimensions, err = kwVec2(pa, "size", r2.Vec{}); err != nil {
			return zygo.SexpNull, fmt.Errorf("rectangle: %w", err)
		}
		if spec.Rotation, err = kwFloat(pa, "rotation", 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("rectangle: %w", err)
		}
		if v, ok := pa.kw["round"]; ok {
			rf, err := toRoundFactors(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("rectangle: round: %w", err)
			}
			spec.Round = rf
		}
		return build(spec)
	})

	// -----------------------------------------------------------------------
	// (hexagon :center (vec2 0 0) :circumradius 10 :orientation :vertical)
	// -----------------------------------------------------------------------
	env.AddFunction("hexagon", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if err := pa.unknownKeywords("center", "circumradius", "orientation"); err != nil {
			return zygo.SexpNull, fmt.Errorf("hexagon: %w", err)
		}
		if err := requireKW(pa, "circumradius"); err != nil {
			return zygo.SexpNull, fmt.Errorf("hexagon: %w", err)
		}

		spec := shape.Spec{Kind: shape.KindHexagon, Orientation: shape.Horizontal}
		var err error
		if spec.Center, err = kwVec2(pa, "center", r2.Vec{}); err != nil {
			return zygo.SexpNull, fmt.Errorf("hexagon: %w", err)
		}
		if spec.Radius, err = kwFloat(pa, "circumradius", 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("hexagon: %w", err)
		}
		if v, ok := pa.kw["orientation"]; ok {
			o, err := toOrientation(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("hexagon: orientation: %w", err)
			}
			spec.Orientation = o
		}
		return build(spec)
	})

	// -----------------------------------------------------------------------
	// (defshape "name" (circle ...) :op :difference :at (vec2 5 0) :rotate 30)
	// -----------------------------------------------------------------------
	env.AddFunction("defshape", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) < 2 {
			return zygo.SexpNull, fmt.Errorf("defshape requires a name and a shape expression")
		}
		if err := pa.unknownKeywords("op", "at", "rotate"); err != nil {
			return zygo.SexpNull, fmt.Errorf("defshape: %w", err)
		}

		shapeName, err := toString(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defshape: name: %w", err)
		}
		if shapeName == "" {
			return zygo.SexpNull, fmt.Errorf("defshape: name must not be empty")
		}
		s, err := toShape(pa.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defshape: %w", err)
		}

		op := scene.OpUnion
		if v, ok := pa.kw["op"]; ok {
			opName, err := toKeywordString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("defshape: op: %w", err)
			}
			if op, err = scene.ParseOp(opName); err != nil {
				return zygo.SexpNull, fmt.Errorf("defshape: %w", err)
			}
		}

		var placement scene.Placement
		if placement.Offset, err = kwVec2(pa, "at", r2.Vec{}); err != nil {
			return zygo.SexpNull, fmt.Errorf("defshape: %w", err)
		}
		if placement.Rotation, err = kwFloat(pa, "rotate", 0); err != nil {
			return zygo.SexpNull, fmt.Errorf("defshape: %w", err)
		}

		e, err := sc.Add(shapeName, s, scene.SourceRef{})
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defshape: %w", err)
		}
		e.Op = op
		e.Placement = placement
		Logger().Debug("shape registered", "name", shapeName, "kind", s.Kind().String(), "op", op.String())

		return &sexpShapeRef{id: e.ID, name: shapeName, shape: s}, nil
	})

	// -----------------------------------------------------------------------
	// (shape "name")
	// -----------------------------------------------------------------------
	env.AddFunction("shape", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("shape requires a name argument")
		}
		shapeName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("shape: name: %w", err)
		}
		e := sc.Lookup(shapeName)
		if e == nil {
			return zygo.SexpNull, fmt.Errorf("shape: no shape named %q", shapeName)
		}
		return &sexpShapeRef{id: e.ID, name: shapeName, shape: e.Shape}, nil
	})

	// -----------------------------------------------------------------------
	// (area s) (perimeter s)
	// -----------------------------------------------------------------------
	measure := func(label string, f func(shape.Shape) float64) func(*zygo.Zlisp, string, []zygo.Sexp) (zygo.Sexp, error) {
		return func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 1 {
				return zygo.SexpNull, fmt.Errorf("%s requires exactly 1 argument, got %d", label, len(args))
			}
			s, err := toShape(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("%s: %w", label, err)
			}
			return &zygo.SexpFloat{Val: f(s)}, nil
		}
	}
	env.AddFunction("area", measure("area", shape.Shape.Area))
	env.AddFunction("perimeter", measure("perimeter", shape.Shape.Perimeter))

	// -----------------------------------------------------------------------
	// (sdf s (vec2 x y))
	// -----------------------------------------------------------------------
	env.AddFunction("sdf", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("sdf requires a shape and a point, got %d arguments", len(args))
		}
		s, err := toShape(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sdf: %w", err)
		}
		p, err := toVec2(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sdf: point: %w", err)
		}
		return &zygo.SexpFloat{Val: s.SDF(p)}, nil
	})
}

// build validates spec and wraps the shape for the interpreter.
func build(spec shape.Spec) (zygo.Sexp, error) {
	s, err := shape.Build(spec)
	if err != nil {
		return zygo.SexpNull, err
	}
	return &sexpShape{s: s}, nil
}
