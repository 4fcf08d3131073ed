package specification

// Predicate is a boolean expression over a single bound parameter.
type Predicate struct {
	param *Param
	body  Expr
}

// New builds a predicate from scratch. The builder receives the freshly
// allocated parameter and returns the body expression over it.
func New(name string, build func(p *Param) Expr) Predicate {
	param := &Param{Name: name}
	return Predicate{param: param, body: build(param)}
}

// Param returns the predicate's bound parameter.
func (p Predicate) Param() *Param {
	return p.param
}

// Body returns the predicate's body expression.
func (p Predicate) Body() Expr {
	return p.body
}

// And combines two predicates into a conjunction. A single fresh parameter
// is allocated and substituted through both operand bodies, so the result
// shares no parameter instance with its operands.
func (p Predicate) And(other Predicate) Predicate {
	fresh := &Param{Name: p.param.Name}
	return Predicate{
		param: fresh,
		body: &And{
			Left:  substitute(p.body, p.param, fresh),
			Right: substitute(other.body, other.param, fresh),
		},
	}
}

// Or combines two predicates into a disjunction under one fresh parameter,
// with the same substitution discipline as And.
func (p Predicate) Or(other Predicate) Predicate {
	fresh := &Param{Name: p.param.Name}
	return Predicate{
		param: fresh,
		body: &Or{
			Left:  substitute(p.body, p.param, fresh),
			Right: substitute(other.body, other.param, fresh),
		},
	}
}

// Not negates the predicate under a fresh parameter.
func (p Predicate) Not() Predicate {
	fresh := &Param{Name: p.param.Name}
	return Predicate{
		param: fresh,
		body:  &Not{Operand: substitute(p.body, p.param, fresh)},
	}
}

// FieldEq is shorthand for a single field = value predicate.
func FieldEq(name string, value any) Predicate {
	return FieldCompare(OpEq, name, value)
}

// FieldCompare is shorthand for a single field <op> value predicate.
func FieldCompare(op Op, name string, value any) Predicate {
	return New("x", func(p *Param) Expr {
		return &Compare{Op: op, Left: &Field{Of: p, Name: name}, Right: &Const{Value: value}}
	})
}
