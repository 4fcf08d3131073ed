package specification

// Expr is a node of the predicate expression tree.
type Expr interface {
	isExpr()
}

// Param is the free variable of a predicate. Parameters compare by pointer
// identity: two predicates never share a Param unless one was substituted
// into the other.
type Param struct {
	// Name is diagnostic only; identity is the pointer.
	Name string
}

func (*Param) isExpr() {}

// Field accesses a named field of the entity bound to a parameter.
type Field struct {
	Of   *Param
	Name string
}

func (*Field) isExpr() {}

// Const is a literal value.
type Const struct {
	Value any
}

func (*Const) isExpr() {}

// Op is a comparison operator.
type Op int

const (
	// OpEq is equality.
	OpEq Op = iota
	// OpNe is inequality.
	OpNe
	// OpLt is less-than.
	OpLt
	// OpLe is less-than-or-equal.
	OpLe
	// OpGt is greater-than.
	OpGt
	// OpGe is greater-than-or-equal.
	OpGe
	// OpContains is substring containment over strings.
	OpContains
)

// String returns the operator's SQL spelling.
func (o Op) String() string {
	switch o {
	case OpEq:
		return "="
	case OpNe:
		return "<>"
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpContains:
		return "LIKE"
	default:
		return "?"
	}
}

// Compare applies an operator to two operands.
type Compare struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (*Compare) isExpr() {}

// And is logical conjunction.
type And struct {
	Left  Expr
	Right Expr
}

func (*And) isExpr() {}

// Or is logical disjunction.
type Or struct {
	Left  Expr
	Right Expr
}

func (*Or) isExpr() {}

// Not is logical negation.
type Not struct {
	Operand Expr
}

func (*Not) isExpr() {}

// substitute returns a copy of expr with every reference to the old
// parameter replaced by the new one. It is a pure rewrite: the input tree is
// never mutated.
func substitute(expr Expr, old, new *Param) Expr {
	switch e := expr.(type) {
	case *Param:
		if e == old {
			return new
		}
		return e
	case *Field:
		if e.Of == old {
			return &Field{Of: new, Name: e.Name}
		}
		return e
	case *Const:
		return e
	case *Compare:
		return &Compare{Op: e.Op, Left: substitute(e.Left, old, new), Right: substitute(e.Right, old, new)}
	case *And:
		return &And{Left: substitute(e.Left, old, new), Right: substitute(e.Right, old, new)}
	case *Or:
		return &Or{Left: substitute(e.Left, old, new), Right: substitute(e.Right, old, new)}
	case *Not:
		return &Not{Operand: substitute(e.Operand, old, new)}
	default:
		return e
	}
}
