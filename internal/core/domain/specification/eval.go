package specification

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"marketplace/internal/pkg/errs"
)

// Row is an in-memory view of one entity: field name to value. Field names
// match the column names used by the SQL compiler, so the same predicate
// filters both in memory and in the database.
type Row map[string]any

// Compile turns the predicate into a callable filter over rows. Compilation
// validates the tree shape once; value-level errors (unknown field, type
// mismatch) surface per evaluation.
func (p Predicate) Compile() (func(Row) (bool, error), error) {
	if p.param == nil || p.body == nil {
		return nil, errs.NewValueIsRequiredError("predicate body")
	}
	if err := checkBound(p.body, p.param); err != nil {
		return nil, err
	}

	return func(row Row) (bool, error) {
		return evalBool(p.body, row)
	}, nil
}

// checkBound verifies every field access targets the predicate's own
// parameter. A foreign parameter means a combinator invariant was broken.
func checkBound(expr Expr, param *Param) error {
	switch e := expr.(type) {
	case *Param:
		if e != param {
			return errs.NewValueIsInvalidError("expression references a foreign parameter")
		}
		return nil
	case *Field:
		if e.Of != param {
			return errs.NewValueIsInvalidError("field access references a foreign parameter")
		}
		return nil
	case *Const:
		return nil
	case *Compare:
		if err := checkBound(e.Left, param); err != nil {
			return err
		}
		return checkBound(e.Right, param)
	case *And:
		if err := checkBound(e.Left, param); err != nil {
			return err
		}
		return checkBound(e.Right, param)
	case *Or:
		if err := checkBound(e.Left, param); err != nil {
			return err
		}
		return checkBound(e.Right, param)
	case *Not:
		return checkBound(e.Operand, param)
	default:
		return errs.NewValueIsInvalidError(fmt.Sprintf("unsupported expression node %T", expr))
	}
}

func evalBool(expr Expr, row Row) (bool, error) {
	switch e := expr.(type) {
	case *Compare:
		return evalCompare(e, row)
	case *And:
		left, err := evalBool(e.Left, row)
		if err != nil {
			return false, err
		}
		if !left {
			return false, nil
		}
		return evalBool(e.Right, row)
	case *Or:
		left, err := evalBool(e.Left, row)
		if err != nil {
			return false, err
		}
		if left {
			return true, nil
		}
		return evalBool(e.Right, row)
	case *Not:
		operand, err := evalBool(e.Operand, row)
		if err != nil {
			return false, err
		}
		return !operand, nil
	default:
		return false, errs.NewValueIsInvalidError(fmt.Sprintf("%T is not a boolean expression", expr))
	}
}

func evalCompare(cmp *Compare, row Row) (bool, error) {
	left, err := evalValue(cmp.Left, row)
	if err != nil {
		return false, err
	}
	right, err := evalValue(cmp.Right, row)
	if err != nil {
		return false, err
	}

	if cmp.Op == OpContains {
		leftStr, leftOk := left.(string)
		rightStr, rightOk := right.(string)
		if !leftOk || !rightOk {
			return false, errs.NewValueIsInvalidError("contains requires string operands")
		}
		return strings.Contains(leftStr, rightStr), nil
	}

	order, err := compareValues(left, right)
	if err != nil {
		return false, err
	}

	switch cmp.Op {
	case OpEq:
		return order == 0, nil
	case OpNe:
		return order != 0, nil
	case OpLt:
		return order < 0, nil
	case OpLe:
		return order <= 0, nil
	case OpGt:
		return order > 0, nil
	case OpGe:
		return order >= 0, nil
	default:
		return false, errs.NewValueIsInvalidError(fmt.Sprintf("unsupported operator %d", cmp.Op))
	}
}

func evalValue(expr Expr, row Row) (any, error) {
	switch e := expr.(type) {
	case *Field:
		value, ok := row[e.Name]
		if !ok {
			return nil, errs.NewObjectNotFoundError("field", e.Name)
		}
		return value, nil
	case *Const:
		return e.Value, nil
	default:
		return nil, errs.NewValueIsInvalidError(fmt.Sprintf("%T is not a value expression", expr))
	}
}

// compareValues orders two scalar values of the same kind: -1, 0 or 1.
func compareValues(left, right any) (int, error) {
	switch l := left.(type) {
	case string:
		r, ok := right.(string)
		if !ok {
			return 0, typeMismatch(left, right)
		}
		return strings.Compare(l, r), nil
	case bool:
		r, ok := right.(bool)
		if !ok {
			return 0, typeMismatch(left, right)
		}
		if l == r {
			return 0, nil
		}
		if !l {
			return -1, nil
		}
		return 1, nil
	case time.Time:
		r, ok := right.(time.Time)
		if !ok {
			return 0, typeMismatch(left, right)
		}
		return l.Compare(r), nil
	case decimal.Decimal:
		r, err := toDecimal(right)
		if err != nil {
			return 0, err
		}
		return l.Cmp(r), nil
	case int, int32, int64, float64:
		lDec, err := toDecimal(left)
		if err != nil {
			return 0, err
		}
		rDec, err := toDecimal(right)
		if err != nil {
			return 0, err
		}
		return lDec.Cmp(rDec), nil
	default:
		return 0, errs.NewValueIsInvalidError(fmt.Sprintf("unsupported value type %T", left))
	}
}

func toDecimal(value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int32:
		return decimal.NewFromInt32(v), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Decimal{}, typeMismatch(decimal.Decimal{}, value)
	}
}

func typeMismatch(left, right any) error {
	return errs.NewValueIsInvalidError(fmt.Sprintf("cannot compare %T with %T", left, right))
}
