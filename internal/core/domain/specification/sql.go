package specification

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// ToSQL compiles the predicate to a parametrized where-clause with
// positional "?" placeholders, suitable for gorm's Where. Field names are
// emitted as column names verbatim.
func (p Predicate) ToSQL() (string, []any, error) {
	if p.param == nil || p.body == nil {
		return "", nil, errs.NewValueIsRequiredError("predicate body")
	}
	if err := checkBound(p.body, p.param); err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	args := make([]any, 0)
	if err := writeSQL(&sb, &args, p.body); err != nil {
		return "", nil, err
	}
	return sb.String(), args, nil
}

func writeSQL(sb *strings.Builder, args *[]any, expr Expr) error {
	switch e := expr.(type) {
	case *Compare:
		return writeCompareSQL(sb, args, e)
	case *And:
		return writeBinarySQL(sb, args, e.Left, e.Right, "AND")
	case *Or:
		return writeBinarySQL(sb, args, e.Left, e.Right, "OR")
	case *Not:
		sb.WriteString("NOT (")
		if err := writeSQL(sb, args, e.Operand); err != nil {
			return err
		}
		sb.WriteString(")")
		return nil
	default:
		return errs.NewValueIsInvalidError(fmt.Sprintf("%T cannot be compiled to SQL", expr))
	}
}

func writeBinarySQL(sb *strings.Builder, args *[]any, left, right Expr, op string) error {
	sb.WriteString("(")
	if err := writeSQL(sb, args, left); err != nil {
		return err
	}
	sb.WriteString(" ")
	sb.WriteString(op)
	sb.WriteString(" ")
	if err := writeSQL(sb, args, right); err != nil {
		return err
	}
	sb.WriteString(")")
	return nil
}

func writeCompareSQL(sb *strings.Builder, args *[]any, cmp *Compare) error {
	field, fieldOk := cmp.Left.(*Field)
	constant, constOk := cmp.Right.(*Const)
	if !fieldOk || !constOk {
		return errs.NewValueIsInvalidError("SQL comparison requires field on the left and constant on the right")
	}

	if cmp.Op == OpContains {
		needle, ok := constant.Value.(string)
		if !ok {
			return errs.NewValueIsInvalidError("contains requires a string constant")
		}
		sb.WriteString(field.Name)
		sb.WriteString(" LIKE ?")
		*args = append(*args, "%"+escapeLike(needle)+"%")
		return nil
	}

	sb.WriteString(field.Name)
	sb.WriteString(" ")
	sb.WriteString(cmp.Op.String())
	sb.WriteString(" ?")
	*args = append(*args, constant.Value)
	return nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}
