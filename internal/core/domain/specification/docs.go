// Package specification implements composable filter predicates as an
// explicit expression tree.
//
// A Predicate binds a single parameter over a boolean expression. AND, OR and
// NOT combine predicates by rewriting: each combinator allocates one fresh
// parameter and substitutes it through every operand subtree, so a combined
// expression never retains the original parameter instances. The tree stays
// analyzable end to end — it can be compiled to an in-memory evaluator or to
// a parametrized SQL where-clause for query pushdown.
package specification
