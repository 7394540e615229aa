package querybuilder

import (
	"strconv"
	"strings"
)

// Condition renders one predicate of a WHERE clause. Conditions are joined
// with AND.
type Condition interface {
	appendSQL(w *sqlWriter)
}

// sqlWriter accumulates SQL text and positional arguments ($1, $2, ...).
type sqlWriter struct {
	buf  strings.Builder
	args []any
}

func (w *sqlWriter) write(s string) {
	w.buf.WriteString(s)
}

func (w *sqlWriter) bind(value any) {
	w.args = append(w.args, value)
	w.buf.WriteString("$")
	w.buf.WriteString(strconv.Itoa(len(w.args)))
}

// writeExpr copies expr, replacing each '?' with the next bound argument.
// Extra '?' without a matching argument are kept verbatim.
func (w *sqlWriter) writeExpr(expr string, exprArgs []any) {
	if len(exprArgs) == 0 {
		w.write(expr)
		return
	}

	next := 0
	for i := 0; i < len(expr); i++ {
		if expr[i] == '?' && next < len(exprArgs) {
			w.bind(exprArgs[next])
			next++
			continue
		}
		w.buf.WriteByte(expr[i])
	}
}

func (w *sqlWriter) where(conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.write(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.write(" AND ")
		}
		c.appendSQL(w)
	}
}

type compareCondition struct {
	column string
	op     string
	value  any
}

func (c compareCondition) appendSQL(w *sqlWriter) {
	w.write(c.column)
	w.write(" ")
	w.write(c.op)
	w.write(" ")
	w.bind(c.value)
}

func Eq(column string, value any) Condition {
	return compareCondition{column: column, op: "=", value: value}
}

func NotEq(column string, value any) Condition {
	return compareCondition{column: column, op: "<>", value: value}
}

func Gte(column string, value any) Condition {
	return compareCondition{column: column, op: ">=", value: value}
}

func Lte(column string, value any) Condition {
	return compareCondition{column: column, op: "<=", value: value}
}

type inCondition struct {
	column string
	values []any
}

// In renders column IN (...). An empty list matches nothing.
func In(column string, values []any) Condition {
	return inCondition{column: column, values: values}
}

// InStrings is In for a string slice.
func InStrings(column string, values []string) Condition {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return inCondition{column: column, values: out}
}

func (c inCondition) appendSQL(w *sqlWriter) {
	if len(c.values) == 0 {
		w.write("1=0")
		return
	}

	w.write(c.column)
	w.write(" IN (")
	for i, v := range c.values {
		if i > 0 {
			w.write(", ")
		}
		w.bind(v)
	}
	w.write(")")
}

type nullCondition struct {
	column string
	not    bool
}

func IsNull(column string) Condition {
	return nullCondition{column: column}
}

func IsNotNull(column string) Condition {
	return nullCondition{column: column, not: true}
}

func (c nullCondition) appendSQL(w *sqlWriter) {
	w.write(c.column)
	if c.not {
		w.write(" IS NOT NULL")
		return
	}
	w.write(" IS NULL")
}

type exprCondition struct {
	expr string
	args []any
}

// Expr embeds raw SQL; each '?' binds the next arg.
func Expr(expr string, args ...any) Condition {
	return exprCondition{expr: expr, args: args}
}

func (c exprCondition) appendSQL(w *sqlWriter) {
	w.writeExpr(c.expr, c.args)
}

type eqLiteralCondition struct {
	column string
	value  string
}

// EqLiteral inlines value as a quoted SQL literal instead of binding it.
func EqLiteral(column, value string) Condition {
	return eqLiteralCondition{column: column, value: value}
}

func (c eqLiteralCondition) appendSQL(w *sqlWriter) {
	w.write(c.column)
	w.write(" = ")
	w.write(QuoteLiteral(c.value))
}

func QuoteLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}
