package routeros

import "strings"

// Expr is a fragment of RPN filter words the device's stack evaluator
// will consume. Comparisons are built with explicit methods rather than
// overloaded operators.
type Expr []string

// Key is a named symbol carrying a field name; its comparison methods
// produce Expr fragments rather than overloading Go operators.
type Key struct {
	name string
}

// NewKey names a field for use in a query filter or a Select projection.
func NewKey(name string) *Key { return &Key{name: name} }

// String returns the bare field name.
func (k *Key) String() string { return k.name }

func (k *Key) Eq(v Value) Expr {
	return Expr{"?=" + k.name + "=" + v.String()}
}

func (k *Key) Ne(v Value) Expr {
	return append(k.Eq(v), "?#!")
}

func (k *Key) Lt(v Value) Expr {
	return Expr{"?<" + k.name + "=" + v.String()}
}

func (k *Key) Gt(v Value) Expr {
	return Expr{"?>" + k.name + "=" + v.String()}
}

// In emits Eq for every value followed by "?#|" repeated (n-1) times, a
// left-to-right OR-fold over the candidate values.
func (k *Key) In(values ...Value) Expr {
	if len(values) == 0 {
		return nil
	}
	var out Expr
	for _, v := range values {
		out = append(out, k.Eq(v)...)
	}
	for i := 0; i < len(values)-1; i++ {
		out = append(out, "?#|")
	}
	return out
}

// And concatenates all fragments then appends "?#&" (N-1) times.
func And(exprs ...Expr) Expr {
	return foldExprs(exprs, "?#&")
}

// Or concatenates all fragments then appends "?#|" (N-1) times.
func Or(exprs ...Expr) Expr {
	return foldExprs(exprs, "?#|")
}

func foldExprs(exprs []Expr, op string) Expr {
	var out Expr
	for _, e := range exprs {
		out = append(out, e...)
	}
	for i := 0; i < len(exprs)-1; i++ {
		out = append(out, op)
	}
	return out
}

// Query is the tuple (path, projection keys, filter words): it emits
// "=.proplist=" plus the filter words on iteration.
type Query struct {
	path   Path
	keys   []*Key
	filter Expr
}

// Where sets the query's filter. Multiple expressions are implicitly
// And-folded: Where(a, Or(b, c)) is exactly And(a, Or(b, c)).
func (q *Query) Where(exprs ...Expr) *Query {
	q.filter = And(exprs...)
	return q
}

// Run issues the print sub-command and returns the matching records.
// When no keys were selected, the ".proplist" word is omitted and the
// device returns every field.
func (q *Query) Run() ([]*Reply, error) {
	var words []string
	if len(q.keys) > 0 {
		names := make([]string, len(q.keys))
		for i, k := range q.keys {
			names[i] = k.name
		}
		words = append(words, "=.proplist="+strings.Join(names, ","))
	}
	words = append(words, q.filter...)
	return q.path.client.RawCmd(q.path.Join("print").path, words...)
}
