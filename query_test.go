package routeros

import "testing"

func exprEqual(a, b Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestKeyComparisons(t *testing.T) {
	disabled := NewKey("disabled")

	tests := []struct {
		name string
		got  Expr
		want Expr
	}{
		{"Eq", disabled.Eq(String("no")), Expr{"?=disabled=no"}},
		{"Ne", disabled.Ne(String("no")), Expr{"?=disabled=no", "?#!"}},
		{"Lt", disabled.Lt(Int(5)), Expr{"?<disabled=5"}},
		{"Gt", disabled.Gt(Int(5)), Expr{"?>disabled=5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !exprEqual(tt.got, tt.want) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestKeyIn(t *testing.T) {
	name := NewKey("name")
	got := name.In(String("ether1"), String("ether2"), String("ether3"))
	want := Expr{"?=name=ether1", "?=name=ether2", "?=name=ether3", "?#|", "?#|"}
	if !exprEqual(got, want) {
		t.Errorf("In(...) = %v, want %v", got, want)
	}
}

func TestWhereImplicitAnd(t *testing.T) {
	disabled := NewKey("disabled")
	name := NewKey("name")

	q := (&Query{}).Where(
		disabled.Eq(String("no")),
		Or(name.Eq(String("ether2")), name.Eq(String("wlan-lan"))),
	)

	want := Expr{"?=disabled=no", "?=name=ether2", "?=name=wlan-lan", "?#|", "?#&"}
	if !exprEqual(q.filter, want) {
		t.Errorf("Where(...) filter = %v, want %v", q.filter, want)
	}
}

func TestAndOrFold(t *testing.T) {
	a := Expr{"?=a=1"}
	b := Expr{"?=b=2"}
	c := Expr{"?=c=3"}

	and := And(a, b, c)
	wantAnd := Expr{"?=a=1", "?=b=2", "?=c=3", "?#&", "?#&"}
	if !exprEqual(and, wantAnd) {
		t.Errorf("And(a,b,c) = %v, want %v", and, wantAnd)
	}

	or := Or(a, b)
	wantOr := Expr{"?=a=1", "?=b=2", "?#|"}
	if !exprEqual(or, wantOr) {
		t.Errorf("Or(a,b) = %v, want %v", or, wantOr)
	}
}
