package routeros

import (
	"strconv"
	"strings"
)

// Value is the typed value half of a reply-record attribute: a string, a
// signed integer, or a boolean. The zero Value is an empty string-kind
// Value and String()s to "".
type Value struct {
	kind valueKind
	str  string
	num  int64
	bln  bool
}

type valueKind uint8

const (
	kindString valueKind = iota
	kindInt
	kindBool
)

// String constructs a string-kind Value.
func String(s string) Value { return Value{kind: kindString, str: s} }

// Int constructs an integer-kind Value.
func Int(n int64) Value { return Value{kind: kindInt, num: n} }

// Bool constructs a boolean-kind Value.
func Bool(b bool) Value { return Value{kind: kindBool, bln: b} }

// IsString, IsInt, IsBool report the discriminant tag. This tag, not value
// equality, is what composeWord uses to break the 0==false/1==true
// ambiguity.
func (v Value) IsString() bool { return v.kind == kindString }
func (v Value) IsInt() bool    { return v.kind == kindInt }
func (v Value) IsBool() bool   { return v.kind == kindBool }

// Int64 returns the integer value and whether v holds one.
func (v Value) Int64() (int64, bool) { return v.num, v.kind == kindInt }

// Bool64 returns the boolean value and whether v holds one.
func (v Value) Bool64() (bool, bool) { return v.bln, v.kind == kindBool }

// String renders v in its API form: integers in decimal, booleans as
// "yes"/"no", strings unchanged. A value parsed from "true" or "0010"
// therefore renders as "yes" or "10", not as the original token.
func (v Value) String() string {
	switch v.kind {
	case kindInt:
		return strconv.FormatInt(v.num, 10)
	case kindBool:
		if v.bln {
			return "yes"
		}
		return "no"
	default:
		return v.str
	}
}

// parseWord splits an attribute word of the form "=key=value" into its key
// and typed value. Integers parse first; then the literal tokens yes|true
// and no|false map to booleans; anything else stays a string. Keys
// beginning with "." (API metadata keys, e.g. ".id") are passed through
// unchanged by the caller — this function only handles the splitting and
// value typing, identical for both kinds of key.
func parseWord(word string) (key string, value Value, err error) {
	if len(word) == 0 || word[0] != '=' {
		return "", Value{}, &ProtocolError{Msg: "attribute word missing leading '=': " + word}
	}
	rest := word[1:]
	idx := strings.IndexByte(rest, '=')
	if idx < 0 {
		return "", Value{}, &ProtocolError{Msg: "attribute word missing value separator: " + word}
	}
	key = rest[:idx]
	raw := rest[idx+1:]
	return key, typed(raw), nil
}

func typed(raw string) Value {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Int(n)
	}
	switch raw {
	case "yes", "true":
		return Bool(true)
	case "no", "false":
		return Bool(false)
	default:
		return String(raw)
	}
}

// composeWord renders key, value back into an attribute word, discriminating
// on Value's kind tag rather than its underlying bits:
// composeWord("x", Bool(true)) == "=x=yes", composeWord("x", Int(1)) ==
// "=x=1".
func composeWord(key string, value Value) string {
	return "=" + key + "=" + value.String()
}
