package routeros

import "testing"

func TestValueKindDiscrimination(t *testing.T) {
	// 0/false and 1/true must not compare equal across kinds: the kind
	// tag, not the bits, decides how composeWord renders a Value.
	if composeWord("x", Bool(true)) != "=x=yes" {
		t.Errorf("composeWord(Bool(true)) = %q, want =x=yes", composeWord("x", Bool(true)))
	}
	if composeWord("x", Int(1)) != "=x=1" {
		t.Errorf("composeWord(Int(1)) = %q, want =x=1", composeWord("x", Int(1)))
	}
	if composeWord("x", Bool(false)) != "=x=no" {
		t.Errorf("composeWord(Bool(false)) = %q, want =x=no", composeWord("x", Bool(false)))
	}
	if composeWord("x", Int(0)) != "=x=0" {
		t.Errorf("composeWord(Int(0)) = %q, want =x=0", composeWord("x", Int(0)))
	}
}

func TestParseWordTyping(t *testing.T) {
	tests := []struct {
		word    string
		key     string
		isInt   bool
		isBool  bool
		boolVal bool
		str     string
	}{
		{"=name=ether1", "name", false, false, false, "ether1"},
		{"=disabled=no", "disabled", false, true, false, ""},
		{"=running=yes", "running", false, true, true, ""},
		{"=mtu=1500", "mtu", true, false, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			key, value, err := parseWord(tt.word)
			if err != nil {
				t.Fatalf("parseWord(%q) error: %v", tt.word, err)
			}
			if key != tt.key {
				t.Errorf("key = %q, want %q", key, tt.key)
			}
			if value.IsInt() != tt.isInt {
				t.Errorf("IsInt() = %v, want %v", value.IsInt(), tt.isInt)
			}
			if value.IsBool() != tt.isBool {
				t.Errorf("IsBool() = %v, want %v", value.IsBool(), tt.isBool)
			}
			if tt.isBool {
				b, _ := value.Bool64()
				if b != tt.boolVal {
					t.Errorf("Bool64() = %v, want %v", b, tt.boolVal)
				}
			}
		})
	}
}

func TestParseWordMalformed(t *testing.T) {
	tests := []string{"", "name=ether1", "=noequals"}
	for _, w := range tests {
		if _, _, err := parseWord(w); err == nil {
			t.Errorf("parseWord(%q) expected error, got nil", w)
		}
	}
}

func TestReplyKeysPreservesOrder(t *testing.T) {
	r := newReply()
	r.set("name", String("ether1"))
	r.set("mtu", Int(1500))
	r.set("disabled", Bool(false))

	got := r.Keys()
	want := []string{"name", "mtu", "disabled"}
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
