package cel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestMapGetAbsentYieldsNull(t *testing.T) {
	m := NewMap()
	m.Insert(String("age"), Int(30))

	got := m.Get(String("missing"))
	if !got.Equal(Null{}) {
		t.Errorf("Get(missing) = %v, want null", got)
	}
	// Get is total over every key kind, not just strings.
	for _, k := range []Key{Int(99), Uint(99), Bool(false), String("")} {
		if got := m.Get(k); !got.Equal(Null{}) {
			t.Errorf("Get(%v) = %v, want null", k, got)
		}
	}
}

func TestMapInsertOverwrites(t *testing.T) {
	m := NewMap()
	m.Insert(String("age"), Int(30))
	m.Insert(String("age"), Int(31))

	if got := m.Get(String("age")); !got.Equal(Int(31)) {
		t.Errorf("Get(age) = %v, want 31", got)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestMapLookupDistinguishesAbsentFromNull(t *testing.T) {
	m := NewMap()
	m.Insert(String("present"), Null{})

	v, ok := m.Lookup(String("present"))
	if !ok {
		t.Error("Lookup(present) reported absent")
	}
	if !v.Equal(Null{}) {
		t.Errorf("Lookup(present) = %v, want null", v)
	}

	if _, ok := m.Lookup(String("absent")); ok {
		t.Error("Lookup(absent) reported present")
	}
	// Get cannot tell the two apart; both read as null.
	if !m.Get(String("present")).Equal(m.Get(String("absent"))) {
		t.Error("Get should yield null for both stored-null and absent keys")
	}
}

func TestMapMixedKeyKinds(t *testing.T) {
	m := NewMap()
	m.Insert(Int(1), String("int one"))
	m.Insert(Uint(1), String("uint one"))
	m.Insert(Bool(true), String("yes"))
	m.Insert(String("1"), String("text one"))

	// Int(1), Uint(1) and "1" are distinct keys.
	if m.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", m.Len())
	}
	if got := m.Get(Int(1)); !got.Equal(String("int one")) {
		t.Errorf("Get(Int(1)) = %v", got)
	}
	if got := m.Get(Uint(1)); !got.Equal(String("uint one")) {
		t.Errorf("Get(Uint(1)) = %v", got)
	}
	if got := m.Get(Bool(true)); !got.Equal(String("yes")) {
		t.Errorf("Get(Bool(true)) = %v", got)
	}
}

func TestMapKeysSorted(t *testing.T) {
	m := NewMap()
	m.Insert(String("b"), Int(1))
	m.Insert(String("a"), Int(2))
	m.Insert(Bool(true), Int(3))
	m.Insert(Bool(false), Int(4))
	m.Insert(Uint(9), Int(5))
	m.Insert(Int(-1), Int(6))
	m.Insert(Int(3), Int(7))

	want := []Key{Int(-1), Int(3), Uint(9), String("a"), String("b"), Bool(false), Bool(true)}
	if diff := cmp.Diff(want, m.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestMapOf(t *testing.T) {
	m := MapOf(map[string]Value{
		"age":  Int(30),
		"name": String("Ada"),
	})

	if got := m.Get(String("age")); !got.Equal(Int(30)) {
		t.Errorf("Get(age) = %v, want 30", got)
	}
	if got := m.Get(String("name")); !got.Equal(String("Ada")) {
		t.Errorf("Get(name) = %v, want 'Ada'", got)
	}

	direct := NewMap()
	direct.Insert(String("age"), Int(30))
	direct.Insert(String("name"), String("Ada"))
	if !m.Equal(direct) {
		t.Error("MapOf result differs from incrementally built map")
	}
}

func TestSharedEntries(t *testing.T) {
	m := NewMap()
	clone := m // O(1): clones share entries until the map is published
	m.Insert(String("age"), Int(30))

	if got := clone.Get(String("age")); !got.Equal(Int(30)) {
		t.Errorf("clone.Get(age) = %v, want 30", got)
	}
}

func TestKeyOf(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  bool
	}{
		{"int", Int(1), true},
		{"uint", Uint(1), true},
		{"bool", Bool(true), true},
		{"string", String("a"), true},
		{"double", mustDouble(t, "1.5"), false},
		{"bytes", Bytes("a"), false},
		{"null", Null{}, false},
		{"map", NewMap(), false},
		{"date", mustDate(t, "2020-03-14"), false},
		{"uuid", NewUuid(uuid.Nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, ok := KeyOf(tt.value)
			if ok != tt.want {
				t.Fatalf("KeyOf(%v) ok = %v, want %v", tt.value, ok, tt.want)
			}
			if ok && k.Type() != tt.value.Type() {
				t.Errorf("KeyOf kept tag %v, want %v", k.Type(), tt.value.Type())
			}
		})
	}
}

func mustDate(t *testing.T, s string) Date {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", s, err)
	}
	return d
}

func TestCompareKeysConsistentWithEquality(t *testing.T) {
	keys := []Key{Int(-1), Int(3), Uint(0), Uint(9), String(""), String("a"), Bool(false), Bool(true)}
	for i, a := range keys {
		for j, b := range keys {
			got := CompareKeys(a, b)
			switch {
			case i == j && got != 0:
				t.Errorf("CompareKeys(%v, %v) = %d, want 0", a, b, got)
			case i < j && got >= 0:
				t.Errorf("CompareKeys(%v, %v) = %d, want < 0", a, b, got)
			case i > j && got <= 0:
				t.Errorf("CompareKeys(%v, %v) = %d, want > 0", a, b, got)
			}
		}
	}
}
