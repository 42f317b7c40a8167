package types //nolint:revive // package name is used by internal consumers

import "testing"

func TestTagValid(t *testing.T) {
	for _, tag := range []Tag{TagNone, TagBool, TagInt, TagBytes, TagString} {
		if !tag.Valid() {
			t.Errorf("%s should be valid", tag)
		}
	}
	for _, tag := range []Tag{1, 4, 15, 18, -1} {
		if tag.Valid() {
			t.Errorf("tag %d should be invalid", int(tag))
		}
		if tag.String() != "unknown" {
			t.Errorf("tag %d String() = %q", int(tag), tag.String())
		}
	}
}

func TestTagAccepts(t *testing.T) {
	tests := []struct {
		name string
		tag  Tag
		hint Hint
		want bool
	}{
		{"int u16", TagInt, HintU16, true},
		{"int compact", TagInt, HintCompact, true},
		{"int none", TagInt, HintNone, false},
		{"int account", TagInt, HintAccount, false},
		{"string none", TagString, HintNone, true},
		{"string account", TagString, HintAccount, true},
		{"string u8", TagString, HintU8, true},
		{"string compact", TagString, HintCompact, true},
		{"bool ignores", TagBool, HintU32, true},
		{"bytes ignores", TagBytes, HintAccount, true},
		{"none ignores", TagNone, HintCompact, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tag.Accepts(tc.hint); got != tc.want {
				t.Errorf("Accepts = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFieldWireType(t *testing.T) {
	tests := []struct {
		field Field
		want  string
	}{
		{Field{Tag: TagInt, Hint: HintU16}, "u16"},
		{Field{Tag: TagInt, Hint: HintCompact}, "Compact<u64>"},
		{Field{Tag: TagString, Hint: HintAccount}, "AccountId32"},
		{Field{Tag: TagString}, "str"},
		{Field{Tag: TagBytes}, "Vec<u8>"},
		{Field{Tag: TagBool}, "bool"},
	}
	for _, tc := range tests {
		if got := tc.field.WireType(); got != tc.want {
			t.Errorf("WireType() = %q, want %q", got, tc.want)
		}
	}
}
