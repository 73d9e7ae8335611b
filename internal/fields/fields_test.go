package fields

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		line  string
		delim string
		want  []string
	}{
		{"foo\tbar", "\t", []string{"foo", "bar"}},
		{"foo,bar", ",", []string{"foo", "bar"}},
		{"foo|bar", "|", []string{"foo", "bar"}},
		{"a,,b,", ",", []string{"a", "", "b", ""}},
		{"no delimiter", ",", []string{"no delimiter"}},
		{"", ",", []string{""}},
		{"a::b::c", "::", []string{"a", "b", "c"}},
		{"a.b", ".", []string{"a", "b"}},
	}
	for _, tt := range tests {
		if got := Split(tt.line, tt.delim); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Split(%q, %q) = %q, want %q", tt.line, tt.delim, got, tt.want)
		}
	}
}

func TestSelect(t *testing.T) {
	parts := []string{"a", "b", "c"}
	got := Select(parts, []int{2, 0, 2, 5, -1})
	want := []string{"c", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Select = %q, want %q", got, want)
	}
	if got := Select(parts, nil); len(got) != 0 {
		t.Fatalf("Select with no indexes = %q, want empty", got)
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]string{"foo", "bar", "baz"}, ","); got != "foo,bar,baz" {
		t.Fatalf("Join = %q", got)
	}
	if got := Join(nil, ","); got != "" {
		t.Fatalf("Join(nil) = %q, want empty", got)
	}
}
