package impl

import (
	"reflect"
	"testing"
)

func TestSplitTags(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{in: "", want: []string{}},
		{in: "work", want: []string{"work"}},
		{in: "work,home", want: []string{"work", "home"}},
		{in: ",work,,home,", want: []string{"work", "home"}},
	}
	for _, tc := range cases {
		if got := splitTags(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("splitTags(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
