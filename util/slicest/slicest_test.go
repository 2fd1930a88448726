package slicest

import (
	"reflect"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, strconv.Itoa)
	if !reflect.DeepEqual(got, []string{"1", "2", "3"}) {
		t.Fatalf("Map = %v", got)
	}
}

func TestMapI(t *testing.T) {
	got := MapI([]string{"a", "b"}, func(i int, s string) string {
		return strconv.Itoa(i) + s
	})
	if !reflect.DeepEqual(got, []string{"0a", "1b"}) {
		t.Fatalf("MapI = %v", got)
	}
}

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	if !reflect.DeepEqual(got, []int{2, 4}) {
		t.Fatalf("Filter = %v", got)
	}
}

func TestToMap(t *testing.T) {
	got := ToMap([]string{"a", "bb"}, func(s string) (string, int) {
		return s, len(s)
	})
	if got["a"] != 1 || got["bb"] != 2 {
		t.Fatalf("ToMap = %v", got)
	}
}

func TestContains(t *testing.T) {
	if !Contains([]string{"x", "y"}, "y") {
		t.Fatal("expected containment")
	}
	if Contains([]string{"x"}, "z") {
		t.Fatal("unexpected containment")
	}
}
