package purekata

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapFilterReduce(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5, 6}

	doubled := Map(xs, func(x int) int { return 2 * x })
	if diff := cmp.Diff([]int{2, 4, 6, 8, 10, 12}, doubled); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}

	evens := Filter(xs, func(x int) bool { return x%2 == 0 })
	if diff := cmp.Diff([]int{2, 4, 6}, evens); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}

	product := Reduce([]int{5, 6, 7, 8, 9, 10}, 1, func(acc, n int) int { return acc * n })
	if product != 151200 {
		t.Errorf("expected 151200, got %d", product)
	}

	labels := Map(xs[:2], strconv.Itoa)
	if diff := cmp.Diff([]string{"1", "2"}, labels); diff != "" {
		t.Errorf("Map to string mismatch (-want +got):\n%s", diff)
	}
}

func TestEachWithIndex(t *testing.T) {
	var got []string
	EachWithIndex([]string{"red", "green", "blue"}, func(item string, i int) {
		got = append(got, strconv.Itoa(i)+":"+item)
	})
	if diff := cmp.Diff([]string{"0:red", "1:green", "2:blue"}, got); diff != "" {
		t.Errorf("EachWithIndex mismatch (-want +got):\n%s", diff)
	}
}

func TestQuantifiers(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5, 6}
	even := Predicate[int](func(x int) bool { return x%2 == 0 })
	big := Predicate[int](func(x int) bool { return x > 5 })

	testCases := []struct {
		name string
		got  bool
		want bool
	}{
		{"any even", Any(xs, even), true},
		{"any big", Any(xs, big), true},
		{"all big", All(xs, big), false},
		{"all even", All(xs, even), false},
		{"all positive", All(xs, func(x int) bool { return x > 0 }), true},
		{"none negative", None(xs, func(x int) bool { return x < 0 }), true},
		{"none even", None(xs, even), false},
		{"all on empty", All([]int{}, even), true},
		{"any on empty", Any([]int{}, even), false},
	}
	for _, tc := range testCases {
		if tc.got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, tc.got)
		}
	}
}

func TestFind(t *testing.T) {
	found, ok := Find([]int{1, 2, 3, 4, 5, 6}, func(x int) bool { return x > 5 })
	if !ok || found != 6 {
		t.Errorf("expected 6, got %d (ok=%v)", found, ok)
	}

	_, ok = Find([]int{1, 2}, func(x int) bool { return x > 5 })
	if ok {
		t.Error("expected no match")
	}
}

func TestGroupBy(t *testing.T) {
	got := GroupBy([]int{1, 2, 3, 4, 5}, func(x int) int { return x % 2 })
	want := []Group[int, int]{
		{Key: 1, Items: []int{1, 3, 5}},
		{Key: 0, Items: []int{2, 4}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GroupBy mismatch (-want +got):\n%s", diff)
	}

	if len(GroupBy([]int{}, func(x int) int { return x })) != 0 {
		t.Error("grouping nothing should produce no groups")
	}
}

func TestPredicate(t *testing.T) {
	small := Predicate[int](func(n int) bool { return n < 10 })
	even := Predicate[int](func(n int) bool { return n%2 == 0 })

	if !small.And(even)(4) {
		t.Error("4 is small and even")
	}
	if small.And(even)(5) {
		t.Error("5 is not even")
	}
	if !small.Or(even)(12) {
		t.Error("12 is even")
	}
	if small.Not()(3) {
		t.Error("3 is small")
	}
}
