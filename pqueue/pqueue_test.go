package pqueue

import (
	"reflect"
	"testing"
)

type item struct {
	name   string
	weight int
}

func byWeight(a, b item) bool { return a.weight < b.weight }

func drain(q *Queue[item]) []string {
	var names []string
	for {
		x, ok := q.Pop()
		if !ok {
			return names
		}
		names = append(names, x.name)
	}
}

func TestQueueOrdersByWeight(t *testing.T) {
	q := New(byWeight)
	for _, x := range []item{{"c", 3}, {"a", 1}, {"e", 5}, {"b", 2}, {"d", 4}} {
		q.Push(x)
	}
	if q.Len() != 5 {
		t.Fatalf("expected 5 elements, have %d", q.Len())
	}
	got := drain(q)
	want := []string{"a", "b", "c", "d", "e"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("removal order mismatch: got %v, want %v", got, want)
	}
}

func TestQueueBreaksTiesByInsertion(t *testing.T) {
	q := New(byWeight)
	for _, x := range []item{{"x1", 2}, {"y", 1}, {"x2", 2}, {"x3", 2}, {"z", 1}} {
		q.Push(x)
	}
	got := drain(q)
	want := []string{"y", "z", "x1", "x2", "x3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tie-break mismatch: got %v, want %v", got, want)
	}
}

func TestQueueTiesAfterInterleavedPops(t *testing.T) {
	q := New(byWeight)
	q.Push(item{"a", 1})
	q.Push(item{"b", 1})
	if x, _ := q.Pop(); x.name != "a" {
		t.Fatalf("expected a first, got %s", x.name)
	}
	q.Push(item{"c", 1}) // pushed later than b
	got := drain(q)
	want := []string{"b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tie-break mismatch: got %v, want %v", got, want)
	}
}

func TestQueueEmpty(t *testing.T) {
	q := New(byWeight)
	if _, ok := q.Pop(); ok {
		t.Fatalf("Pop on empty queue should report !ok")
	}
	if _, ok := q.Peek(); ok {
		t.Fatalf("Peek on empty queue should report !ok")
	}
	q.Push(item{"a", 7})
	if x, ok := q.Peek(); !ok || x.name != "a" || q.Len() != 1 {
		t.Fatalf("Peek should return a without removing it, got %v/%v len=%d", x, ok, q.Len())
	}
}

func TestNewRejectsNilOrdering(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil ordering function")
		}
	}()
	New[item](nil)
}
