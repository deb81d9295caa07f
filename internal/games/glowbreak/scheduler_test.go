package glowbreak

import (
	"reflect"
	"testing"
)

func TestSchedulerRunsInDueOrder(t *testing.T) {
	var s Scheduler
	var order []string

	s.After(0, 150, func() { order = append(order, "c") })
	s.After(0, 100, func() { order = append(order, "a") })
	s.After(0, 100, func() { order = append(order, "b") })

	if ran := s.Poll(99); ran != 0 {
		t.Fatalf("Poll(99) ran %d tasks, expected 0", ran)
	}
	if ran := s.Poll(150); ran != 3 {
		t.Fatalf("Poll(150) ran %d tasks, expected 3", ran)
	}
	if !reflect.DeepEqual(order, []string{"a", "b", "c"}) {
		t.Errorf("order = %v, expected [a b c]", order)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestSchedulerChainedTasks(t *testing.T) {
	var s Scheduler
	count := 0
	s.After(0, 10, func() {
		count++
		s.After(10, 10, func() { count++ })
	})

	s.Poll(15)
	if count != 1 {
		t.Errorf("after Poll(15) count = %d, expected 1", count)
	}
	s.Poll(20)
	if count != 2 {
		t.Errorf("after Poll(20) count = %d, expected 2", count)
	}
}

func TestSchedulerClear(t *testing.T) {
	var s Scheduler
	ran := false
	s.After(0, 10, func() { ran = true })
	s.Clear()
	s.Poll(1000)
	if ran {
		t.Error("cleared task should never run")
	}
}
