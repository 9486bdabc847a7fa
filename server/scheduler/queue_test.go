package scheduler

import "testing"

func TestCommandQueueDrainReturnsArrivalOrder(t *testing.T) {
	q := NewCommandQueue(4)
	cmds := []Command{&fakeCommand{cost: 1}, &fakeCommand{cost: 2}, &fakeCommand{cost: 3}}
	for i, c := range cmds {
		if !q.Submit(Submission{Actor: ActorID{Kind: KindPlayer, ID: int32(i)}, Command: c}) {
			t.Fatalf("submit %d: queue reported full", i)
		}
	}
	got := q.Drain()
	if len(got) != len(cmds) {
		t.Fatalf("drained %d submissions, want %d", len(got), len(cmds))
	}
	for i, s := range got {
		if s.Command != cmds[i] {
			t.Fatalf("submission %d out of order", i)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("queue not empty after drain: %d", q.Len())
	}
}

func TestCommandQueueSubmitReportsFullAtCapacity(t *testing.T) {
	q := NewCommandQueue(1)
	if !q.Submit(Submission{Command: &fakeCommand{}}) {
		t.Fatalf("first submit should succeed")
	}
	if q.Submit(Submission{Command: &fakeCommand{}}) {
		t.Fatalf("second submit should report full")
	}
}
