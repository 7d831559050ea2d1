package fifo

import "testing"

func TestCompact(t *testing.T) {
	var q Queue[int]
	for i := range 25 {
		q.Enqueue(i)
	}

	for range 6 {
		q.Dequeue()
	}
	if q.head != 6 {
		t.Fatalf("compacted early: head = %d", q.head)
	}

	// 7/25 crosses the waste threshold.
	q.Dequeue()
	if q.head != 0 {
		t.Fatalf("head = %d after compaction", q.head)
	}
	if len(q.slots) != 18 {
		t.Fatalf("len(slots) = %d after compaction", len(q.slots))
	}
}

func TestCompactMinLen(t *testing.T) {
	// A queue at or under the length floor never compacts, no matter
	// how much of it is dead prefix.
	var q Queue[int]
	for i := range 20 {
		q.Enqueue(i)
	}
	for range 19 {
		q.Dequeue()
	}
	if q.head != 19 {
		t.Fatalf("head = %d, want 19", q.head)
	}
	if len(q.slots) != 20 {
		t.Fatalf("len(slots) = %d, want 20", len(q.slots))
	}
}
