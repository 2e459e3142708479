package event

import (
	"container/heap"
	"time"
)

// TaskKind identifies a scheduled one-shot action
type TaskKind int

const (
	// TaskClearNotification removes notification Ref from the active set
	TaskClearNotification TaskKind = iota

	// TaskMirrorDash starts the Mirror dash sub-phase
	TaskMirrorDash
)

// Task is a one-shot action due at a simulated time
type Task struct {
	ID   uint64
	Kind TaskKind
	Due  time.Duration
	Ref  uint64 // Kind-specific reference, e.g. notification ID

	seq   uint64
	index int
}

// Timeline is a min-heap of tasks keyed by due time, ties resolved by insertion order
type Timeline struct {
	tasks  taskHeap
	byID   map[uint64]*Task
	nextID uint64
	seq    uint64
}

func NewTimeline(capacity int) *Timeline {
	return &Timeline{
		tasks: make(taskHeap, 0, capacity),
		byID:  make(map[uint64]*Task, capacity),
	}
}

// Schedule enqueues a task and returns its ID for cancellation
func (t *Timeline) Schedule(kind TaskKind, due time.Duration, ref uint64) uint64 {
	t.nextID++
	t.seq++
	task := &Task{ID: t.nextID, Kind: kind, Due: due, Ref: ref, seq: t.seq}
	heap.Push(&t.tasks, task)
	t.byID[task.ID] = task
	return task.ID
}

// Cancel removes a pending task; returns false if it already ran or never existed
func (t *Timeline) Cancel(id uint64) bool {
	task, ok := t.byID[id]
	if !ok {
		return false
	}
	heap.Remove(&t.tasks, task.index)
	delete(t.byID, id)
	return true
}

// PopDue removes and returns every task with Due <= now, earliest first
func (t *Timeline) PopDue(now time.Duration) []Task {
	var due []Task
	for len(t.tasks) > 0 && t.tasks[0].Due <= now {
		task := heap.Pop(&t.tasks).(*Task)
		delete(t.byID, task.ID)
		due = append(due, *task)
	}
	return due
}

func (t *Timeline) Len() int {
	return len(t.tasks)
}

// Reset drops every pending task
func (t *Timeline) Reset() {
	t.tasks = t.tasks[:0]
	clear(t.byID)
}

type taskHeap []*Task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].Due != h[j].Due {
		return h[i].Due < h[j].Due
	}
	return h[i].seq < h[j].seq
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	task := x.(*Task)
	task.index = len(*h)
	*h = append(*h, task)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	task := old[n-1]
	old[n-1] = nil
	task.index = -1
	*h = old[:n-1]
	return task
}
