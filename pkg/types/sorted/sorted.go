package sorted

import (
	"container/heap"
	"io"

	"go-flatdb/util/stream"
)

// HeapItem is the head of one source stream.
type HeapItem[T any] struct {
	Val T
	Src int
}

// Heap is a min-heap of stream heads. Items comparing equal are ordered by
// source index so merging streams in source order is stable.
type Heap[T any] struct {
	less func(a, b T) bool
	list []HeapItem[T]
}

func (h Heap[T]) Less(i, j int) bool {
	if h.less(h.list[i].Val, h.list[j].Val) {
		return true
	}
	if h.less(h.list[j].Val, h.list[i].Val) {
		return false
	}
	return h.list[i].Src < h.list[j].Src
}
func (h Heap[T]) Len() int      { return len(h.list) }
func (h Heap[T]) Swap(i, j int) { h.list[i], h.list[j] = h.list[j], h.list[i] }

func (h *Heap[T]) Push(x any) {
	h.list = append(h.list, x.(HeapItem[T]))
}

func (h *Heap[T]) Pop() any {
	old := h.list
	n := len(old)
	x := old[n-1]
	h.list = old[0 : n-1]
	return x
}

func (h Heap[T]) First() HeapItem[T] {
	return h.list[0]
}

// Merge performs a k-way merge of already sorted sources. It keeps one item
// per source in memory.
func Merge[T any](sources []stream.Reader[T], less func(a, b T) bool) stream.Reader[T] {
	return &merger[T]{
		sources: sources,
		heap:    &Heap[T]{less: less, list: make([]HeapItem[T], 0, len(sources))},
	}
}

type merger[T any] struct {
	sources []stream.Reader[T]
	heap    *Heap[T]
	primed  bool
}

func (m *merger[T]) Next() (T, error) {
	var zero T
	if !m.primed {
		m.primed = true
		for i := range m.sources {
			if err := m.pull(i); err != nil {
				return zero, err
			}
		}
		heap.Init(m.heap)
	}

	if m.heap.Len() == 0 {
		return zero, io.EOF
	}

	head := m.heap.First()
	val, err := m.sources[head.Src].Next()
	if err == io.EOF {
		heap.Pop(m.heap)
	} else if err != nil {
		return zero, err
	} else {
		m.heap.list[0] = HeapItem[T]{Val: val, Src: head.Src}
		heap.Fix(m.heap, 0)
	}
	return head.Val, nil
}

func (m *merger[T]) pull(src int) error {
	val, err := m.sources[src].Next()
	if err == io.EOF {
		return nil
	} else if err != nil {
		return err
	}
	m.heap.list = append(m.heap.list, HeapItem[T]{Val: val, Src: src})
	return nil
}
