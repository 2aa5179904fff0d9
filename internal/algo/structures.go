package algo

import (
	"fmt"

	"github.com/san-kum/dsaviz/internal/step"
)

type OpKind int

const (
	OpPush OpKind = iota
	OpPop
)

// Op is one stack or queue operation. Queues read OpPush as enqueue and
// OpPop as dequeue.
type Op struct {
	Kind  OpKind
	Value int
}

func (o Op) String() string {
	if o.Kind == OpPush {
		return fmt.Sprintf("push:%d", o.Value)
	}
	return "pop"
}

// DefaultOps is used when no operations are supplied.
var DefaultOps = []Op{{OpPush, 1}, {OpPush, 2}, {OpPop, 0}}

func Stack(ops []Op) step.Sequence {
	s := []int{}
	r := step.NewRecorder()
	r.Emit(step.ArrayView(s), nil, "Empty stack")
	for _, op := range ops {
		switch op.Kind {
		case OpPush:
			s = append(s, op.Value)
			r.Emit(step.ArrayView(s), ann{step.Pushed: op.Value, step.Index: len(s) - 1},
				fmt.Sprintf("Push %d", op.Value))
		case OpPop:
			if len(s) == 0 {
				r.Emit(step.ArrayView(s), ann{step.Underflow: true}, "Pop on empty stack: underflow")
				continue
			}
			v := s[len(s)-1]
			s = s[:len(s)-1]
			r.Emit(step.ArrayView(s), ann{step.Popped: v}, fmt.Sprintf("Pop %d", v))
		}
	}
	return r.Finish(step.ArrayView(s), nil, "All operations done")
}

func Queue(ops []Op) step.Sequence {
	q := []int{}
	r := step.NewRecorder()
	r.Emit(step.ArrayView(q), nil, "Empty queue")
	for _, op := range ops {
		switch op.Kind {
		case OpPush:
			q = append(q, op.Value)
			r.Emit(step.ArrayView(q), ann{step.Enqueued: op.Value, step.Index: len(q) - 1},
				fmt.Sprintf("Enqueue %d", op.Value))
		case OpPop:
			if len(q) == 0 {
				r.Emit(step.ArrayView(q), ann{step.Underflow: true}, "Dequeue on empty queue: underflow")
				continue
			}
			v := q[0]
			q = q[1:]
			r.Emit(step.ArrayView(q), ann{step.Dequeued: v}, fmt.Sprintf("Dequeue %d", v))
		}
	}
	return r.Finish(step.ArrayView(q), nil, "All operations done")
}

// ListNodes links values into a singly linked list with node i pointing at
// node i+1.
func ListNodes(values []int) []step.ListNode {
	nodes := make([]step.ListNode, len(values))
	for i, v := range values {
		next := i + 1
		if next == len(values) {
			next = step.None
		}
		nodes[i] = step.ListNode{ID: i, Value: v, Next: next}
	}
	return nodes
}

// ListOrder walks nodes from head and returns the visited values.
func ListOrder(nodes []step.ListNode, head int) []int {
	out := []int{}
	for cur, n := head, 0; cur != step.None && n <= len(nodes); cur, n = nodes[cur].Next, n+1 {
		out = append(out, nodes[cur].Value)
	}
	return out
}

func ReverseList(values []int) step.Sequence {
	nodes := ListNodes(values)
	head := 0
	if len(nodes) == 0 {
		head = step.None
	}
	r := step.NewRecorder()
	r.Emit(step.ListView(nodes), ann{step.Head: head}, "Initial list")

	prev, cur := step.None, head
	for cur != step.None {
		next := nodes[cur].Next
		nodes[cur].Next = prev
		r.Emit(step.ListView(nodes), ann{step.Reversing: cur, step.Prev: prev},
			fmt.Sprintf("Point %d back to %s", nodes[cur].Value, nodeLabel(nodes, prev)))
		prev, cur = cur, next
	}
	return r.Finish(step.ListView(nodes), ann{step.Head: prev},
		fmt.Sprintf("Reversed, new head is %s", nodeLabel(nodes, prev)))
}

func nodeLabel(nodes []step.ListNode, id int) string {
	if id == step.None {
		return "null"
	}
	return fmt.Sprint(nodes[id].Value)
}

// Heapify builds a max-heap in place, bottom-up.
func Heapify(input []int) step.Sequence {
	a := clone(input)
	r := step.NewRecorder()
	r.Emit(step.ArrayView(a), nil, "Initial array")
	for i := len(a)/2 - 1; i >= 0; i-- {
		r.Emit(step.ArrayView(a), ann{step.Current: i}, fmt.Sprintf("Sift down from index %d", i))
		siftDown(r, a, i, len(a), nil)
	}
	return r.Finish(step.ArrayView(a), nil, "Max-heap built")
}
