package huffman

import (
	"container/heap"

	"github.com/cmpr-kit/cmpr"
)

// node is one vertex of the frequency tree. Leaves carry a symbol; branches
// only aggregate the weight of their subtrees. Nodes are created inside
// Encode and become garbage as soon as the code table has been derived;
// nothing outside this file ever sees one.
type node struct {
	sym    byte
	weight uint64
	// seq is the insertion order into the queue. Equal weights are popped
	// in insertion order so tree construction is deterministic.
	seq         int
	left, right *node
}

func (n *node) isLeaf() bool {
	return n.left == nil && n.right == nil
}

type nodeQueue []*node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].weight != q[j].weight {
		return q[i].weight < q[j].weight
	}
	return q[i].seq < q[j].seq
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(*node)) }

func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// buildTree counts symbol frequencies over the whole input and assembles
// the Huffman tree: repeatedly merge the two lightest nodes until one root
// remains. The input must not be empty.
func buildTree(data []byte) *node {
	var freqs [alphabetSize]uint64
	for _, sym := range data {
		freqs[sym]++
	}

	queue := make(nodeQueue, 0, alphabetSize)
	seq := 0
	for sym, weight := range freqs {
		if weight == 0 {
			continue
		}
		queue = append(queue, &node{sym: byte(sym), weight: weight, seq: seq})
		seq++
	}
	heap.Init(&queue)

	for queue.Len() > 1 {
		left := heap.Pop(&queue).(*node)
		right := heap.Pop(&queue).(*node)
		heap.Push(&queue, &node{
			weight: left.weight + right.weight,
			seq:    seq,
			left:   left,
			right:  right,
		})
		seq++
	}
	return heap.Pop(&queue).(*node)
}

// assignCodes walks the tree depth-first and records each leaf's code: the
// edge labels from root to leaf, '0' for left and '1' for right. The prefix
// accumulator is threaded through the recursion; no state is shared across
// calls. A tree consisting of a single leaf still gets a one-bit code,
// since a zero-length code can't be written to the stream.
func assignCodes(n *node, prefix string, codes map[byte]string) error {
	if n.isLeaf() {
		if prefix == "" {
			prefix = "0"
		}
		if len(prefix) > MaxCodeLength {
			return cmpr.ErrCodeTooLong
		}
		codes[n.sym] = prefix
		return nil
	}

	if err := assignCodes(n.left, prefix+"0", codes); err != nil {
		return err
	}
	return assignCodes(n.right, prefix+"1", codes)
}
