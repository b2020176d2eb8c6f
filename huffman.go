package odz

import "container/heap"

// maxCodeLen is L_max: the longest canonical Huffman codeword odz will
// ever emit or accept. It doubles as the two-level decode table's primary
// lookup width plus the deepest overflow, matching compress/flate's
// internal convention of bounding code length to fit a 4-bit length field.
const maxCodeLen = 15

// hcode is one canonical Huffman codeword: the low len bits of code are
// the LSB-first bit pattern to emit, already bit-reversed from the
// canonical MSB-first code value.
type hcode struct {
	code uint16
	len  uint8
}

// huffmanEncoder derives length-limited canonical codes from symbol
// frequencies and holds them for emission.
type huffmanEncoder struct {
	codes []hcode
}

func newHuffmanEncoder(n int) *huffmanEncoder {
	return &huffmanEncoder{codes: make([]hcode, n)}
}

// generate builds length-limited code lengths for freq and derives
// canonical codes from them, returning the lengths so callers can also
// serialize the code table.
func (e *huffmanEncoder) generate(freq []uint32, maxLen int) []int {
	lengths := buildLengths(freq, maxLen)
	assignCanonicalCodes(lengths, e.codes)
	return lengths
}

// huffTreeNode is an internal or leaf node of an unconstrained Huffman
// tree built by repeated pairwise merge, container/heap-based the way
// SQU1DMAN6-sqar's pkg/huffman.go builds its tree.
type huffTreeNode struct {
	weight      uint64
	sym         int
	left, right *huffTreeNode
	seq         int // insertion order, breaks weight ties deterministically
}

type huffHeap []*huffTreeNode

func (h huffHeap) Len() int { return len(h) }
func (h huffHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}
func (h huffHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *huffHeap) Push(x any)   { *h = append(*h, x.(*huffTreeNode)) }
func (h *huffHeap) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// buildLengths derives code lengths for freq, guaranteeing every nonzero
// length is at most maxLen. Symbols with freq == 0 get length 0 and are
// never assigned a codeword.
//
// Lengths are built by repeatedly constructing an ordinary (unconstrained)
// Huffman tree over frequencies clamped to a growing floor, doubling the
// floor until the resulting tree's depth fits within maxLen. Clamping low
// frequencies up flattens the tree; this is the technique
// github.com/andybalholm/brotli's entropy encoder uses to produce
// length-limited codes without a separate rebalancing pass.
func buildLengths(freq []uint32, maxLen int) []int {
	lengths := make([]int, len(freq))

	type active struct {
		sym int
		w   uint32
	}
	var actives []active
	for i, f := range freq {
		if f > 0 {
			actives = append(actives, active{sym: i, w: f})
		}
	}

	switch len(actives) {
	case 0:
		return lengths
	case 1:
		// A single active symbol needs one bit to have a well-formed
		// bitstream, even though the Kraft sum is under-subscribed.
		lengths[actives[0].sym] = 1
		return lengths
	}

	for countLimit := uint64(1); ; countLimit *= 2 {
		h := make(huffHeap, len(actives))
		for i, a := range actives {
			w := uint64(a.w)
			if w < countLimit {
				w = countLimit
			}
			h[i] = &huffTreeNode{weight: w, sym: a.sym, seq: i}
		}
		heap.Init(&h)

		seq := len(actives)
		for h.Len() > 1 {
			left := heap.Pop(&h).(*huffTreeNode)
			right := heap.Pop(&h).(*huffTreeNode)
			heap.Push(&h, &huffTreeNode{
				weight: left.weight + right.weight,
				left:   left,
				right:  right,
				seq:    seq,
			})
			seq++
		}

		root := h[0]
		for i := range lengths {
			lengths[i] = 0
		}
		if maxDepth := assignDepths(root, 0, lengths); maxDepth <= maxLen {
			return lengths
		}
	}
}

func assignDepths(node *huffTreeNode, depth int, lengths []int) int {
	if node.left == nil && node.right == nil {
		d := depth
		if d == 0 {
			d = 1
		}
		lengths[node.sym] = d
		return d
	}
	ld := assignDepths(node.left, depth+1, lengths)
	rd := assignDepths(node.right, depth+1, lengths)
	if ld > rd {
		return ld
	}
	return rd
}

// assignCanonicalCodes derives canonical Huffman codes from a set of code
// lengths: symbols are ordered first by length, then by symbol value, and
// assigned consecutive code values within each length.
func assignCanonicalCodes(lengths []int, codes []hcode) {
	var count [maxCodeLen + 1]int
	for _, l := range lengths {
		if l > 0 {
			count[l]++
		}
	}

	var nextCode [maxCodeLen + 1]int
	code := 0
	for l := 1; l <= maxCodeLen; l++ {
		code = (code + count[l-1]) << 1
		nextCode[l] = code
	}

	for i, l := range lengths {
		if l == 0 {
			codes[i] = hcode{}
			continue
		}
		c := nextCode[l]
		nextCode[l]++
		codes[i] = hcode{code: reverseBits(uint16(c), l), len: uint8(l)}
	}
}

// reverseBits reverses the low nbits bits of v.
func reverseBits(v uint16, nbits int) uint16 {
	var r uint16
	for i := 0; i < nbits; i++ {
		r = (r << 1) | (v & 1)
		v >>= 1
	}
	return r
}
