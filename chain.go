package odz

// hashChain is an LZ77 hash-chain match finder over a single block's raw
// bytes. It is grounded on github.com/andybalholm/pack's HashChain type
// (chain.go): a hash table of chain heads plus a per-position "prev"
// array linking positions that share a hash bucket, walked newest first.
//
// Unlike a cross-block sliding-window hash chain, odz's match finder has
// no history beyond its own block: every block is matched purely against
// itself, so each block can be decoded without reference to any other.
type hashChain struct {
	head []int32 // hashSize buckets; -1 means empty
	prev []int32 // one entry per block position; -1 means no earlier link
	data []byte
}

const (
	hashBits = 15
	hashSize = 1 << hashBits

	// hashMul is the 0x1e35a7bd multiplicative-hash constant (the one
	// snappy and LZ4 use), here applied to a 3-byte window.
	hashMul = 0x1e35a7bd
)

func (h *hashChain) reset(data []byte) {
	if h.head == nil {
		h.head = make([]int32, hashSize)
	}
	for i := range h.head {
		h.head[i] = -1
	}
	if cap(h.prev) < len(data) {
		h.prev = make([]int32, len(data))
	} else {
		h.prev = h.prev[:len(data)]
	}
	h.data = data
}

func hash3(b []byte) uint32 {
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
	return (v * hashMul) >> (32 - hashBits)
}

// insert adds pos to its hash bucket's chain. A position with fewer than
// 3 bytes left in h.data has no hash and is ignored.
func (h *hashChain) insert(pos int) {
	if pos+3 > len(h.data) {
		return
	}
	hv := hash3(h.data[pos:])
	h.prev[pos] = h.head[hv]
	h.head[hv] = int32(pos)
}

// absoluteMatch is a candidate match expressed as absolute block offsets,
// the way chain.go's Search reports candidates before they are turned
// into the Unmatched/Length/Distance token shape.
type absoluteMatch struct {
	start, end, matchStart int
}

func (m absoluteMatch) length() int { return m.end - m.start }

// search walks pos's hash chain up to maxChainSteps links, extending each
// same-hash candidate forward and backward and appending it to dst only
// when it strictly improves on the best found so far. This mirrors
// chain.go's Search: the result is a short list of strictly increasing
// candidates, so the last entry (if any) is always the best.
func (h *hashChain) search(dst []absoluteMatch, pos, min, max, maxChainSteps int) []absoluteMatch {
	data := h.data
	if pos+3 > len(data) {
		return dst
	}

	best := 0
	candidate := h.head[hash3(data[pos:])]
	for steps := 0; candidate >= 0 && steps < maxChainSteps; steps++ {
		c := int(candidate)
		if pos-c > maxDistance {
			break
		}
		if data[c] == data[pos] && data[c+1] == data[pos+1] && data[c+2] == data[pos+2] {
			end := extendForward(data, c+3, pos+3, max)
			start := pos
			m := c
			for start > min && m > 0 && data[start-1] == data[m-1] {
				start--
				m--
			}
			if end-start > best {
				dst = append(dst, absoluteMatch{start: start, end: end, matchStart: m})
				best = end - start
			}
		}
		candidate = h.prev[c]
	}
	return dst
}

func extendForward(data []byte, i, j, limit int) int {
	for j < limit && data[i] == data[j] {
		i++
		j++
	}
	return j
}

// bestMatch finds the single longest match at pos, or reports none.
func (h *hashChain) bestMatch(pos, maxChainSteps int) (length, distance int) {
	var buf [4]absoluteMatch
	// min == pos disables backward extension: greedy/lazy parsing only
	// ever wants a match that starts exactly at pos.
	matches := h.search(buf[:0], pos, pos, len(h.data), maxChainSteps)
	if len(matches) == 0 {
		return 0, 0
	}
	m := matches[len(matches)-1]
	l := m.length()
	if l < minMatchLength {
		return 0, 0
	}
	if l > maxMatchLength {
		l = maxMatchLength
	}
	return l, m.start - m.matchStart
}
