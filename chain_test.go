package odz

import "testing"

func TestHashChainFindsExactRepeat(t *testing.T) {
	data := []byte("abcdefgh" + "abcdefgh")
	var chain hashChain
	chain.reset(data)
	for i := 0; i < 8; i++ {
		chain.insert(i)
	}

	length, dist := chain.bestMatch(8, 32)
	if length != 8 {
		t.Fatalf("length = %d, want 8", length)
	}
	if dist != 8 {
		t.Fatalf("distance = %d, want 8", dist)
	}
}

func TestHashChainNoMatchBelowMinLength(t *testing.T) {
	data := []byte("xyzxyqrst")
	var chain hashChain
	chain.reset(data)
	for i := 0; i < 3; i++ {
		chain.insert(i)
	}
	length, _ := chain.bestMatch(3, 32)
	if length != 0 {
		t.Fatalf("length = %d, want 0 (no 3-byte run repeats)", length)
	}
}

func TestHashChainPrevInvariant(t *testing.T) {
	data := make([]byte, 0, 300)
	for i := 0; i < 100; i++ {
		data = append(data, 'a', 'b', 'c')
	}
	var chain hashChain
	chain.reset(data)
	for i := 0; i+3 <= len(data); i++ {
		chain.insert(i)
	}

	for hv, head := range chain.head {
		pos := head
		last := int32(len(data))
		steps := 0
		for pos >= 0 {
			if pos >= last {
				t.Fatalf("chain for bucket %d is not strictly decreasing", hv)
			}
			if hash3(data[pos:]) != uint32(hv) {
				t.Fatalf("position %d in bucket %d has a different hash", pos, hv)
			}
			last = pos
			pos = chain.prev[pos]
			steps++
			if steps > len(data) {
				t.Fatalf("chain for bucket %d appears to cycle", hv)
			}
		}
	}
}

func TestGreedyAndLazyParseRoundTripViaTokens(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog. the quick brown fox.")

	for _, mode := range []parseMode{greedyParse, lazyParse} {
		tokens := lz77Parse(data, mode, 32)
		reconstructed := make([]byte, 0, len(data))
		pos := 0
		for _, m := range tokens {
			reconstructed = append(reconstructed, data[pos:pos+m.Unmatched]...)
			pos += m.Unmatched
			if m.Length == 0 {
				continue
			}
			start := len(reconstructed) - m.Distance
			for i := 0; i < m.Length; i++ {
				reconstructed = append(reconstructed, reconstructed[start+i])
			}
			pos += m.Length
		}
		if string(reconstructed) != string(data) {
			t.Fatalf("mode %v: token stream does not reconstruct input:\ngot  %q\nwant %q", mode, reconstructed, data)
		}
	}
}
