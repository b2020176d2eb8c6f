package odz

import "encoding/binary"

// blockSize is B, the maximum number of raw bytes carried in one block.
const blockSize = 1 << 20

type blockType uint8

const (
	blockStored  blockType = 0
	blockHuffman blockType = 1
)

func flagByte(last bool, kind blockType) byte {
	b := byte(kind) << 1
	if last {
		b |= 1
	}
	return b
}

func appendU32(dst []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

// encodeBlock appends one encoded block for raw to dst and returns the
// extended slice. last marks this as the stream's final block.
func encodeBlock(dst []byte, raw []byte, last bool, mode parseMode, maxChainSteps int) []byte {
	if len(raw) == 0 {
		dst = append(dst, flagByte(last, blockStored))
		dst = appendU32(dst, 0)
		return dst
	}

	payload := huffmanEncodeBlock(raw, mode, maxChainSteps)

	if len(payload) >= len(raw) {
		dst = append(dst, flagByte(last, blockStored))
		dst = appendU32(dst, uint32(len(raw)))
		dst = append(dst, raw...)
		return dst
	}

	dst = append(dst, flagByte(last, blockHuffman))
	dst = appendU32(dst, uint32(len(raw)))
	dst = appendU32(dst, uint32(len(payload)))
	dst = append(dst, payload...)
	return dst
}

// huffmanEncodeBlock returns the Huffman-coded payload (tree header plus
// token stream) for raw, with no STORED-vs-HUFFMAN decision made yet.
func huffmanEncodeBlock(raw []byte, mode parseMode, maxChainSteps int) []byte {
	tokens := lz77Parse(raw, mode, maxChainSteps)

	var litFreq [numLitSyms]uint32
	var distFreq [numDistSyms]uint32
	pos := 0
	for _, m := range tokens {
		for _, b := range raw[pos : pos+m.Unmatched] {
			litFreq[b]++
		}
		pos += m.Unmatched
		if m.Length == 0 {
			continue
		}
		lc := lengthCode(m.Length)
		litFreq[endOfBlock+1+lc]++
		distFreq[distanceCode(m.Distance)]++
		pos += m.Length
	}
	litFreq[endOfBlock]++

	litEnc := newHuffmanEncoder(numLitSyms)
	litLengths := litEnc.generate(litFreq[:], maxCodeLen)
	distEnc := newHuffmanEncoder(numDistSyms)
	distLengths := distEnc.generate(distFreq[:], maxCodeLen)

	bw := newBitWriter()
	writeTrees(bw, litLengths, distLengths)
	pos = 0
	for _, m := range tokens {
		for _, b := range raw[pos : pos+m.Unmatched] {
			bw.writeCode(litEnc.codes[b])
		}
		pos += m.Unmatched
		if m.Length == 0 {
			continue
		}
		lc := lengthCode(m.Length)
		bw.writeCode(litEnc.codes[endOfBlock+1+lc])
		if extra := lengthExtraBits[lc]; extra > 0 {
			bw.writeBits(uint32(m.Length-minMatchLength-lengthBase[lc]), uint(extra))
		}
		dc := distanceCode(m.Distance)
		bw.writeCode(distEnc.codes[dc])
		if extra := distExtraBits[dc]; extra > 0 {
			bw.writeBits(uint32(m.Distance-1-distBase[dc]), uint(extra))
		}
		pos += m.Length
	}
	bw.writeCode(litEnc.codes[endOfBlock])

	return bw.flush()
}
