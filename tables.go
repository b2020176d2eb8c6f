package odz

// The literal/length and distance alphabets follow the well-known DEFLATE
// allocation (RFC 1951 §3.2.5): 256 literal byte values, one end-of-block
// symbol, and 29 length codes in the literal/length alphabet, paired with a
// 30-symbol distance alphabet. odz reuses these tables verbatim; only the
// container around them is private.

const (
	numLitSyms  = 286 // 256 literals + end-of-block + 29 length codes
	numDistSyms = 30

	endOfBlock = 256 // symbol value for end-of-block

	minMatchLength = 3
	maxMatchLength = 258

	maxDistance = 32768
)

// lengthBase[i] + 3 is the smallest match length encoded by length code i.
// lengthExtraBits[i] extra bits, read after the code, are added to that base.
var lengthBase = [29]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 10,
	12, 14, 16, 20, 24, 28, 32, 40, 48, 56,
	64, 80, 96, 112, 128, 160, 192, 224, 255,
}

var lengthExtraBits = [29]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1,
	1, 1, 2, 2, 2, 2, 3, 3, 3, 3,
	4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// distBase[i] + 1 is the smallest distance encoded by distance code i.
// distExtraBits[i] extra bits, read after the code, are added to that base.
var distBase = [30]int{
	0x000000, 0x000001, 0x000002, 0x000003, 0x000004,
	0x000006, 0x000008, 0x00000c, 0x000010, 0x000018,
	0x000020, 0x000030, 0x000040, 0x000060, 0x000080,
	0x0000c0, 0x000100, 0x000180, 0x000200, 0x000300,
	0x000400, 0x000600, 0x000800, 0x000c00, 0x001000,
	0x001800, 0x002000, 0x003000, 0x004000, 0x006000,
}

var distExtraBits = [30]uint8{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7, 8, 8,
	9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// lengthCode returns the length-code index (0..28) for a match length in
// [minMatchLength, maxMatchLength].
func lengthCode(length int) int {
	want := length - minMatchLength
	for i := len(lengthBase) - 1; i >= 0; i-- {
		if want >= lengthBase[i] {
			return i
		}
	}
	return 0
}

// distanceCode returns the distance-code index (0..29) for a match distance
// in [1, maxDistance].
func distanceCode(dist int) int {
	want := dist - 1
	for i := len(distBase) - 1; i >= 0; i-- {
		if want >= distBase[i] {
			return i
		}
	}
	return 0
}
