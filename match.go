package odz

// Match is one token of an LZ77 parse, in the shape github.com/andybalholm/pack
// uses for its own Match type: a run of unmatched literal bytes followed by
// an optional back-reference.
//
// Unmatched is the number of literal bytes immediately preceding the match
// that must be copied verbatim. Length is the number of bytes the match
// covers; it is 0 only for the final, match-less token that carries any
// trailing unmatched bytes. Distance is how far back in the block to copy
// from, and is meaningless when Length is 0.
type Match struct {
	Unmatched int
	Length    int
	Distance  int
}
