package odz

// Progress is invoked synchronously after every block is written or read.
// processed and total are measured in uncompressed bytes. Returning true
// aborts the operation; Compress/Decompress then return a StatusIO error.
//
// The callback must not call back into Compress or Decompress; it is the
// only externally observable interleaving point in the codec.
type Progress func(processed, total uint64) (abort bool)
