// Package odz implements a block-oriented, DEFLATE-class lossless byte
// stream compressor and decompressor.
//
// A stream is a 12-byte header (magic, format version, original size)
// followed by one or more independent blocks, each either stored verbatim
// or entropy-coded with LZ77 back-references and canonical Huffman
// coding. The container is private to odz: it is not wire-compatible with
// DEFLATE, zlib, or gzip, even though it reuses DEFLATE's well-known
// length/distance alphabet and a two-level canonical Huffman decode table
// in the same shape compress/flate uses internally.
package odz
