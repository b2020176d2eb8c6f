package odz

import (
	"encoding/binary"
	"io"
)

const formatVersion = 2

var streamMagic = [3]byte{'O', 'D', 'Z'}

const headerSize = 12 // 3 magic + 1 version + 8 original size

// CompressionLevel selects a tradeoff between match-finder effort and
// speed. It only affects compression; decompression is level-agnostic.
type CompressionLevel int

const (
	Fast CompressionLevel = iota
	Default
	Best
)

type levelParams struct {
	mode          parseMode
	maxChainSteps int
}

func (l CompressionLevel) params() levelParams {
	switch l {
	case Fast:
		return levelParams{mode: greedyParse, maxChainSteps: 1}
	case Best:
		return levelParams{mode: lazyParse, maxChainSteps: 32}
	default:
		return levelParams{mode: lazyParse, maxChainSteps: 8}
	}
}

// Options configures Compress and Decompress. A nil *Options is equivalent
// to &Options{Level: Default}.
type Options struct {
	Level    CompressionLevel
	Progress Progress
}

func (o *Options) level() CompressionLevel {
	if o == nil {
		return Default
	}
	return o.Level
}

func (o *Options) progress() Progress {
	if o == nil {
		return nil
	}
	return o.Progress
}

// Compress reads exactly size bytes from src and writes a complete odz
// stream to dst: a 12-byte header followed by one or more blocks.
func Compress(dst io.Writer, src io.Reader, size int64, opts *Options) *Error {
	if size < 0 {
		return newError(StatusFormat, "negative size")
	}
	params := opts.level().params()
	progress := opts.progress()

	var header [headerSize]byte
	copy(header[0:3], streamMagic[:])
	header[3] = formatVersion
	binary.LittleEndian.PutUint64(header[4:12], uint64(size))
	if _, err := dst.Write(header[:]); err != nil {
		return wrapError(StatusIO, err)
	}

	raw := make([]byte, blockSize)
	var out []byte
	remaining := size
	var processed uint64

	for {
		chunk := int64(blockSize)
		if remaining < chunk {
			chunk = remaining
		}
		if chunk > 0 {
			if _, err := io.ReadFull(src, raw[:chunk]); err != nil {
				return wrapError(StatusIO, err)
			}
		}
		remaining -= chunk
		processed += uint64(chunk)
		last := remaining == 0

		out = encodeBlock(out[:0], raw[:chunk], last, params.mode, params.maxChainSteps)
		if _, err := dst.Write(out); err != nil {
			return wrapError(StatusIO, err)
		}

		if progress != nil && progress(processed, uint64(size)) {
			return newError(StatusIO, "aborted by progress callback")
		}

		if last {
			return nil
		}
	}
}

// Decompress reads a complete odz stream from src and writes the
// reconstructed bytes to dst.
func Decompress(dst io.Writer, src io.Reader, opts *Options) *Error {
	progress := opts.progress()

	var header [headerSize]byte
	if _, err := io.ReadFull(src, header[:]); err != nil {
		return wrapError(StatusIO, err)
	}
	if header[0] != streamMagic[0] || header[1] != streamMagic[1] || header[2] != streamMagic[2] {
		return newError(StatusFormat, "bad magic")
	}
	if header[3] != formatVersion {
		return newError(StatusFormat, "unsupported version")
	}
	total := binary.LittleEndian.Uint64(header[4:12])

	raw := make([]byte, blockSize)
	var llTab, distTab decodeTable
	var processed uint64

	for {
		var flag [1]byte
		if _, err := io.ReadFull(src, flag[:]); err != nil {
			return wrapError(StatusIO, err)
		}
		last := flag[0]&1 != 0
		kind := (flag[0] >> 1) & 3

		var rawSizeBuf [4]byte
		if _, err := io.ReadFull(src, rawSizeBuf[:]); err != nil {
			return wrapError(StatusIO, err)
		}
		rawSize := binary.LittleEndian.Uint32(rawSizeBuf[:])
		if rawSize > blockSize {
			return newError(StatusCorrupt, "block raw size exceeds block size")
		}

		switch blockType(kind) {
		case blockStored:
			if rawSize > 0 {
				if _, err := io.ReadFull(src, raw[:rawSize]); err != nil {
					return wrapError(StatusIO, err)
				}
			}

		case blockHuffman:
			var compSizeBuf [4]byte
			if _, err := io.ReadFull(src, compSizeBuf[:]); err != nil {
				return wrapError(StatusIO, err)
			}
			compSize := binary.LittleEndian.Uint32(compSizeBuf[:])
			comp := make([]byte, compSize)
			if compSize > 0 {
				if _, err := io.ReadFull(src, comp); err != nil {
					return wrapError(StatusIO, err)
				}
			}
			if err := decodeHuffmanBlock(raw[:rawSize], comp, &llTab, &distTab); err != nil {
				return err
			}

		default:
			return newError(StatusFormat, "unknown block type")
		}

		if _, err := dst.Write(raw[:rawSize]); err != nil {
			return wrapError(StatusIO, err)
		}
		processed += uint64(rawSize)

		if progress != nil && progress(processed, total) {
			return newError(StatusIO, "aborted by progress callback")
		}

		if last {
			break
		}
	}

	if processed != total {
		return newError(StatusCorrupt, "decompressed size does not match header")
	}
	return nil
}
