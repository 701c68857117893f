// Package buffer provides Block, a growable owned byte sequence with
// bounds-checked copy helpers, sub-byte bit-range access, and hex/base64
// round-trips.
package buffer

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"

	"github.com/pkg/errors"
)

// Block is a dynamically sized byte sequence. The zero value is an empty
// block ready to use. Unlike a raw slice, out-of-range copy offsets are
// clamped rather than panicking, and resizing can optionally zero-fill the
// newly exposed tail.
type Block struct {
	data []byte
}

// New creates a zero-filled block of the given size.
func New(size int) *Block {
	if size <= 0 {
		return &Block{}
	}
	return &Block{data: make([]byte, size)}
}

// FromBytes creates a block holding a copy of the given bytes.
func FromBytes(src []byte) *Block {
	b := &Block{data: make([]byte, len(src))}
	copy(b.data, src)
	return b
}

// Size returns the number of bytes in the block.
func (b *Block) Size() int {
	return len(b.data)
}

// Bytes returns the block's contents. The slice aliases the block's storage
// and is invalidated by the next resize.
func (b *Block) Bytes() []byte {
	return b.data
}

// SetSize resizes the block to newSize bytes, preserving as much existing
// content as fits. When growing, zeroInit controls whether the new tail is
// zero-filled; when it is false the tail contents are unspecified.
func (b *Block) SetSize(newSize int, zeroInit bool) {
	if newSize <= 0 {
		b.data = nil
		return
	}
	if newSize <= cap(b.data) {
		old := len(b.data)
		b.data = b.data[:newSize]
		if zeroInit && newSize > old {
			tail := b.data[old:]
			for i := range tail {
				tail[i] = 0
			}
		}
		return
	}
	grown := make([]byte, newSize)
	copy(grown, b.data)
	b.data = grown
}

// EnsureSize grows the block to at least minimumSize. It never shrinks.
func (b *Block) EnsureSize(minimumSize int, zeroInit bool) {
	if len(b.data) < minimumSize {
		b.SetSize(minimumSize, zeroInit)
	}
}

// Fill sets every byte in the block to value.
func (b *Block) Fill(value byte) {
	for i := range b.data {
		b.data[i] = value
	}
}

// Append grows the block and copies src onto the end.
func (b *Block) Append(src []byte) {
	b.data = append(b.data, src...)
}

// CopyFrom copies src into the block starting at offset. A negative offset
// trims the front of src instead; bytes that would land beyond the block's
// end are dropped. The block is never resized.
func (b *Block) CopyFrom(src []byte, offset int) {
	if offset < 0 {
		if -offset >= len(src) {
			return
		}
		src = src[-offset:]
		offset = 0
	}
	if offset >= len(b.data) {
		return
	}
	copy(b.data[offset:], src)
}

// CopyTo copies from the block starting at offset into dst. A negative
// offset zero-fills the head of dst; any part of dst that extends past the
// block's end is zero-filled too.
func (b *Block) CopyTo(dst []byte, offset int) {
	if offset < 0 {
		n := -offset
		if n > len(dst) {
			n = len(dst)
		}
		for i := 0; i < n; i++ {
			dst[i] = 0
		}
		dst = dst[n:]
		offset = 0
	}
	var n int
	if offset < len(b.data) {
		n = copy(dst, b.data[offset:])
	}
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// RemoveSection deletes n bytes starting at start, closing the gap.
// Out-of-range values are clamped.
func (b *Block) RemoveSection(start, n int) {
	if start < 0 || n <= 0 || start >= len(b.data) {
		return
	}
	if start+n >= len(b.data) {
		b.data = b.data[:start]
		return
	}
	b.data = append(b.data[:start], b.data[start+n:]...)
}

// Matches reports whether the block's contents equal the given bytes.
func (b *Block) Matches(other []byte) bool {
	return bytes.Equal(b.data, other)
}

// GetBitRange reads numBits bits starting at bit offset start and returns
// them as an integer. Bits are numbered from the least significant bit of
// byte 0 upward. Bits beyond the end of the block read as zero. numBits is
// capped at 32.
func (b *Block) GetBitRange(start, numBits int) uint32 {
	if numBits > 32 {
		numBits = 32
	}
	var result uint32
	bitsSoFar := 0
	byteIndex := start >> 3
	offsetInByte := start & 7

	for numBits > 0 && byteIndex < len(b.data) {
		bitsThisTime := 8 - offsetInByte
		if bitsThisTime > numBits {
			bitsThisTime = numBits
		}
		mask := uint32(0xff) >> (8 - bitsThisTime)
		result |= ((uint32(b.data[byteIndex]) >> offsetInByte) & mask) << bitsSoFar
		bitsSoFar += bitsThisTime
		numBits -= bitsThisTime
		byteIndex++
		offsetInByte = 0
	}
	return result
}

// SetBitRange writes the low numBits bits of value into the block starting
// at bit offset start, using the same bit numbering as GetBitRange. Writes
// beyond the end of the block are dropped.
func (b *Block) SetBitRange(start, numBits int, value uint32) {
	if numBits > 32 {
		numBits = 32
	}
	byteIndex := start >> 3
	offsetInByte := start & 7

	for numBits > 0 && byteIndex < len(b.data) {
		bitsThisTime := 8 - offsetInByte
		if bitsThisTime > numBits {
			bitsThisTime = numBits
		}
		mask := byte(0xff) >> (8 - bitsThisTime)
		b.data[byteIndex] &^= mask << offsetInByte
		b.data[byteIndex] |= (byte(value) & mask) << offsetInByte
		value >>= bitsThisTime
		numBits -= bitsThisTime
		byteIndex++
		offsetInByte = 0
	}
}

// ToHex returns the block's contents as a lowercase hex string.
func (b *Block) ToHex() string {
	return hex.EncodeToString(b.data)
}

// LoadHex replaces the block's contents with bytes parsed from a hex string.
// Characters that aren't hex digits (whitespace, punctuation) are skipped,
// so dumps with separators load cleanly. A trailing unpaired digit is an
// error.
func (b *Block) LoadHex(s string) error {
	cleaned := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') {
			cleaned = append(cleaned, c)
		}
	}
	decoded, err := hex.DecodeString(string(cleaned))
	if err != nil {
		return errors.Wrap(err, "loading hex")
	}
	b.data = decoded
	return nil
}

// ToBase64 returns the block's contents in standard (RFC 4648) base64.
func (b *Block) ToBase64() string {
	return base64.StdEncoding.EncodeToString(b.data)
}

// FromBase64 replaces the block's contents with the decoded bytes. The
// block is left unchanged on error.
func (b *Block) FromBase64(s string) error {
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return errors.Wrap(err, "decoding base64")
	}
	b.data = decoded
	return nil
}
