// Package frame provides the cursor-based byte region shared by the
// protocol-stack walker and the Simba decoder while they process a single
// captured frame.
//
// A Buffer owns one fixed-capacity backing array and exposes four logical
// offsets within it:
//
//	                head               tail
//	                  |                 |
//	  | <- offset ->  | <- available -> | <- padding -> |
//	  |R|R|R|R|R|R|R|R|A|A|A|A|A|A|A|A|A|P|P|P|P|P|P|P|P|
//	  | <-------------------- size -------------------> |
//	begin                                              end
//
// R - already read, A - available to read, P - padding trimmed off the end.
//
// begin and end never move once a frame has been reset; head and tail move
// independently within [begin, end]. Every mutator reports whether it could
// be performed; a failed mutator leaves the buffer unchanged.
package frame

import "fmt"

// Capacity is the fixed size of a Buffer's backing storage.
const Capacity = 65535

// Buffer is a reusable, non-copyable byte region. The zero value is an
// empty buffer ready for Reset; New allocates one.
type Buffer struct {
	data      [Capacity]byte
	offset    int
	available int
	padding   int
	index     uint64
}

// New allocates a Buffer with its backing storage pre-allocated.
func New() *Buffer {
	return &Buffer{}
}

// Index returns the monotonic frame index installed by the last Reset.
func (b *Buffer) Index() uint64 {
	return b.index
}

// Offset returns the number of bytes already consumed (begin..head).
func (b *Buffer) Offset() int {
	return b.offset
}

// Available returns the number of bytes readable (head..tail).
func (b *Buffer) Available() int {
	return b.available
}

// Padding returns the number of bytes trimmed off the end (tail..end).
func (b *Buffer) Padding() int {
	return b.padding
}

// Size returns offset+available+padding, the logical length installed by
// the last successful Reset.
func (b *Buffer) Size() int {
	return b.offset + b.available + b.padding
}

// HasAvailable reports whether at least n bytes are readable.
func (b *Buffer) HasAvailable(n int) bool {
	return n <= b.available
}

// Reset installs a new logical size and rewinds offset and padding to zero.
// It fails, leaving the buffer unchanged, if length exceeds Capacity. The
// caller is expected to fill [0:length) before reading from the buffer.
func (b *Buffer) Reset(length int, index uint64) bool {
	if length > Capacity {
		return false
	}
	b.offset = 0
	b.available = length
	b.padding = 0
	b.index = index
	return true
}

// Fill copies src into the buffer's backing storage starting at begin. It
// does not affect offset/available/padding; call Reset(len(src), idx) first.
func (b *Buffer) Fill(src []byte) bool {
	if len(src) > Capacity {
		return false
	}
	copy(b.data[:], src)
	return true
}

// HeadMove advances head by n bytes, shrinking available and growing offset.
// It requires n <= Available() and is a no-op on failure.
func (b *Buffer) HeadMove(n int) bool {
	if n < 0 || n > b.available {
		return false
	}
	b.offset += n
	b.available -= n
	return true
}

// HeadMoveBack rewinds head by n bytes, growing available and shrinking
// offset. It requires n <= Offset() and is a no-op on failure.
func (b *Buffer) HeadMoveBack(n int) bool {
	if n < 0 || n > b.offset {
		return false
	}
	b.offset -= n
	b.available += n
	return true
}

// TailMove advances tail by n bytes, growing available and shrinking
// padding. It requires n <= Padding() and is a no-op on failure.
func (b *Buffer) TailMove(n int) bool {
	if n < 0 || n > b.padding {
		return false
	}
	b.available += n
	b.padding -= n
	return true
}

// TailMoveBack rewinds tail by n bytes, shrinking available and growing
// padding. It requires n <= Available() and is a no-op on failure.
func (b *Buffer) TailMoveBack(n int) bool {
	if n < 0 || n > b.available {
		return false
	}
	b.available -= n
	b.padding += n
	return true
}

// head returns the absolute byte offset of the current head position.
func (b *Buffer) head() int {
	return b.offset
}

// Read copies len(dst) bytes from head into dst and advances head. It fails
// without copying anything if fewer bytes are available.
func (b *Buffer) Read(dst []byte) bool {
	n := len(dst)
	if n > b.available {
		return false
	}
	copy(dst, b.data[b.head():b.head()+n])
	b.offset += n
	b.available -= n
	return true
}

// View returns a slice of n bytes at the current head position and advances
// head by n. The slice aliases the buffer's backing storage and is only
// valid until the next mutation of the buffer (mirrors the C++ source's
// assign<T>).
func (b *Buffer) View(n int) ([]byte, bool) {
	if n > b.available {
		return nil, false
	}
	v := b.data[b.head() : b.head()+n]
	b.offset += n
	b.available -= n
	return v, true
}

// ViewStay returns a slice of n bytes at the current head position without
// advancing head (mirrors the C++ source's assign_stay<T>).
func (b *Buffer) ViewStay(n int) ([]byte, bool) {
	if n > b.available {
		return nil, false
	}
	return b.data[b.head() : b.head()+n], true
}

// String renders the buffer's bookkeeping fields for diagnostic dumps.
func (b *Buffer) String() string {
	return fmt.Sprintf("Frame [idx=%d off=%d avl=%d pad=%d]", b.index, b.offset, b.available, b.padding)
}
