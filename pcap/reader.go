package pcap

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/2batbox/simba-go/frame"
)

// Reader reads frames out of a single classic pcap capture file, in order,
// into a caller-supplied frame.Buffer (see frame.Buffer's ownership note:
// the bytes Load places in the buffer are only valid until the next Load call).
type Reader struct {
	fileName string
	file     *os.File
	src      io.Reader
	order    binary.ByteOrder
	header   GlobalHeader
	digest   *xxhash.Digest
	nextIdx  uint64
}

// NewReader constructs a Reader for fileName without opening it.
func NewReader(fileName string) *Reader {
	return &Reader{fileName: fileName, digest: xxhash.New()}
}

// Open opens the capture file, auto-detects an optional compression
// wrapper, and reads and validates the global header. Every multi-byte
// global-header field is trusted only in the byte order that yields
// MagicNumber; subsequent record headers are read in that same order.
func (r *Reader) Open() error {
	f, err := os.Open(r.fileName)
	if err != nil {
		return fmt.Errorf("pcap: %q is not available for reading: %w", r.fileName, err)
	}

	src, err := wrapDecompressor(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("pcap: %q: %w", r.fileName, err)
	}

	raw := make([]byte, globalHeaderSize)
	if _, err := io.ReadFull(io.TeeReader(src, r.digest), raw); err != nil {
		f.Close()
		return fmt.Errorf("pcap: %q is not a pcap file: %w", r.fileName, err)
	}

	header, order, ok := decodeGlobalHeader(raw)
	if !ok {
		f.Close()
		return fmt.Errorf("pcap: %q: bad magic number, file format is not supported", r.fileName)
	}
	if err := header.validate(); err != nil {
		f.Close()
		return fmt.Errorf("pcap: %q: %w", r.fileName, err)
	}

	r.file = f
	r.src = src
	r.order = order
	r.header = header
	return nil
}

// Close releases the underlying file descriptor.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	return r.file.Close()
}

// Header returns the capture's global header, valid after a successful Open.
func (r *Reader) Header() GlobalHeader { return r.header }

// Digest returns the running xxhash64 of every byte read so far
// (post-decompression), for log correlation only; it has no effect on
// decoding.
func (r *Reader) Digest() uint64 { return r.digest.Sum64() }

// NextFrameIndex is the frame index Load will assign on its next success.
func (r *Reader) NextFrameIndex() uint64 { return r.nextIdx }

// Load reads the next record header and its payload into buf, replacing
// buf's previous contents (frame.Buffer.Reset discards them per §3.5).
// It returns false at end of file or if the declared record length exceeds
// frame.Capacity.
func (r *Reader) Load(buf *frame.Buffer) (bool, error) {
	raw := make([]byte, recordHeaderSize)
	tee := io.TeeReader(r.src, r.digest)
	if _, err := io.ReadFull(tee, raw); err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, fmt.Errorf("pcap: %q: short record header: %w", r.fileName, err)
	}
	record := decodeRecordHeader(raw, r.order)

	if !buf.Reset(int(record.InclLen), r.nextIdx) {
		return false, fmt.Errorf("pcap: %q: frame %d size %d exceeds the frame size limit",
			r.fileName, r.nextIdx, record.InclLen)
	}

	view := make([]byte, record.InclLen)
	if _, err := io.ReadFull(tee, view); err != nil {
		return false, fmt.Errorf("pcap: %q: frame %d: short payload: %w", r.fileName, r.nextIdx, err)
	}
	if !buf.Fill(view) {
		return false, fmt.Errorf("pcap: %q: frame %d: failed to fill frame buffer", r.fileName, r.nextIdx)
	}

	r.nextIdx++
	return true, nil
}
