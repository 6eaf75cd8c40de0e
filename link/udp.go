package link

import (
	"encoding/binary"

	"github.com/2batbox/simba-go/frame"
)

// udpHeaderLen is src_port + dst_port + length + checksum, all big-endian.
const udpHeaderLen = 8

// udpValidate checks the declared length is at least the header size and
// fits in what's available, then trims trailing padding to exactly that
// length so the Simba decoder sees only the UDP payload.
func udpValidate(f *frame.Buffer) bool {
	hdr, ok := f.ViewStay(udpHeaderLen)
	if !ok {
		return false
	}

	length := int(binary.BigEndian.Uint16(hdr[4:6]))
	available := f.Available()
	if length < udpHeaderLen || available < length {
		return false
	}

	return f.TailMoveBack(available - length)
}

// udpNext advances past the header. UDP payload is the Walker's terminal
// output, so it always returns End; the caller (see Walker, ExtractUDPPayload)
// is the one that decides to stop here rather than treating End as failure.
func udpNext(f *frame.Buffer) Protocol {
	if !f.HeadMove(udpHeaderLen) {
		return End
	}
	return End
}
