package link

import (
	"encoding/binary"

	"github.com/2batbox/simba-go/frame"
)

const (
	ipv4ProtoUDP = 17

	// ipv4FragMask covers the low 14 bits of the flags+fragment-offset
	// field: the more-fragments bit and the 13-bit fragment offset.
	ipv4FragMask = 0x3FFF
	// ipv4EvilBit is the reserved flag bit (RFC 3514).
	ipv4EvilBit = 0x8000
)

// ipv4HeaderLen returns the header length in bytes from the IHL nibble.
func ipv4HeaderLen(hdr []byte) int {
	return int(hdr[0]&0x0F) * 4
}

func ipv4TotalLen(hdr []byte) int {
	return int(binary.BigEndian.Uint16(hdr[2:4]))
}

func ipv4FlagsFragOff(hdr []byte) uint16 {
	return binary.BigEndian.Uint16(hdr[6:8])
}

func ipv4Fragmented(hdr []byte) bool {
	return ipv4FlagsFragOff(hdr)&ipv4FragMask != 0
}

func ipv4EvilBitSet(hdr []byte) bool {
	return ipv4FlagsFragOff(hdr)&ipv4EvilBit != 0
}

// ipv4Validate peeks the header without consuming it, checks that the
// declared header and total lengths fit in what's available, that the
// version is 4 and the reserved flag bit is clear, then trims trailing
// padding so the next layer sees exactly the declared payload.
func ipv4Validate(f *frame.Buffer) bool {
	hdr, ok := f.ViewStay(20)
	if !ok {
		return false
	}

	headerLen := ipv4HeaderLen(hdr)
	totalLen := ipv4TotalLen(hdr)
	available := f.Available()

	if available < headerLen || available < totalLen {
		return false
	}
	if hdr[0]>>4 != 4 {
		return false
	}
	if ipv4EvilBitSet(hdr) {
		return false
	}

	return f.TailMoveBack(available - totalLen)
}

// ipv4Next must only be called after ipv4Validate reports true. It advances
// past the (possibly option-bearing) header and inspects the protocol byte;
// fragmented datagrams are never reassembled and always yield End.
func ipv4Next(f *frame.Buffer) Protocol {
	hdrStay, ok := f.ViewStay(20)
	if !ok {
		return End
	}
	headerLen := ipv4HeaderLen(hdrStay)
	fragmented := ipv4Fragmented(hdrStay)
	proto := hdrStay[9]

	if !f.HeadMove(headerLen) {
		return End
	}
	if fragmented {
		return End
	}
	if proto == ipv4ProtoUDP {
		return Udp
	}
	return End
}
