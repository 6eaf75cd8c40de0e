package link

import (
	"encoding/binary"

	"github.com/2batbox/simba-go/frame"
)

const (
	ethernetHeaderLength = 14
	ethernetMinFrameSize = 64 // IEEE 802.3 minimum frame size; stricter than ethernetHeaderLength on purpose.

	etherTypeIPv4 = 0x0800
	etherTypeIPv6 = 0x86DD
	etherTypeVlan = 0x8100
)

// ethernetValidate requires at least the IEEE 802.3 minimum frame size. This
// is deliberately stricter than ethernetHeaderLength: it rejects obviously
// truncated captures rather than accepting any frame with a complete header.
func ethernetValidate(f *frame.Buffer) bool {
	return f.HasAvailable(ethernetMinFrameSize)
}

// ethernetNext must only be called after ethernetValidate reports true. It
// consumes the 14-byte header (6-byte destination, 6-byte source, 2-byte
// EtherType, big-endian) and maps EtherType to the next protocol.
func ethernetNext(f *frame.Buffer) Protocol {
	hdr, ok := f.View(ethernetHeaderLength)
	if !ok {
		return End
	}

	switch binary.BigEndian.Uint16(hdr[12:14]) {
	case etherTypeIPv4:
		return IPv4
	case etherTypeIPv6:
		return IPv6
	case etherTypeVlan:
		return Vlan
	default:
		return End
	}
}
