package link

import (
	"encoding/binary"

	"github.com/2batbox/simba-go/frame"
)

// vlanHeaderLength is the 802.1Q tag: 2-byte TCI + 2-byte inner EtherType.
const vlanHeaderLength = 4

func vlanValidate(f *frame.Buffer) bool {
	return f.HasAvailable(vlanHeaderLength)
}

// vlanNext consumes the 4-byte tag and maps the inner EtherType the same
// way ethernetNext does. Nested VLAN tags are permitted: a VLAN inner
// EtherType of 0x8100 simply re-enters this decoder via the Walker.
func vlanNext(f *frame.Buffer) Protocol {
	hdr, ok := f.View(vlanHeaderLength)
	if !ok {
		return End
	}

	switch binary.BigEndian.Uint16(hdr[2:4]) {
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
