package link

import (
	"encoding/binary"

	"github.com/2batbox/simba-go/frame"
)

const (
	ipv6HeaderLen = 40
	ipv6ProtoUDP  = 17
)

func ipv6PayloadLen(hdr []byte) int {
	return int(binary.BigEndian.Uint16(hdr[4:6]))
}

// ipv6Validate peeks the 40-byte fixed header, checks the version field and
// that payload_len bytes actually follow, then trims trailing padding.
// Extension headers are not supported; see ipv6Next.
func ipv6Validate(f *frame.Buffer) bool {
	hdr, ok := f.ViewStay(ipv6HeaderLen)
	if !ok {
		return false
	}
	if hdr[0]>>4 != 6 {
		return false
	}

	available := f.Available()
	pktSize := ipv6HeaderLen + ipv6PayloadLen(hdr)
	if available < pktSize {
		return false
	}

	return f.TailMoveBack(available - pktSize)
}

// ipv6Next advances past the fixed header and inspects next_header. IPv6
// extension headers are not understood: any next_header other than UDP
// yields End.
func ipv6Next(f *frame.Buffer) Protocol {
	hdr, ok := f.View(ipv6HeaderLen)
	if !ok {
		return End
	}
	if hdr[6] == ipv6ProtoUDP {
		return Udp
	}
	return End
}
