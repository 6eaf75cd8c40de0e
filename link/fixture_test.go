package link

import "github.com/2batbox/simba-go/frame"

// These helpers build synthetic link-layer headers for tests.
// encoding/binary.PutUint16 writes into an existing slice, but test
// fixtures are built incrementally, so plain append-based big-endian
// writers are more convenient here.

func appendUint16BE(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

func appendUint32BE(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func ethernetFrame(etherType uint16, payload []byte) []byte {
	buf := make([]byte, 12) // dst + src MACs, left zeroed
	buf = appendUint16BE(buf, etherType)
	buf = append(buf, payload...)
	for len(buf) < 64 {
		buf = append(buf, 0)
	}
	return buf
}

func vlanTag(innerEtherType uint16, payload []byte) []byte {
	buf := appendUint16BE(nil, 0x0001) // TCI, value not inspected
	buf = appendUint16BE(buf, innerEtherType)
	return append(buf, payload...)
}

func ipv4Packet(protocol uint8, fragOff uint16, payload []byte) []byte {
	totalLen := 20 + len(payload)
	buf := []byte{0x45, 0x00} // version=4, ihl=5, dscp/ecn=0
	buf = appendUint16BE(buf, uint16(totalLen))
	buf = appendUint16BE(buf, 0) // identification
	buf = appendUint16BE(buf, fragOff)
	buf = append(buf, 64, protocol) // ttl, protocol
	buf = appendUint16BE(buf, 0)    // checksum
	buf = append(buf, 1, 2, 3, 4)   // src
	buf = append(buf, 5, 6, 7, 8)   // dst
	return append(buf, payload...)
}

func ipv6Packet(nextHeader uint8, payload []byte) []byte {
	buf := []byte{0x60, 0, 0, 0} // version=6
	buf = appendUint16BE(buf, uint16(len(payload)))
	buf = append(buf, nextHeader, 64) // hop limit
	buf = append(buf, make([]byte, 32)...)
	return append(buf, payload...)
}

func udpDatagram(payload []byte) []byte {
	length := uint16(8 + len(payload))
	buf := appendUint16BE(nil, 1234) // src port
	buf = appendUint16BE(buf, 80)    // dst port
	buf = appendUint16BE(buf, length)
	buf = appendUint16BE(buf, 0) // checksum
	return append(buf, payload...)
}

func newBufferFrom(data []byte) *frame.Buffer {
	b := frame.New()
	b.Fill(data)
	b.Reset(len(data), 0)
	return b
}
