// Package pcap reads the classic (microsecond-resolution) pcap capture file
// format into frame.Buffer instances, transparently decompressing
// gzip/zstd/lz4-wrapped captures and tracking a running content digest for
// log correlation.
package pcap

import (
	"encoding/binary"
	"fmt"
)

// MagicNumber is the classic pcap global header's magic number, read in the
// capture file's native byte order.
const MagicNumber uint32 = 0xA1B2C3D4

// minVersionMajor and minVersionMinor are the oldest pcap format version
// this reader accepts.
const (
	minVersionMajor uint16 = 2
	minVersionMinor uint16 = 3
)

// FrameSizeLimit bounds GlobalHeader.Snaplen; it matches frame.Capacity.
const FrameSizeLimit = 0xFFFF

// globalHeaderSize is the on-disk size of GlobalHeader.
const globalHeaderSize = 24

// recordHeaderSize is the on-disk size of RecordHeader.
const recordHeaderSize = 16

// GlobalHeader is the 24-byte header at the start of every classic pcap
// capture file.
type GlobalHeader struct {
	MagicNumber   uint32
	VersionMajor  uint16
	VersionMinor  uint16
	ThisZone      int32
	SigFigs       uint32
	Snaplen       uint32
	Network       uint32
}

// decodeGlobalHeader parses raw (exactly globalHeaderSize bytes) against
// both byte orders, choosing whichever one yields MagicNumber. It reports
// the chosen order and whether one was found at all.
func decodeGlobalHeader(raw []byte) (GlobalHeader, binary.ByteOrder, bool) {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		h := GlobalHeader{
			MagicNumber:  order.Uint32(raw[0:4]),
			VersionMajor: order.Uint16(raw[4:6]),
			VersionMinor: order.Uint16(raw[6:8]),
			ThisZone:     int32(order.Uint32(raw[8:12])),
			SigFigs:      order.Uint32(raw[12:16]),
			Snaplen:      order.Uint32(raw[16:20]),
			Network:      order.Uint32(raw[20:24]),
		}
		if h.MagicNumber == MagicNumber {
			return h, order, true
		}
	}
	return GlobalHeader{}, nil, false
}

// validate reports an error if h fails any of the classic-format
// invariants a reader must enforce before trusting record headers.
func (h GlobalHeader) validate() error {
	isOldVersion := h.VersionMajor < minVersionMajor ||
		(h.VersionMajor == minVersionMajor && h.VersionMinor < minVersionMinor)
	if isOldVersion {
		return fmt.Errorf("pcap: unsupported format version %d.%d, need >= %d.%d",
			h.VersionMajor, h.VersionMinor, minVersionMajor, minVersionMinor)
	}
	if h.Snaplen > FrameSizeLimit {
		return fmt.Errorf("pcap: snaplen %d exceeds the frame size limit %d", h.Snaplen, FrameSizeLimit)
	}
	return nil
}

func (h GlobalHeader) String() string {
	return fmt.Sprintf("pcap_hdr [ magic=0x%x version=%d.%d thiszone=%d sigfigs=%d snaplen=%d network=%d ]",
		h.MagicNumber, h.VersionMajor, h.VersionMinor, h.ThisZone, h.SigFigs, h.Snaplen, h.Network)
}

// RecordHeader precedes every captured frame's bytes.
type RecordHeader struct {
	TsSec   uint32
	TsUsec  uint32
	InclLen uint32
	OrigLen uint32
}

func decodeRecordHeader(raw []byte, order binary.ByteOrder) RecordHeader {
	return RecordHeader{
		TsSec:   order.Uint32(raw[0:4]),
		TsUsec:  order.Uint32(raw[4:8]),
		InclLen: order.Uint32(raw[8:12]),
		OrigLen: order.Uint32(raw[12:16]),
	}
}
