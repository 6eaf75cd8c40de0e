package simba

import (
	"encoding/binary"
	"fmt"

	"github.com/2batbox/simba-go/frame"
)

// MsgFlags is the bitset carried by MarketDataPacketHeader.MsgFlags.
type MsgFlags uint16

const (
	MsgFlagLastFragment     = 0
	MsgFlagStartOfSnapshot  = 1
	MsgFlagEndOfSnapshot    = 2
	MsgFlagIncrementalPacket = 3
	MsgFlagPossDupFlag      = 4
)

// Has reports whether the named bit position is set.
func (f MsgFlags) Has(bit int) bool {
	return f&(1<<uint(bit)) != 0
}

func (f MsgFlags) String() string {
	names := []struct {
		bit  int
		name string
	}{
		{MsgFlagLastFragment, "LastFragment"},
		{MsgFlagStartOfSnapshot, "StartOfSnapshot"},
		{MsgFlagEndOfSnapshot, "EndOfSnapshot"},
		{MsgFlagIncrementalPacket, "IncrementalPacket"},
		{MsgFlagPossDupFlag, "PossDupFlag"},
	}
	s := ""
	for _, n := range names {
		if !f.Has(n.bit) {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	if s == "" {
		return "0"
	}
	return s
}

// MarketDataPacketHeaderSize is the fixed wire size of MarketDataPacketHeader.
const MarketDataPacketHeaderSize = 16

// MarketDataPacketHeader is the first envelope in every UDP payload.
type MarketDataPacketHeader struct {
	MsgSeqNum   uint32
	MsgSize     uint16
	MsgFlags    MsgFlags
	SendingTime uint64
}

// Decode reads a MarketDataPacketHeader from the buffer's current head.
func (h *MarketDataPacketHeader) Decode(buf *frame.Buffer) bool {
	raw, ok := buf.View(MarketDataPacketHeaderSize)
	if !ok {
		return false
	}
	h.MsgSeqNum = binary.LittleEndian.Uint32(raw[0:4])
	h.MsgSize = binary.LittleEndian.Uint16(raw[4:6])
	h.MsgFlags = MsgFlags(binary.LittleEndian.Uint16(raw[6:8]))
	h.SendingTime = binary.LittleEndian.Uint64(raw[8:16])
	return true
}

func (h MarketDataPacketHeader) String() string {
	return fmt.Sprintf("MarketDataPacketHeader [ msg_seq_num=%d msg_size=%d msg_flags=%s sending_time=%d ]",
		h.MsgSeqNum, h.MsgSize, h.MsgFlags, h.SendingTime)
}

// IncrementalHeaderSize is the fixed wire size of IncrementalHeader.
const IncrementalHeaderSize = 12

// IncrementalHeader follows the MarketDataPacketHeader, once per packet,
// when MsgFlagIncrementalPacket is set; the packet's SBE messages follow it.
type IncrementalHeader struct {
	TransactTime             uint64
	ExchangeTradingSessionID uint32
}

// Decode reads an IncrementalHeader from the buffer's current head.
func (h *IncrementalHeader) Decode(buf *frame.Buffer) bool {
	raw, ok := buf.View(IncrementalHeaderSize)
	if !ok {
		return false
	}
	h.TransactTime = binary.LittleEndian.Uint64(raw[0:8])
	h.ExchangeTradingSessionID = binary.LittleEndian.Uint32(raw[8:12])
	return true
}

func (h IncrementalHeader) String() string {
	return fmt.Sprintf("IncrementalHeader [ transact_time=%d exchange_trading_session_id=%d ]",
		h.TransactTime, h.ExchangeTradingSessionID)
}

// SBEMessageHeaderSize is the fixed wire size of SBEMessageHeader.
const SBEMessageHeaderSize = 8

// SBEMessageHeader precedes every SBE message body and selects its shape.
type SBEMessageHeader struct {
	BlockLength uint16
	TemplateID  TemplateId
	SchemaID    SchemaId
	Version     uint16
}

// Decode reads an SBEMessageHeader from the buffer's current head.
func (h *SBEMessageHeader) Decode(buf *frame.Buffer) bool {
	raw, ok := buf.View(SBEMessageHeaderSize)
	if !ok {
		return false
	}
	h.BlockLength = binary.LittleEndian.Uint16(raw[0:2])
	h.TemplateID = TemplateId(binary.LittleEndian.Uint16(raw[2:4]))
	h.SchemaID = SchemaId(binary.LittleEndian.Uint16(raw[4:6]))
	h.Version = binary.LittleEndian.Uint16(raw[6:8])
	return true
}

func (h SBEMessageHeader) String() string {
	return fmt.Sprintf("SBEMessageHeader [ block_length=%d template_id=%d(%s) schema_id=%d(%s) version=%d ]",
		h.BlockLength, h.TemplateID, h.TemplateID, h.SchemaID, h.SchemaID, h.Version)
}

// GroupSizeSize is the fixed wire size of GroupSize.
const GroupSizeSize = 3

// GroupSize introduces a repeating group: block_length bytes per entry,
// num_in_group entries follow.
type GroupSize struct {
	BlockLength uint16
	NumInGroup  uint8
}

// Decode reads a GroupSize from the buffer's current head.
func (g *GroupSize) Decode(buf *frame.Buffer) bool {
	raw, ok := buf.View(GroupSizeSize)
	if !ok {
		return false
	}
	g.BlockLength = binary.LittleEndian.Uint16(raw[0:2])
	g.NumInGroup = raw[2]
	return true
}

func (g GroupSize) String() string {
	return fmt.Sprintf("GroupSize [ block_length=%d num_in_group=%d ]", g.BlockLength, g.NumInGroup)
}
