package simba

import (
	"encoding/binary"
	"fmt"

	"github.com/2batbox/simba-go/frame"
)

// OrderUpdateSize is OrderUpdate's fixed wire size; it must equal the
// enclosing SBEMessageHeader.BlockLength or the message is rejected.
const OrderUpdateSize = 48

// OrderUpdate is template 5: a fixed root with no repeating group.
type OrderUpdate struct {
	MDEntryID    int64
	MDEntryPrice Decimal5Null
	MDEntrySize  NullableInt64
	MDFlags      MDFlagsSet
	MDFlags2     uint64
	SecurityID   int32
	// RptSeq decodes as a full 32-bit field. An earlier decoder generation
	// byte-swapped this field as 16 bits despite its declared width; that
	// was a bug and is not reproduced here.
	RptSeq uint32
}

// Decode reads an OrderUpdate body from the buffer's current head.
func (m *OrderUpdate) Decode(buf *frame.Buffer) bool {
	raw, ok := buf.View(OrderUpdateSize)
	if !ok {
		return false
	}
	m.MDEntryID = int64(binary.LittleEndian.Uint64(raw[0:8]))
	m.MDEntryPrice = newDecimal5(int64(binary.LittleEndian.Uint64(raw[8:16])))
	m.MDEntrySize = NullableInt64(binary.LittleEndian.Uint64(raw[16:24]))
	m.MDFlags = MDFlagsSet(binary.LittleEndian.Uint64(raw[24:32]))
	m.MDFlags2 = binary.LittleEndian.Uint64(raw[32:40])
	m.SecurityID = int32(binary.LittleEndian.Uint32(raw[40:44]))
	m.RptSeq = binary.LittleEndian.Uint32(raw[44:48])
	return true
}

func (m OrderUpdate) String() string {
	return fmt.Sprintf("OrderUpdate [ md_entry_id=%d md_entry_price=%s md_entry_size=%s md_flags=%s "+
		"md_flags2=%d security_id=%d rpt_seq=%d ]",
		m.MDEntryID, m.MDEntryPrice, m.MDEntrySize, m.MDFlags, m.MDFlags2, m.SecurityID, m.RptSeq)
}

// OrderExecutionSize is OrderExecution's fixed wire size.
const OrderExecutionSize = 80

// OrderExecution is template 6: a fixed root with no repeating group.
type OrderExecution struct {
	MDEntryID    int64
	MDEntryPrice Decimal5Null
	MDEntrySize  NullableInt64
	LastPrice    Decimal5Null
	LastQty      NullableInt64
	TradeID      int64
	MDFlags      MDFlagsSet
	MDFlags2     uint64
	SecurityID   int32
	RptSeq       uint32
	MDEntryType  MDEntryType
	// 7 reserved/alignment bytes follow MDEntryType on the wire.
}

// Decode reads an OrderExecution body from the buffer's current head.
func (m *OrderExecution) Decode(buf *frame.Buffer) bool {
	raw, ok := buf.View(OrderExecutionSize)
	if !ok {
		return false
	}
	m.MDEntryID = int64(binary.LittleEndian.Uint64(raw[0:8]))
	m.MDEntryPrice = newDecimal5(int64(binary.LittleEndian.Uint64(raw[8:16])))
	m.MDEntrySize = NullableInt64(binary.LittleEndian.Uint64(raw[16:24]))
	m.LastPrice = newDecimal5(int64(binary.LittleEndian.Uint64(raw[24:32])))
	m.LastQty = NullableInt64(binary.LittleEndian.Uint64(raw[32:40]))
	m.TradeID = int64(binary.LittleEndian.Uint64(raw[40:48]))
	m.MDFlags = MDFlagsSet(binary.LittleEndian.Uint64(raw[48:56]))
	m.MDFlags2 = binary.LittleEndian.Uint64(raw[56:64])
	m.SecurityID = int32(binary.LittleEndian.Uint32(raw[64:68]))
	m.RptSeq = binary.LittleEndian.Uint32(raw[68:72])
	m.MDEntryType = MDEntryType(raw[72])
	return true
}

func (m OrderExecution) String() string {
	return fmt.Sprintf("OrderExecution [ md_entry_id=%d md_entry_price=%s md_entry_size=%s last_price=%s "+
		"last_qty=%s trade_id=%d md_flags=%s md_flags2=%d security_id=%d rpt_seq=%d md_entry_type=%s ]",
		m.MDEntryID, m.MDEntryPrice, m.MDEntrySize, m.LastPrice, m.LastQty, m.TradeID,
		m.MDFlags, m.MDFlags2, m.SecurityID, m.RptSeq, m.MDEntryType)
}

// OrderBookSnapshotRootSize is OrderBookSnapshotRoot's fixed wire size.
const OrderBookSnapshotRootSize = 16

// OrderBookSnapshotRoot is template 7's fixed root, followed by a repeating
// group of OrderBookSnapshotEntry.
type OrderBookSnapshotRoot struct {
	SecurityID               int32
	LastMsgSeqNumProcessed   uint32
	RptSeq                   uint32
	ExchangeTradingSessionID uint32
}

// Decode reads an OrderBookSnapshotRoot from the buffer's current head.
func (m *OrderBookSnapshotRoot) Decode(buf *frame.Buffer) bool {
	raw, ok := buf.View(OrderBookSnapshotRootSize)
	if !ok {
		return false
	}
	m.SecurityID = int32(binary.LittleEndian.Uint32(raw[0:4]))
	m.LastMsgSeqNumProcessed = binary.LittleEndian.Uint32(raw[4:8])
	m.RptSeq = binary.LittleEndian.Uint32(raw[8:12])
	m.ExchangeTradingSessionID = binary.LittleEndian.Uint32(raw[12:16])
	return true
}

func (m OrderBookSnapshotRoot) String() string {
	return fmt.Sprintf("OrderBookSnapshotRoot [ security_id=%d last_msg_seq_num_processed=%d rpt_seq=%d "+
		"exchange_trading_session_id=%d ]",
		m.SecurityID, m.LastMsgSeqNumProcessed, m.RptSeq, m.ExchangeTradingSessionID)
}

// OrderBookSnapshotEntrySize is one group entry's fixed wire size.
const OrderBookSnapshotEntrySize = 64

// OrderBookSnapshotEntry is one entry of template 7's repeating group.
type OrderBookSnapshotEntry struct {
	MDEntryID    int64
	TransactTime NullableUint64
	MDEntryPx    Decimal5Null
	MDEntrySize  NullableInt64
	TradeID      NullableInt64
	MDFlags      MDFlagsSet
	MDFlags2     uint64
	MDEntryType  MDEntryType
}

// Decode reads an OrderBookSnapshotEntry from the buffer's current head.
func (m *OrderBookSnapshotEntry) Decode(buf *frame.Buffer) bool {
	raw, ok := buf.View(OrderBookSnapshotEntrySize)
	if !ok {
		return false
	}
	m.MDEntryID = int64(binary.LittleEndian.Uint64(raw[0:8]))
	m.TransactTime = NullableUint64(binary.LittleEndian.Uint64(raw[8:16]))
	m.MDEntryPx = newDecimal5(int64(binary.LittleEndian.Uint64(raw[16:24])))
	m.MDEntrySize = NullableInt64(binary.LittleEndian.Uint64(raw[24:32]))
	m.TradeID = NullableInt64(binary.LittleEndian.Uint64(raw[32:40]))
	m.MDFlags = MDFlagsSet(binary.LittleEndian.Uint64(raw[40:48]))
	m.MDFlags2 = binary.LittleEndian.Uint64(raw[48:56])
	m.MDEntryType = MDEntryType(raw[56])
	return true
}

func (m OrderBookSnapshotEntry) String() string {
	return fmt.Sprintf("OrderBookSnapshotEntry [ md_entry_id=%d transact_time=%s md_entry_px=%s "+
		"md_entry_size=%s trade_id=%s md_flags=%s md_flags2=%d md_entry_type=%s ]",
		m.MDEntryID, m.TransactTime, m.MDEntryPx, m.MDEntrySize, m.TradeID, m.MDFlags, m.MDFlags2, m.MDEntryType)
}
