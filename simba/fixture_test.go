package simba

import (
	"encoding/binary"

	"github.com/2batbox/simba-go/frame"
)

func appendU16(buf []byte, v uint16) []byte {
	tmp := make([]byte, 2)
	binary.LittleEndian.PutUint16(tmp, v)
	return append(buf, tmp...)
}

func appendU32(buf []byte, v uint32) []byte {
	tmp := make([]byte, 4)
	binary.LittleEndian.PutUint32(tmp, v)
	return append(buf, tmp...)
}

func appendU64(buf []byte, v uint64) []byte {
	tmp := make([]byte, 8)
	binary.LittleEndian.PutUint64(tmp, v)
	return append(buf, tmp...)
}

func marketDataHeader(flags MsgFlags) []byte {
	buf := appendU32(nil, 1)    // msg_seq_num
	buf = appendU16(buf, 0)     // msg_size, not load-bearing for decoding
	buf = appendU16(buf, uint16(flags))
	buf = appendU64(buf, 1700000000) // sending_time
	return buf
}

func incrementalHeader() []byte {
	buf := appendU64(nil, 1700000001) // transact_time
	buf = appendU32(buf, 42)          // exchange_trading_session_id
	return buf
}

func sbeHeader(blockLength uint16, templateID TemplateId, schemaID SchemaId) []byte {
	buf := appendU16(nil, blockLength)
	buf = appendU16(buf, uint16(templateID))
	buf = appendU16(buf, uint16(schemaID))
	buf = appendU16(buf, 1) // version
	return buf
}

func orderUpdateBody() []byte {
	buf := appendU64(nil, 123) // md_entry_id
	buf = appendU64(buf, 10050) // md_entry_price (Decimal5)
	buf = appendU64(buf, 7)     // md_entry_size
	buf = appendU64(buf, 1<<MDFlagIOC)
	buf = appendU64(buf, 0) // md_flags2
	buf = appendU32(buf, 55) // security_id
	buf = appendU32(buf, 9)  // rpt_seq
	return buf
}

func groupSize(blockLength uint16, numInGroup uint8) []byte {
	buf := appendU16(nil, blockLength)
	return append(buf, numInGroup)
}

func orderBookSnapshotRootBody() []byte {
	buf := appendU32(nil, 77) // security_id
	buf = appendU32(buf, 1)   // last_msg_seq_num_processed
	buf = appendU32(buf, 2)   // rpt_seq
	buf = appendU32(buf, 3)   // exchange_trading_session_id
	return buf
}

func orderBookSnapshotEntryBody(entryID int64) []byte {
	buf := appendU64(nil, uint64(entryID))
	buf = appendU64(buf, 1700000002) // transact_time
	buf = appendU64(buf, 500)        // md_entry_px
	buf = appendU64(buf, 1)          // md_entry_size
	buf = appendU64(buf, 2)          // trade_id
	buf = appendU64(buf, 0)          // md_flags
	buf = appendU64(buf, 0)          // md_flags2
	buf = append(buf, byte(MDEntryTypeBid))
	buf = append(buf, make([]byte, 7)...) // padding
	return buf
}

func newBufferFrom(data []byte) *frame.Buffer {
	b := frame.New()
	b.Fill(data)
	b.Reset(len(data), 0)
	return b
}
