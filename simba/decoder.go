package simba

import (
	"fmt"
	"io"

	"github.com/2batbox/simba-go/frame"
)

// fixedBody is satisfied by a pointer to any fixed-root SBE message body:
// OrderUpdate, OrderExecution, and OrderBookSnapshotRoot.
type fixedBody[T any] interface {
	*T
	Decode(*frame.Buffer) bool
}

// Decoder reads a Simba market-data stream from a single frame.Buffer,
// already positioned at the first byte of a UDP payload (see
// link.ExtractUDPPayload), and writes a textual dump of every header and
// message encountered to w.
//
// A Decoder does not log; every contained error is returned so the caller
// (the driver) decides whether and how to report it.
type Decoder struct {
	buf *frame.Buffer
	w   io.Writer
}

// NewDecoder returns a Decoder reading from buf and writing to w.
func NewDecoder(buf *frame.Buffer, w io.Writer) *Decoder {
	return &Decoder{buf: buf, w: w}
}

// Dump reads one MarketDataPacketHeader and, depending on its
// IncrementalPacket flag, either a single SBE message or one
// IncrementalHeader followed by SBE messages until the buffer is exhausted.
func (d *Decoder) Dump() error {
	fmt.Fprintln(d.w, d.buf.String())

	var hdr MarketDataPacketHeader
	if !hdr.Decode(d.buf) {
		return fmt.Errorf("simba: MarketDataPacketHeader is missing")
	}
	fmt.Fprintln(d.w, hdr.String())

	if hdr.MsgFlags.Has(MsgFlagIncrementalPacket) {
		return d.dumpIncremental()
	}
	return d.dumpSBEMessage()
}

func (d *Decoder) dumpIncremental() error {
	fmt.Fprintln(d.w, d.buf.String())

	var inc IncrementalHeader
	if !inc.Decode(d.buf) {
		return fmt.Errorf("simba: IncrementalHeader is missing")
	}
	fmt.Fprintln(d.w, inc.String())

	if err := d.dumpSBEMessage(); err != nil {
		return err
	}
	for d.buf.Available() > 0 {
		if err := d.dumpSBEMessage(); err != nil {
			return err
		}
	}
	return nil
}

func (d *Decoder) dumpSBEMessage() error {
	fmt.Fprintln(d.w, d.buf.String())

	var hdr SBEMessageHeader
	if !hdr.Decode(d.buf) {
		return fmt.Errorf("simba: SBEMessageHeader is missing")
	}
	fmt.Fprintln(d.w, hdr.String())

	if hdr.SchemaID != SchemaDefault {
		// Schema mismatch: not an error, just a message we don't understand.
		return nil
	}

	switch hdr.TemplateID {
	case TemplateLogon, TemplateLogout, TemplateHeartbeat, TemplateSequenceReset,
		TemplateEmptyBook, TemplateSecurityStatus, TemplateSecurityDefinitionUpdateReport,
		TemplateTradingSessionStatus, TemplateMarketDataRequest, TemplateSecurityDefinition:
		return d.skipMessage(hdr)

	case TemplateBestPrices, TemplateDiscreteAuction:
		if err := d.skipMessage(hdr); err != nil {
			return err
		}
		return d.skipEntry()

	case TemplateOrderUpdate:
		return dumpMessage[OrderUpdate](d, hdr, OrderUpdateSize)

	case TemplateOrderExecution:
		return dumpMessage[OrderExecution](d, hdr, OrderExecutionSize)

	case TemplateOrderBookSnapshot:
		return dumpMessageWithEntry[OrderBookSnapshotRoot, OrderBookSnapshotEntry](d, hdr, OrderBookSnapshotRootSize)

	default:
		return fmt.Errorf("simba: unknown template id %d", hdr.TemplateID)
	}
}

// dumpMessage reads and dumps a fixed-root message body with no repeating
// group, rejecting it if the wire block_length doesn't match the body's
// known size.
func dumpMessage[T any, PT fixedBody[T]](d *Decoder, hdr SBEMessageHeader, size int) error {
	if int(hdr.BlockLength) != size {
		return fmt.Errorf("simba: %s block_length mismatch: got %d want %d", hdr.TemplateID, hdr.BlockLength, size)
	}

	fmt.Fprintln(d.w, d.buf.String())
	var body T
	if !PT(&body).Decode(d.buf) {
		return fmt.Errorf("simba: %s body is missing", hdr.TemplateID)
	}
	fmt.Fprintln(d.w, body)
	return nil
}

// dumpMessageWithEntry reads and dumps a fixed root followed by a repeating
// group of exactly GroupSize.NumInGroup entries of GroupSize.BlockLength
// bytes each.
func dumpMessageWithEntry[R, E any, PR fixedBody[R], PE fixedBody[E]](
	d *Decoder, hdr SBEMessageHeader, rootSize int,
) error {
	if int(hdr.BlockLength) != rootSize {
		return fmt.Errorf("simba: %s block_length mismatch: got %d want %d", hdr.TemplateID, hdr.BlockLength, rootSize)
	}

	fmt.Fprintln(d.w, d.buf.String())
	var root R
	if !PR(&root).Decode(d.buf) {
		return fmt.Errorf("simba: %s body is missing", hdr.TemplateID)
	}
	fmt.Fprintln(d.w, root)

	fmt.Fprintln(d.w, d.buf.String())
	var grp GroupSize
	if !grp.Decode(d.buf) {
		return fmt.Errorf("simba: GroupSize is missing")
	}

	// The declared group must fit within what's left in the buffer; an
	// exact fit is fine, only a shortfall is an error.
	expected := int(grp.BlockLength) * int(grp.NumInGroup)
	if expected > d.buf.Available() {
		return fmt.Errorf("simba: GroupSize block_length mismatch: available=%d expected=%d",
			d.buf.Available(), expected)
	}
	fmt.Fprintln(d.w, grp.String())

	for i := uint8(0); i < grp.NumInGroup; i++ {
		fmt.Fprintln(d.w, d.buf.String())
		start := d.buf.Offset()
		var entry E
		if !PE(&entry).Decode(d.buf) {
			return fmt.Errorf("simba: %s entry %d is missing", hdr.TemplateID, i)
		}
		if used := d.buf.Offset() - start; used != int(grp.BlockLength) {
			return fmt.Errorf("simba: %s entry %d block_length mismatch: got %d want %d",
				hdr.TemplateID, i, grp.BlockLength, used)
		}
		fmt.Fprintln(d.w, entry)
	}
	return nil
}

func (d *Decoder) skipMessage(hdr SBEMessageHeader) error {
	if !d.buf.HeadMove(int(hdr.BlockLength)) {
		return fmt.Errorf("simba: %s block_length mismatch: block_length=%d available=%d",
			hdr.TemplateID, hdr.BlockLength, d.buf.Available())
	}
	return nil
}

func (d *Decoder) skipEntry() error {
	var grp GroupSize
	if !grp.Decode(d.buf) {
		return fmt.Errorf("simba: GroupSize is missing")
	}

	expected := int(grp.BlockLength) * int(grp.NumInGroup)
	if expected > d.buf.Available() {
		return fmt.Errorf("simba: GroupSize block_length mismatch: available=%d expected=%d",
			d.buf.Available(), expected)
	}

	d.buf.HeadMove(expected)
	return nil
}
