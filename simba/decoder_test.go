package simba

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDumpIncrementalOrderUpdate covers a MarketDataPacketHeader with
// IncrementalPacket set, an IncrementalHeader, and a single OrderUpdate
// message.
func TestDumpIncrementalOrderUpdate(t *testing.T) {
	var payload []byte
	payload = append(payload, marketDataHeader(1<<MsgFlagIncrementalPacket)...)
	payload = append(payload, incrementalHeader()...)
	payload = append(payload, sbeHeader(OrderUpdateSize, TemplateOrderUpdate, SchemaDefault)...)
	payload = append(payload, orderUpdateBody()...)

	buf := newBufferFrom(payload)
	var out bytes.Buffer
	err := NewDecoder(buf, &out).Dump()
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "MarketDataPacketHeader")
	assert.Contains(t, text, "IncrementalHeader")
	assert.Contains(t, text, "SBEMessageHeader")
	assert.Contains(t, text, "OrderUpdate")
	assert.Equal(t, 0, buf.Available())
}

// TestDumpOrderBookSnapshot covers an OrderBookSnapshot with a 3-entry
// repeating group.
func TestDumpOrderBookSnapshot(t *testing.T) {
	var payload []byte
	payload = append(payload, marketDataHeader(0)...)
	payload = append(payload, sbeHeader(OrderBookSnapshotRootSize, TemplateOrderBookSnapshot, SchemaDefault)...)
	payload = append(payload, orderBookSnapshotRootBody()...)
	payload = append(payload, groupSize(OrderBookSnapshotEntrySize, 3)...)
	for i := int64(0); i < 3; i++ {
		payload = append(payload, orderBookSnapshotEntryBody(i)...)
	}

	buf := newBufferFrom(payload)
	var out bytes.Buffer
	err := NewDecoder(buf, &out).Dump()
	require.NoError(t, err)

	text := out.String()
	assert.Equal(t, 3, strings.Count(text, "OrderBookSnapshotEntry"))
	assert.Contains(t, text, "GroupSize")
	assert.Equal(t, 0, buf.Available())
}

// TestDumpSchemaMismatchSkipsSilently covers an SBEMessageHeader with an
// unrecognised schema id: it is skipped without error and without consuming
// any body bytes.
func TestDumpSchemaMismatchSkipsSilently(t *testing.T) {
	var payload []byte
	payload = append(payload, marketDataHeader(0)...)
	payload = append(payload, sbeHeader(OrderUpdateSize, TemplateOrderUpdate, 0)...)
	// deliberately omit the body: a schema mismatch must not read it.

	buf := newBufferFrom(payload)
	var out bytes.Buffer
	err := NewDecoder(buf, &out).Dump()
	require.NoError(t, err)
	assert.Equal(t, 0, buf.Available())
}

func TestDumpBlockLengthMismatchFailsMessage(t *testing.T) {
	var payload []byte
	payload = append(payload, marketDataHeader(0)...)
	payload = append(payload, sbeHeader(OrderUpdateSize-1, TemplateOrderUpdate, SchemaDefault)...)
	payload = append(payload, orderUpdateBody()...)

	buf := newBufferFrom(payload)
	err := NewDecoder(buf, &bytes.Buffer{}).Dump()
	assert.Error(t, err)
}

func TestDumpUnknownTemplateFails(t *testing.T) {
	var payload []byte
	payload = append(payload, marketDataHeader(0)...)
	payload = append(payload, sbeHeader(0, TemplateId(9999), SchemaDefault)...)

	buf := newBufferFrom(payload)
	err := NewDecoder(buf, &bytes.Buffer{}).Dump()
	assert.Error(t, err)
}

func TestDumpGroupOverflowFails(t *testing.T) {
	var payload []byte
	payload = append(payload, marketDataHeader(0)...)
	payload = append(payload, sbeHeader(OrderBookSnapshotRootSize, TemplateOrderBookSnapshot, SchemaDefault)...)
	payload = append(payload, orderBookSnapshotRootBody()...)
	// declare 5 entries but only supply bytes for 1.
	payload = append(payload, groupSize(OrderBookSnapshotEntrySize, 5)...)
	payload = append(payload, orderBookSnapshotEntryBody(0)...)

	buf := newBufferFrom(payload)
	err := NewDecoder(buf, &bytes.Buffer{}).Dump()
	assert.Error(t, err)
}

func TestDumpControlMessageSkipped(t *testing.T) {
	var payload []byte
	payload = append(payload, marketDataHeader(0)...)
	payload = append(payload, sbeHeader(4, TemplateHeartbeat, SchemaDefault)...)
	payload = append(payload, make([]byte, 4)...)

	buf := newBufferFrom(payload)
	err := NewDecoder(buf, &bytes.Buffer{}).Dump()
	require.NoError(t, err)
	assert.Equal(t, 0, buf.Available())
}

// TestDumpSecurityDefinitionHasNoGroup pins template 12 to the skip-only
// bucket: a root block with no trailing GroupSize/entries, unlike templates
// 3 and 13.
func TestDumpSecurityDefinitionHasNoGroup(t *testing.T) {
	var payload []byte
	payload = append(payload, marketDataHeader(0)...)
	payload = append(payload, sbeHeader(6, TemplateSecurityDefinition, SchemaDefault)...)
	payload = append(payload, make([]byte, 6)...)

	buf := newBufferFrom(payload)
	err := NewDecoder(buf, &bytes.Buffer{}).Dump()
	require.NoError(t, err)
	assert.Equal(t, 0, buf.Available())
}

// TestDumpBestPricesSkipsRootAndGroup is scenario coverage for template 3:
// a root block followed by a GroupSize-delimited group, both skipped.
func TestDumpBestPricesSkipsRootAndGroup(t *testing.T) {
	var payload []byte
	payload = append(payload, marketDataHeader(0)...)
	payload = append(payload, sbeHeader(4, TemplateBestPrices, SchemaDefault)...)
	payload = append(payload, make([]byte, 4)...)
	payload = append(payload, groupSize(2, 3)...)
	payload = append(payload, make([]byte, 2*3)...)

	buf := newBufferFrom(payload)
	err := NewDecoder(buf, &bytes.Buffer{}).Dump()
	require.NoError(t, err)
	assert.Equal(t, 0, buf.Available())
}

// TestDumpDiscreteAuctionSkipsRootAndGroup is the same coverage for
// template 13.
func TestDumpDiscreteAuctionSkipsRootAndGroup(t *testing.T) {
	var payload []byte
	payload = append(payload, marketDataHeader(0)...)
	payload = append(payload, sbeHeader(0, TemplateDiscreteAuction, SchemaDefault)...)
	payload = append(payload, groupSize(1, 2)...)
	payload = append(payload, make([]byte, 1*2)...)

	buf := newBufferFrom(payload)
	err := NewDecoder(buf, &bytes.Buffer{}).Dump()
	require.NoError(t, err)
	assert.Equal(t, 0, buf.Available())
}
