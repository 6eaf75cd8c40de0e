// Package simba decodes a MOEX SIMBA / SBE market-data stream from a UDP
// payload: the market-data packet header, an optional incremental-packet
// header, and zero or more SBE messages selected by template identifier.
//
// Every multi-byte field on the wire is little-endian; Decoder always reads
// with binary.LittleEndian regardless of host architecture, so there is no
// host-endian branch to get wrong.
package simba

import "strconv"

// NullableInt8 is a signed 8-bit integer whose minimum value (0x80) is
// reserved to mean "no value" rather than -128.
type NullableInt8 int8

const nullInt8 NullableInt8 = -0x80

// IsNull reports whether the stored bit pattern is the null sentinel.
func (v NullableInt8) IsNull() bool { return v == nullInt8 }

func (v NullableInt8) String() string {
	if v.IsNull() {
		return "null"
	}
	return strconv.FormatInt(int64(v), 10)
}

// NullableInt16 is the 16-bit analog of NullableInt8.
type NullableInt16 int16

const nullInt16 NullableInt16 = -0x8000

func (v NullableInt16) IsNull() bool { return v == nullInt16 }

func (v NullableInt16) String() string {
	if v.IsNull() {
		return "null"
	}
	return strconv.FormatInt(int64(v), 10)
}

// NullableInt32 is the 32-bit analog of NullableInt8.
type NullableInt32 int32

const nullInt32 NullableInt32 = -0x80000000

func (v NullableInt32) IsNull() bool { return v == nullInt32 }

func (v NullableInt32) String() string {
	if v.IsNull() {
		return "null"
	}
	return strconv.FormatInt(int64(v), 10)
}

// NullableInt64 is the 64-bit analog of NullableInt8.
type NullableInt64 int64

const nullInt64 NullableInt64 = -0x8000000000000000

func (v NullableInt64) IsNull() bool { return v == nullInt64 }

func (v NullableInt64) String() string {
	if v.IsNull() {
		return "null"
	}
	return strconv.FormatInt(int64(v), 10)
}

// NullableUint64 is an unsigned 64-bit integer whose all-ones bit pattern
// is reserved to mean "no value". Timestamps such as OrderBookSnapshotEntry's
// transact_time use this rather than NullableInt64 because the field has no
// sign bit to spare for a signed sentinel.
type NullableUint64 uint64

const nullUint64 NullableUint64 = ^NullableUint64(0)

func (v NullableUint64) IsNull() bool { return v == nullUint64 }

func (v NullableUint64) String() string {
	if v.IsNull() {
		return "null"
	}
	return strconv.FormatUint(uint64(v), 10)
}

// decimal is a signed 64-bit mantissa with an implicit divisor, rendering as
// mantissa/divisor or the literal text 'null' for the reserved sentinel bit
// pattern 0x7FFF_FFFF_FFFF_FFFF.
type decimal struct {
	mantissa int64
	divisor  int64
}

const nullDecimalMantissa int64 = 0x7FFFFFFFFFFFFFFF

func (d decimal) IsNull() bool { return d.mantissa == nullDecimalMantissa }

// Float64 returns mantissa/divisor. Callers should check IsNull first;
// calling Float64 on a null value returns a meaningless number rather than
// panicking, so a caller that forgets the check gets a bogus float instead
// of a crash.
func (d decimal) Float64() float64 {
	return float64(d.mantissa) / float64(d.divisor)
}

func (d decimal) String() string {
	if d.IsNull() {
		return "null"
	}
	return strconv.FormatFloat(d.Float64(), 'f', -1, 64)
}

// Decimal2Null is a fixed-point decimal with an implicit divisor of 100.
type Decimal2Null struct{ decimal }

func newDecimal2(mantissa int64) Decimal2Null {
	return Decimal2Null{decimal{mantissa: mantissa, divisor: 100}}
}

// Decimal5Null is a fixed-point decimal with an implicit divisor of 100000.
type Decimal5Null struct{ decimal }

func newDecimal5(mantissa int64) Decimal5Null {
	return Decimal5Null{decimal{mantissa: mantissa, divisor: 100000}}
}

// MDEntryType is a single ASCII byte selecting a market-data entry kind.
type MDEntryType byte

const (
	MDEntryTypeBid       MDEntryType = '0'
	MDEntryTypeAsk       MDEntryType = '1'
	MDEntryTypeEmptyBook MDEntryType = 'J'
)

func (t MDEntryType) String() string {
	switch t {
	case MDEntryTypeBid:
		return "Bid"
	case MDEntryTypeAsk:
		return "Ask"
	case MDEntryTypeEmptyBook:
		return "EmptyBook"
	default:
		return "UNKNOWN"
	}
}

// MDFlagsSet is a 64-bit bitset of named SIMBA market-data flags.
type MDFlagsSet uint64

// Named bit positions within MDFlagsSet.
const (
	MDFlagDay                    = 0
	MDFlagIOC                    = 1
	MDFlagNonQuote                = 2
	MDFlagEndOfTransaction        = 12
	MDFlagSecondLeg               = 14
	MDFlagFOK                     = 19
	MDFlagReplace                 = 20
	MDFlagCancel                  = 21
	MDFlagMassCancel              = 22
	MDFlagNegotiated              = 26
	MDFlagMultiLeg                = 27
	MDFlagCrossTrade              = 29
	MDFlagCOD                     = 32
	MDFlagActiveSide              = 41
	MDFlagPassiveSide             = 42
	MDFlagSynthetic               = 45
	MDFlagRFS                     = 46
	MDFlagSyntheticPassive        = 57
	MDFlagBOC                     = 60
	MDFlagDuringDiscreteAuction   = 62
)

var mdFlagNames = map[int]string{
	MDFlagDay:                  "Day",
	MDFlagIOC:                  "IOC",
	MDFlagNonQuote:             "NonQuote",
	MDFlagEndOfTransaction:     "EndOfTransaction",
	MDFlagSecondLeg:            "SecondLeg",
	MDFlagFOK:                  "FOK",
	MDFlagReplace:              "Replace",
	MDFlagCancel:               "Cancel",
	MDFlagMassCancel:           "MassCancel",
	MDFlagNegotiated:           "Negotiated",
	MDFlagMultiLeg:             "MultiLeg",
	MDFlagCrossTrade:           "CrossTrade",
	MDFlagCOD:                  "COD",
	MDFlagActiveSide:           "ActiveSide",
	MDFlagPassiveSide:          "PassiveSide",
	MDFlagSynthetic:            "Synthetic",
	MDFlagRFS:                  "RFS",
	MDFlagSyntheticPassive:     "SyntheticPassive",
	MDFlagBOC:                  "BOC",
	MDFlagDuringDiscreteAuction: "DuringDiscreteAuction",
}

// Has reports whether the named bit position is set.
func (f MDFlagsSet) Has(bit int) bool {
	return f&(1<<uint(bit)) != 0
}

// String renders the set bits joined by '|', or "0" if none are set.
func (f MDFlagsSet) String() string {
	if f == 0 {
		return "0"
	}
	s := ""
	for bit := 0; bit < 64; bit++ {
		if !f.Has(bit) {
			continue
		}
		name, ok := mdFlagNames[bit]
		if !ok {
			name = strconv.Itoa(bit)
		}
		if s != "" {
			s += "|"
		}
		s += name
	}
	return s
}
