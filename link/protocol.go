// Package link implements the protocol-stack walker: a small set of pure
// validate/next decoders for Ethernet, 802.1Q VLAN, IPv4, IPv6 and UDP that
// advance a shared frame.Buffer one layer at a time until a UDP payload is
// exposed.
//
// Each decoder is a pair of functions over the same frame.Buffer: Validate
// checks the current header without consuming it (trimming trailing padding
// where the header declares an exact payload length), and Next consumes the
// header and returns the identifier of the protocol that follows. There is
// no inheritance here, only a tagged-union switch in Walker.
package link

// Protocol identifies a layer in the stack the Walker can be positioned at.
// End is both the terminal state and the result of any validation failure.
type Protocol uint8

const (
	Ethernet Protocol = iota
	Vlan
	IPv4
	IPv6
	Udp
	End
)

// String renders the protocol name for diagnostic dumps.
func (p Protocol) String() string {
	switch p {
	case Ethernet:
		return "Ethernet"
	case Vlan:
		return "Vlan"
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	case Udp:
		return "Udp"
	default:
		return "End"
	}
}
