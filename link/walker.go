package link

import "github.com/2batbox/simba-go/frame"

// Walker is a state machine over the link-layer decoders. It starts
// positioned at Ethernet (after validating it) and advances one layer at a
// time via Next, following:
//
//	state <- initial
//	loop:
//	    if not validate[state](frame): state <- End; stop
//	    state <- next[state](frame)   # advances head, trims tail
//
// After a successful transition to protocol P, head points at the first
// byte of P's header and tail points at the last byte of P's declared
// payload. Walker never rewinds head and never grows padding once a frame
// has stopped trimming.
type Walker struct {
	buf   *frame.Buffer
	proto Protocol
}

// NewWalker positions a Walker at Ethernet, already validated against buf.
func NewWalker(buf *frame.Buffer) *Walker {
	w := &Walker{buf: buf}
	w.proto = w.validate(Ethernet)
	return w
}

// Protocol returns the protocol the Walker is currently positioned at.
func (w *Walker) Protocol() Protocol {
	return w.proto
}

// Next consumes the current layer's header and advances to the next one,
// validating it before returning. It returns End once the stack is
// exhausted, a header fails validation, or the current protocol has no
// defined successor.
func (w *Walker) Next() Protocol {
	var next Protocol
	switch w.proto {
	case Ethernet:
		next = ethernetNext(w.buf)
	case Vlan:
		next = vlanNext(w.buf)
	case IPv4:
		next = ipv4Next(w.buf)
	case IPv6:
		next = ipv6Next(w.buf)
	case Udp:
		next = udpNext(w.buf)
	default:
		next = End
	}

	w.proto = w.validate(next)
	return w.proto
}

func (w *Walker) validate(p Protocol) Protocol {
	var ok bool
	switch p {
	case Ethernet:
		ok = ethernetValidate(w.buf)
	case Vlan:
		ok = vlanValidate(w.buf)
	case IPv4:
		ok = ipv4Validate(w.buf)
	case IPv6:
		ok = ipv6Validate(w.buf)
	case Udp:
		ok = udpValidate(w.buf)
	default:
		ok = false
	}

	if !ok {
		return End
	}
	return p
}

// ExtractUDPPayload drives the Walker until it reaches Udp, then consumes
// the UDP header once more so the buffer is left positioned at the first
// byte of the UDP payload. It returns false if the stack never reaches Udp.
func ExtractUDPPayload(buf *frame.Buffer) bool {
	w := NewWalker(buf)
	for proto := w.Protocol(); proto != End; proto = w.Next() {
		if proto == Udp {
			w.Next()
			return true
		}
	}
	return false
}
