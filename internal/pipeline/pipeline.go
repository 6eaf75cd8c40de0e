// Package pipeline wires the link-layer walker and the Simba decoder
// together into the single per-frame operation the driver runs for every
// record it reads from a capture.
package pipeline

import (
	"fmt"
	"io"

	"github.com/2batbox/simba-go/frame"
	"github.com/2batbox/simba-go/link"
	"github.com/2batbox/simba-go/simba"
)

// ProcessFrame extracts the UDP payload from buf's link-layer framing and
// dumps its Simba contents to w. It returns an error describing why a
// frame was rejected; the caller decides whether that is fatal for the
// whole capture (it is not — a bad frame should not abort the rest of the
// capture).
func ProcessFrame(buf *frame.Buffer, w io.Writer) error {
	if !link.ExtractUDPPayload(buf) {
		return fmt.Errorf("pipeline: frame %d: no UDP payload found", buf.Index())
	}
	if err := simba.NewDecoder(buf, w).Dump(); err != nil {
		return fmt.Errorf("pipeline: frame %d: %w", buf.Index(), err)
	}
	return nil
}
