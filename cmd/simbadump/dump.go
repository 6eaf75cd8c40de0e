package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"

	"github.com/2batbox/simba-go/frame"
	"github.com/2batbox/simba-go/internal/pipeline"
	"github.com/2batbox/simba-go/pcap"
)

// dumpCommand implements the "dump" subcommand: decode every frame in each
// named capture file and write the result to stdout, logging and skipping
// per-frame and per-capture failures rather than aborting the run.
type dumpCommand struct {
	log *logrus.Logger
}

func (*dumpCommand) Name() string     { return "dump" }
func (*dumpCommand) Synopsis() string { return "decode Simba market-data frames from pcap captures" }
func (*dumpCommand) Usage() string {
	return "dump <capture-file> [capture-file...]\n  decode every frame in each capture file in turn\n"
}
func (*dumpCommand) SetFlags(*flag.FlagSet) {}

func (c *dumpCommand) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	failed := false
	for _, path := range f.Args() {
		if err := c.dumpOne(path); err != nil {
			c.log.WithField("capture", path).WithError(err).Error("capture failed")
			failed = true
		}
	}

	if failed {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *dumpCommand) dumpOne(path string) error {
	reader := pcap.NewReader(path)
	if err := reader.Open(); err != nil {
		return err
	}
	defer reader.Close()

	log := c.log.WithField("capture", path)
	log.WithField("header", reader.Header().String()).Info("capture opened")

	buf := frame.New()
	for {
		ok, err := reader.Load(buf)
		if err != nil {
			log.WithField("frame_index", reader.NextFrameIndex()).WithError(err).Warn("short read, stopping capture")
			break
		}
		if !ok {
			break
		}
		if err := pipeline.ProcessFrame(buf, os.Stdout); err != nil {
			log.WithField("frame_index", buf.Index()).WithError(err).Warn("frame skipped")
		}
	}

	log.WithField("digest", reader.Digest()).Info("capture done")
	return nil
}
