// Command simbadump reads one or more pcap capture files containing Simba
// market-data traffic and writes a textual dump of every decoded frame to
// stdout.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&dumpCommand{log: log}, "")
	subcommands.Register(&versionCommand{}, "")

	os.Args = withDefaultDumpCommand(os.Args)
	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

// withDefaultDumpCommand lets capture files be named directly on the
// command line with no leading "dump" verb: it inserts "dump" when the
// first argument is neither a flag nor the name of a registered
// subcommand.
func withDefaultDumpCommand(args []string) []string {
	if len(args) < 2 {
		return args
	}
	first := args[1]
	if len(first) > 0 && first[0] == '-' {
		return args
	}
	switch first {
	case "dump", "version", "help", "flags", "commands":
		return args
	}
	out := make([]string, 0, len(args)+1)
	out = append(out, args[0], "dump")
	out = append(out, args[1:]...)
	return out
}
