package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// buildVersion is overridden at link time via -ldflags "-X main.buildVersion=...".
var buildVersion = "dev"

type versionCommand struct{}

func (*versionCommand) Name() string             { return "version" }
func (*versionCommand) Synopsis() string          { return "print the simbadump build version" }
func (*versionCommand) Usage() string             { return "version\n" }
func (*versionCommand) SetFlags(*flag.FlagSet)    {}

func (*versionCommand) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	fmt.Println("simbadump", buildVersion)
	return subcommands.ExitSuccess
}
