// Package cli provides the command-line interface for swipekbd.
package cli

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	RunCommand     RunCommand     `command:"run" subcommands-optional:"true"`
	CheckCommand   CheckCommand   `command:"check" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts
