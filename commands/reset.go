package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/sheetsync/sheets-merge/merge"
)

var ResetCmd = Reset{
	command: command{
		debug: false,
	},
}

type Reset struct {
	command
}

func (cmd *Reset) Name() string {
	return "reset"
}

func (cmd *Reset) Description() string {
	return "Clears all values from the target sheet"
}

func (cmd *Reset) Usage() string {
	return "[--target <ID>]"
}

func (cmd *Reset) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] reset [options]\n", APP)
	fmt.Println()
	fmt.Println("  Clears all values from the target sheet. The checkpoint file is not changed.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s reset --credentials service-account.json\n", APP)
	fmt.Println()
}

func (cmd *Reset) FlagSet() *flag.FlagSet {
	return cmd.flagset("reset")
}

func (cmd *Reset) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	conf, err := cmd.configure(options)
	if err != nil {
		return err
	}

	ctx := context.Background()

	_, google, err := connect(ctx, conf, cmd.debug)
	if err != nil {
		return err
	}

	target, err := google.Open(ctx, conf.TargetSheet)
	if err != nil {
		return fmt.Errorf("unable to open target sheet (%w)", err)
	}

	if cmd.debug {
		debugf("clearing worksheet '%v' of spreadsheet %v", target.Title(), conf.TargetSheet)
	}

	if err := merge.Reset(ctx, target); err != nil {
		return fmt.Errorf("unable to clear target sheet (%w)", err)
	}

	return nil
}
