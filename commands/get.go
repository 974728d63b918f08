package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sheetsync/sheets-merge/table"
)

var GetCmd = Get{
	command: command{
		debug: false,
	},

	sheet: "target",
	file:  time.Now().Format("2006-01-02T150405.tsv"),
}

type Get struct {
	command
	sheet string
	file  string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves the target or manager sheet and stores it to a local TSV file"
}

func (cmd *Get) Usage() string {
	return "[--sheet target|manager] --file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] get [options] --sheet <target|manager> --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads the target or manager sheet to a TSV file")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s get --file merged.tsv\n", APP)
	fmt.Printf("    %s --debug get --sheet manager --file managers.tsv\n", APP)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	flagset.StringVar(&cmd.manager, "manager", cmd.manager, "Manager spreadsheet ID or URL")
	flagset.StringVar(&cmd.sheet, "sheet", cmd.sheet, "Sheet to retrieve ('target' or 'manager')")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	conf, err := cmd.configure(options)
	if err != nil {
		return err
	}

	var spreadsheet string
	switch cmd.sheet {
	case "target":
		spreadsheet = conf.TargetSheet
	case "manager":
		spreadsheet = conf.ManagerSheet
	default:
		return fmt.Errorf("invalid --sheet '%v' - expected 'target' or 'manager'", cmd.sheet)
	}

	if cmd.file == "" {
		return fmt.Errorf("--file is a required option")
	}

	if cmd.debug {
		debugf("spreadsheet - ID:%s  file:%s", spreadsheet, cmd.file)
	}

	ctx := context.Background()

	_, google, err := connect(ctx, conf, cmd.debug)
	if err != nil {
		return err
	}

	values, err := google.Read(ctx, spreadsheet)
	if err != nil {
		return fmt.Errorf("unable to retrieve data from sheet (%w)", err)
	}

	if len(values) == 0 {
		return fmt.Errorf("no data in %v sheet", cmd.sheet)
	}

	tmp, err := os.CreateTemp(os.TempDir(), "sheets-merge-*.tsv")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := tableToTSV(tmp, table.MakeTable(values)); err != nil {
		return fmt.Errorf("error creating TSV file (%w)", err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("retrieved %v sheet to file %s", cmd.sheet, cmd.file)

	return nil
}
