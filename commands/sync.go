package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sheetsync/sheets-merge/merge"
)

var SyncCmd = Sync{
	command: command{
		debug: false,
	},

	checkpoint: "",
	noEnrich:   false,
}

type Sync struct {
	command
	checkpoint string
	noEnrich   bool
}

func (cmd *Sync) Name() string {
	return "sync"
}

func (cmd *Sync) Description() string {
	return "Merges the new spreadsheets in the source folder into the target sheet and syncs the manager sheet"
}

func (cmd *Sync) Usage() string {
	return "[--folder <ID>] [--target <ID>] [--manager <ID>] [--no-enrich]"
}

func (cmd *Sync) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] sync [options]\n", APP)
	fmt.Println()
	fmt.Println("  Appends the rows of every spreadsheet in the source folder that has not already been processed")
	fmt.Println("  to the target sheet, tagging each row with its source file name. The names of the merged files")
	fmt.Println("  are recorded in the checkpoint file. The target sheet is then joined with the manager sheet.")
	fmt.Println()
	fmt.Println("  sync is the default command if no command is given.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s\n", APP)
	fmt.Printf("    %s --debug sync --credentials service-account.json --no-enrich\n", APP)
	fmt.Printf(`    %s sync --folder "https://drive.google.com/drive/folders/1dJ6Ilx7Sf25ZehS_ZS3Hvkms89mclgfT" \`+"\n", APP)
	fmt.Println(`                      --target "https://docs.google.com/spreadsheets/d/1WgIL9FVP2iLXe1-zXICoBzcl2dQhuyyEUZvDofRltrQ"`)
	fmt.Println()
}

func (cmd *Sync) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("sync")

	flagset.StringVar(&cmd.folder, "folder", cmd.folder, "Source Google Drive folder ID or URL")
	flagset.StringVar(&cmd.manager, "manager", cmd.manager, "Manager spreadsheet ID or URL")
	flagset.StringVar(&cmd.checkpoint, "checkpoint", cmd.checkpoint, "File listing the names of the already merged files")
	flagset.BoolVar(&cmd.noEnrich, "no-enrich", cmd.noEnrich, "Skips the manager sheet sync")

	return flagset
}

func (cmd *Sync) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	conf, err := cmd.configure(options)
	if err != nil {
		return err
	}

	if s := strings.TrimSpace(cmd.checkpoint); s != "" {
		conf.Checkpoint = s
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	source, google, err := connect(ctx, conf, cmd.debug)
	if err != nil {
		return err
	}

	target, err := google.Open(ctx, conf.TargetSheet)
	if err != nil {
		return fmt.Errorf("unable to open target sheet (%w)", err)
	}

	var manager merge.Worksheet
	if !cmd.noEnrich {
		if manager, err = google.Open(ctx, conf.ManagerSheet); err != nil {
			return fmt.Errorf("unable to open manager sheet (%w)", err)
		}
	}

	job := merge.NewJob(conf, source, google, target, manager, merge.Options{
		Enrich: !cmd.noEnrich,
		Debug:  cmd.debug,
	})

	summary, err := job.Run(ctx)
	if err != nil {
		return err
	}

	infof("merged:%v  skipped:%v  failed:%v  rows:%v  target:%v  enriched:%v",
		len(summary.Merged), summary.Skipped, len(summary.Failed), summary.Rows, summary.Mode, summary.Enriched)

	for _, f := range summary.Failed {
		warnf("%v not merged (%v)", f.File.Name, f.Kind)
	}

	return nil
}
