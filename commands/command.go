package commands

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/sheetsync/sheets-merge/config"
)

const APP = "sheets-merge"

type Options struct {
	Config string
	Debug  bool
}

// command holds the flags shared by every command that talks to the target sheet. Empty
// values leave the configured setting unchanged.
type command struct {
	credentials string
	workdir     string
	folder      string
	target      string
	manager     string
	debug       bool
}

func (cmd *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Google service account (or OAuth2 client) credentials file")
	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (temporary workbooks, OAuth2 tokens)")
	flagset.StringVar(&cmd.target, "target", cmd.target, "Target spreadsheet ID or URL")

	return flagset
}

// configure builds the run configuration from the compiled-in defaults, the configuration file
// and the command line flags, in that order. A missing default configuration file is not an
// error.
func (cmd *command) configure(options *Options) (*config.Config, error) {
	conf := config.Default()

	if file := strings.TrimSpace(options.Config); file != "" {
		if c, err := config.Load(file); err == nil {
			conf = c
		} else if file != DEFAULT_CONFIG || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("unable to load configuration from %v (%w)", file, err)
		} else if options.Debug {
			debugf("no configuration file %v, using defaults", file)
		}
	}

	override(&conf.Credentials, cmd.credentials)
	override(&conf.Workdir, cmd.workdir)
	override(&conf.SourceFolder, cmd.folder)
	override(&conf.TargetSheet, cmd.target)
	override(&conf.ManagerSheet, cmd.manager)

	conf.Normalise()

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func override(v *string, value string) {
	if s := strings.TrimSpace(value); s != "" {
		*v = s
	}
}

func helpOptions(flagset *flag.FlagSet) {
	count := 0
	flagset.VisitAll(func(f *flag.Flag) {
		count++
	})

	fmt.Println("  Options:")
	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})

	if count == 0 {
		fmt.Println("    (none)")
	}
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
