package main

import (
	"flag"
	"log"

	"github.com/sheetsync/sheets-merge/commands"
)

var options = commands.Options{
	Config: commands.DEFAULT_CONFIG,
	Debug:  false,
}

// Clears the target sheet. Equivalent to 'sheets-merge reset'.
func main() {
	flag.StringVar(&options.Config, "config", options.Config, "Configuration file")
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	if err := commands.ResetCmd.Execute(&options); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}
