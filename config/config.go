// Package config holds the settings shared by every sheets-merge component.
//
// A Config is built once at startup from the compiled-in defaults, optionally overlaid with a
// YAML file and then with command line flags, and passed explicitly to whatever needs it.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	SourceFolder string `yaml:"source-folder"`
	TargetSheet  string `yaml:"target-sheet"`
	ManagerSheet string `yaml:"manager-sheet"`

	Credentials string `yaml:"credentials"`
	Checkpoint  string `yaml:"checkpoint"`
	Workdir     string `yaml:"workdir"`

	ProvenanceColumn string   `yaml:"provenance-column"`
	ManagerKey       string   `yaml:"manager-key"`
	TotalMarker      string   `yaml:"total-marker"`
	DropColumns      []string `yaml:"drop-columns"`
	ValueInputOption string   `yaml:"value-input-option"`
}

var (
	spreadsheetURL = regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`)
	folderURL      = regexp.MustCompile(`^https://drive.google.com/drive/(?:u/[0-9]+/)?folders/([^/?#]+)`)
)

// Default returns the configuration the job runs with when nothing else is specified.
func Default() *Config {
	return &Config{
		SourceFolder: "1dJ6Ilx7Sf25ZehS_ZS3Hvkms89mclgfT",
		TargetSheet:  "1WgIL9FVP2iLXe1-zXICoBzcl2dQhuyyEUZvDofRltrQ",
		ManagerSheet: "1LDyAilDBDuM9ND0ncv-SOF12_JhCZlNrZPU4iVkgRnY",

		Credentials: "service-account.json",
		Checkpoint:  "processed_files.json",
		Workdir:     ".",

		ProvenanceColumn: "Source_File",
		ManagerKey:       "Input file",
		TotalMarker:      "Tổng",
		DropColumns:      []string{"nguon_file", "stt"},
		ValueInputOption: "USER_ENTERED",
	}
}

// Load overlays the YAML file onto the defaults. Keys missing from the file keep their
// default values.
func Load(file string) (*Config, error) {
	conf := Default()

	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(bytes, conf); err != nil {
		return nil, fmt.Errorf("invalid configuration file %v (%w)", file, err)
	}

	conf.Normalise()

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// Normalise replaces spreadsheet and folder URLs with the bare Google IDs.
func (c *Config) Normalise() {
	c.SourceFolder = FolderID(c.SourceFolder)
	c.TargetSheet = SpreadsheetID(c.TargetSheet)
	c.ManagerSheet = SpreadsheetID(c.ManagerSheet)
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.SourceFolder) == "" {
		return fmt.Errorf("missing source folder ID")
	}

	if strings.TrimSpace(c.TargetSheet) == "" {
		return fmt.Errorf("missing target spreadsheet ID")
	}

	if strings.TrimSpace(c.ManagerSheet) == "" {
		return fmt.Errorf("missing manager spreadsheet ID")
	}

	if strings.TrimSpace(c.Credentials) == "" {
		return fmt.Errorf("missing credentials file")
	}

	if strings.TrimSpace(c.Checkpoint) == "" {
		return fmt.Errorf("missing checkpoint file")
	}

	if strings.TrimSpace(c.ProvenanceColumn) == "" {
		return fmt.Errorf("missing provenance column name")
	}

	if strings.TrimSpace(c.ManagerKey) == "" {
		return fmt.Errorf("missing manager key column name")
	}

	switch c.ValueInputOption {
	case "RAW", "USER_ENTERED":
	default:
		return fmt.Errorf("invalid value-input-option '%v' - expected RAW or USER_ENTERED", c.ValueInputOption)
	}

	return nil
}

// SpreadsheetID accepts either a bare spreadsheet ID or a spreadsheet URL of the form
// https://docs.google.com/spreadsheets/d/<ID>/edit.
func SpreadsheetID(v string) string {
	v = strings.TrimSpace(v)
	if match := spreadsheetURL.FindStringSubmatch(v); len(match) > 1 {
		return match[1]
	}

	return v
}

// FolderID accepts either a bare folder ID or a Drive folder URL.
func FolderID(v string) string {
	v = strings.TrimSpace(v)
	if match := folderURL.FindStringSubmatch(v); len(match) > 1 {
		return match[1]
	}

	return v
}
