package commands

const (
	_etc = "/usr/local/etc/sheets-merge"

	DEFAULT_CONFIG = _etc + "/sheets-merge.yaml"
)
