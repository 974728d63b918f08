package commands

const (
	_etc = "/usr/local/etc/com.github.sheetsync"

	DEFAULT_CONFIG = _etc + "/sheets-merge.yaml"
)
