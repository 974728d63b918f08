package commands

const (
	_etc = `C:\ProgramData\sheets-merge`

	DEFAULT_CONFIG = _etc + `\sheets-merge.yaml`
)
