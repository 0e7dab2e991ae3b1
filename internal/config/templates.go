package config

import (
	"fmt"
	"os"
)

func Template() string {
	return defaultTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(defaultTemplate), 0o600)
}

const defaultTemplate = `# bitsctl configuration
input = "input.txt"
format = "text"
log_level = "info"
max_depth = 512
max_input_len = 1048576

[server]
addr = ":9160"
node = "bitsctl"
shutdown_timeout = "5s"
`
