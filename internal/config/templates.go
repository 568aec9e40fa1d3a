package config

import (
	"fmt"
	"os"
)

func Template() string {
	return noisectlTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(noisectlTemplate), 0o600)
}

const noisectlTemplate = `# noisectl defaults; command-line flags take precedence.
seed = 42
step = 0.05
format = "text"
workers = 4
origin = [0.0, 0.0]
`
