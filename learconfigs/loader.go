package learconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/can-gurkan/lear/cmds"
	"github.com/can-gurkan/lear/configs"
	"github.com/can-gurkan/lear/logs"
)

//go:embed schema.cue
var schema string

var configFiles = cmds.Collect[string]("-config")

func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	// explicit
	paths = append(paths, *configFiles...)

	filenames := []string{
		"lear.cue",
		".lear.cue",
	}

	dirs := []string{}
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return NewLoader(paths...)
}

// NewLoader loads config files validated against the lear schema.
func NewLoader(paths ...string) configs.Loader {
	return configs.NewLoader(paths, schema)
}
