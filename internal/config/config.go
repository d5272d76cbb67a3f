// Package config loads the user's configuration file and supplies defaults
// for everything it omits. The file is HCL, lives in the application
// directory by default, and is entirely optional: a fresh machine runs with
// built-in defaults and no setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/worktimer/internal/fsutil"
)

const (
	appName    = "WorkTimer"
	fileName   = "config.hcl"
	dbFileName = "worktimer.db"

	// DefaultLogLevel keeps a CLI quiet unless something is wrong.
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// File is the HCL schema of the configuration file. Every attribute is
// optional.
//
//	database   = "${home}/timesheets/worktimer.db"
//	log_level  = "debug"
//	log_format = "json"
type File struct {
	Database  string `hcl:"database,optional"`
	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
}

// Config is the resolved configuration after defaults are applied.
type Config struct {
	// Dir is the application directory holding the config file and, by
	// default, the database.
	Dir       string
	Database  string
	LogLevel  string
	LogFormat string
}

// Load resolves the configuration. An empty path means the default location
// inside the application directory, where a missing file just yields
// defaults; an explicitly given path must exist.
func Load(path string) (*Config, error) {
	dir, err := fsutil.AppDir(appName)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Dir:       dir,
		Database:  filepath.Join(dir, dbFileName),
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, fileName)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %q: %w", path, err)
	}

	var file File
	if err := hclsimple.DecodeFile(path, evalContext(dir), &file); err != nil {
		return nil, fmt.Errorf("parsing config file %q: %w", path, err)
	}

	if file.Database != "" {
		cfg.Database = file.Database
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.LogFormat != "" {
		cfg.LogFormat = file.LogFormat
	}
	return cfg, nil
}

// evalContext exposes the variables config files may interpolate into
// paths: the user's home directory and the application directory.
func evalContext(dir string) *hcl.EvalContext {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"home":       cty.StringVal(home),
			"config_dir": cty.StringVal(dir),
		},
	}
}
