// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot draws charts of Google Benchmark JSON results.
//
// Usage:
//
//	benchplot plot [flags] results.json
//	benchplot groups [flags] results.json
//
// The plot command draws a bar, box, line or surface chart of the
// results to an image file. With --watch, it redraws the chart each
// time the result files change. The groups command lists the series
// a chart of the results would have.
//
// Chart customizations are kept in a settings store shared by all
// charts of the same kind. By default it is a YAML file in the user
// configuration directory; --settings selects another file, or a
// database with --settings-driver.
//
// All flags can also be set in the configuration file selected with
// --config, or with environment variables such as BENCHPLOT_KIND.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benchviz/benchplot/storage"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "benchplot",
	Short: "Draw charts of benchmark results",
	Long: `benchplot draws charts of Google Benchmark JSON results and keeps
them up to date as the result files change.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	log.SetPrefix("benchplot: ")
	log.SetFlags(0)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "read flag defaults from config `file`")
	pf.String("settings", "", "chart settings `file`, or data source name with --settings-driver")
	pf.String("settings-driver", "", "store chart settings in a sqlite3 or mysql database")
	viper.BindPFlag("settings", pf.Lookup("settings"))
	viper.BindPFlag("settings-driver", pf.Lookup("settings-driver"))

	rootCmd.AddCommand(plotCmd, groupsCmd)
}

// initConfig reads the config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("reading config: %v", err)
		}
	}
	viper.SetEnvPrefix("BENCHPLOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// A settingsStore is a settings store that may hold resources.
type settingsStore interface {
	storage.Store
	Close() error
}

type nopCloser struct {
	storage.Store
}

func (nopCloser) Close() error { return nil }

// openSettings opens the chart settings store.
func openSettings() (settingsStore, error) {
	path := viper.GetString("settings")
	if driver := viper.GetString("settings-driver"); driver != "" {
		if path == "" {
			return nil, fmt.Errorf("--settings-driver %s needs a data source name in --settings", driver)
		}
		db, err := storage.OpenSQL(driver, path)
		if err != nil {
			return nil, err
		}
		return db, nil
	}
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(dir, "benchplot")
		if err := os.MkdirAll(dir, 0o777); err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "settings.yaml")
	}
	f, err := storage.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return nopCloser{f}, nil
}
