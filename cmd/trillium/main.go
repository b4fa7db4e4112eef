// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// trillium answers the trillium seed chemistry exercises: triplet
// averages, location labels, per-row maxima, histograms, scatter plots
// and a Bayesian linear regression.
//
// Settings come from flags, a .trillium.yaml file in the working
// directory (or --config) and TRILLIUM_* environment variables.
//
// For example,
//
//	$ printf '6\n1\n5\n2\n4\n3\n' | trillium averages
//	2
//	5
//	$ trillium averages --data trillium.csv --column Citrulline --location TB
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/aclements/go-trillium/bayes"
	"github.com/aclements/go-trillium/trillium"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Configuration keys.
const (
	keyData         = "data"
	keyMeta         = "meta"
	keySiteColumn   = "site_column"
	keyStatusColumn = "status_column"
	keyLogLevel     = "log_level"
	keyDraws        = "sampler.draws"
	keyTune         = "sampler.tune"
	keyChains       = "sampler.chains"
	keySeed         = "sampler.seed"
	keyHDI          = "sampler.hdi"
)

// app is the state shared by all commands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	log        *zap.SugaredLogger
}

func newApp() *app {
	v := viper.New()
	v.SetDefault(keyData, "trillium.csv")
	v.SetDefault(keyMeta, trillium.DefaultMeta)
	v.SetDefault(keySiteColumn, trillium.SiteColumn)
	v.SetDefault(keyStatusColumn, trillium.StatusColumn)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyDraws, bayes.DefaultDraws)
	v.SetDefault(keyTune, bayes.DefaultTune)
	v.SetDefault(keyChains, bayes.DefaultChains)
	v.SetDefault(keySeed, 0)
	v.SetDefault(keyHDI, bayes.DefaultHDI)
	return &app{v: v, log: zap.NewNop().Sugar()}
}

// initConfig reads in the config file and environment variables.
func (a *app) initConfig() error {
	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName(".trillium")
		a.v.SetConfigType("yaml")
	}
	a.v.SetEnvPrefix("trillium")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	err := a.v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok && a.configFile == "" {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	log, err := newNamedLogger("trillium", a.v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	a.log = log
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debugf("using config file %s", used)
	}
	return nil
}

// loadFrame loads the configured data file and adds the Location column
// unless the file already has one.
func (a *app) loadFrame() (*trillium.Frame, error) {
	path := a.v.GetString(keyData)
	f, err := trillium.LoadFile(path, trillium.Options{Meta: a.v.GetInt(keyMeta)})
	if err != nil {
		return nil, err
	}
	if _, err := f.Strings(trillium.LocationColumn); err == nil {
		a.log.Debugf("%s already has a %s column", path, trillium.LocationColumn)
	} else if err := f.AddLocation(a.v.GetString(keySiteColumn)); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debugf("loaded %s: %d rows, %d compounds", path, f.Len(), len(f.Compounds()))
	return f, nil
}

func newRootCmd() *cobra.Command {
	a := newApp()
	root := &cobra.Command{
		Use:   "trillium",
		Short: "analyses of the trillium seed chemistry data",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.initConfig()
		},
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default ./.trillium.yaml)")
	pf.String("data", "trillium.csv", "path of the trillium CSV file")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	for key, flag := range map[string]string{keyData: "data", keyLogLevel: "log-level"} {
		if err := a.v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		a.averagesCmd(),
		a.describeCmd(),
		a.augmentCmd(),
		a.histCmd(),
		a.scatterCmd(),
		a.regressCmd(),
	)
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
