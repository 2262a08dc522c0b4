// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	envLogLevel  = "FWLIST_LOG_LEVEL"
	envSeparator = "FWLIST_SEPARATOR"

	defaultLogLevel  = "warn"
	defaultSeparator = ","
)

type config struct {
	LogLevel  logrus.Level
	Separator string
}

func loadConfigFromEnvironment() (*config, error) {
	level, ok := os.LookupEnv(envLogLevel)
	if !ok {
		level = defaultLogLevel
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s", envLogLevel)
	}

	sep, ok := os.LookupEnv(envSeparator)
	if !ok {
		sep = defaultSeparator
	}
	if sep == "" {
		return nil, errors.Errorf("%s must not be empty", envSeparator)
	}

	return &config{LogLevel: lvl, Separator: sep}, nil
}

func newLogger(cfg *config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}
