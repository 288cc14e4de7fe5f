//go:build cgo && !windows

package main

// #include <stddef.h>
import "C"

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/stlvec/stlvec-go/pkg/stlvec"
	"github.com/stlvec/stlvec-go/pkg/stlvec/logging"
)

var lib *stlvec.Library

func init() {
	var err error
	lib, err = open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "libstlvec: %v\n", err)
		os.Exit(1)
	}
}

// open builds the process-wide library. A broken configuration is reported
// and replaced by the defaults rather than failing the host's dlopen.
func open() (*stlvec.Library, error) {
	cfg, cfgErr := stlvec.ConfigFromEnv()
	l, err := stlvec.Open(cfg)
	if err != nil {
		cfgErr = err
		l, err = stlvec.Open(stlvec.Config{AbortOnError: cfg.AbortOnError})
		if err != nil {
			return nil, err
		}
	}
	if cfgErr != nil {
		zl, _ := logging.Build("warn", "console")
		logging.New(zl).Warn(context.Background(), "ignoring invalid configuration", zap.Error(cfgErr))
	}
	return l, nil
}

func cbool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
