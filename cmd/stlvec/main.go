// Command stlvec runs a vector script against the stlvec tables, either
// directly or through the wasm host module.
//
// Each script line is one command:
//
//	append 3 1 2
//	sort
//	print
//	slice -1 -100 -1
//
// Run with -h for the flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"

	"github.com/stlvec/stlvec-go/internal/styles"
	"github.com/stlvec/stlvec-go/pkg/stlvec"
	"github.com/stlvec/stlvec-go/pkg/stlvec/list"
	"github.com/stlvec/stlvec-go/pkg/stlvec/logging"
	"github.com/stlvec/stlvec-go/pkg/stlvec/wasmhost"
)

type options struct {
	elem   string
	wasm   bool
	abort  bool
	config string
}

func main() {
	var opts options
	flag.StringVar(&opts.elem, "type", "int", "element type: int or long")
	flag.BoolVar(&opts.wasm, "wasm", false, "drive the tables through the wasm host module")
	flag.BoolVar(&opts.abort, "abort", false, "abort on the first checked failure")
	flag.StringVar(&opts.config, "config", "", "YAML configuration file (default from "+stlvec.EnvConfig+")")
	version := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *version {
		fmt.Printf("stlvec %s (abi %d)\n", stlvec.WrapperVersion(), stlvec.ABIVersion)
		return
	}

	in := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, styles.Error(err.Error()))
			os.Exit(2)
		}
		defer f.Close()
		in = f
	}

	failures, err := run(context.Background(), opts, in, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.Error(err.Error()))
		os.Exit(2)
	}
	if failures > 0 {
		os.Exit(1)
	}
}

func loadConfig(opts options) (stlvec.Config, error) {
	var (
		cfg stlvec.Config
		err error
	)
	if opts.config != "" {
		cfg, err = stlvec.LoadConfig(opts.config)
	} else {
		cfg, err = stlvec.ConfigFromEnv()
	}
	if err != nil {
		return cfg, err
	}
	if opts.abort {
		cfg.AbortOnError = true
	}
	return cfg, nil
}

func run(ctx context.Context, opts options, in io.Reader, out io.Writer) (failures int, err error) {
	ctx = logging.ContextWith(ctx, zap.String("type", opts.elem), zap.Bool("wasm", opts.wasm))
	cfg, err := loadConfig(opts)
	if err != nil {
		return 0, err
	}
	lib, err := stlvec.Open(cfg)
	if err != nil {
		return 0, err
	}
	defer func() {
		err = errors.Join(err, lib.Close())
	}()

	var (
		intOps  list.Ops[int32] = lib.Int
		longOps list.Ops[int]   = lib.Long
	)
	if opts.wasm {
		rt := wazero.NewRuntime(ctx)
		defer rt.Close(ctx)

		mod, err := wasmhost.Instantiate(ctx, rt, lib)
		if err != nil {
			return 0, err
		}
		if intOps, err = wasmhost.NewIntClient(ctx, mod); err != nil {
			return 0, err
		}
		if longOps, err = wasmhost.NewLongClient(ctx, mod); err != nil {
			return 0, err
		}
	}

	fmt.Fprintln(out, styles.Header(fmt.Sprintf("stlvec %s %s", stlvec.WrapperVersion(), opts.elem)))
	switch opts.elem {
	case stlvec.TypeInt.Name:
		return runScript(intOps, stlvec.TypeInt.Bits, in, out)
	case stlvec.TypeLong.Name:
		return runScript(longOps, strconv.IntSize, in, out)
	}
	return 0, fmt.Errorf("unknown element type %q", opts.elem)
}
