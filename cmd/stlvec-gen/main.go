// Command stlvec-gen writes the per-element-type C export files of
// cmd/libstlvec from the operation table in package stlvec.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/stlvec/stlvec-go/pkg/stlvec/logging"
)

func main() {
	out := flag.String("out", ".", "directory to write the generated files into")
	flag.Parse()

	zl, err := logging.Build("info", "console")
	if err != nil {
		panic(err)
	}
	log := logging.New(zl)
	ctx := context.Background()

	for _, t := range targets {
		src, err := generate(t)
		if err != nil {
			log.Error(ctx, "generate failed", zap.String("type", t.Type.Name), zap.Error(err))
			os.Exit(1)
		}
		path := filepath.Join(*out, t.fileName())
		if err := os.WriteFile(path, src, 0o644); err != nil {
			log.Error(ctx, "write failed", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
		log.Info(ctx, "wrote exports", zap.String("path", path))
	}
}
