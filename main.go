// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"gopkg.microglot.org/parsec.go/internal/exc"
	"gopkg.microglot.org/parsec.go/internal/fs"
	"gopkg.microglot.org/parsec.go/internal/loader"
)

type opts struct {
	Roots          []string
	Format         string
	MaxConcurrency int
	Verbose        bool
	NoDefaultRoots bool
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	op := &opts{}
	flags := pflag.NewFlagSet("pcconf", pflag.ExitOnError)
	flags.StringSliceVar(&op.Roots, "root", []string{"."}, "Root search paths for targets.")
	flags.StringVar(&op.Format, "format", string(formatText), "Output format: text, yaml, or json.")
	flags.IntVar(&op.MaxConcurrency, "max-concurrency", 0, "Maximum number of files parsed at once. Zero uses the CPU count.")
	flags.BoolVar(&op.Verbose, "verbose", false, "Log progress to STDERR.")
	flags.BoolVar(&op.NoDefaultRoots, "no-default-roots", false, "Do not search PCCONF_PATH or the system configuration directories.")
	_ = flags.Parse(os.Args[1:])
	targets := flags.Args()

	format, err := parseFormat(op.Format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	logger := zap.NewNop()
	if op.Verbose {
		config := zap.NewDevelopmentConfig()
		config.DisableCaller = true
		if logger, err = config.Build(); err != nil {
			panic(err)
		}
	}
	defer func() { _ = logger.Sync() }()

	mf := make(fs.FileSystemMulti, 0, len(op.Roots))
	for _, root := range op.Roots {
		absRoot, errAbs := filepath.Abs(root)
		if errAbs != nil {
			panic(errAbs.Error())
		}
		rf, err := fs.NewFileSystemLocal(absRoot)
		if err != nil {
			panic(err.Error())
		}
		mf = append(mf, rf)
	}
	if !op.NoDefaultRoots {
		df, err := loader.NewDefaultFS(os.LookupEnv)
		if err != nil {
			panic(err.Error())
		}
		mf = append(mf, df)
	}

	reporter := exc.NewReporter(nil)
	l, err := loader.New(
		loader.OptionWithFS(mf),
		loader.OptionWithExcReporter(reporter),
		loader.OptionWithMaxConcurrency(op.MaxConcurrency),
		loader.OptionWithLogger(logger),
	)
	if err != nil {
		panic(err)
	}

	out, err := l.Load(ctx, &loader.Request{Targets: targets})
	if err != nil {
		var me loader.MultiException
		if !errors.As(err, &me) {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		for _, e := range me {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		if len(reporter.Fatal()) > 0 {
			os.Exit(1)
		}
	}

	if err := writeDocuments(os.Stdout, format, out.Documents); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
