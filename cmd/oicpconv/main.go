// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

// Command oicpconv converts OICP documents between their XML and JSON wire
// forms.
//
// Usage:
//
//	oicpconv [flags] [file ...]
//
// Inputs are read from -in, from the remaining arguments, or from stdin.
// Gzip framed input is inflated transparently and SOAP envelopes are
// unwrapped. Record level parse failures are logged and the record is
// dropped; a document that cannot be parsed at all fails the run.
//
// With -registry every input is replayed into an in-memory registry that
// applies EVSE data deltas and detects duplicate charge detail records.
// With -store the decoded records are persisted, either to MongoDB as
// configured in the storage section or to an in-memory store.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirosfoundation/go-oicp/internal/config"
	"github.com/sirosfoundation/go-oicp/internal/convert"
	"github.com/sirosfoundation/go-oicp/internal/storage"
	"github.com/sirosfoundation/go-oicp/internal/storage/memory"
	"github.com/sirosfoundation/go-oicp/internal/storage/mongodb"
	"github.com/sirosfoundation/go-oicp/pkg/registry"
	"github.com/sirosfoundation/go-oicp/pkg/wire"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "oicpconv: %v\n", err)
		}
		os.Exit(1)
	}
}

type options struct {
	configPath string
	in         string
	out        string
	to         string
	metadata   bool
	soap       bool
	gzip       bool
	pretty     bool
	validate   bool
	registry   bool
	store      string
}

func parseFlags(args []string, stderr io.Writer) (*options, []string, error) {
	fs := flag.NewFlagSet("oicpconv", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.StringVar(&o.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&o.in, "in", "", "input file (default stdin)")
	fs.StringVar(&o.out, "out", "-", "output file, - for stdout")
	fs.StringVar(&o.to, "to", "", "output format: xml or json (overrides codec.outputFormat)")
	fs.BoolVar(&o.metadata, "metadata", false, "write lastUpdate and deltaType on EVSE data records")
	fs.BoolVar(&o.soap, "soap", false, "wrap XML output in a SOAP envelope")
	fs.BoolVar(&o.gzip, "gzip", false, "gzip the output")
	fs.BoolVar(&o.pretty, "pretty", false, "indent the output")
	fs.BoolVar(&o.validate, "validate", false, "parse only, write no output")
	fs.BoolVar(&o.registry, "registry", false, "replay inputs into an in-memory registry and log its state")
	fs.StringVar(&o.store, "store", "", "persist records: mongodb or memory")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	inputs := fs.Args()
	if o.in != "" {
		inputs = append([]string{o.in}, inputs...)
	}
	return &o, inputs, nil
}

func loadConfig(o *options) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, err
		}
	}
	if o.to != "" {
		cfg.Codec.OutputFormat = o.to
	}
	cfg.Codec.IncludeMetadata = cfg.Codec.IncludeMetadata || o.metadata
	cfg.Codec.SOAP = cfg.Codec.SOAP || o.soap
	cfg.Codec.Gzip = cfg.Codec.Gzip || o.gzip
	cfg.Codec.Pretty = cfg.Codec.Pretty || o.pretty

	switch cfg.Codec.OutputFormat {
	case config.FormatXML, config.FormatJSON:
	default:
		return nil, fmt.Errorf("-to must be xml or json, got %q", cfg.Codec.OutputFormat)
	}
	if cfg.Codec.SOAP && cfg.Codec.OutputFormat != config.FormatXML {
		return nil, errors.New("-soap requires XML output")
	}
	return cfg, nil
}

// createOutput opens the -out file.
var createOutput = func(name string) (io.WriteCloser, error) { return os.Create(name) }

func openStore(ctx context.Context, kind string, cfg *config.Config) (storage.RecordStore, error) {
	switch kind {
	case "":
		if !cfg.Storage.MongoDB.Enabled {
			return nil, nil
		}
		fallthrough
	case "mongodb":
		if cfg.Storage.MongoDB.URI == "" {
			return nil, errors.New("storage.mongodb.uri is required for the mongodb store")
		}
		connectCtx, cancel := context.WithTimeout(ctx, cfg.Storage.MongoDB.Timeout)
		defer cancel()
		s, err := mongodb.NewStore(connectCtx, &mongodb.Config{
			URI:      cfg.Storage.MongoDB.URI,
			Database: cfg.Storage.MongoDB.Database,
			Timeout:  cfg.Storage.MongoDB.Timeout,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	case "memory":
		return memory.NewStore(), nil
	}
	return nil, fmt.Errorf("unknown store %q", kind)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	o, inputs, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}
	logger := cfg.Log.NewLogger(stderr)

	if len(inputs) > 1 && o.out != "-" && !o.validate {
		return errors.New("-out takes a single input")
	}

	store, err := openStore(ctx, o.store, cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.Close(closeCtx); err != nil {
				logger.Warn("closing store", "error", err)
			}
		}()
	}

	var reg *registry.Registry
	if o.registry {
		reg = registry.New(cfg.Registry.DuplicateWindow)
		pruneCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go reg.Run(pruneCtx, cfg.Registry.PruneInterval)
	}
	importer := &convert.Importer{Registry: reg, Store: store, Logger: logger}

	out := stdout
	var outFile io.WriteCloser
	if o.out != "-" && !o.validate {
		f, err := createOutput(o.out)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		outFile = f
		defer func() {
			if outFile != nil {
				_ = outFile.Close()
			}
		}()
		out = f
	}

	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, name := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := process(ctx, name, stdin, out, cfg, o.validate, importer, logger); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if outFile != nil {
		f := outFile
		outFile = nil
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing output: %w", err)
		}
	}

	if reg != nil {
		counts := make([]any, 0, 2*len(reg.StatusCounts()))
		for status, n := range reg.StatusCounts() {
			counts = append(counts, slog.Int(status.String(), n))
		}
		logger.Info("registry state", "evses", reg.Len(), slog.Group("status", counts...))
	}
	return nil
}

func process(ctx context.Context, name string, stdin io.Reader, out io.Writer, cfg *config.Config,
	validateOnly bool, importer *convert.Importer, logger *slog.Logger) error {
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	inputLogger := logger.With("input", name)
	doc, err := convert.Decode(data, cfg.Codec.InputFormat, wire.LogErrors(inputLogger))
	if err != nil {
		return err
	}
	inputLogger.Info("decoded", "kind", doc.Kind.String(), "document", doc.String())

	if importer.Registry != nil || importer.Store != nil {
		res, err := importer.Import(ctx, doc)
		if err != nil {
			return fmt.Errorf("importing: %w", err)
		}
		if importer.Store != nil {
			inputLogger.Info("stored", "records", res.Stored, "duplicate", res.Duplicate)
		}
	}

	if validateOnly {
		return nil
	}
	encoded, err := convert.Encode(doc, cfg.Codec.OutputFormat, convert.Options{
		IncludeMetadata: cfg.Codec.IncludeMetadata,
		Pretty:          cfg.Codec.Pretty,
		SOAP:            cfg.Codec.SOAP,
		Gzip:            cfg.Codec.Gzip,
	})
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	if _, err := out.Write(encoded); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if !cfg.Codec.Gzip {
		_, err = io.WriteString(out, "\n")
	}
	return err
}
