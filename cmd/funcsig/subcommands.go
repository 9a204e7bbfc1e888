package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tos-network/funcsig"
	"github.com/tos-network/funcsig/internal/config"
	"github.com/tos-network/funcsig/internal/logging"
	"github.com/tos-network/funcsig/sig/extract"
)

func dispatchSubcommand(args []string) (bool, int) {
	if len(args) == 0 {
		return false, 0
	}
	switch args[0] {
	case "normalize":
		return true, cmdNormalize(args[1:])
	case "extract":
		return true, cmdExtract(args[1:])
	case "check":
		return true, cmdCheck(args[1:])
	case "repl":
		return true, cmdREPL(args[1:])
	case "--version", "version":
		fmt.Fprintln(stdout, funcsig.Version)
		return true, exitOK
	case "--help", "-h", "help":
		printRootUsage()
		return true, exitOK
	default:
		return false, 0
	}
}

func printRootUsage() {
	fmt.Fprint(stderr, `Usage:
  funcsig <subcommand> [flags] <inputs...>

Subcommands:
  normalize  print the canonical signature of each declaration (stdin lines when none given)
  extract    list function declarations found in source files or directories
  check      validate raw (default) or canonical signatures
  repl       normalize declarations interactively

Common flags:
  --config file     JSON configuration (default $FUNCSIG_CONFIG)
  --log-level lvl   debug|info|warn|error
  --log-file path   also write JSON logs to a rotating file

Global:
  --version print version
  --help    print this help
`)
}

// commonFlags are registered on every subcommand flag set.
type commonFlags struct {
	configPath string
	logLevel   string
	logFile    string
}

func newFlagSet(name string) (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	c := &commonFlags{}
	fs.StringVar(&c.configPath, "config", "", "JSON configuration file")
	fs.StringVar(&c.logLevel, "log-level", "", "log level override")
	fs.StringVar(&c.logFile, "log-file", "", "log file override")
	return fs, c
}

func (c *commonFlags) open() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, nil, err
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if c.logFile != "" {
		cfg.Log.FilePath = c.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func parseFlags(fs *flag.FlagSet, args []string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK, false
		}
		return exitUsage, false
	}
	return 0, true
}

type normalizeResult struct {
	Input     string `json:"input"`
	Signature string `json:"signature,omitempty"`
	Error     string `json:"error,omitempty"`
}

func cmdNormalize(args []string) int {
	fs, common := newFlagSet("normalize")
	var asJSON bool
	fs.BoolVar(&asJSON, "json", false, "print results as JSON")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: funcsig normalize [--json] [declaration...]")
		fs.PrintDefaults()
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	_, logger, err := common.open()
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitUsage
	}
	defer logger.Sync()

	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs, err = readLines()
		if err != nil {
			logger.Error("reading stdin", zap.Error(err))
			return exitUsage
		}
	}

	status := exitOK
	results := make([]normalizeResult, 0, len(inputs))
	for _, in := range inputs {
		res := normalizeResult{Input: in}
		sig, err := funcsig.NormalizeFunctionSignature(in)
		if err != nil {
			logger.Warn("declaration rejected", zap.String("module", "normalize"), zap.String("input", in), zap.Error(err))
			res.Error = err.Error()
			status = exitRejected
		} else {
			logger.Debug("declaration normalized", zap.String("module", "normalize"), zap.String("signature", sig))
			res.Signature = sig
		}
		results = append(results, res)
	}

	if asJSON {
		return writeJSON(results, status)
	}
	for _, res := range results {
		if res.Error != "" {
			fmt.Fprintf(stdout, "error: %s\n", res.Error)
			continue
		}
		fmt.Fprintln(stdout, res.Signature)
	}
	return status
}

func readLines() ([]string, error) {
	var out []string
	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}

type foundDeclaration struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	Offset      int    `json:"offset"`
	Declaration string `json:"declaration"`
	Signature   string `json:"signature,omitempty"`
}

func cmdExtract(args []string) int {
	fs, common := newFlagSet("extract")
	var asJSON, normalize, strict bool
	var workers int
	fs.BoolVar(&asJSON, "json", false, "print results as JSON")
	fs.BoolVar(&normalize, "normalize", false, "also print the canonical signature")
	fs.BoolVar(&strict, "strict", false, "only report declarations that start with the function keyword")
	fs.IntVar(&workers, "j", -1, "concurrent file scans (default from config)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: funcsig extract [--normalize] [--strict] [--json] [-j N] <file|dir>...")
		fs.PrintDefaults()
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "extract requires at least one file or directory")
		fs.Usage()
		return exitUsage
	}
	cfg, logger, err := common.open()
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitUsage
	}
	defer logger.Sync()
	if workers >= 0 {
		cfg.Extract.Workers = workers
	}

	files, err := collectFiles(fs.Args(), cfg.Extract.Extensions)
	if err != nil {
		logger.Error("collecting inputs", zap.Error(err))
		return exitUsage
	}

	found, err := scanFiles(files, cfg.Extract.Workers, strict, normalize, logger)
	if err != nil {
		logger.Error("scanning inputs", zap.Error(err))
		return exitUsage
	}

	if asJSON {
		return writeJSON(found, exitOK)
	}
	for _, d := range found {
		line := fmt.Sprintf("%s:%d: %s", d.File, d.Line, strings.Join(strings.Fields(d.Declaration), " "))
		if d.Signature != "" {
			line += " => " + d.Signature
		}
		fmt.Fprintln(stdout, line)
	}
	return exitOK
}

// collectFiles expands directories into the files below them whose extension
// is listed. Files named explicitly are always kept.
func collectFiles(paths, extensions []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if slices.Contains(extensions, filepath.Ext(path)) {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// scanFiles reads and scans files concurrently. Results keep input order.
func scanFiles(files []string, workers int, strict, normalize bool, logger *zap.Logger) ([]foundDeclaration, error) {
	perFile := make([][]foundDeclaration, len(files))
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, path := range files {
		g.Go(func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			perFile[i] = scanSource(path, string(src), strict, normalize, logger)
			logger.Info("scanned", zap.String("module", "extract"), zap.String("file", path), zap.Int("declarations", len(perFile[i])))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := []foundDeclaration{}
	for _, decls := range perFile {
		out = append(out, decls...)
	}
	return out, nil
}

func scanSource(path, src string, strict, normalize bool, logger *zap.Logger) []foundDeclaration {
	seq := extract.All(src)
	if strict {
		seq = extract.Declared(src)
	}
	var out []foundDeclaration
	line, last := 1, 0
	for m := range seq {
		line += strings.Count(src[last:m.Offset], "\n")
		last = m.Offset
		d := foundDeclaration{
			File:        path,
			Line:        line,
			Offset:      m.Offset,
			Declaration: m.Text,
		}
		if normalize {
			sig, err := funcsig.NormalizeFunctionSignature(m.Text)
			if err != nil {
				logger.Warn("declaration rejected", zap.String("module", "extract"), zap.String("file", path), zap.Int("line", line), zap.Error(err))
			} else {
				d.Signature = sig
			}
		}
		out = append(out, d)
	}
	return out
}

func cmdCheck(args []string) int {
	fs, common := newFlagSet("check")
	var canonicalOnly bool
	fs.BoolVar(&canonicalOnly, "canonical", false, "require canonical signatures")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: funcsig check [--canonical] <signature>...")
		fs.PrintDefaults()
	}
	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "check requires at least one signature")
		fs.Usage()
		return exitUsage
	}
	_, logger, err := common.open()
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitUsage
	}
	defer logger.Sync()

	pred, kind := funcsig.IsRawFunctionSignature, "raw"
	if canonicalOnly {
		pred, kind = funcsig.IsCanonicalFunctionSignature, "canonical"
	}
	status := exitOK
	for _, s := range fs.Args() {
		if pred(s) {
			fmt.Fprintf(stdout, "ok: %s\n", s)
			continue
		}
		logger.Debug("signature rejected", zap.String("module", "check"), zap.String("kind", kind), zap.String("input", s))
		fmt.Fprintf(stdout, "rejected (%s): %s\n", kind, s)
		status = exitRejected
	}
	return status
}

func writeJSON(v any, status int) int {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitUsage
	}
	fmt.Fprintln(stdout, string(b))
	return status
}
