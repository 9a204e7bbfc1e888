package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"github.com/tos-network/funcsig"
)

func cmdREPL(args []string) int {
	fs, common := newFlagSet("repl")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: funcsig repl")
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

	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
		Stdin:  io.NopCloser(stdin),
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		logger.Error("starting readline", zap.Error(err))
		return exitUsage
	}
	defer rl.Close()

	fmt.Fprintln(stdout, funcsig.Version)
	for {
		decl, err := loadDeclaration(rl)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return exitOK
			}
			logger.Error("reading input", zap.Error(err))
			return exitUsage
		}
		if decl == "" {
			continue
		}
		fmt.Fprintln(stdout, evalDeclaration(decl))
	}
}

// loadDeclaration reads one line and keeps reading continuation lines while
// the argument list is still open.
func loadDeclaration(rl *readline.Instance) (string, error) {
	rl.SetPrompt("> ")
	line, err := rl.Readline()
	if err != nil {
		return "", err
	}
	decl := line
	for incomplete(decl) {
		rl.SetPrompt(">> ")
		line, err := rl.Readline()
		if err != nil {
			return "", err
		}
		decl += "\n" + line
	}
	return strings.TrimSpace(decl), nil
}

// incomplete reports whether s opened more parentheses than it closed.
func incomplete(s string) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth > 0
}

func evalDeclaration(decl string) string {
	sig, err := funcsig.NormalizeFunctionSignature(decl)
	if err != nil {
		return "error: " + err.Error()
	}
	return sig
}
