package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tos-network/funcsig/internal/config"
)

const tokenSource = `pragma solidity ^0.8.0;

contract Token {
    function transfer(address to, uint amount) public returns (bool) {
        return true;
    }

    function batch(uint256[][3] ids,
                   bytes data) external {}
}
`

// capture redirects the command streams for one test.
func capture(t *testing.T, input string) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvLogFile, "")

	oldIn, oldOut, oldErr := stdin, stdout, stderr
	var out, errOut bytes.Buffer
	stdin = strings.NewReader(input)
	stdout = &out
	stderr = &errOut
	t.Cleanup(func() {
		stdin, stdout, stderr = oldIn, oldOut, oldErr
	})
	return &out, &errOut
}

func TestNormalizeArgs(t *testing.T) {
	out, _ := capture(t, "")
	code := mainAux([]string{"normalize", "function transfer(address to, uint amount)", "foo(uint256[][3] x)"})
	require.Equal(t, exitOK, code)
	assert.Equal(t, "transfer(address,uint256)\nfoo(uint256[][3])\n", out.String())
}

func TestNormalizeStdinAndRejection(t *testing.T) {
	out, errOut := capture(t, "foo(uint a)\n\nnot a function\n")
	code := cmdNormalize(nil)
	require.Equal(t, exitRejected, code)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "foo(uint256)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "error: "), lines[1])
	assert.Contains(t, errOut.String(), "declaration rejected")
}

func TestNormalizeJSON(t *testing.T) {
	out, _ := capture(t, "")
	code := cmdNormalize([]string{"--json", "function function(uint a)", "f(byte b)"})
	require.Equal(t, exitRejected, code)

	var results []normalizeResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Contains(t, results[0].Error, "SIG1002")
	assert.Equal(t, "f(bytes1)", results[1].Signature)
}

func TestExtractDirectory(t *testing.T) {
	out, _ := capture(t, "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Token.sol"), []byte(tokenSource), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("foo(uint a)"), 0o644))

	code := cmdExtract([]string{"--normalize", "--strict", dir})
	require.Equal(t, exitOK, code)
	path := filepath.Join(dir, "Token.sol")
	want := path + ":4: function transfer(address to, uint amount) => transfer(address,uint256)\n" +
		path + ":8: function batch(uint256[][3] ids, bytes data) => batch(uint256[][3],bytes)\n"
	assert.Equal(t, want, out.String())
}

func TestExtractJSONKeepsInputOrder(t *testing.T) {
	out, _ := capture(t, "")
	dir := t.TempDir()
	var files []string
	for i, body := range []string{"a(uint x)", "b(int y) c(bool z)", "nothing"} {
		p := filepath.Join(dir, string(rune('0'+i))+".sol")
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		files = append(files, p)
	}

	code := cmdExtract(append([]string{"--json", "-j", "2"}, files...))
	require.Equal(t, exitOK, code)

	var found []foundDeclaration
	require.NoError(t, json.Unmarshal(out.Bytes(), &found))
	require.Len(t, found, 3)
	assert.Equal(t, "a(uint x)", found[0].Declaration)
	assert.Equal(t, "b(int y)", found[1].Declaration)
	assert.Equal(t, "c(bool z)", found[2].Declaration)
	assert.Equal(t, 9, found[2].Offset)
	assert.Equal(t, files[1], found[2].File)
}

func TestExtractMissingInput(t *testing.T) {
	capture(t, "")
	assert.Equal(t, exitUsage, cmdExtract(nil))
	assert.Equal(t, exitUsage, cmdExtract([]string{filepath.Join(t.TempDir(), "missing.sol")}))
}

func TestCheck(t *testing.T) {
	out, _ := capture(t, "")
	assert.Equal(t, exitOK, cmdCheck([]string{"function foo(uint a)"}))
	assert.Equal(t, exitRejected, cmdCheck([]string{"--canonical", "foo()", "foo(uint1)"}))
	assert.Contains(t, out.String(), "ok: foo()")
	assert.Contains(t, out.String(), "rejected (canonical): foo(uint1)")
}

func TestInvalidLogLevelFlag(t *testing.T) {
	_, errOut := capture(t, "")
	assert.Equal(t, exitUsage, cmdCheck([]string{"--log-level", "loud", "foo()"}))
	assert.Contains(t, errOut.String(), "invalid log level")
}

func TestVersionAndUnknown(t *testing.T) {
	out, errOut := capture(t, "")
	assert.Equal(t, exitOK, mainAux([]string{"--version"}))
	assert.Contains(t, out.String(), "funcsig")
	assert.Equal(t, exitUsage, mainAux([]string{"frobnicate"}))
	assert.Contains(t, errOut.String(), `unknown subcommand "frobnicate"`)
}

func TestCollectFilesFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	for _, name := range []string{"a.sol", "b.txt", filepath.Join("sub", "c.sol")} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	got, err := collectFiles([]string{dir}, []string{".sol"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.sol"), filepath.Join(dir, "sub", "c.sol")}, got)
}

func TestIncomplete(t *testing.T) {
	assert.True(t, incomplete("function foo(uint a,"))
	assert.False(t, incomplete("function foo(uint a)"))
	assert.False(t, incomplete("no parens"))
}

func TestEvalDeclaration(t *testing.T) {
	assert.Equal(t, "foo(uint256)", evalDeclaration("function foo(uint a)"))
	assert.True(t, strings.HasPrefix(evalDeclaration("nope"), "error: "))
}
