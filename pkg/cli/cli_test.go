package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulidsq/ulidsq/pkg/cliconfig"
	"github.com/ulidsq/ulidsq/pkg/compact"
)

const sampleULID = "01ARZ3NDEKTSV4RRFFQ69G5FAV"

// isolate keeps the user's config files and ULIDSQ_* variables out of a test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, key := range []string{
		cliconfig.EnvAlphabet, cliconfig.EnvMinLength, cliconfig.EnvBlocklist,
		cliconfig.EnvDisableBlocklist, cliconfig.EnvLogLevel, cliconfig.EnvLogFormat,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestEncodeDecode_Args(t *testing.T) {
	isolate(t)

	stdout, _, err := runCLI(t, "", "encode", sampleULID)
	require.NoError(t, err)
	short := strings.TrimSpace(stdout)
	require.NotEmpty(t, short)

	stdout, _, err = runCLI(t, "", "decode", short)
	require.NoError(t, err)
	assert.Equal(t, sampleULID+"\n", stdout)
}

func TestEncode_Stdin(t *testing.T) {
	isolate(t)

	in := sampleULID + "\n\n  01HF7YAT00003NQK8N00XDWT5H  \n"
	stdout, _, err := runCLI(t, in, "encode")
	require.NoError(t, err)
	shorts := lines(stdout)
	require.Len(t, shorts, 2)

	stdout, _, err = runCLI(t, strings.Join(shorts, "\n"), "decode")
	require.NoError(t, err)
	assert.Equal(t, []string{sampleULID, "01HF7YAT00003NQK8N00XDWT5H"}, lines(stdout))
}

func TestEncode_InvalidStops(t *testing.T) {
	isolate(t)

	stdout, _, err := runCLI(t, "", "encode", "not-a-ulid", sampleULID)
	require.ErrorIs(t, err, compact.ErrInvalidIdentifier)
	assert.Empty(t, stdout)
}

func TestEncode_KeepGoingJSON(t *testing.T) {
	isolate(t)

	stdout, stderr, err := runCLI(t, "", "encode", "--keep-going", "--json", "bogus", sampleULID)
	require.ErrorIs(t, err, ErrBatchFailed)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, stderr, "bogus")

	recs := lines(stdout)
	require.Len(t, recs, 2)

	var first, second batchResult
	require.NoError(t, json.Unmarshal([]byte(recs[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(recs[1]), &second))
	assert.Equal(t, "bogus", first.Input)
	assert.NotEmpty(t, first.Error)
	assert.Empty(t, first.Output)
	assert.Equal(t, sampleULID, second.Input)
	assert.NotEmpty(t, second.Output)
	assert.Empty(t, second.Error)
}

func TestDecode_Malformed(t *testing.T) {
	isolate(t)

	_, _, err := runCLI(t, "", "decode", "!!!")
	assert.ErrorIs(t, err, compact.ErrMalformedCompactID)
}

func TestMinLengthFlag(t *testing.T) {
	isolate(t)

	stdout, _, err := runCLI(t, "", "--min-length", "40", "encode", sampleULID)
	require.NoError(t, err)
	short := strings.TrimSpace(stdout)
	assert.GreaterOrEqual(t, len(short), 40)

	stdout, _, err = runCLI(t, "", "--min-length", "40", "decode", short)
	require.NoError(t, err)
	assert.Equal(t, sampleULID, strings.TrimSpace(stdout))

	_, _, err = runCLI(t, "", "decode", short)
	assert.ErrorIs(t, err, compact.ErrMalformedCompactID, "padding must match")
}

func TestInvalidAlphabet(t *testing.T) {
	isolate(t)

	_, _, err := runCLI(t, "", "--alphabet", "ab", "encode", sampleULID)
	require.ErrorIs(t, err, compact.ErrInvalidConfig)

	stdout, _, err := runCLI(t, "", "--alphabet", "ab", "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "flag")
}

func TestConfig_Layers(t *testing.T) {
	isolate(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "ulidsq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("minLength: 30\nlogFormat: json\n"), 0o644))
	t.Setenv(cliconfig.EnvLogLevel, "warn")

	stdout, _, err := runCLI(t, "", "--config", path, "--log-format", "text", "--json", "config")
	require.NoError(t, err)

	var got configOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, 30, got.Config.MinLength)
	assert.Equal(t, "warn", got.Config.LogLevel)
	assert.Equal(t, "text", got.Config.LogFormat)
	assert.Equal(t, compact.DefaultAlphabet, got.Config.Alphabet)

	assert.Equal(t, cliconfig.SourceFile, got.Sources["minLength"])
	assert.Equal(t, cliconfig.SourceEnv, got.Sources["logLevel"])
	assert.Equal(t, cliconfig.SourceFlag, got.Sources["logFormat"])
	assert.Equal(t, cliconfig.SourceDefault, got.Sources["alphabet"])
}

func TestConfig_LocalFile(t *testing.T) {
	isolate(t)

	require.NoError(t, os.WriteFile(".ulidsqrc.toml", []byte("minLength = 12\n"), 0o644))

	stdout, _, err := runCLI(t, "", "config")
	require.NoError(t, err)
	assert.Regexp(t, `minLength\s+12\s+local`, stdout)
}

func TestConfig_BadFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("colour: red\n"), 0o644))

	_, _, err := runCLI(t, "", "--config", path, "config")
	var cerr *cliconfig.ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestInspect_ULID(t *testing.T) {
	isolate(t)

	stdout, _, err := runCLI(t, "", "inspect", sampleULID)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1469922850259")
	assert.Contains(t, stdout, "2016-07-30T23:54:10.259Z")
	assert.Contains(t, stdout, "d6764c61efb99302bd5b")
	assert.Contains(t, stdout, "921107718639")
	assert.Contains(t, stdout, "797035380059")
}

func TestInspect_CompactJSON(t *testing.T) {
	isolate(t)

	stdout, _, err := runCLI(t, "", "encode", "01HF7YAT00003NQK8N00XDWT5H")
	require.NoError(t, err)
	short := strings.TrimSpace(stdout)

	stdout, _, err = runCLI(t, "", "--json", "inspect", short)
	require.NoError(t, err)

	var got inspectOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "01HF7YAT00003NQK8N00XDWT5H", got.ULID)
	assert.Equal(t, short, got.Compact)
	assert.Equal(t, uint64(1700000000000), got.Timestamp)
	assert.Equal(t, uint64(123456789), got.High)
	assert.Equal(t, uint64(987654321), got.Low)
}

func TestInspect_RequiresArg(t *testing.T) {
	isolate(t)

	_, _, err := runCLI(t, "", "inspect")
	assert.Error(t, err)
}

func TestDebugLogging(t *testing.T) {
	isolate(t)

	_, stderr, err := runCLI(t, "", "--log-level", "debug", "--log-format", "json", "encode", sampleULID)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"encoded"`)
	assert.Contains(t, stderr, sampleULID)
}

func TestVersion(t *testing.T) {
	isolate(t)

	stdout, _, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "ulidsq "), stdout)

	stdout, _, err = runCLI(t, "", "--json", "version")
	require.NoError(t, err)
	var got VersionOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.NotEmpty(t, got.Go)
}
