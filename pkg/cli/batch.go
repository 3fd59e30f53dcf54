package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ulidsq/ulidsq/pkg/cli/internal/output"
)

// ErrBatchFailed reports that --keep-going skipped at least one input.
var ErrBatchFailed = errors.New("some inputs failed")

// batchResult is one JSON record of an encode or decode run.
type batchResult struct {
	Input  string `json:"input"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// forEachInput calls fn for every argument, or for every non-blank line of
// r when there are no arguments.
func forEachInput(args []string, r io.Reader, fn func(string) error) error {
	if len(args) > 0 {
		for _, arg := range args {
			if err := fn(arg); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// runBatch applies convert to every input and writes one result per line.
func (a *app) runBatch(cmd *cobra.Command, args []string, op string, keepGoing bool, convert func(string) (string, error)) error {
	out := cmd.OutOrStdout()
	var total, failed int

	err := forEachInput(args, cmd.InOrStdin(), func(in string) error {
		total++
		res, convErr := convert(in)
		if convErr != nil {
			if !keepGoing {
				return convErr
			}
			failed++
			a.log.Warn(op+" failed", "input", in, "error", convErr)
			if a.jsonOutput {
				return output.JSONLine(out, batchResult{Input: in, Error: convErr.Error()})
			}
			return nil
		}

		a.log.Debug(op, "input", in, "output", res)
		if a.jsonOutput {
			return output.JSONLine(out, batchResult{Input: in, Output: res})
		}
		_, werr := fmt.Fprintln(out, res)
		return werr
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, total)
	}
	return nil
}
