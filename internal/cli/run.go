package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/bigattichouse/taguchi"
	"github.com/bigattichouse/taguchi/design"
)

// Run implements `run <file.tgu> <shell command>` (§6.6, §6.3): it forks
// and execs command (via "sh -c") once per generated run, with the
// environment variables of §6.3 set, and reports each run's exit code. A
// non-zero exit from the child is not itself a CLI failure — only an
// exec failure (command not found, etc.) aborts the whole run.
func Run(path, command string, out io.Writer) error {
	logger := newLogger()

	def, err := readDefinition(path)
	if err != nil {
		return err
	}

	runs, arrayName, err := design.GenerateRuns(def, def.ArrayName)
	if err != nil {
		logger.Error().Err(err).Msg("run failed")
		return err
	}
	logger.Info().Str("array", arrayName).Int("runs", len(runs)).Str("command", command).Msg("starting run")

	for _, r := range runs {
		exitCode, err := execOne(command, r, out)
		if err != nil {
			logger.Error().Err(err).Int("run_id", r.RunID).Msg("exec failed")
			return fmt.Errorf("cli: run %d: %w", r.RunID, err)
		}
		fmt.Fprintf(out, "run %d: exit %d\n", r.RunID, exitCode)
	}
	return nil
}

func execOne(command string, r taguchi.Run, out io.Writer) (int, error) {
	cmd := exec.Command("sh", "-c", command)
	cmd.Env = append(os.Environ(), runEnv(r)...)
	cmd.Stdout = out
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return 0, err
}

// runEnv builds the per-run environment variables of §6.3.
func runEnv(r taguchi.Run) []string {
	env := make([]string, 0, len(r.Values)+1)
	env = append(env, fmt.Sprintf("TAGUCHI_RUN_ID=%d", r.RunID))
	for _, fv := range r.Values {
		env = append(env, fmt.Sprintf("TAGUCHI_%s=%s", fv.Factor, fv.Level))
	}
	return env
}
