package cmd

import (
	"errors"
	"os"
	"os/exec"
	"strconv"

	"go.uber.org/zap"
)

// extensionEnv returns the environment of an extension: the current one
// plus the global flags.
func extensionEnv() []string {
	return append(os.Environ(),
		EnvPortfolioFile+"="+*portfolioFile,
		EnvDefaultCurrency+"="+*defaultCurrency,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)
}

// RunExtension attempts to find and execute an external invest-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(logger *zap.Logger, subcommand string, args []string) (bool, int) {
	name := "invest-" + subcommand
	path, err := exec.LookPath(name)
	if err != nil {
		logger.Debug("extension not found", zap.String("extension", name), zap.Error(err))
		return false, 0
	}

	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	cmd.Env = extensionEnv()

	logger.Debug("running extension", zap.String("path", path), zap.Strings("args", args))
	err = cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return true, 0
	case errors.As(err, &exitErr):
		logger.Debug("extension failed", zap.String("extension", name), zap.Int("code", exitErr.ExitCode()))
		return true, exitErr.ExitCode()
	default:
		logger.Error("cannot execute extension", zap.String("extension", name), zap.Error(err))
		return true, 1
	}
}
