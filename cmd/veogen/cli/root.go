package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumavid/veogen/catalog"
	"github.com/lumavid/veogen/config"
	"github.com/lumavid/veogen/scene"
	"github.com/lumavid/veogen/slogger"
	"github.com/lumavid/veogen/veo"
)

var (
	logLevel string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:           "veogen",
	Short:         "Generate AI videos using Google Veo",
	Long:          "veogen is a command-line client for the Google Veo video generation API.\nIt supports single text-to-video and image-to-video generation, scene-based\nvideo extension, and a catalog of the available Veo models.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Every error kind maps to a non-zero exit with
// its category printed to stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s: %v\n", xmark, errorCategory(err), err)
		os.Exit(1)
	}
}

// errorCategory names the error taxonomy bucket for CLI output.
func errorCategory(err error) string {
	var (
		invalidParam *veo.InvalidParameterError
		unknownEnum  *veo.UnknownEnumError
		chainErr     *scene.ChainConstraintError
		sceneErr     *scene.SceneError
		genErr       *veo.GenerationError
		timeoutErr   *veo.TimeoutError
	)
	switch {
	case errors.Is(err, config.ErrMissingCredential):
		return "missing credential"
	case errors.As(err, &invalidParam):
		return "invalid parameters"
	case errors.As(err, &unknownEnum):
		return "unknown value"
	case errors.As(err, &chainErr):
		return "invalid chain"
	case errors.As(err, &timeoutErr):
		return "timeout"
	case errors.As(err, &genErr):
		return "generation failed"
	case errors.As(err, &sceneErr):
		return "generation failed"
	case errors.Is(err, catalog.ErrNotFound):
		return "not found"
	default:
		return "error"
	}
}

func newLogger() slogger.Logger {
	level := slogger.LevelFromString(logLevel)
	if verbose {
		level = slogger.LevelDebug
	}
	return slogger.New(level)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
