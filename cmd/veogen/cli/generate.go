package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lumavid/veogen/config"
	"github.com/lumavid/veogen/slogger"
	"github.com/lumavid/veogen/veo"
)

var generateCmd = &cobra.Command{
	Use:   "generate <prompt>...",
	Short: "Generate a video from a text prompt",
	Long: `Generate a single video from a text prompt, optionally starting from a
reference image. The command submits the request, polls until the remote
operation completes, and writes the resulting video to the output directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

var (
	generateModel          string
	generateAspectRatio    string
	generateResolution     string
	generateDuration       int
	generateNegativePrompt string
	generateSeed           int32
	generateImage          string
	generateOutput         string
	generatePollInterval   time.Duration
	generateMaxAttempts    int
)

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := newLogger()

	prompt := strings.Join(args, " ")
	req := cfg.DefaultRequest(prompt)
	if generateModel != "" {
		req.Model = generateModel
	}
	if generateAspectRatio != "" {
		req.AspectRatio = veo.AspectRatio(generateAspectRatio)
	}
	if generateResolution != "" {
		req.Resolution = veo.Resolution(generateResolution)
	}
	if generateDuration != 0 {
		req.DurationSeconds = generateDuration
	}
	req.NegativePrompt = generateNegativePrompt
	if cmd != nil && cmd.Flags().Changed("seed") {
		req.Seed = &generateSeed
	}
	if generateImage != "" {
		image, err := veo.LoadImage(generateImage)
		if err != nil {
			return err
		}
		req.Image = image
	}

	// Validation happens before the credential check would trigger any
	// network setup, so parameter mistakes surface without an API key.
	resolved, err := veo.ResolveRequest(req)
	if err != nil {
		return err
	}

	if veo.LimitedSupport(resolved) {
		printWarning("1080p at 9:16 has limited model support; the service may fall back to 720p")
	}

	client, err := newVeoClient(cmd, cfg, logger)
	if err != nil {
		return err
	}

	result, err := client.Generate(cmd.Context(), resolved, generateOutput)
	if err != nil {
		return err
	}

	printSuccess("Video saved to %s", result.OutputPath)
	printField("Model", result.Model)
	printField("Resolution", string(result.Resolution))
	printField("Aspect", string(result.AspectRatio))
	printField("Duration", fmt.Sprintf("%ds", result.DurationSeconds))
	printField("Size", veo.FormatFileSize(result.SizeBytes))
	printField("Operation", result.OperationID)
	return nil
}

// newVeoClient builds a vendor-backed client from the configuration,
// honoring per-command poll overrides.
func newVeoClient(cmd *cobra.Command, cfg *config.Config, logger slogger.Logger) (*veo.Client, error) {
	key, err := cfg.RequireAPIKey()
	if err != nil {
		return nil, err
	}

	api, err := veo.NewAPI(cmd.Context(), key)
	if err != nil {
		return nil, err
	}

	interval := cfg.PollInterval
	maxAttempts := cfg.MaxPollAttempts
	if generatePollInterval != 0 {
		interval = generatePollInterval
	}
	if generateMaxAttempts != 0 {
		maxAttempts = generateMaxAttempts
	}

	poller := veo.NewPoller(interval, maxAttempts)
	poller.Logger = logger

	return veo.NewClient(veo.ClientOptions{
		API:       api,
		Poller:    poller,
		Logger:    logger,
		OutputDir: cfg.OutputDir,
	})
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateModel, "model", "m", "", "Veo model to use (default: "+veo.DefaultModel+")")
	generateCmd.Flags().StringVarP(&generateAspectRatio, "aspect-ratio", "a", "", "Video aspect ratio (16:9 or 9:16)")
	generateCmd.Flags().StringVarP(&generateResolution, "resolution", "r", "", "Video resolution (720p or 1080p)")
	generateCmd.Flags().IntVarP(&generateDuration, "duration", "d", 0, "Video duration in seconds (4, 6 or 8)")
	generateCmd.Flags().StringVarP(&generateNegativePrompt, "negative-prompt", "n", "", "Elements to exclude from the video")
	generateCmd.Flags().Int32VarP(&generateSeed, "seed", "s", 0, "Random seed for reproducibility")
	generateCmd.Flags().StringVarP(&generateImage, "image", "i", "", "Input image path for image-to-video generation")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Custom output filename")
	generateCmd.Flags().DurationVar(&generatePollInterval, "poll-interval", 0, "Polling interval while waiting for completion")
	generateCmd.Flags().IntVar(&generateMaxAttempts, "timeout-attempts", 0, "Maximum number of poll attempts before giving up")
}
