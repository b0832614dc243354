package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumavid/veogen/config"
	"github.com/lumavid/veogen/scene"
)

var extendCmd = &cobra.Command{
	Use:   "extend <scenes-file>",
	Short: "Generate an extended video scene-by-scene",
	Long: `Generate an extended video from a JSON or YAML scene file. Scenes are
generated strictly in order, each one extending the previous scene's video.
The first scene may use any resolution; extension scenes are limited to 720p.

Scene file format (JSON shown; YAML works the same way):

  {
    "scenes": [
      {
        "prompt": "A futuristic city at night",
        "params": {"aspect_ratio": "16:9", "resolution": "1080p"}
      },
      {
        "prompt": "Camera zooms into a window"
      }
    ]
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runExtend,
}

var extendOutput string

func runExtend(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger := newLogger()

	chain, err := scene.ParseFile(args[0])
	if err != nil {
		return err
	}
	// Reject a bad chain before building the vendor client.
	if err := chain.Validate(); err != nil {
		return err
	}

	client, err := newVeoClient(cmd, cfg, logger)
	if err != nil {
		return err
	}

	orchestrator := scene.NewOrchestrator(client, cfg.DefaultRequest(""), logger)
	manifest, err := orchestrator.Extend(cmd.Context(), chain, extendOutput)
	if err != nil {
		return err
	}

	printSuccess("Extended video saved to %s", manifest.OutputPath)
	printField("Scenes", len(manifest.Outputs))
	printField("Duration", fmt.Sprintf("%ds", manifest.TotalDurationSeconds))
	for _, out := range manifest.Outputs {
		printField(fmt.Sprintf("Scene %d", out.Index+1), out.OperationID)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(extendCmd)

	extendCmd.Flags().StringVarP(&extendOutput, "output", "o", "", "Custom output filename for the final video")
}
