package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lumavid/veogen/catalog"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List and inspect the available Veo models",
	Long:  "Commands for browsing the catalog of known Veo model variants.",
	RunE:  runModelsList,
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all known models",
	RunE:  runModelsList,
}

var modelsGetCmd = &cobra.Command{
	Use:   "get <model>",
	Short: "Show one model by identifier",
	Args:  cobra.ExactArgs(1),
	RunE:  runModelsGet,
}

var modelsRecommendCmd = &cobra.Command{
	Use:   "recommend <keyword>",
	Short: "Recommend a model for a use case",
	Long: "Recommend a model for a use-case keyword (" +
		strings.Join(catalog.UseCases(), ", ") + ").",
	Args: cobra.ExactArgs(1),
	RunE: runModelsRecommend,
}

var modelsUseCasesCmd = &cobra.Command{
	Use:   "use-cases",
	Short: "List recommendations for all use cases",
	RunE:  runModelsUseCases,
}

func runModelsList(cmd *cobra.Command, args []string) error {
	entries := catalog.List()
	printHeader(fmt.Sprintf("Available Veo Models (%d total)", len(entries)))
	for i, entry := range entries {
		fmt.Printf("%d. %s\n\n", i+1, entry)
	}
	return nil
}

func runModelsGet(cmd *cobra.Command, args []string) error {
	entry, err := catalog.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Println(entry)
	return nil
}

func runModelsRecommend(cmd *cobra.Command, args []string) error {
	entry, err := catalog.Recommend(args[0])
	if err != nil {
		return err
	}
	printHeader(fmt.Sprintf("Recommended model for %q", args[0]))
	fmt.Println(entry)
	return nil
}

func runModelsUseCases(cmd *cobra.Command, args []string) error {
	printHeader("Recommended Models by Use Case")
	for _, keyword := range catalog.UseCases() {
		entry, err := catalog.Recommend(keyword)
		if err != nil {
			return err
		}
		fmt.Printf("%s:\n  %s - %s\n\n", strings.ToUpper(keyword), entry.Name, entry.Description)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(modelsCmd)

	modelsCmd.AddCommand(modelsListCmd)
	modelsCmd.AddCommand(modelsGetCmd)
	modelsCmd.AddCommand(modelsRecommendCmd)
	modelsCmd.AddCommand(modelsUseCasesCmd)
}
