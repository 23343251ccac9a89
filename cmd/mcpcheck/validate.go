package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/mcpcheck-go/internal/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest.json>",
	Short: "Validate a manifest file without any network access",
	Long: fmt.Sprintf(`Validates a local manifest document against schema version %s and
prints every violation. Exits non-zero when the document does not conform.`,
		manifest.SchemaVersion),
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read manifest: %w", err)
	}

	validator, err := manifest.NewValidator()
	if err != nil {
		return err
	}

	result := validator.Validate(data)
	if !result.Valid {
		fmt.Printf("✗ %s\n", args[0])
		for _, v := range result.Violations {
			fmt.Printf("  %s\n", v)
		}
		os.Exit(1)
	}

	fingerprint, _ := manifest.Fingerprint(data)

	fmt.Printf("✓ %s\n", args[0])
	fmt.Printf("  manifest version: %s\n", result.Manifest.ManifestVersion)
	fmt.Printf("  tools: %d\n", len(result.Manifest.Tools))
	for _, tool := range result.Manifest.Tools {
		fmt.Printf("  - %s%s\n", tool.Name, toolAnnotations(tool))
	}
	if fingerprint != "" {
		fmt.Printf("  fingerprint: sha256:%s\n", fingerprint)
	}
	return nil
}

// toolAnnotations flags the declarations a caller would want to review
// before invoking a tool: elevated risk and non-free pricing.
func toolAnnotations(tool manifest.Tool) string {
	var notes []string
	if tool.RiskLevel == manifest.RiskHigh {
		notes = append(notes, "high risk")
	}
	if tool.Pricing != nil && tool.Pricing.Model != manifest.PricingFree {
		notes = append(notes, tool.Pricing.Model)
	}
	if len(notes) == 0 {
		return ""
	}
	return " (" + strings.Join(notes, ", ") + ")"
}
