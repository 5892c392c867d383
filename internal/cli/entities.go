package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lexsift/lexsift/internal/entity"
	"github.com/lexsift/lexsift/internal/ingest"
	"github.com/spf13/cobra"
)

// entitiesCmd represents the entities command
var entitiesCmd = &cobra.Command{
	Use:   "entities <file>",
	Short: "Extract parties, dates, amounts and obligations from a document",
	Long: `Entities runs only the entity recognition passes on a document and
prints the results, skipping classification and simplification.

Example:
  lexsift entities contract.pdf
  lexsift entities nda.docx --json entities.json`,
	Args: cobra.ExactArgs(1),
	RunE: runEntities,
}

func init() {
	rootCmd.AddCommand(entitiesCmd)

	entitiesCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path")
}

func runEntities(cmd *cobra.Command, args []string) error {
	doc, err := ingest.ProcessFile(args[0])
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	set := entity.NewExtractor().Extract(doc.Text)

	if outJSON != "" {
		data, err := json.MarshalIndent(set, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal entities: %w", err)
		}
		if err := os.WriteFile(outJSON, data, 0644); err != nil {
			return fmt.Errorf("write file: %w", err)
		}
	}

	s := set.Summary()
	fmt.Printf("\n")
	fmt.Printf("═══════════════════════════════════════════════════════════\n")
	fmt.Printf("  Entities: %s\n", doc.Filename)
	fmt.Printf("═══════════════════════════════════════════════════════════\n")
	fmt.Printf("\n")

	if len(set.Parties) > 0 {
		fmt.Printf("  Parties (%d):\n", s.Parties)
		for _, p := range set.Parties {
			if p.Alias != "" {
				fmt.Printf("    - %s (%s) [%s]\n", p.Name, p.Alias, p.Role)
			} else {
				fmt.Printf("    - %s [%s]\n", p.Name, p.Role)
			}
		}
	}
	if len(set.Dates) > 0 {
		fmt.Printf("  Dates (%d):\n", s.Dates)
		for _, d := range set.Dates {
			fmt.Printf("    - %s (%s)\n", d.Date, d.Format)
		}
	}
	if len(set.MonetaryValues) > 0 {
		fmt.Printf("  Monetary values (%d):\n", s.MonetaryValues)
		for _, m := range set.MonetaryValues {
			fmt.Printf("    - %s (%s)\n", m.Amount, m.Currency)
		}
	}
	if len(set.Obligations) > 0 {
		fmt.Printf("  Obligations (%d):\n", s.Obligations)
		for _, o := range set.Obligations {
			fmt.Printf("    - [%s] %s\n", o.Keyword, o.Clause)
		}
	}
	if len(set.LegalTerms) > 0 {
		fmt.Printf("  Legal terms (%d):\n", s.LegalTerms)
		for _, t := range set.LegalTerms {
			fmt.Printf("    - %s (%d)\n", t.Term, t.Count)
		}
	}
	if len(set.ContactInfo) > 0 {
		fmt.Printf("  Contacts (%d):\n", s.ContactInfo)
		for _, c := range set.ContactInfo {
			fmt.Printf("    - %s: %s\n", c.Type, c.Value)
		}
	}
	fmt.Printf("\n")

	return nil
}
