package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ymatsuda/wordglass/internal/database"
	"github.com/ymatsuda/wordglass/internal/history"
	"github.com/ymatsuda/wordglass/internal/pdf"
)

func newHistoryCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "history",
		Short: "Lookup history commands",
	}
	rootCommand.AddCommand(newHistoryListCommand())
	rootCommand.AddCommand(newHistoryExportCommand())
	return &rootCommand
}

func newHistoryListCommand() *cobra.Command {
	var limit int
	command := &cobra.Command{
		Use:   "list",
		Short: "Show recent lookups",
		RunE: func(cmd *cobra.Command, args []string) error {
			repository, closeDB, err := openLookupRepository()
			if err != nil {
				return err
			}
			defer closeDB()

			lookups, err := repository.FindRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("repository.FindRecent() > %w", err)
			}

			for _, lookup := range lookups {
				line := fmt.Sprintf("%s\t%s\t%s", lookup.CreatedAt.Format("2006-01-02 15:04"), lookup.Text, lookup.Translation)
				if lookup.IPA != "" {
					line += "\t" + lookup.IPA
				}
				fmt.Println(line)
			}
			return nil
		},
	}
	command.Flags().IntVar(&limit, "limit", 20, "Maximum number of lookups to show")
	return command
}

func newHistoryExportCommand() *cobra.Command {
	var outputDir string
	var limit int
	command := &cobra.Command{
		Use:   "export",
		Short: "Export recent lookups as a PDF study sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			repository, closeDB, err := openLookupRepository()
			if err != nil {
				return err
			}
			defer closeDB()

			lookups, err := repository.FindRecent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("repository.FindRecent() > %w", err)
			}
			if len(lookups) == 0 {
				return fmt.Errorf("no lookups to export")
			}

			path, err := pdf.WriteStudySheet(lookups, outputDir)
			if err != nil {
				return fmt.Errorf("pdf.WriteStudySheet() > %w", err)
			}
			fmt.Printf("Wrote study sheet to %s\n", path)
			return nil
		},
	}
	command.Flags().StringVar(&outputDir, "output", ".", "Directory to write the study sheet into")
	command.Flags().IntVar(&limit, "limit", 100, "Maximum number of lookups to export")
	return command
}

func openLookupRepository() (history.LookupRepository, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if !cfg.History.Enabled {
		return nil, nil, fmt.Errorf("lookup history is disabled. Set history.enabled: true in the config file")
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	closeDB := func() {
		_ = db.Close()
	}
	return history.NewDBLookupRepository(db), closeDB, nil
}
