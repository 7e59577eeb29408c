package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"cardiodash/internal/config"
	"cardiodash/internal/container"
	"cardiodash/internal/pipeline"
	"cardiodash/internal/report"
	"cardiodash/internal/testkit"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type filterFlags struct {
	data    string
	age     []string
	sex     []string
	smoking []string
}

func main() {
	_ = godotenv.Load()

	flags := &filterFlags{}
	rootCmd := &cobra.Command{
		Use:   "cardiodash-cli",
		Short: "Summarize a cardiovascular survey without starting the dashboard",
	}
	rootCmd.PersistentFlags().StringVar(&flags.data, "data", "", "survey file (.csv or .xlsx); overrides DATA_FILE")
	rootCmd.PersistentFlags().StringSliceVar(&flags.age, "age", nil, "age categories to include")
	rootCmd.PersistentFlags().StringSliceVar(&flags.sex, "sex", nil, "sex values to include")
	rootCmd.PersistentFlags().StringSliceVar(&flags.smoking, "smoking", nil, "smoking history values to include")

	rootCmd.AddCommand(
		newSummaryCmd(flags),
		newReportCmd(flags),
		newExportCmd(flags),
		newGenerateCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSummaryCmd(flags *filterFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the filtered summary as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := summarize(cmd, flags)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		},
	}
}

func newReportCmd(flags *filterFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the filtered summary as a markdown or HTML report",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "md" && format != "html" {
				return fmt.Errorf("unsupported report format %q", format)
			}
			summary, err := summarize(cmd, flags)
			if err != nil {
				return err
			}
			if format == "html" {
				_, err = cmd.OutOrStdout().Write(report.HTML(summary))
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), report.Markdown(summary))
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "md", "report format: md or html")
	return cmd
}

func newExportCmd(flags *filterFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "export [file.xlsx]",
		Short: "Write the filtered summary tables to an Excel workbook",
		Long: `Write the filtered summary tables to an Excel workbook.

Without a file argument a timestamped name is generated in the current directory.

Example: cardiodash-cli export --sex Female --smoking Yes female_smokers.xlsx`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := summarize(cmd, flags)
			if err != nil {
				return err
			}

			path := report.ExportFilename(summary.GeneratedAt)
			if len(args) == 1 {
				path = args[0]
			}
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := report.WriteXLSX(f, summary); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d participants)\n", path, summary.KPIs.Total)
			return nil
		},
	}
}

func newGenerateCmd() *cobra.Command {
	gen := testkit.DefaultSurveyConfig()

	cmd := &cobra.Command{
		Use:   "generate [file.csv]",
		Short: "Write a synthetic survey CSV for local testing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records := testkit.NewSurveyDataGenerator(gen).Generate()
			if err := testkit.WriteCSVFile(args[0], records); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records to %s\n", len(records), args[0])
			return nil
		},
	}
	cmd.Flags().IntVar(&gen.Participants, "participants", gen.Participants, "number of participants")
	cmd.Flags().Int64Var(&gen.Seed, "seed", gen.Seed, "random seed")
	return cmd
}

// summarize loads the dataset and applies the filter flags that were given on the command line
func summarize(cmd *cobra.Command, flags *filterFlags) (*pipeline.Summary, error) {
	if flags.data != "" {
		if err := os.Setenv("DATA_FILE", flags.data); err != nil {
			return nil, err
		}
	}
	appConfig, err := config.Load()
	if err != nil {
		return nil, err
	}
	appContainer, err := container.New(appConfig)
	if err != nil {
		return nil, err
	}

	override := pipeline.SelectionRequest{}
	if cmd.Flags().Changed("age") {
		override.AgeCategory = pipeline.Only(flags.age...)
	}
	if cmd.Flags().Changed("sex") {
		override.Sex = pipeline.Only(flags.sex...)
	}
	if cmd.Flags().Changed("smoking") {
		override.SmokingHistory = pipeline.Only(flags.smoking...)
	}
	return appContainer.Service.Summarize(context.Background(), override)
}
