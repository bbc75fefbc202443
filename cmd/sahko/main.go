// Package main provides the CLI entrypoint for sahko.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/sahko/internal/config"
	"github.com/verte-zerg/sahko/internal/loader"
	"github.com/verte-zerg/sahko/internal/model"
	"github.com/verte-zerg/sahko/internal/report"
	"github.com/verte-zerg/sahko/internal/stats"
	"github.com/verte-zerg/sahko/internal/store"
	"github.com/verte-zerg/sahko/internal/tui"
)

const (
	defaultDataPath   = "2025.csv"
	defaultOutputPath = "report.txt"
	defaultYear       = 2025
)

var (
	dataPath   string
	outputPath string
	dataYear   int

	exportFrom     string
	exportTo       string
	exportMonth    int
	exportFullYear bool
	exportWrite    bool

	historyLast int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sahko",
		Short:         "Interactive electricity consumption report tool",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runSessionCmd,
	}

	rootCmd.PersistentFlags().StringVar(&dataPath, "data", defaultDataPath, "meter readings file")
	rootCmd.PersistentFlags().StringVar(&outputPath, "output", defaultOutputPath, "report output file")
	rootCmd.PersistentFlags().IntVar(&dataYear, "year", defaultYear, "dataset year")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runSessionCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive session requires a terminal (use 'sahko export' otherwise)")
	}

	records, err := loadRecords(cfg.DataPath)
	if err != nil {
		return err
	}

	archive, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open report archive: %v\n", err)
		archive = nil
	}
	defer func() {
		if archive == nil {
			return
		}
		if cerr := archive.Close(); cerr != nil {
			logErrf("failed to close report archive: %v\n", cerr)
		}
	}()

	sessionModel := tui.NewModel(records, cfg, archive)
	program := tea.NewProgram(sessionModel)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run session: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Build one report without the interactive session",
		Args:  cobra.NoArgs,
		RunE:  runExportCmd,
	}
	cmd.Flags().StringVar(&exportFrom, "from", "", "range start date (dd.mm.yyyy)")
	cmd.Flags().StringVar(&exportTo, "to", "", "range end date (dd.mm.yyyy)")
	cmd.Flags().IntVar(&exportMonth, "month", 0, "month number (1-12)")
	cmd.Flags().BoolVar(&exportFullYear, "full-year", false, "build the yearly report")
	cmd.Flags().BoolVar(&exportWrite, "write", false, "also write and archive the report file")
	return cmd
}

func runExportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	records, err := loadRecords(cfg.DataPath)
	if err != nil {
		return err
	}

	rep, err := buildExportReport(records, cfg)
	if err != nil {
		return err
	}

	for _, line := range rep.Lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if !exportWrite {
		return nil
	}
	if err := report.WriteFile(cfg.OutputPath, rep.Lines); err != nil {
		return err
	}
	logErrf("Report written to %q\n", cfg.OutputPath)

	archive, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open report archive: %w", err)
	}
	defer func() {
		if cerr := archive.Close(); cerr != nil {
			logErrf("failed to close report archive: %v\n", cerr)
		}
	}()
	if _, err := archive.InsertReport(context.Background(), rep, cfg.OutputPath, time.Now()); err != nil {
		return fmt.Errorf("failed to archive report: %w", err)
	}
	return nil
}

func buildExportReport(records []model.Record, cfg model.Config) (model.Report, error) {
	rangeRequested := exportFrom != "" || exportTo != ""
	selected := 0
	if rangeRequested {
		selected++
	}
	if exportMonth != 0 {
		selected++
	}
	if exportFullYear {
		selected++
	}
	if selected != 1 {
		return model.Report{}, fmt.Errorf("choose exactly one of --from/--to, --month, --full-year")
	}

	switch {
	case rangeRequested:
		if exportFrom == "" || exportTo == "" {
			return model.Report{}, fmt.Errorf("--from and --to must be used together")
		}
		start, err := stats.ParseDate(exportFrom)
		if err != nil {
			return model.Report{}, fmt.Errorf("invalid --from value: %w", err)
		}
		end, err := stats.ParseDate(exportTo)
		if err != nil {
			return model.Report{}, fmt.Errorf("invalid --to value: %w", err)
		}
		return report.BuildRange(records, start, end)
	case exportMonth != 0:
		return report.BuildMonth(records, cfg.Year, exportMonth)
	default:
		return report.BuildYear(records, cfg.Year), nil
	}
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived reports",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N reports")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	archive, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open report archive: %w", err)
	}
	defer func() {
		if cerr := archive.Close(); cerr != nil {
			logErrf("failed to close report archive: %v\n", cerr)
		}
	}()

	reports, err := archive.ListReports(context.Background(), historyLast)
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}
	if len(reports) == 0 {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), "No archived reports."); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	headers := []string{"ID", "WRITTEN", "KIND", "TITLE", "FILE"}
	rows := make([][]string, 0, len(reports))
	for _, rep := range reports {
		rows = append(rows, []string{
			fmt.Sprintf("%d", rep.ID),
			rep.WrittenAt.Local().Format("02.01.2006 15:04"),
			string(rep.Kind),
			rep.Title,
			rep.Path,
		})
	}
	for _, line := range stats.FormatTable(headers, rows, map[int]bool{0: true}) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "data", &dataPath, fileCfg.Report.DataPath)
	applyStringConfig(cmd, "output", &outputPath, fileCfg.Report.OutputPath)
	applyIntConfig(cmd, "year", &dataYear, fileCfg.Report.Year)

	cfg := model.Config{
		DataPath:   dataPath,
		OutputPath: outputPath,
		Year:       dataYear,
	}
	if cfg.DataPath == "" {
		return model.Config{}, fmt.Errorf("--data must not be empty")
	}
	if cfg.OutputPath == "" {
		return model.Config{}, fmt.Errorf("--output must not be empty")
	}
	if cfg.Year < 1 {
		return model.Config{}, fmt.Errorf("--year must be a calendar year")
	}
	return cfg, nil
}

// loadRecords loads the dataset and reports skip diagnostics to stderr.
func loadRecords(path string) ([]model.Record, error) {
	result, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if result.Skipped > 0 {
		logErrf("skipped %d malformed rows in %s\n", result.Skipped, path)
	}
	if len(result.Records) == 0 {
		return nil, fmt.Errorf("no data available in %s", path)
	}
	return result.Records, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# sahko configuration
# Uncomment a value to enable it. CLI flags override config values.

[report]
# data = %q     # Meter readings file
# output = %q  # Report output file
# year = %d          # Dataset year
`,
		defaultDataPath,
		defaultOutputPath,
		defaultYear,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
