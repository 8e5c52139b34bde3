package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ficalc/independence-calculator/internal/calculation"
	"github.com/ficalc/independence-calculator/internal/config"
	"github.com/ficalc/independence-calculator/internal/domain"
	"github.com/ficalc/independence-calculator/internal/output"
	"github.com/ficalc/independence-calculator/internal/server"
	"github.com/ficalc/independence-calculator/pkg/logging"
)

var (
	configPath string
	inputPath  string
	formatName string
	outputPath string
	serveAddr  string
)

func main() {
	logging.Setup()
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ficalc",
		Short: "Worker-vs-investor financial independence calculator",
		Long: "ficalc contrasts a worker savings path against an investor savings path:\n" +
			"federal tax, spend/save targets, 15-year projections, asset endurance, and\n" +
			"the year passive income overtakes earned income.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "tax-year config YAML (default: embedded "+fmt.Sprint(config.Default().TaxYear)+" config)")
	root.AddCommand(newCalculateCmd(), newServeCmd())
	return root
}

func loadConfig() (*config.TaxYearConfig, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(configPath)
}

func newCalculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run one calculation from an input file and render a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			inputs, err := readInputs(inputPath)
			if err != nil {
				return err
			}
			if err := config.ValidateInputs(inputs); err != nil {
				return fmt.Errorf("invalid inputs: %w", err)
			}

			engine := calculation.NewCalculationEngineWithConfig(cfg)
			engine.SetLogger(calculation.SlogLogger{L: slog.Default()})
			session, err := engine.RunSession(inputs)
			if err != nil {
				return err
			}

			formatter := output.GetFormatterByName(formatName)
			if formatter == nil {
				return fmt.Errorf("unknown format %q (available: %s)", formatName, strings.Join(output.FormatterNames(), ", "))
			}

			// Console goes to stdout unless a file was asked for.
			if formatName == "console" && outputPath == "" {
				data, err := formatter.Format(session)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			path, err := output.WriteFormatted(formatter, session, outputPath)
			if err != nil {
				return err
			}
			slog.Info("report written", "path", path, "format", formatName)
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "inputs file, YAML or JSON (required)")
	cmd.Flags().StringVarP(&formatName, "format", "f", "console", "report format: "+strings.Join(output.FormatterNames(), "|"))
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout for console, timestamped file otherwise)")
	cmd.MarkFlagRequired("input")
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator JSON API for a browser frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			engine := calculation.NewCalculationEngineWithConfig(cfg)
			engine.SetLogger(calculation.SlogLogger{L: slog.Default()})
			return server.New(engine, slog.Default()).ListenAndServe(serveAddr)
		},
	}
	cmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	return cmd
}

// readInputs parses a UserInputs file, accepting JSON (leading '{') or YAML.
func readInputs(path string) (domain.UserInputs, error) {
	var inputs domain.UserInputs
	data, err := os.ReadFile(path)
	if err != nil {
		return inputs, fmt.Errorf("failed to read inputs file %s: %w", path, err)
	}
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		if err := json.Unmarshal(data, &inputs); err != nil {
			return inputs, fmt.Errorf("failed to parse JSON inputs: %w", err)
		}
		return inputs, nil
	}
	if err := yaml.Unmarshal(data, &inputs); err != nil {
		return inputs, fmt.Errorf("failed to parse YAML inputs: %w", err)
	}
	return inputs, nil
}
