package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	kafkaadapter "github.com/couchcryptid/temperature-heatmap/internal/adapter/kafka"
	"github.com/couchcryptid/temperature-heatmap/internal/adapter/source"
	"github.com/couchcryptid/temperature-heatmap/internal/config"
	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/couchcryptid/temperature-heatmap/internal/pipeline"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	sourceURL  string
	outputFile string
	title      string
	svgOnly    bool
	verbose    bool
	listYear   int
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "failed to read .env:", err)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:   "heatmap",
		Short: "Render the monthly global land-surface temperature heatmap",
		Long: `heatmap fetches the monthly global temperature variance dataset
and draws it as a calendar heatmap of years against months.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&sourceURL, "source", "s", cfg.SourceURL, "Dataset URL or local file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	addRenderCmd(rootCmd, cfg)
	addListCmd(rootCmd, cfg)
	addPaletteCmd(rootCmd)
	addExportCmd(rootCmd, cfg)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := "warn"
	if verbose {
		level = "debug"
	}
	return observability.NewLogger(&config.Config{LogLevel: level, LogFormat: "text"})
}

// newPipeline wires a loader for the chosen source. The CLI never caches.
func newPipeline(cfg *config.Config, sink pipeline.BatchLoader, logger *slog.Logger) *pipeline.Pipeline {
	metrics := observability.NewMetrics()
	client := source.NewClient(cfg.FetchTimeout, metrics, logger)
	return pipeline.New(client, sink, pipeline.DefaultOptions(sourceURL), logger, metrics)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

// addRenderCmd adds 'render', which writes the page (or the bare chart SVG) to a file.
func addRenderCmd(rootCmd *cobra.Command, cfg *config.Config) {
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Write the heatmap as an HTML page or SVG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			if verbose {
				cmd.Printf("Fetching dataset from %s...\n", sourceURL)
			}
			chart, err := newPipeline(cfg, nil, newLogger()).Build(ctx)
			if err != nil {
				return fmt.Errorf("failed to build chart: %w", err)
			}

			var buf bytes.Buffer
			if svgOnly {
				err = render.ChartSVG(&buf, chart)
			} else {
				err = render.Page(&buf, title, chart)
			}
			if err != nil {
				return fmt.Errorf("failed to render: %w", err)
			}

			if err := os.WriteFile(outputFile, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputFile, err)
			}
			cmd.Printf("Heatmap of %d observations saved to %s\n", len(chart.Cells), outputFile)
			return nil
		},
	}

	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "heatmap.html", "Output file path")
	renderCmd.Flags().StringVarP(&title, "title", "t", render.DefaultTitle, "Page title")
	renderCmd.Flags().BoolVar(&svgOnly, "svg", false, "Write only the standalone chart SVG")

	rootCmd.AddCommand(renderCmd)
}

// addListCmd adds 'list', which prints each observation with its bucket color.
func addListCmd(rootCmd *cobra.Command, cfg *config.Config) {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List observations with their temperature and color bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			chart, err := newPipeline(cfg, nil, newLogger()).Build(ctx)
			if err != nil {
				return fmt.Errorf("failed to build chart: %w", err)
			}

			cmd.Println(chart.Description)
			printCells(cmd.OutOrStdout(), chart.Cells, listYear, domain.DefaultPalette())
			return nil
		},
	}

	listCmd.Flags().IntVarP(&listYear, "year", "y", 0, "Only list observations from this year")

	rootCmd.AddCommand(listCmd)
}

// addPaletteCmd adds 'palette', which prints the color scale. It needs no data.
func addPaletteCmd(rootCmd *cobra.Command) {
	paletteCmd := &cobra.Command{
		Use:   "palette",
		Short: "Show the temperature color palette",
		Run: func(cmd *cobra.Command, args []string) {
			printPalette(cmd.OutOrStdout(), domain.DefaultPalette())
		},
	}

	rootCmd.AddCommand(paletteCmd)
}

// addExportCmd adds 'export', which publishes every observation to Kafka.
func addExportCmd(rootCmd *cobra.Command, cfg *config.Config) {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Publish transformed observations to Kafka",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			logger := newLogger()
			writer := kafkaadapter.NewWriter(cfg, logger)
			defer writer.Close() //nolint:errcheck // best-effort on exit

			if verbose {
				cmd.Printf("Publishing to %s on %v...\n", cfg.KafkaTopic, cfg.KafkaBrokers)
			}
			n, err := newPipeline(cfg, writer, logger).Export(ctx)
			if err != nil {
				return fmt.Errorf("failed to export: %w", err)
			}
			cmd.Printf("Published %d observations to %s\n", n, cfg.KafkaTopic)
			return nil
		},
	}

	exportCmd.Flags().StringSliceVar(&cfg.KafkaBrokers, "brokers", cfg.KafkaBrokers, "Kafka brokers")
	exportCmd.Flags().StringVar(&cfg.KafkaTopic, "topic", cfg.KafkaTopic, "Kafka topic")

	rootCmd.AddCommand(exportCmd)
}

func printCells(w io.Writer, cells []domain.Cell, year int, p domain.Palette) {
	for _, c := range cells {
		if year != 0 && c.Year != year {
			continue
		}
		fmt.Fprintf(w, "%s %d %-9s temp %6.2f°C  var %6.2f°C\n",
			swatch(p, c.Bucket), c.Year, domain.MonthName(c.Month), c.Temp, c.Variance)
	}
}

func printPalette(w io.Writer, p domain.Palette) {
	for i := 0; i < p.Len(); i++ {
		fmt.Fprintf(w, "%s %d\n", swatch(p, i), i)
	}
}

// swatch draws a colored block labeled with the hex value, or a blank block
// for observations outside every bucket.
func swatch(p domain.Palette, bucket int) string {
	if bucket < 0 || bucket >= p.Len() {
		return lipgloss.NewStyle().Width(9).Render("   -")
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(p.Hex(bucket))).
		Foreground(lipgloss.Color(p.TextColor(bucket))).
		Width(9).
		Align(lipgloss.Center).
		Render(p.Hex(bucket))
}
