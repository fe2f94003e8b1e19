// =============================================================================
// NFSe DANFSe Renderer - Render Command
// =============================================================================
//
// This file defines the 'render' command, the main command of the CLI.
//
// COMMAND USAGE:
//   danfe render [xml files...] [flags]
//
// FLAGS:
//   --input-dir       : Directory scanned when no files are given
//   --output-dir      : Directory for PDF/HTML output
//   --env             : production | homologation
//   --cancelled       : Print the cancellation banner
//   --html            : Also write the HTML markup
//   --dry-run         : Render without writing or archiving anything
//   --schema-version  : Force a layout (1.00, 1.01)
//
// PROCESSING PIPELINE:
//   1. Load configuration, logger and municipality tables
//   2. Collect documents (arguments or input directory)
//   3. Render each document concurrently, bounded by max_concurrency
//   4. Write PDF (and HTML), archive inputs taken from the input directory
//   5. Write warning log and summary
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/direction/nfse-danfe/internal/danfe"
	"github.com/direction/nfse-danfe/internal/render"
	"github.com/direction/nfse-danfe/pkg/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	inputDir      string
	outputDir     string
	envName       string
	cancelled     bool
	writeHTML     bool
	dryRun        bool
	schemaVersion string
)

// =============================================================================
// RENDER COMMAND DEFINITION
// =============================================================================

var renderCmd = &cobra.Command{
	Use:   "render [xml files...]",
	Short: "Render NFSe XML documents as DANFSe PDF",
	Long: `The render command converts NFSe XML documents into DANFSe PDF files.

Without arguments it renders every *.xml in the input directory. Documents are
rendered concurrently; a failure in one document does not stop the others.

On success:
  - Danfe_{numero}.pdf is written to the output directory; a second
    document with the same number gets its access key appended
  - Documents from the input directory are moved to the input archive
  - Warnings are printed and collected in a warning log

On error:
  - The document stays where it is
  - The error is listed in the processing summary`,

	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := setup()
		if err != nil {
			return err
		}
		defer s.close()

		if err := s.loadRegistry(); err != nil {
			return err
		}
		renderer, err := s.newRenderer()
		if err != nil {
			return err
		}

		opts, err := batchOptionsFromFlags(s, cmd)
		if err != nil {
			return err
		}

		svc := danfe.New(renderer, nil, s.logger)
		summary, err := runBatch(cmd.Context(), svc, opts, args, cmd.OutOrStdout(), s.logger)
		if err != nil {
			return err
		}
		if summary.FailedFiles > 0 {
			return fmt.Errorf("%d of %d document(s) failed", summary.FailedFiles, summary.TotalFiles)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory scanned for *.xml (default from config)")
	renderCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (default from config)")
	renderCmd.Flags().StringVar(&envName, "env", "", "Environment: production or homologation (default from config)")
	renderCmd.Flags().BoolVar(&cancelled, "cancelled", false, "Print the cancellation banner")
	renderCmd.Flags().BoolVar(&writeHTML, "html", false, "Also write the HTML markup")
	renderCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render without writing output files")
	renderCmd.Flags().StringVar(&schemaVersion, "schema-version", "", "Force a layout version ("+strings.Join(render.SupportedVersions(), ", ")+")")
}

// =============================================================================
// BATCH PROCESSING
// =============================================================================

// batchOptions is the resolved configuration of one render run.
type batchOptions struct {
	files       *utils.FileManager
	nameFormat  string
	request     danfe.Request
	writeHTML   bool
	dryRun      bool
	concurrency int
}

func batchOptionsFromFlags(s *session, cmd *cobra.Command) (batchOptions, error) {
	cfg := s.cfg

	env := cfg.DefaultEnvironment()
	if cmd.Flags().Changed("env") {
		parsed, err := render.ParseEnvironment(envName)
		if err != nil {
			return batchOptions{}, err
		}
		env = parsed
	}

	in, out := cfg.InputDir, cfg.OutputDir
	if inputDir != "" {
		in = inputDir
	}
	if outputDir != "" {
		out = outputDir
	}

	return batchOptions{
		files:      utils.NewFileManager(in, out, cfg.InputArchiveDir),
		nameFormat: cfg.OutputNameFormat,
		request: danfe.Request{
			Environment: env,
			Cancelled:   cancelled,
			Version:     schemaVersion,
			SkipPDF:     dryRun,
		},
		writeHTML:   writeHTML || cfg.WriteHTML,
		dryRun:      dryRun,
		concurrency: cfg.MaxConcurrency,
	}, nil
}

// fileOutcome is the result of one document.
type fileOutcome struct {
	input    string
	result   *danfe.Result
	output   string
	archived string
	err      error
	elapsed  time.Duration
}

// runBatch renders the given documents, or every document in the input
// directory when none are given. Per-document failures are reported in the
// summary; only setup failures and cancellation return an error.
func runBatch(ctx context.Context, svc *danfe.Service, opts batchOptions, args []string, out io.Writer, logger *zap.Logger) (*utils.ProcessingSummary, error) {
	summary := &utils.ProcessingSummary{StartTime: time.Now()}
	fm := opts.files

	inputs := args
	fromInputDir := len(args) == 0
	if fromInputDir {
		found, err := fm.DiscoverInputFiles("*.xml")
		if err != nil {
			return nil, fmt.Errorf("failed to discover input files: %w", err)
		}
		inputs = found
	}
	if len(inputs) == 0 {
		fmt.Fprintln(out, "No XML documents found.")
		summary.EndTime = time.Now()
		return summary, nil
	}
	if !opts.dryRun {
		if err := fm.EnsureDirectories(); err != nil {
			return nil, err
		}
	}

	fmt.Fprintf(out, "Rendering %d document(s)...\n", len(inputs))

	outcomes := make([]fileOutcome, len(inputs))
	names := newOutputNames()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = processFile(svc, opts, names, input, fromInputDir)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var warningEntries []utils.WarningLogEntry
	for _, o := range outcomes {
		summary.TotalFiles++
		if o.err != nil {
			summary.FailedFiles++
			summary.FailedFilesList = append(summary.FailedFilesList, utils.FailedFileInfo{
				InputFile:    o.input,
				ErrorMessage: o.err.Error(),
			})
			fmt.Fprintf(out, "  ✗ %s: %v\n", filepath.Base(o.input), o.err)
			logger.Error("document failed", zap.String("file", o.input), zap.Error(o.err))
			continue
		}

		summary.SuccessfulFiles++
		summary.TotalWarnings += len(o.result.Warnings)
		summary.ProcessedFiles = append(summary.ProcessedFiles, utils.ProcessedFileInfo{
			InputFile:   o.input,
			OutputFile:  o.output,
			ArchivePath: o.archived,
			Numero:      o.result.Number,
			Warnings:    len(o.result.Warnings),
			ProcessTime: o.elapsed,
		})
		warningEntries = append(warningEntries, utils.WarningLogEntry{
			InputFile: o.input,
			AccessKey: o.result.AccessKey,
			Warnings:  o.result.Warnings,
		})

		target := o.output
		if target == "" {
			target = "(dry run)"
		}
		fmt.Fprintf(out, "  ✓ %s -> %s\n", filepath.Base(o.input), target)
		for _, w := range o.result.Warnings {
			fmt.Fprintf(out, "      %s\n", w)
		}
	}
	summary.EndTime = time.Now()

	fmt.Fprintln(out, "\n=== Rendering Complete ===")
	fmt.Fprintf(out, "Total documents: %d\n", summary.TotalFiles)
	fmt.Fprintf(out, "Successful:      %d\n", summary.SuccessfulFiles)
	fmt.Fprintf(out, "Errors:          %d\n", summary.FailedFiles)
	fmt.Fprintf(out, "Warnings:        %d\n", summary.TotalWarnings)
	fmt.Fprintf(out, "Time elapsed:    %s\n", summary.EndTime.Sub(summary.StartTime))

	if opts.dryRun {
		return summary, nil
	}
	if path, err := fm.WriteWarningLog(warningEntries); err != nil {
		logger.Warn("failed to write warning log", zap.Error(err))
	} else if path != "" {
		logger.Info("warning log written", zap.String("path", path))
	}
	if path, err := fm.WriteSummaryLog(*summary); err != nil {
		logger.Warn("failed to write summary", zap.Error(err))
	} else {
		logger.Info("summary written", zap.String("path", path))
	}
	return summary, nil
}

// =============================================================================
// OUTPUT NAMES
// =============================================================================

// outputNames hands out output file names within one batch. Issuers number
// their documents independently, so two documents may share a number.
type outputNames struct {
	mu    sync.Mutex
	taken map[string]string // name -> input
}

func newOutputNames() *outputNames {
	return &outputNames{taken: make(map[string]string)}
}

// claim reserves the configured name for input. When another document of the
// batch already holds it, the access key is appended instead.
func (n *outputNames) claim(format, input string, result *danfe.Result) (string, error) {
	params := map[string]string{
		"numero":   result.Number,
		"chave":    result.AccessKey,
		"original": strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)),
	}
	name := utils.GenerateOutputFileName(format, params)
	alt := strings.TrimSuffix(name, filepath.Ext(name)) + "_{chave}" + filepath.Ext(name)

	n.mu.Lock()
	defer n.mu.Unlock()
	for _, candidate := range []string{name, utils.GenerateOutputFileName(alt, params)} {
		if _, ok := n.taken[candidate]; !ok {
			n.taken[candidate] = input
			return candidate, nil
		}
	}
	return "", fmt.Errorf("output name %s already used by %s", name, n.taken[name])
}

// processFile renders one document and writes its outputs.
func processFile(svc *danfe.Service, opts batchOptions, names *outputNames, input string, archive bool) (o fileOutcome) {
	start := time.Now()
	o.input = input
	defer func() { o.elapsed = time.Since(start) }()

	result, err := svc.RenderFile(input, opts.request)
	if err != nil {
		o.err = err
		return o
	}
	o.result = result
	if opts.dryRun {
		return o
	}

	name, err := names.claim(opts.nameFormat, input, result)
	if err != nil {
		o.err = err
		return o
	}
	if o.output, err = opts.files.WriteOutputFile(name, result.PDF); err != nil {
		o.err = err
		return o
	}
	if opts.writeHTML {
		htmlName := strings.TrimSuffix(name, filepath.Ext(name)) + ".html"
		if _, err := opts.files.WriteOutputFile(htmlName, []byte(result.HTML)); err != nil {
			o.err = err
			return o
		}
	}
	if archive {
		if o.archived, err = opts.files.ArchiveInputFile(input); err != nil {
			o.err = fmt.Errorf("rendered but not archived: %w", err)
		}
	}
	return o
}
