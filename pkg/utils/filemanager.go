// =============================================================================
// NFSe DANFSe Renderer - File Manager Utility
// =============================================================================
//
// This module provides the file handling used by batch rendering:
//   - Input discovery (*.xml documents)
//   - Output naming and writing (PDF, optional HTML)
//   - Input archival after a successful render
//   - Warning and summary logs
//
// ARCHIVAL STRATEGY:
//   - Input documents are moved to input_archive after a successful render
//   - Failed documents remain in the input directory
//   - Archival is disabled when no archive directory is configured
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/direction/nfse-danfe/internal/diagnostics"
	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for batch rendering.
type FileManager struct {
	// InputDir is scanned for documents.
	InputDir string

	// OutputDir receives generated files and logs.
	OutputDir string

	// InputArchiveDir receives processed documents. Empty disables archival.
	InputArchiveDir string

	// UseTimestampSubdirs creates date-based subdirectories in the archive.
	// Example: input_archive/2025/03/10/nfse.xml
	UseTimestampSubdirs bool

	// now is replaceable in tests.
	now func() time.Time
}

// NewFileManager creates a FileManager for the given directories.
func NewFileManager(inputDir, outputDir, inputArchiveDir string) *FileManager {
	return &FileManager{
		InputDir:        inputDir,
		OutputDir:       outputDir,
		InputArchiveDir: inputArchiveDir,
		now:             time.Now,
	}
}

// EnsureDirectories creates the output and archive directories.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.OutputDir, fm.InputArchiveDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverInputFiles returns the documents in the input directory, sorted by
// name.
//
// PARAMETERS:
//   - pattern: A glob pattern, matched case-insensitively on the extension.
//     If empty, defaults to "*.xml".
func (fm *FileManager) DiscoverInputFiles(pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*.xml"
	}

	entries, err := os.ReadDir(fm.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan input directory: %w", err)
	}

	var result []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := filepath.Match(strings.ToLower(pattern), strings.ToLower(entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if ok {
			result = append(result, filepath.Join(fm.InputDir, entry.Name()))
		}
	}
	sort.Strings(result)
	return result, nil
}

// =============================================================================
// FILE ARCHIVAL
// =============================================================================

// ArchiveInputFile moves a processed document to the archive directory.
//
// RETURNS:
//   - The archived path, or filePath unchanged when archival is disabled.
//   - An error if the move fails.
func (fm *FileManager) ArchiveInputFile(filePath string) (string, error) {
	if fm.InputArchiveDir == "" {
		return filePath, nil
	}

	archivePath := fm.archivePath(filePath)
	if err := os.MkdirAll(filepath.Dir(archivePath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	if err := os.Rename(filePath, archivePath); err != nil {
		// Cross-device moves need a copy.
		if err := copyFile(filePath, archivePath); err != nil {
			return "", fmt.Errorf("failed to copy file to archive: %w", err)
		}
		if err := os.Remove(filePath); err != nil {
			return "", fmt.Errorf("failed to remove original file: %w", err)
		}
	}
	return archivePath, nil
}

func (fm *FileManager) archivePath(filePath string) string {
	fileName := filepath.Base(filePath)
	if !fm.UseTimestampSubdirs {
		return filepath.Join(fm.InputArchiveDir, fileName)
	}
	now := fm.now()
	return filepath.Join(fm.InputArchiveDir,
		fmt.Sprintf("%d", now.Year()),
		fmt.Sprintf("%02d", now.Month()),
		fmt.Sprintf("%02d", now.Day()),
		fileName)
}

// =============================================================================
// OUTPUT FILES
// =============================================================================

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// GenerateOutputFileName builds a PDF file name.
//
// PARAMETERS:
//   - format: The name format. Placeholders:
//     {uuid}      - A random UUID
//     {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//     {date}      - Current date (YYYYMMDD)
//     {numero}    - NFSe number
//     {chave}     - Access key
//     {original}  - Input file name without extension
//   - params: Values for the document placeholders. Characters outside
//     [A-Za-z0-9._-] are replaced with "_"; blank values become "sem_numero".
//
// EXAMPLE:
//
//	format: "Danfe_{numero}.pdf"
//	params: {"numero": "123"}
//	output: "Danfe_123.pdf"
func GenerateOutputFileName(format string, params map[string]string) string {
	now := time.Now()

	replacements := []string{
		"{uuid}", uuid.New().String(),
		"{timestamp}", now.Format("20060102_150405"),
		"{date}", now.Format("20060102"),
	}
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := unsafeNameChars.ReplaceAllString(strings.TrimSpace(params[key]), "_")
		if value == "" {
			value = "sem_numero"
		}
		replacements = append(replacements, "{"+key+"}", value)
	}

	result := strings.NewReplacer(replacements...).Replace(format)
	if !strings.HasSuffix(strings.ToLower(result), ".pdf") {
		result += ".pdf"
	}
	return result
}

// WriteOutputFile writes data into the output directory through a temporary
// file, so readers never see a partial document.
//
// RETURNS:
//   - The path written.
func (fm *FileManager) WriteOutputFile(name string, data []byte) (string, error) {
	path := filepath.Join(fm.OutputDir, name)

	tmp, err := os.CreateTemp(fm.OutputDir, ".danfe-*")
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write output file: %w", err)
	}
	return path, nil
}

// =============================================================================
// WARNING LOG
// =============================================================================

// WarningLogEntry is the warning list of one document.
type WarningLogEntry struct {
	InputFile string
	AccessKey string
	Warnings  []diagnostics.Warning
}

// WriteWarningLog writes the warnings of a run to the output directory.
// Documents without warnings are left out.
//
// RETURNS:
//   - The log path, or "" when there was nothing to write.
func (fm *FileManager) WriteWarningLog(entries []WarningLogEntry) (string, error) {
	total := 0
	for _, e := range entries {
		total += len(e.Warnings)
	}
	if total == 0 {
		return "", nil
	}

	now := fm.now()
	logPath := filepath.Join(fm.OutputDir, fmt.Sprintf("warnings_%s.txt", now.Format("20060102_150405")))

	file, err := os.Create(logPath)
	if err != nil {
		return "", fmt.Errorf("failed to create warning log: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	fmt.Fprintf(writer, "NFSe DANFSe Renderer - Warning Log\n"+
		"Generated: %s\n"+
		"Total Warnings: %d\n"+
		"================================================================================\n\n",
		now.Format("2006-01-02 15:04:05"), total)

	for _, e := range entries {
		if len(e.Warnings) == 0 {
			continue
		}
		fmt.Fprintf(writer, "File: %s\n", e.InputFile)
		if e.AccessKey != "" {
			fmt.Fprintf(writer, "Key:  %s\n", e.AccessKey)
		}
		fmt.Fprintf(writer, "  %s\n", diagnostics.Summary(e.Warnings))
		for _, w := range e.Warnings {
			fmt.Fprintf(writer, "  %s\n", w)
		}
		writer.WriteString("\n")
	}

	writer.WriteString("================================================================================\n" +
		"End of Warning Log\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush warning log: %w", err)
	}
	return logPath, nil
}

// =============================================================================
// PROCESSING SUMMARY
// =============================================================================

// ProcessingSummary describes a batch run.
type ProcessingSummary struct {
	StartTime       time.Time
	EndTime         time.Time
	TotalFiles      int
	SuccessfulFiles int
	FailedFiles     int
	TotalWarnings   int
	ProcessedFiles  []ProcessedFileInfo
	FailedFilesList []FailedFileInfo
}

// ProcessedFileInfo describes a rendered document.
type ProcessedFileInfo struct {
	InputFile   string
	OutputFile  string
	ArchivePath string
	Numero      string
	Warnings    int
	ProcessTime time.Duration
}

// FailedFileInfo describes a document that could not be rendered.
type FailedFileInfo struct {
	InputFile    string
	ErrorMessage string
}

// WriteSummaryLog writes a run summary to the output directory.
//
// RETURNS:
//   - The path to the summary file.
func (fm *FileManager) WriteSummaryLog(summary ProcessingSummary) (string, error) {
	summaryPath := filepath.Join(fm.OutputDir,
		fmt.Sprintf("processing_summary_%s.txt", fm.now().Format("20060102_150405")))

	file, err := os.Create(summaryPath)
	if err != nil {
		return "", fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	fmt.Fprintf(writer, "NFSe DANFSe Renderer - Processing Summary\n"+
		"================================================================================\n\n"+
		"Run Information:\n"+
		"  Start Time:     %s\n"+
		"  End Time:       %s\n"+
		"  Duration:       %s\n\n"+
		"Statistics:\n"+
		"  Total Files:    %d\n"+
		"  Successful:     %d\n"+
		"  Failed:         %d\n"+
		"  Warnings:       %d\n\n",
		summary.StartTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Format("2006-01-02 15:04:05"),
		summary.EndTime.Sub(summary.StartTime).String(),
		summary.TotalFiles,
		summary.SuccessfulFiles,
		summary.FailedFiles,
		summary.TotalWarnings)

	if len(summary.ProcessedFiles) > 0 {
		writer.WriteString("Successful Files:\n")
		writer.WriteString("--------------------------------------------------------------------------------\n")
		for _, pf := range summary.ProcessedFiles {
			fmt.Fprintf(writer, "  Input:        %s\n", pf.InputFile)
			fmt.Fprintf(writer, "  Output:       %s\n", pf.OutputFile)
			if pf.ArchivePath != "" && pf.ArchivePath != pf.InputFile {
				fmt.Fprintf(writer, "  Archived:     %s\n", pf.ArchivePath)
			}
			fmt.Fprintf(writer, "  NFSe:         %s\n", pf.Numero)
			fmt.Fprintf(writer, "  Warnings:     %d\n", pf.Warnings)
			fmt.Fprintf(writer, "  Process Time: %s\n\n", pf.ProcessTime.String())
		}
	}

	if len(summary.FailedFilesList) > 0 {
		writer.WriteString("Failed Files:\n")
		writer.WriteString("--------------------------------------------------------------------------------\n")
		for _, ff := range summary.FailedFilesList {
			fmt.Fprintf(writer, "  File:  %s\n", ff.InputFile)
			fmt.Fprintf(writer, "  Error: %s\n\n", ff.ErrorMessage)
		}
	}

	writer.WriteString("================================================================================\n" +
		"End of Summary\n")

	if err := writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush summary file: %w", err)
	}
	return summaryPath, nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}
	return destFile.Sync()
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
