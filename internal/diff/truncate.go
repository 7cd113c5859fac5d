package diff

import (
	"fmt"
	"log/slog"
	"strings"
)

// Window split for truncated files: 60% of the budget goes to the head of the
// content, 40% to the tail.
const (
	headWindowNumerator = 6
	tailWindowNumerator = 4
	windowDenominator   = 10
)

// sectionState tracks where the truncation walk is within the document.
type sectionState int

const (
	beforeFile sectionState = iota
	inFileHeader
	inHunk
)

// TruncateDiff caps every file segment of a unified diff at maxLinesPerFile
// content lines, keeping a head and tail window and replacing the middle with
// a bracketed marker block. Hunk headers ("@@" lines) are essential context
// and never count against the budget, so a truncated file with many hunks can
// still emit more than maxLinesPerFile lines. A limit of zero or less is a
// no-op and returns the input unchanged.
func TruncateDiff(diffText string, maxLinesPerFile int) string {
	if maxLinesPerFile <= 0 {
		return diffText
	}

	// A trailing newline is a terminator, not an empty content line of the
	// last file; peel it off before splitting and restore it at the end
	trailingNewline := strings.HasSuffix(diffText, "\n")
	if trailingNewline {
		diffText = strings.TrimSuffix(diffText, "\n")
	}

	lines := strings.Split(diffText, "\n")
	out := make([]string, 0, len(lines))
	var hunkLines []string
	state := beforeFile
	truncatedFiles := 0

	flush := func() {
		if len(hunkLines) == 0 {
			return
		}
		section, truncated := truncateFileSection(hunkLines, maxLinesPerFile)
		if truncated {
			truncatedFiles++
		}
		out = append(out, section...)
		hunkLines = hunkLines[:0]
	}

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, fileHeaderPrefix):
			// New file: flush the previous file's hunks, then restart
			flush()
			state = inFileHeader
			out = append(out, line)
		case state == inFileHeader && strings.HasPrefix(line, hunkHeaderPrefix):
			state = inHunk
			hunkLines = append(hunkLines, line)
		case state == inHunk:
			hunkLines = append(hunkLines, line)
		default:
			// Preamble and file metadata (index, +++, ---, mode lines)
			// stream straight through, outside the truncation logic
			out = append(out, line)
		}
	}
	flush()

	if truncatedFiles > 0 {
		slog.Debug("Truncated diff", "files_truncated", truncatedFiles, "max_lines_per_file", maxLinesPerFile)
	}

	result := strings.Join(out, "\n")
	if trailingNewline {
		result += "\n"
	}
	return result
}

// truncateFileSection truncates the buffered hunk lines of a single file.
// Content lines are everything that is not a hunk header. A section within
// budget passes through unchanged, no matter how many hunk headers it holds.
// A truncated section emits all hunk headers first, then the head window, the
// marker block, and the tail window.
func truncateFileSection(section []string, maxLines int) ([]string, bool) {
	headers := make([]string, 0, 4)
	content := make([]string, 0, len(section))
	for _, line := range section {
		if strings.HasPrefix(line, hunkHeaderPrefix) {
			headers = append(headers, line)
		} else {
			content = append(content, line)
		}
	}

	if len(content) <= maxLines {
		result := make([]string, len(section))
		copy(result, section)
		return result, false
	}

	headWindow := maxLines * headWindowNumerator / windowDenominator
	tailWindow := maxLines * tailWindowNumerator / windowDenominator
	hiddenLines := len(content) - headWindow - tailWindow

	out := make([]string, 0, len(headers)+headWindow+tailWindow+6)
	out = append(out, headers...)
	out = append(out, content[:headWindow]...)
	out = append(out,
		"",
		"[*** Diff content truncated ***]",
		fmt.Sprintf("[*** %d of %d lines hidden ***]", hiddenLines, len(content)),
		fmt.Sprintf("[*** Showing first %d and last %d lines ***]", headWindow, tailWindow),
		"[*** Raise the per-file line limit to see the full diff ***]",
		"",
	)
	out = append(out, content[len(content)-tailWindow:]...)

	return out, true
}
