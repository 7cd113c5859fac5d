// Package diff implements the unified-diff processing pipeline: path-based
// filtering, volume capping, and per-file truncation. All transforms are pure
// text functions with no I/O; adversarially large diffs (merge commits
// touching thousands of files) are handled in a single linear pass.
package diff

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

const (
	// fileHeaderPrefix starts a new per-file segment in a unified diff.
	fileHeaderPrefix = "diff --git "
	// hunkHeaderPrefix starts a hunk within a file segment.
	hunkHeaderPrefix = "@@"
)

// fileHeaderRegex extracts the post-change ("b-side") path from a file header.
var fileHeaderRegex = regexp.MustCompile(`^diff --git a/(.+) b/(.+)$`)

// FilterOptions configures FilterDiff. The zero value disables filtering
// entirely. Non-positive limits mean "unlimited".
type FilterOptions struct {
	IncludePaths  []string // keep a file only if it matches at least one (when non-empty)
	ExcludePaths  []string // drop a file if it matches any; checked before includes
	MaxFiles      int      // hard cap on included files; sticky once reached
	MaxTotalLines int      // hard cap on cumulative kept content lines; sticky once reached
}

// active reports whether any filtering option is set.
func (o FilterOptions) active() bool {
	return len(o.IncludePaths) > 0 || len(o.ExcludePaths) > 0 || o.MaxFiles > 0 || o.MaxTotalLines > 0
}

// FilterStats describes what FilterDiff kept and dropped. When no filtering
// occurred (no options set), IncludedFiles and ExcludedFiles are both zero and
// TotalLines is the raw line count of the input.
type FilterStats struct {
	IncludedFiles int
	ExcludedFiles int
	TotalLines    int
}

// filterState is the sticky accumulator threaded through the segment walk.
// Once either budget trips, its flag stays set and every later file is
// excluded even if it would fit the remaining budget.
type filterState struct {
	includedCount int
	totalLines    int
	excludedCount int
	maxFilesHit   bool
	maxLinesHit   bool
}

// FilterDiff walks a unified diff once, keeping or dropping whole file
// segments according to opts. Kept segments are reassembled verbatim and in
// order. When anything was dropped, a trailing bracketed summary block is
// appended so downstream consumers can tell synthetic annotations from real
// diff content. Lines before the first file header pass through unfiltered.
func FilterDiff(diffText string, opts FilterOptions) (string, FilterStats) {
	if !opts.active() {
		// Fast path: byte-identical passthrough; TotalLines signals
		// "no filtering occurred" rather than "zero files kept".
		return diffText, FilterStats{TotalLines: countLines(diffText)}
	}

	// A trailing newline is a terminator, not an empty content line of the
	// last file; peel it off before splitting and restore it at the end
	trailingNewline := strings.HasSuffix(diffText, "\n")
	if trailingNewline {
		diffText = strings.TrimSuffix(diffText, "\n")
	}

	lines := strings.Split(diffText, "\n")

	out := make([]string, 0, len(lines))
	state := filterState{}
	var segment []string
	seenFile := false

	flush := func() {
		if !seenFile {
			// Preamble before any file header is never filtered
			out = append(out, segment...)
			return
		}
		evaluateSegment(segment, opts, &state, &out)
	}

	for _, line := range lines {
		if strings.HasPrefix(line, fileHeaderPrefix) {
			flush()
			seenFile = true
			segment = segment[:0]
		}
		segment = append(segment, line)
	}
	flush()

	if state.excludedCount > 0 {
		out = appendFilterSummary(out, opts, state)
	}

	stats := FilterStats{
		IncludedFiles: state.includedCount,
		ExcludedFiles: state.excludedCount,
		TotalLines:    state.totalLines,
	}

	slog.Debug("Filtered diff",
		"included_files", stats.IncludedFiles,
		"excluded_files", stats.ExcludedFiles,
		"total_lines", stats.TotalLines,
		"max_files_hit", state.maxFilesHit,
		"max_lines_hit", state.maxLinesHit)

	result := strings.Join(out, "\n")
	if trailingNewline {
		result += "\n"
	}
	return result, stats
}

// evaluateSegment applies the path predicate and the sticky volume budgets to
// one completed file segment, appending it to out only if it survives all
// three. Budget order is fixed: the file-count cap is checked before the
// line cap, so both can trip independently across different files.
func evaluateSegment(segment []string, opts FilterOptions, state *filterState, out *[]string) {
	name := segmentFileName(segment[0])

	if !ShouldKeep(name, opts.IncludePaths, opts.ExcludePaths) {
		state.excludedCount++
		return
	}

	contentLines := hunkContentLines(segment)

	switch {
	case opts.MaxFiles > 0 && (state.maxFilesHit || state.includedCount >= opts.MaxFiles):
		state.maxFilesHit = true
		state.excludedCount++
	case opts.MaxTotalLines > 0 && (state.maxLinesHit || state.totalLines+contentLines > opts.MaxTotalLines):
		state.maxLinesHit = true
		state.excludedCount++
	default:
		*out = append(*out, segment...)
		state.includedCount++
		state.totalLines += contentLines
	}
}

// segmentFileName extracts the b-side path from a "diff --git a/<old> b/<new>"
// header line. A header that does not match the expected two-path shape yields
// "" — the empty name still runs through the normal predicate logic.
func segmentFileName(headerLine string) string {
	matches := fileHeaderRegex.FindStringSubmatch(headerLine)
	if len(matches) < 3 {
		return ""
	}
	return matches[2]
}

// hunkContentLines counts the lines subject to the line budget: everything
// after the first hunk header that is not itself a hunk header. File metadata
// lines (diff --git, index, +++, ---) and "@@" lines are never budgeted.
func hunkContentLines(segment []string) int {
	count := 0
	inHunk := false
	for _, line := range segment {
		if strings.HasPrefix(line, hunkHeaderPrefix) {
			inHunk = true
			continue
		}
		if inHunk {
			count++
		}
	}
	return count
}

// appendFilterSummary appends the human-readable exclusion summary. Both
// cutoffs are reported independently since each can fire on different files.
func appendFilterSummary(out []string, opts FilterOptions, state filterState) []string {
	out = append(out, "")
	out = append(out, fmt.Sprintf("[*** %d file(s) excluded from diff ***]", state.excludedCount))
	if state.maxFilesHit {
		out = append(out, fmt.Sprintf("[*** Maximum file count reached (limit: %d files) ***]", opts.MaxFiles))
	}
	if state.maxLinesHit {
		out = append(out, fmt.Sprintf("[*** Maximum total line count reached (limit: %d lines) ***]", opts.MaxTotalLines))
	}
	out = append(out, fmt.Sprintf("[*** Showing %d file(s), %d line(s) ***]", state.includedCount, state.totalLines))
	return out
}

// countLines returns the number of lines in the given text. A trailing
// newline terminates the last line rather than starting an empty one.
func countLines(text string) int {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}
