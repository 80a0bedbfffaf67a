package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkJank        BookmarkType = "jank"
	BookmarkRecovered   BookmarkType = "recovered"
	BookmarkThemeSwitch BookmarkType = "theme_switch"
	BookmarkThrottled   BookmarkType = "throttled"
	BookmarkSteady      BookmarkType = "steady"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Frame       int64        `csv:"frame"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"frame", b.Frame,
		"description", b.Description,
	)
}

// BookmarkDetector flags notable windows: frame time spikes, recoveries,
// theme switches, throttle saturation and sustained steady frame pacing.
type BookmarkDetector struct {
	budgetMs float64

	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	janky              bool
	steadyWindowsCount int
}

// NewBookmarkDetector creates a detector with the given history size.
// budgetMs is the frame time the site aims for.
func NewBookmarkDetector(historySize int, budgetMs float64) *BookmarkDetector {
	if historySize < 5 {
		historySize = 5
	}
	return &BookmarkDetector{
		budgetMs:    budgetMs,
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkJank(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	if bd.historyFull || bd.historyIdx > 0 {
		if b := bd.checkThemeSwitch(stats); b != nil {
			bookmarks = append(bookmarks, *b)
		}
	}

	if b := bd.checkThrottled(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	if b := bd.checkSteady(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) previous() WindowStats {
	idx := (bd.historyIdx - 1 + bd.historySize) % bd.historySize
	return bd.history[idx]
}

// Jank: p90 frame time above 1.5x budget. Fires once per episode, then
// recovered when p90 drops back under budget.
func (bd *BookmarkDetector) checkJank(stats WindowStats) *Bookmark {
	if bd.budgetMs <= 0 {
		return nil
	}

	if !bd.janky && stats.FrameMsP90 > bd.budgetMs*1.5 {
		bd.janky = true
		return &Bookmark{
			Type:        BookmarkJank,
			Frame:       stats.WindowEndFrame,
			Description: fmt.Sprintf("Frame p90 %.1fms is %.1fx budget (%.1fms)", stats.FrameMsP90, stats.FrameMsP90/bd.budgetMs, bd.budgetMs),
		}
	}

	if bd.janky && stats.FrameMsP90 <= bd.budgetMs {
		bd.janky = false
		return &Bookmark{
			Type:        BookmarkRecovered,
			Frame:       stats.WindowEndFrame,
			Description: fmt.Sprintf("Frame p90 back to %.1fms", stats.FrameMsP90),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkThemeSwitch(stats WindowStats) *Bookmark {
	prev := bd.previous()
	if prev.Theme == "" || prev.Theme == stats.Theme {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkThemeSwitch,
		Frame:       stats.WindowEndFrame,
		Description: fmt.Sprintf("Theme %s -> %s (field %d, glyph %d particles)", prev.Theme, stats.Theme, stats.FieldParticles, stats.GlyphParticles),
	}
}

// Throttled: the animators dropped more frames than they ran, meaning the
// display runs well above the frame interval.
func (bd *BookmarkDetector) checkThrottled(stats WindowStats) *Bookmark {
	if stats.Executed == 0 || stats.Skipped <= stats.Executed {
		return nil
	}
	prev := bd.previous()
	if prev.Executed > 0 && prev.Skipped > prev.Executed {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkThrottled,
		Frame:       stats.WindowEndFrame,
		Description: fmt.Sprintf("Skipped %d frames vs %d executed", stats.Skipped, stats.Executed),
	}
}

func (bd *BookmarkDetector) checkSteady(stats WindowStats) *Bookmark {
	// Low jitter: coefficient of variation < 10%
	if stats.FrameMsMean <= 0 || stats.FrameMsStd/stats.FrameMsMean >= 0.1 {
		bd.steadyWindowsCount = 0
		return nil
	}

	bd.steadyWindowsCount++
	if bd.steadyWindowsCount == 5 { // trigger exactly once at 5 windows
		return &Bookmark{
			Type:        BookmarkSteady,
			Frame:       stats.WindowEndFrame,
			Description: fmt.Sprintf("Steady pacing at %.1fms over 5+ windows", stats.FrameMsMean),
		}
	}

	return nil
}
