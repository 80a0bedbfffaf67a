package telemetry

import "testing"

func hasBookmark(bms []Bookmark, typ BookmarkType) bool {
	for _, bm := range bms {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_JankAndRecovery(t *testing.T) {
	bd := NewBookmarkDetector(10, 16)

	for i := 0; i < 3; i++ {
		bms := bd.Check(WindowStats{WindowEndFrame: int64(i * 300), FrameMsP90: 16.7})
		if len(bms) != 0 {
			t.Fatalf("window %d: unexpected bookmarks %v", i, bms)
		}
	}

	if !hasBookmark(bd.Check(WindowStats{WindowEndFrame: 900, FrameMsP90: 40}), BookmarkJank) {
		t.Error("expected jank bookmark")
	}
	// Same episode does not fire again
	if hasBookmark(bd.Check(WindowStats{WindowEndFrame: 1200, FrameMsP90: 45}), BookmarkJank) {
		t.Error("jank fired twice in one episode")
	}
	if !hasBookmark(bd.Check(WindowStats{WindowEndFrame: 1500, FrameMsP90: 15}), BookmarkRecovered) {
		t.Error("expected recovered bookmark")
	}
}

func TestBookmarkDetector_ThemeSwitch(t *testing.T) {
	bd := NewBookmarkDetector(10, 16)

	if hasBookmark(bd.Check(WindowStats{Theme: "dark"}), BookmarkThemeSwitch) {
		t.Error("first window cannot be a switch")
	}
	if hasBookmark(bd.Check(WindowStats{Theme: "dark"}), BookmarkThemeSwitch) {
		t.Error("unchanged theme flagged as switch")
	}
	bms := bd.Check(WindowStats{WindowEndFrame: 600, Theme: "light"})
	if !hasBookmark(bms, BookmarkThemeSwitch) {
		t.Fatal("expected theme_switch bookmark")
	}
	if bms[0].Frame != 600 {
		t.Errorf("bookmark frame = %d, want 600", bms[0].Frame)
	}
}

func TestBookmarkDetector_Throttled(t *testing.T) {
	bd := NewBookmarkDetector(10, 16)

	if hasBookmark(bd.Check(WindowStats{Executed: 300, Skipped: 10}), BookmarkThrottled) {
		t.Error("few skips flagged as throttled")
	}
	if !hasBookmark(bd.Check(WindowStats{Executed: 300, Skipped: 400}), BookmarkThrottled) {
		t.Error("expected throttled bookmark")
	}
	if hasBookmark(bd.Check(WindowStats{Executed: 300, Skipped: 400}), BookmarkThrottled) {
		t.Error("throttled fired on consecutive windows")
	}
}

func TestBookmarkDetector_Steady(t *testing.T) {
	bd := NewBookmarkDetector(10, 16)

	fired := 0
	for i := 0; i < 10; i++ {
		bms := bd.Check(WindowStats{WindowEndFrame: int64(i * 300), FrameMsMean: 16.7, FrameMsStd: 0.5, FrameMsP90: 17})
		if hasBookmark(bms, BookmarkSteady) {
			if i != 4 {
				t.Errorf("steady fired at window %d, want 4", i)
			}
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("steady fired %d times, want 1", fired)
	}

	// Jitter resets the streak
	bd.Check(WindowStats{FrameMsMean: 16.7, FrameMsStd: 8})
	if bd.steadyWindowsCount != 0 {
		t.Errorf("steady streak = %d after jittery window", bd.steadyWindowsCount)
	}
}
