package internal

import (
	"fmt"
	"io"
	"time"
)

// ScoreAnimationBudget is the total duration of the count-up, regardless of
// the target value.
const ScoreAnimationBudget = 800 * time.Millisecond

// AnimateScore counts the score up from zero to target on a single line,
// spending the whole budget regardless of magnitude. A target of zero (or
// below) renders the final value immediately: the per-tick interval is the
// budget divided by the target, so zero must never reach the division.
func AnimateScore(w io.Writer, target int, budget time.Duration) {
	style := ScoreStyle(target)
	if target <= 0 {
		_, _ = fmt.Fprintf(w, "\r%s\n", style.Render(fmt.Sprintf("%3d/100", 0)))
		return
	}

	interval := budget / time.Duration(target)
	if interval <= 0 {
		interval = time.Nanosecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := 1; n <= target; n++ {
		<-ticker.C
		_, _ = fmt.Fprintf(w, "\r%s", style.Render(fmt.Sprintf("%3d/100", n)))
	}
	_, _ = fmt.Fprintln(w)
}
