package service

import (
	"time"

	"dispatch-portal-backend/internal/database/models"
	"dispatch-portal-backend/internal/logger"

	"github.com/teambition/rrule-go"
)

// defaultMaxRuleOccurrences caps recurrence expansion when no limit is
// configured
const defaultMaxRuleOccurrences = 500

// BlockOccurrence is one concrete interval derived from a calendar block.
// Index is 0 for the block's own stored interval and 1-based for intervals
// derived from its recurrence rule, counted from the start of the series so
// occurrence IDs stay stable across query windows.
type BlockOccurrence struct {
	Start time.Time
	End   time.Time
	Index int
}

// ExpandBlock resolves the intervals a block contributes to the given
// window. One-off blocks yield their stored interval. Recurring blocks are
// expanded from the series start so indexes are stable, then filtered to
// the window; expansion stops at maxOccurrences and the second return
// reports whether the cap cut the series short. A rule that fails to parse
// falls back to the stored interval rather than dropping the block.
func ExpandBlock(block *models.CalendarBlock, rangeStart, rangeEnd time.Time, maxOccurrences int) ([]BlockOccurrence, bool) {
	if maxOccurrences <= 0 {
		maxOccurrences = defaultMaxRuleOccurrences
	}

	seriesStart := block.StartTime.UTC()
	seriesEnd := block.EndTime.UTC()
	duration := seriesEnd.Sub(seriesStart)

	single := []BlockOccurrence{{Start: seriesStart, End: seriesEnd, Index: 0}}
	if block.RecurrenceRule == "" {
		return single, false
	}

	rule, err := rrule.StrToRRule(block.RecurrenceRule)
	if err != nil {
		logger.New().WithField("block_id", block.ID).WithField("rule", block.RecurrenceRule).
			Warnf("failed to parse recurrence rule, treating block as one-off: %v", err)
		return single, false
	}
	rule.DTStart(seriesStart)

	var set rrule.Set
	set.RRule(rule)

	starts := set.Between(seriesStart, rangeEnd.UTC(), true)
	truncated := false
	if len(starts) > maxOccurrences {
		starts = starts[:maxOccurrences]
		truncated = true
	}

	occurrences := make([]BlockOccurrence, 0, len(starts))
	for i, start := range starts {
		end := start.Add(duration)
		if end.After(rangeStart) && start.Before(rangeEnd) {
			occurrences = append(occurrences, BlockOccurrence{Start: start, End: end, Index: i + 1})
		}
	}
	return occurrences, truncated
}
