package scheduler

import (
	"context"
	"time"

	"github.com/yuehan/botboard/backend/internal/storage"
)

// DateString renders a time as a UTC calendar day, YYYY-MM-DD.
func DateString(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// TodayDateString returns the current UTC calendar day.
func TodayDateString() string {
	return DateString(time.Now())
}

// HasPostedToday reports whether a scheduled post already exists for today.
// Store failures propagate: a failed check must not pass for "no post yet".
func HasPostedToday(ctx context.Context, store storage.Store) (bool, error) {
	return store.HasPostOnDate(ctx, TodayDateString())
}
