package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yuehan/botboard/backend/internal/model/forum"
	"github.com/yuehan/botboard/backend/internal/service/scheduler"
)

func TestDateStringUsesUTCCalendarDay(t *testing.T) {
	zone := time.FixedZone("UTC+9", 9*3600)
	// Local 2026-02-24 01:30 is still 2026-02-23 in UTC.
	local := time.Date(2026, 2, 24, 1, 30, 0, 0, zone)

	if got := scheduler.DateString(local); got != "2026-02-23" {
		t.Fatalf("unexpected date string: %s", got)
	}
}

func TestHasPostedToday(t *testing.T) {
	store := newRecordingStore()

	posted, err := scheduler.HasPostedToday(context.Background(), store)
	if err != nil {
		t.Fatalf("HasPostedToday err: %v", err)
	}
	if posted {
		t.Fatal("empty store must report no post for today")
	}

	_, err = store.InsertPost(context.Background(), forum.Post{
		BotID:         "tech-guru",
		Title:         "t",
		Content:       "c",
		ScheduledDate: scheduler.TodayDateString(),
	})
	if err != nil {
		t.Fatalf("InsertPost err: %v", err)
	}

	posted, err = scheduler.HasPostedToday(context.Background(), store)
	if err != nil {
		t.Fatalf("HasPostedToday err: %v", err)
	}
	if !posted {
		t.Fatal("expected a post for today after inserting one")
	}
}

func TestHasPostedTodayPropagatesStoreError(t *testing.T) {
	store := newRecordingStore()
	store.checkErr = errors.New("store offline")

	if _, err := scheduler.HasPostedToday(context.Background(), store); err == nil {
		t.Fatal("a failed existence check must not pass for no-post-yet")
	}
}
