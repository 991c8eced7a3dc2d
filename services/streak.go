package services

import (
	"context"
	"time"

	"motmystere/db"
)

// DateLayout is the calendar-date format stored in lastPlayed. Dates are
// compared as plain strings in server local time, no timezone normalization.
const DateLayout = "2006-01-02"

// NextStreak is the streak transition function. It is total over the prior
// value of lastPlayed: never played starts at 1, a repeat on the same day
// holds, exactly yesterday advances, and anything else (a gap, or a future
// date from clock skew) resets to 1. The second return reports whether the
// record needs a write.
func NextStreak(streak int, lastPlayed string, today time.Time) (int, bool) {
	yesterday := today.AddDate(0, 0, -1).Format(DateLayout)

	switch lastPlayed {
	case "":
		return 1, true
	case today.Format(DateLayout):
		return streak, false
	case yesterday:
		return streak + 1, true
	default:
		return 1, true
	}
}

// ReportPlay records a play event for the given day and returns the resulting
// streak. The write is guarded on the lastPlayed value that was read; when a
// concurrent report got there first, the stored state wins and is returned,
// which keeps repeated same-day reports idempotent.
func ReportPlay(ctx context.Context, store db.UserStore, googleID string, now time.Time) (int, error) {
	user, err := store.FindByGoogleID(ctx, googleID)
	if err != nil {
		return 0, err
	}

	next, changed := NextStreak(user.Streak, user.LastPlayed, now)
	if !changed {
		return user.Streak, nil
	}

	updated, err := store.SetStreak(ctx, googleID, user.LastPlayed, next, now.Format(DateLayout))
	if err != nil {
		return 0, err
	}
	if !updated {
		current, err := store.FindByGoogleID(ctx, googleID)
		if err != nil {
			return 0, err
		}
		return current.Streak, nil
	}

	return next, nil
}
