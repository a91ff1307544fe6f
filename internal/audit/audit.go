// Package audit records activity log entries fire-and-forget. A failed
// insert is logged and dropped; it never propagates to the caller.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const recordTimeout = 5 * time.Second

type Repository interface {
	Insert(ctx context.Context, companyID, userID uuid.UUID, action, details string) error
}

type Recorder struct {
	repo Repository
}

func NewRecorder(repo Repository) *Recorder {
	return &Recorder{repo: repo}
}

// Record writes the entry in a detached goroutine with its own timeout so a
// cancelled request context cannot abort the log write.
func (r *Recorder) Record(companyID, userID uuid.UUID, action, details string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := r.repo.Insert(ctx, companyID, userID, action, details); err != nil {
			slog.Error("failed to record activity",
				"error", err,
				"company_id", companyID,
				"action", action,
			)
		}
	}()
}
