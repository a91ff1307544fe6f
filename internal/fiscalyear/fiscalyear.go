package fiscalyear

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("financial year not found")
	// ErrOverlap means the new range intersects an existing financial year
	// for the same company.
	ErrOverlap = errors.New("financial year ranges overlap")
	// ErrPeriodClosed means the mutation is dated inside a closed financial
	// year. Use errors.Is against this; the concrete error is a
	// *PeriodClosedError carrying the offending range.
	ErrPeriodClosed = errors.New("financial period closed")
)

// FinancialYear is a company-scoped date range that can be closed to lock
// historical records against further mutation. Ranges of one company never
// overlap.
type FinancialYear struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Closed    bool
	CreatedAt time.Time
}

// PeriodClosedError reports a mutation dated inside a closed financial year.
type PeriodClosedError struct {
	CompanyID uuid.UUID
	Date      time.Time
	StartDate time.Time
	EndDate   time.Time
}

func (e *PeriodClosedError) Error() string {
	return fmt.Sprintf("financial period %s..%s is closed for date %s",
		e.StartDate.Format(time.DateOnly), e.EndDate.Format(time.DateOnly), e.Date.Format(time.DateOnly))
}

func (e *PeriodClosedError) Is(target error) bool { return target == ErrPeriodClosed }
