package voucher

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openbooks-dev/openbooks/internal/voucher"
)

type entryResponse struct {
	AccountID uuid.UUID       `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type voucherResponse struct {
	ID        uuid.UUID       `json:"id"`
	Number    int64           `json:"number"`
	Type      voucher.Type    `json:"type"`
	Date      time.Time       `json:"date"`
	Narration string          `json:"narration"`
	Reverses  *uuid.UUID      `json:"reverses,omitempty"`
	Entries   []entryResponse `json:"entries"`
	CreatedAt time.Time       `json:"created_at"`
}

func toResponse(v *voucher.Voucher) voucherResponse {
	entries := make([]entryResponse, len(v.Entries))
	for i, e := range v.Entries {
		entries[i] = entryResponse{
			AccountID: e.AccountID,
			Amount:    e.Amount,
		}
	}

	return voucherResponse{
		ID:        v.ID,
		Number:    v.Number,
		Type:      v.Type,
		Date:      v.Date,
		Narration: v.Narration,
		Reverses:  v.Reverses,
		Entries:   entries,
		CreatedAt: v.CreatedAt,
	}
}

func toResponseList(vouchers []*voucher.Voucher) []voucherResponse {
	resp := make([]voucherResponse, len(vouchers))
	for i, v := range vouchers {
		resp[i] = toResponse(v)
	}

	return resp
}
