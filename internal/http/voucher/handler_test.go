package voucher_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/openbooks-dev/openbooks/internal/http/middleware"
	"github.com/openbooks-dev/openbooks/internal/http/respond"
	voucherHandler "github.com/openbooks-dev/openbooks/internal/http/voucher"
	"github.com/openbooks-dev/openbooks/internal/voucher"
)

// passGuard skips permission checks so the tests exercise the handler alone.
func passGuard(string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return next }
}

func newRouter(svc *voucher.Service) http.Handler {
	router := chi.NewRouter()
	h := voucherHandler.NewHandler(svc)
	h.Routes(router, middleware.Guard(passGuard))

	return router
}

type errorEnvelope struct {
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func TestHandler_List(t *testing.T) {
	t.Run("MalformedStartDateRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := voucher.NewService(voucher.NewMockRepository(ctrl), voucher.NewMockPeriodGuard(ctrl), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/?start_date=not-a-date", nil)

		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var env errorEnvelope
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
		assert.Equal(t, respond.CodeInvalidRequest, env.Error.Code)
	})

	t.Run("MalformedEndDateRejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := voucher.NewService(voucher.NewMockRepository(ctrl), voucher.NewMockPeriodGuard(ctrl), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/?end_date=2024-13-99", nil)

		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var env errorEnvelope
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
		assert.Equal(t, respond.CodeInvalidRequest, env.Error.Code)
	})

	t.Run("ValidDatesReachTheService", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := voucher.NewMockRepository(ctrl)
		repo.EXPECT().
			List(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, filter voucher.ListFilter) ([]*voucher.Voucher, error) {
				require.NotNil(t, filter.StartDate)
				require.NotNil(t, filter.EndDate)
				assert.Equal(t, "2024-07-01", filter.StartDate.Format(time.DateOnly))

				return nil, nil
			})

		svc := voucher.NewService(repo, voucher.NewMockPeriodGuard(ctrl), nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/?start_date=2024-07-01&end_date=2024-07-31", nil)

		newRouter(svc).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
