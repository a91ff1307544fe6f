package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/openbooks-dev/openbooks/internal/http/account"
	"github.com/openbooks-dev/openbooks/internal/http/company"
	"github.com/openbooks-dev/openbooks/internal/http/fiscalyear"
	"github.com/openbooks-dev/openbooks/internal/http/inventory"
	"github.com/openbooks-dev/openbooks/internal/http/ledger"
	"github.com/openbooks-dev/openbooks/internal/http/middleware"
	"github.com/openbooks-dev/openbooks/internal/http/permission"
	"github.com/openbooks-dev/openbooks/internal/http/voucher"
)

func New(
	authSecret string,
	tenants middleware.TenantResolver,
	authz middleware.Authorizer,
	companiesV1 *company.Handler,
	accountsV1 *account.Handler,
	vouchersV1 *voucher.Handler,
	ledgerV1 *ledger.Handler,
	inventoryV1 *inventory.Handler,
	yearsV1 *fiscalyear.Handler,
	permissionsV1 *permission.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Company-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	require := middleware.PermissionGuard(authz)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(authSecret))

		// Company signup happens before any tenant context exists.
		r.Route("/companies", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			companiesV1.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.ResolveTenant(tenants))

			r.Route("/accounts", func(r chi.Router) {
				r.Use(chimiddleware.AllowContentType("application/json"))
				accountsV1.Routes(r, require)
			})

			r.Route("/vouchers", func(r chi.Router) {
				r.Use(chimiddleware.AllowContentType("application/json"))
				vouchersV1.Routes(r, require)
			})

			r.Route("/ledger", func(r chi.Router) {
				ledgerV1.Routes(r, require)
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Use(chimiddleware.AllowContentType("application/json"))
				inventoryV1.Routes(r, require)
			})

			r.Route("/financial-years", func(r chi.Router) {
				r.Use(chimiddleware.AllowContentType("application/json"))
				yearsV1.Routes(r, require)
			})

			r.Route("/permissions", func(r chi.Router) {
				r.Use(chimiddleware.AllowContentType("application/json"))
				permissionsV1.Routes(r, require)
			})
		})
	})

	return router
}
