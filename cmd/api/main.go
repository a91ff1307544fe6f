package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/openbooks-dev/openbooks/internal/account"
	accountStore "github.com/openbooks-dev/openbooks/internal/account/store"
	"github.com/openbooks-dev/openbooks/internal/audit"
	auditStore "github.com/openbooks-dev/openbooks/internal/audit/store"
	"github.com/openbooks-dev/openbooks/internal/config"
	"github.com/openbooks-dev/openbooks/internal/database"
	"github.com/openbooks-dev/openbooks/internal/fiscalyear"
	fyStore "github.com/openbooks-dev/openbooks/internal/fiscalyear/store"
	openbooksHttp "github.com/openbooks-dev/openbooks/internal/http"
	accountHandler "github.com/openbooks-dev/openbooks/internal/http/account"
	companyHandler "github.com/openbooks-dev/openbooks/internal/http/company"
	fyHandler "github.com/openbooks-dev/openbooks/internal/http/fiscalyear"
	inventoryHandler "github.com/openbooks-dev/openbooks/internal/http/inventory"
	ledgerHandler "github.com/openbooks-dev/openbooks/internal/http/ledger"
	permissionHandler "github.com/openbooks-dev/openbooks/internal/http/permission"
	voucherHandler "github.com/openbooks-dev/openbooks/internal/http/voucher"
	"github.com/openbooks-dev/openbooks/internal/inventory"
	inventoryStore "github.com/openbooks-dev/openbooks/internal/inventory/store"
	"github.com/openbooks-dev/openbooks/internal/ledger"
	ledgerStore "github.com/openbooks-dev/openbooks/internal/ledger/store"
	"github.com/openbooks-dev/openbooks/internal/permission"
	permissionStore "github.com/openbooks-dev/openbooks/internal/permission/store"
	"github.com/openbooks-dev/openbooks/internal/tenant"
	tenantStore "github.com/openbooks-dev/openbooks/internal/tenant/store"
	"github.com/openbooks-dev/openbooks/internal/voucher"
	voucherStore "github.com/openbooks-dev/openbooks/internal/voucher/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		tenantService     = tenant.NewService(tenantStore.New(db))
		permissionService = permission.NewService(permissionStore.New(db))
		fiscalYearService = fiscalyear.NewService(fyStore.New(db))
		accountService    = account.NewService(accountStore.New(db))
		auditRecorder     = audit.NewRecorder(auditStore.New(db))
		voucherService    = voucher.NewService(voucherStore.New(db), fiscalYearService, auditRecorder)
		ledgerService     = ledger.NewService(ledgerStore.New(db))
		inventoryService  = inventory.NewService(inventoryStore.New(db))
	)

	var (
		companyH    = companyHandler.NewHandler(tenantService, accountService)
		accountH    = accountHandler.NewHandler(accountService)
		voucherH    = voucherHandler.NewHandler(voucherService)
		ledgerH     = ledgerHandler.NewHandler(ledgerService)
		inventoryH  = inventoryHandler.NewHandler(inventoryService)
		fyH         = fyHandler.NewHandler(fiscalYearService)
		permissionH = permissionHandler.NewHandler(permissionService)
	)

	router := openbooksHttp.New(
		cfg.Auth.Secret,
		tenantService,
		permissionService,
		companyH,
		accountH,
		voucherH,
		ledgerH,
		inventoryH,
		fyH,
		permissionH,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
