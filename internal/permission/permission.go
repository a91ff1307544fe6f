package permission

import "errors"

var (
	// ErrForbidden means the identity resolved but no grant allows the action.
	ErrForbidden = errors.New("permission denied")
	// ErrUnauthenticated means no identity could be resolved for the request.
	ErrUnauthenticated = errors.New("no resolvable identity")
)

// RoleAdmin bypasses the grant tables entirely.
const RoleAdmin = "ADMIN"

// Well-known permission names used by the API surface. Grants are free-form
// strings; these constants just keep the routes and seeders in agreement.
const (
	CreateVoucher        = "CREATE_VOUCHER"
	ViewVouchers         = "VIEW_VOUCHERS"
	ManageAccounts       = "MANAGE_ACCOUNTS"
	ViewLedger           = "VIEW_LEDGER"
	ViewStock            = "VIEW_STOCK"
	ManageItems          = "MANAGE_ITEMS"
	ManageFinancialYears = "MANAGE_FINANCIAL_YEARS"
	ManagePermissions    = "MANAGE_PERMISSIONS"
)
