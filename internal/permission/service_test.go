package permission_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/openbooks-dev/openbooks/internal/permission"
)

func TestService_Authorize(t *testing.T) {
	var (
		companyA = uuid.New()
		companyB = uuid.New()
		userID   = uuid.New()
	)

	type args struct {
		userID     uuid.UUID
		role       string
		companyID  uuid.UUID
		permission string
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *permission.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "AdminBypassesGrantTables",
			args: args{userID: userID, role: permission.RoleAdmin, companyID: companyA, permission: "ANYTHING_AT_ALL"},
		},
		{
			name: "AdminBypassesEvenWithoutCompany",
			args: args{userID: userID, role: permission.RoleAdmin, permission: "VIEW_LOGS"},
		},
		{
			name:    "MissingCompanyDenied",
			args:    args{userID: userID, role: "ACCOUNTANT", permission: "VIEW_LOGS"},
			wantErr: permission.ErrForbidden,
		},
		{
			name:    "MissingUserDenied",
			args:    args{role: "ACCOUNTANT", companyID: companyA, permission: "VIEW_LOGS"},
			wantErr: permission.ErrForbidden,
		},
		{
			name: "UserGrantAllows",
			args: args{userID: userID, role: "CLERK", companyID: companyA, permission: "VIEW_LOGS"},
			setupMock: func(m *permission.MockRepository) {
				m.EXPECT().
					HasUserGrant(gomock.Any(), companyA, userID, "VIEW_LOGS").
					Return(true, nil)
			},
		},
		{
			name: "RoleGrantAllows",
			args: args{userID: userID, role: "ACCOUNTANT", companyID: companyA, permission: "VIEW_LOGS"},
			setupMock: func(m *permission.MockRepository) {
				m.EXPECT().
					HasUserGrant(gomock.Any(), companyA, userID, "VIEW_LOGS").
					Return(false, nil)
				m.EXPECT().
					HasRoleGrant(gomock.Any(), companyA, "ACCOUNTANT", "VIEW_LOGS").
					Return(true, nil)
			},
		},
		{
			name: "RoleGrantIsTenantScoped",
			args: args{userID: userID, role: "ACCOUNTANT", companyID: companyB, permission: "VIEW_LOGS"},
			setupMock: func(m *permission.MockRepository) {
				m.EXPECT().
					HasUserGrant(gomock.Any(), companyB, userID, "VIEW_LOGS").
					Return(false, nil)
				m.EXPECT().
					HasRoleGrant(gomock.Any(), companyB, "ACCOUNTANT", "VIEW_LOGS").
					Return(false, nil)
			},
			wantErr: permission.ErrForbidden,
		},
		{
			name: "NoGrantsDenied",
			args: args{userID: userID, role: "CLERK", companyID: companyA, permission: "CREATE_VOUCHER"},
			setupMock: func(m *permission.MockRepository) {
				m.EXPECT().
					HasUserGrant(gomock.Any(), companyA, userID, "CREATE_VOUCHER").
					Return(false, nil)
				m.EXPECT().
					HasRoleGrant(gomock.Any(), companyA, "CLERK", "CREATE_VOUCHER").
					Return(false, nil)
			},
			wantErr: permission.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := permission.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := permission.NewService(repo)
			err := svc.Authorize(context.Background(), tt.args.userID, tt.args.role, tt.args.companyID, tt.args.permission)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Authorize_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var (
		companyID = uuid.New()
		userID    = uuid.New()
	)

	repo := permission.NewMockRepository(ctrl)
	repo.EXPECT().
		HasUserGrant(gomock.Any(), companyID, userID, "VIEW_LEDGER").
		Return(false, errors.New("db error"))

	svc := permission.NewService(repo)
	err := svc.Authorize(context.Background(), userID, "ACCOUNTANT", companyID, "VIEW_LEDGER")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, permission.ErrForbidden)
}
