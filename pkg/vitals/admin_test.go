package vitals

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/vitals-console/pkg/auth"
	"liyu1981.xyz/vitals-console/pkg/common"
	"liyu1981.xyz/vitals-console/pkg/models"
)

func operatorOf(u *models.User) models.Operator {
	return models.Operator{ID: u.ID, Username: u.Username, Role: u.Role}
}

func TestLogin(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, v, _, _, _ := GetMockVitalsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()
	ctx := context.Background()

	seedUser(t, v, "patient", models.RoleUser)

	user, err := v.Admin.Login(ctx, "patient", "password123")
	require.NoError(t, err)
	require.NotNil(t, user.LastLoginAt)

	_, err = v.Admin.Login(ctx, "patient", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = v.Admin.Login(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, v, _, _, _ := GetMockVitalsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()
	ctx := context.Background()

	user := seedUser(t, v, "patient", models.RoleUser)

	assert.ErrorIs(t, v.Admin.ChangePassword(ctx, user.ID, "wrong", "newpass456"), ErrInvalidCredentials)
	assert.ErrorIs(t, v.Admin.ChangePassword(ctx, user.ID, "password123", "short"), ErrInvalidOperation)
	assert.ErrorIs(t, v.Admin.ChangePassword(ctx, user.ID, "password123", "password123"), ErrInvalidOperation)
	assert.ErrorIs(t, v.Admin.ChangePassword(ctx, 999, "password123", "newpass456"), ErrNotFound)

	require.NoError(t, v.Admin.ChangePassword(ctx, user.ID, "password123", "newpass456"))
	_, err := v.Admin.Login(ctx, "patient", "newpass456")
	assert.NoError(t, err)
}

func TestRoleChanges(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, v, _, _, _ := GetMockVitalsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()
	ctx := context.Background()

	root := seedUser(t, v, "root", models.RoleSuperAdmin)
	ops := seedUser(t, v, "ops", models.RoleAdmin)
	patient := seedUser(t, v, "patient", models.RoleUser)

	_, err := v.Admin.PromoteAdmin(ctx, operatorOf(ops), patient.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	promoted, err := v.Admin.PromoteAdmin(ctx, operatorOf(root), patient.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promoted.Role)

	demoted, err := v.Admin.DemoteAdmin(ctx, operatorOf(root), ops.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, demoted.Role)

	_, err = v.Admin.DemoteAdmin(ctx, operatorOf(root), root.ID)
	assert.ErrorIs(t, err, ErrInvalidOperation)

	_, err = v.Admin.PromoteAdmin(ctx, operatorOf(root), 999)
	assert.ErrorIs(t, err, ErrNotFound)

	reloaded, err := v.Admin.GetUser(ctx, ops.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, reloaded.Role)
}

func TestListUsers(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, v, _, _, _ := GetMockVitalsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()
	ctx := context.Background()

	ops := seedUser(t, v, "ops", models.RoleAdmin)
	patient := seedUser(t, v, "patient", models.RoleUser)

	users, err := v.Admin.ListUsers(ctx, operatorOf(ops))
	require.NoError(t, err)
	assert.Len(t, users, 2)

	_, err = v.Admin.ListUsers(ctx, operatorOf(patient))
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestResetPassword(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, v, _, _, _ := GetMockVitalsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()
	ctx := context.Background()

	root := seedUser(t, v, "root", models.RoleSuperAdmin)
	ops := seedUser(t, v, "ops", models.RoleAdmin)
	ops2 := seedUser(t, v, "ops2", models.RoleAdmin)
	patient := seedUser(t, v, "patient", models.RoleUser)

	temp, err := v.Admin.ResetPassword(ctx, operatorOf(ops), patient.ID)
	require.NoError(t, err)
	assert.Len(t, temp, 12)

	reloaded, err := v.Admin.GetUser(ctx, patient.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.MustChangePassword)
	assert.True(t, auth.CheckPassword(temp, reloaded.PasswordHash))

	_, err = v.Admin.ResetPassword(ctx, operatorOf(ops), ops.ID)
	assert.ErrorIs(t, err, ErrInvalidOperation)

	_, err = v.Admin.ResetPassword(ctx, operatorOf(ops), ops2.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = v.Admin.ResetPassword(ctx, operatorOf(ops), root.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = v.Admin.ResetPassword(ctx, operatorOf(patient), ops.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = v.Admin.ResetPassword(ctx, operatorOf(root), ops2.ID)
	assert.NoError(t, err)

	// the temporary password is cleared by a change
	require.NoError(t, v.Admin.ChangePassword(ctx, patient.ID, temp, "fresh4pass"))
	reloaded, err = v.Admin.GetUser(ctx, patient.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.MustChangePassword)
}

func TestEnsureSuperAdmin(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, v, _, _, _ := GetMockVitalsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()
	ctx := context.Background()

	created, err := v.Admin.EnsureSuperAdmin(ctx, "root", "bootstrap1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, created.Role)

	again, err := v.Admin.EnsureSuperAdmin(ctx, "root", "ignored99")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	_, err = v.Admin.Login(ctx, "root", "bootstrap1")
	assert.NoError(t, err)

	seedUser(t, v, "ops", models.RoleAdmin)
	upgraded, err := v.Admin.EnsureSuperAdmin(ctx, "ops", "whatever1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSuperAdmin, upgraded.Role)
}

func TestRegisterUser(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, v, _, _, _ := GetMockVitalsWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()
	ctx := context.Background()

	ops := seedUser(t, v, "ops", models.RoleAdmin)
	patient := seedUser(t, v, "patient", models.RoleUser)

	created, err := v.Admin.RegisterUser(ctx, operatorOf(ops), "newbie", "newbie@example.com", "welcome123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, created.Role)

	_, err = v.Admin.RegisterUser(ctx, operatorOf(ops), "newbie", "", "welcome123")
	assert.ErrorIs(t, err, ErrInvalidOperation)

	_, err = v.Admin.RegisterUser(ctx, operatorOf(ops), "weak", "", "short")
	assert.ErrorIs(t, err, ErrInvalidOperation)

	_, err = v.Admin.RegisterUser(ctx, operatorOf(patient), "another", "", "welcome123")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = v.Admin.Login(ctx, "newbie", "welcome123")
	assert.NoError(t, err)
}
