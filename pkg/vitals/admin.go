package vitals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"liyu1981.xyz/vitals-console/pkg/auth"
	"liyu1981.xyz/vitals-console/pkg/common"
	"liyu1981.xyz/vitals-console/pkg/models"
)

const tempPasswordLength = 12

func (v *Vitals) getUser(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := v.Db.Conn.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (v *Vitals) login(ctx context.Context, username, password string) (*models.User, error) {
	logger := common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryAdmin)

	var user models.User
	err := v.Db.Conn.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Info("Login rejected", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		logger.Info("Login rejected", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := v.Db.Conn.WithContext(ctx).Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	logger.Info("Login accepted", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))
	return &user, nil
}

func (v *Vitals) setPassword(ctx context.Context, user *models.User, password string, mustChange bool) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	return v.Db.Conn.WithContext(ctx).Model(user).Updates(map[string]any{
		"password_hash":        hash,
		"must_change_password": mustChange,
	}).Error
}

func (v *Vitals) changePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := v.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(oldPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}
	if err := auth.CheckPasswordStrength(newPassword); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}
	if oldPassword == newPassword {
		return fmt.Errorf("%w: new password must differ from the current one", ErrInvalidOperation)
	}
	return v.setPassword(ctx, user, newPassword, false)
}

func (v *Vitals) listUsers(ctx context.Context, operator models.Operator) ([]models.User, error) {
	if !operator.Role.AtLeast(models.RoleAdmin) {
		return nil, ErrForbidden
	}
	users := []models.User{}
	err := v.Db.Conn.WithContext(ctx).Order("id asc").Find(&users).Error
	return users, err
}

func (v *Vitals) setRole(ctx context.Context, operator models.Operator, userID uint, role models.Role) (*models.User, error) {
	logger := common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryAdmin)

	if err := requireSuperAdmin(operator); err != nil {
		return nil, err
	}

	target, err := v.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if target.Role == models.RoleSuperAdmin {
		return nil, fmt.Errorf("%w: cannot modify SUPER_ADMIN role", ErrInvalidOperation)
	}

	if err := v.Db.Conn.WithContext(ctx).Model(target).Update("role", role).Error; err != nil {
		return nil, err
	}
	target.Role = role

	logger.Info("Role changed", zap.Uint("user_id", target.ID), zap.String("role", string(role)),
		zap.String("operator", operator.Username))
	return target, nil
}

func (v *Vitals) resetPassword(ctx context.Context, operator models.Operator, userID uint) (string, error) {
	logger := common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryAdmin)

	if !operator.Role.AtLeast(models.RoleAdmin) {
		return "", ErrForbidden
	}
	if operator.ID == userID {
		return "", fmt.Errorf("%w: use change-password for your own account", ErrInvalidOperation)
	}

	target, err := v.getUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if target.Role.AtLeast(operator.Role) && !operator.IsSuperAdmin() {
		return "", ErrForbidden
	}

	temp, err := auth.GenerateTempPassword(tempPasswordLength)
	if err != nil {
		return "", err
	}
	if err := v.setPassword(ctx, target, temp, true); err != nil {
		return "", err
	}

	logger.Info("Password reset", zap.Uint("user_id", target.ID), zap.String("operator", operator.Username))
	return temp, nil
}

// ensureSuperAdmin creates the bootstrap account if it is missing; an existing account
// keeps its password.
func (v *Vitals) ensureSuperAdmin(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := v.Db.Conn.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err == nil {
		if user.Role != models.RoleSuperAdmin {
			if err := v.Db.Conn.WithContext(ctx).Model(&user).Update("role", models.RoleSuperAdmin).Error; err != nil {
				return nil, err
			}
			user.Role = models.RoleSuperAdmin
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user = models.User{Username: username, PasswordHash: hash, Role: models.RoleSuperAdmin}
	if err := v.Db.Conn.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryAdmin).
		Info("Super admin created", zap.Uint("user_id", user.ID), zap.String("username", username))
	return &user, nil
}

// CreateUser registers an account with the given role.
func (v *Vitals) CreateUser(ctx context.Context, username, email, password string, role models.Role) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := models.User{Username: username, Email: email, PasswordHash: hash, Role: role}
	if err := v.Db.Conn.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// registerUser lets ADMIN and above open plain USER accounts.
func (v *Vitals) registerUser(ctx context.Context, operator models.Operator, username, email, password string) (*models.User, error) {
	if !operator.Role.AtLeast(models.RoleAdmin) {
		return nil, ErrForbidden
	}
	if err := auth.CheckPasswordStrength(password); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperation, err)
	}

	var taken int64
	if err := v.Db.Conn.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&taken).Error; err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, fmt.Errorf("%w: username %q is taken", ErrInvalidOperation, username)
	}

	user, err := v.CreateUser(ctx, username, email, password, models.RoleUser)
	if err != nil {
		return nil, err
	}

	common.GetCategoryLogger(common.LoggerNameVitalsCore, common.LoggerCategoryAdmin).
		Info("User registered", zap.Uint("user_id", user.ID), zap.String("operator", operator.Username))
	return user, nil
}

type IAdminImpl struct {
	vitals *Vitals
}

func (ia *IAdminImpl) Login(ctx context.Context, username, password string) (*models.User, error) {
	return ia.vitals.login(ctx, username, password)
}

func (ia *IAdminImpl) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	return ia.vitals.changePassword(ctx, userID, oldPassword, newPassword)
}

func (ia *IAdminImpl) GetUser(ctx context.Context, userID uint) (*models.User, error) {
	return ia.vitals.getUser(ctx, userID)
}

func (ia *IAdminImpl) ListUsers(ctx context.Context, operator models.Operator) ([]models.User, error) {
	return ia.vitals.listUsers(ctx, operator)
}

func (ia *IAdminImpl) PromoteAdmin(ctx context.Context, operator models.Operator, userID uint) (*models.User, error) {
	return ia.vitals.setRole(ctx, operator, userID, models.RoleAdmin)
}

func (ia *IAdminImpl) DemoteAdmin(ctx context.Context, operator models.Operator, userID uint) (*models.User, error) {
	return ia.vitals.setRole(ctx, operator, userID, models.RoleUser)
}

func (ia *IAdminImpl) ResetPassword(ctx context.Context, operator models.Operator, userID uint) (string, error) {
	return ia.vitals.resetPassword(ctx, operator, userID)
}

func (ia *IAdminImpl) RegisterUser(ctx context.Context, operator models.Operator, username, email, password string) (*models.User, error) {
	return ia.vitals.registerUser(ctx, operator, username, email, password)
}

func (ia *IAdminImpl) EnsureSuperAdmin(ctx context.Context, username, password string) (*models.User, error) {
	return ia.vitals.ensureSuperAdmin(ctx, username, password)
}

func (v *Vitals) GetIAdmin() IAdmin {
	return &IAdminImpl{vitals: v}
}
