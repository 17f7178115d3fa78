package services

import (
	"context"
	"errors"

	"photofolio_backend/internal/auth"
	"photofolio_backend/internal/logger"
	"photofolio_backend/internal/models"
	"photofolio_backend/internal/repositories"
	"photofolio_backend/internal/services/dto"
	"photofolio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// UserService implements the admin user management procedures. Every method
// authorizes the acting profile before touching the store; an unauthorized
// call performs no reads or writes.
type UserService interface {
	ListUsers(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.ListUsersRequest) (*dto.ListUsersResponse, error)
	GetUser(ctx context.Context, db *gorm.DB, actor *models.Profile, userID string) (*dto.ProfileResponse, error)
	UpdateUserRole(ctx context.Context, db *gorm.DB, actor *models.Profile, userID string, req *dto.UpdateUserRoleRequest) (*dto.ProfileResponse, error)
	UpdateUserStatus(ctx context.Context, db *gorm.DB, actor *models.Profile, userID string, req *dto.UpdateUserStatusRequest) (*dto.ProfileResponse, error)
	DeleteUser(ctx context.Context, db *gorm.DB, actor *models.Profile, userID string) error
	BulkDeleteUsers(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.BulkDeleteUsersRequest) (*dto.BulkDeleteUsersResponse, error)
}

type userService struct {
	profileRepo repositories.ProfileRepository
	recorder    AuditRecorder
}

func NewUserService(profileRepo repositories.ProfileRepository, recorder AuditRecorder) UserService {
	return &userService{
		profileRepo: profileRepo,
		recorder:    recorder,
	}
}

func (s *userService) ListUsers(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.ListUsersRequest) (*dto.ListUsersResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	filters := repositories.ProfileFilters{
		Search:    req.Search,
		Role:      req.Role,
		Status:    req.Status,
		SortBy:    req.SortBy,
		SortOrder: req.SortOrder,
		Limit:     req.Limit,
		Offset:    req.Offset,
	}

	profiles, total, err := s.profileRepo.List(db, filters)
	if err != nil {
		return nil, apperrors.StoreError(err, "users")
	}

	users := make([]dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		users = append(users, dto.NewProfileResponse(&profiles[i]))
	}

	return &dto.ListUsersResponse{Users: users, Total: total}, nil
}

func (s *userService) GetUser(ctx context.Context, db *gorm.DB, actor *models.Profile, userID string) (*dto.ProfileResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.StoreError(err, "users")
	}

	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}

func (s *userService) UpdateUserRole(ctx context.Context, db *gorm.DB, actor *models.Profile, userID string, req *dto.UpdateUserRoleRequest) (*dto.ProfileResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if !models.ValidRole(req.Role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	profile, err := s.profileRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.StoreError(err, "users")
	}

	oldRole := profile.Role
	if err := s.profileRepo.UpdateFields(db, userID, map[string]interface{}{"role": req.Role}); err != nil {
		return nil, apperrors.StoreError(err, "users")
	}
	profile.Role = models.UserRole(req.Role)

	s.recorder.Record(ctx, db, &actor.ID, "profiles", models.AuditRoleChange, &userID, map[string]interface{}{
		"old_role": oldRole,
		"new_role": req.Role,
	})

	logger.CtxInfo(ctx, "user role updated", "user_id", userID, "role", req.Role)

	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}

func (s *userService) UpdateUserStatus(ctx context.Context, db *gorm.DB, actor *models.Profile, userID string, req *dto.UpdateUserStatusRequest) (*dto.ProfileResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	if !models.ValidStatus(req.Status) {
		return nil, apperrors.ErrInvalidUserStatus
	}

	profile, err := s.profileRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.StoreError(err, "users")
	}

	oldStatus := profile.Status
	if err := s.profileRepo.UpdateFields(db, userID, map[string]interface{}{"status": req.Status}); err != nil {
		return nil, apperrors.StoreError(err, "users")
	}
	profile.Status = models.UserStatus(req.Status)

	s.recorder.Record(ctx, db, &actor.ID, "profiles", models.AuditStatusChange, &userID, map[string]interface{}{
		"old_status": oldStatus,
		"new_status": req.Status,
	})

	logger.CtxInfo(ctx, "user status updated", "user_id", userID, "status", req.Status)

	resp := dto.NewProfileResponse(profile)
	return &resp, nil
}

func (s *userService) DeleteUser(ctx context.Context, db *gorm.DB, actor *models.Profile, userID string) error {
	if err := auth.RequireAdmin(actor); err != nil {
		return err
	}

	// Admins cannot remove their own account.
	if userID == actor.ID {
		return apperrors.ErrSelfDelete
	}

	if _, err := s.profileRepo.FindByID(db, userID); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.StoreError(err, "users")
	}

	if err := s.profileRepo.Delete(db, userID); err != nil {
		return apperrors.StoreError(err, "users")
	}

	s.recorder.Record(ctx, db, &actor.ID, "profiles", models.AuditUserDeleted, &userID, nil)

	logger.CtxInfo(ctx, "user deleted", "user_id", userID)
	return nil
}

func (s *userService) BulkDeleteUsers(ctx context.Context, db *gorm.DB, actor *models.Profile, req *dto.BulkDeleteUsersRequest) (*dto.BulkDeleteUsersResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	// The actor's own id is silently dropped rather than failing the batch.
	ids := make([]string, 0, len(req.UserIDs))
	for _, id := range req.UserIDs {
		if id != actor.ID {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, apperrors.ErrNoUsersToDelete
	}

	deleted, err := s.profileRepo.DeleteMany(db, ids)
	if err != nil {
		return nil, apperrors.StoreError(err, "users")
	}

	s.recorder.Record(ctx, db, &actor.ID, "profiles", models.AuditBulkUserDeleted, nil, map[string]interface{}{
		"deleted_ids": ids,
	})

	logger.CtxInfo(ctx, "users bulk deleted", "count", deleted)

	return &dto.BulkDeleteUsersResponse{DeletedCount: deleted, DeletedIDs: ids}, nil
}
