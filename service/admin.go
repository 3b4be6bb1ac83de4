package service

import (
	"Tripper/dao"
	"Tripper/models"
	"Tripper/pkg/encrypt"
	"Tripper/pkg/log"
	"Tripper/pkg/response"
	"Tripper/types"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IAdminService = (*AdminService)(nil)

// IAdminService 用户管理后台，全部操作要求调用者是管理员
type IAdminService interface {
	ListUsers(ctx context.Context, actorID string, query *types.AdminUserListQuery) ([]*types.UserResponse, response.Pagination, error)
	CreateUser(ctx context.Context, actorID string, req *types.AdminCreateUserRequest) (*types.UserResponse, error)
	GetUser(ctx context.Context, actorID, userID string) (*types.UserResponse, error)
	UpdateUser(ctx context.Context, actorID, userID string, req *types.AdminUpdateUserRequest) (*types.UserResponse, error)
	DeleteUser(ctx context.Context, actorID, userID string) error
}

type AdminService struct {
	UserDAO *dao.Users
	User    IUserService
}

func (s *AdminService) requireAdmin(ctx context.Context, actorID string) error {
	actor, err := s.UserDAO.FindByWhere(ctx, "user_id = ?", actorID)
	if err != nil {
		return response.NewError(401, "未登录")
	}
	if actor.Role != models.RoleAdmin {
		return response.NewError(403, "需要管理员权限")
	}
	return nil
}

func (s *AdminService) ListUsers(ctx context.Context, actorID string, query *types.AdminUserListQuery) ([]*types.UserResponse, response.Pagination, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, response.Pagination{}, err
	}

	page, limit := normalizePage(query.Page, query.Limit)
	users, total, err := s.UserDAO.List(ctx, query.Keyword, limit, (page-1)*limit)
	if err != nil {
		return nil, response.Pagination{}, err
	}

	resp := make([]*types.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	return resp, response.NewPagination(page, limit, total), nil
}

func (s *AdminService) CreateUser(ctx context.Context, actorID string, req *types.AdminCreateUserRequest) (*types.UserResponse, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	if s.UserDAO.IsEmailExist(ctx, req.Email) {
		return nil, response.NewError(409, "该邮箱已注册")
	}
	if s.UserDAO.IsUsernameExist(ctx, req.Username) {
		return nil, response.NewError(409, "该用户名已存在")
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	now := time.Now()
	user := &models.Users{
		UserID:    uuid.NewString(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  encrypt.HashPassword(req.Password),
		FullName:  req.FullName,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}

	log.L.Info("user created by admin",
		zap.String("user_id", user.UserID), zap.String("actor_id", actorID))
	return toUserResponse(user), nil
}

func (s *AdminService) GetUser(ctx context.Context, actorID, userID string) (*types.UserResponse, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	user, err := s.UserDAO.FindByWhere(ctx, "user_id = ?", userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(404, "用户不存在")
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *AdminService) UpdateUser(ctx context.Context, actorID, userID string, req *types.AdminUpdateUserRequest) (*types.UserResponse, error) {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	data := map[string]any{"updated_at": time.Now()}
	if req.FullName != nil {
		data["full_name"] = *req.FullName
	}
	if req.Role != nil {
		// 不允许管理员摘掉自己的角色，避免把最后一个管理员锁在门外
		if userID == actorID && *req.Role != models.RoleAdmin {
			return nil, response.NewError(400, "不能降级自己的角色")
		}
		data["role"] = *req.Role
	}
	if req.BudgetPreference != nil {
		data["budget_preference"] = *req.BudgetPreference
	}

	rows, err := s.UserDAO.UpdateById(ctx, userID, data)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, response.NewError(404, "用户不存在")
	}
	return s.GetUser(ctx, actorID, userID)
}

func (s *AdminService) DeleteUser(ctx context.Context, actorID, userID string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	if userID == actorID {
		return response.NewError(400, "不能删除自己的账号")
	}
	if _, err := s.UserDAO.FindByWhere(ctx, "user_id = ?", userID); err != nil {
		return response.NewError(404, "用户不存在")
	}
	return s.User.DeleteMe(ctx, userID)
}
