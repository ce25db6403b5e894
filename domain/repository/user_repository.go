package repository

import (
	"context"

	"user-sync-server/domain/entity"
)

// UserRepository 用户数据仓库接口
type UserRepository interface {
	// GetByClerkID 根据 Clerk user_id 获取用户，不存在时返回 (nil, nil)
	GetByClerkID(ctx context.Context, clerkID string) (*entity.User, error)

	// Create 创建新用户
	// 违反唯一约束时返回 ErrUserAlreadyExists
	Create(ctx context.Context, user *entity.User) error
}
