package repository

import (
	"context"
	"errors"

	"user-sync-server/domain/entity"
	domainErrors "user-sync-server/domain/errors"
	domainRepo "user-sync-server/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation PostgreSQL 唯一约束冲突错误码
const pgUniqueViolation = "23505"

// userRepository GORM 实现 UserRepository 接口
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 构造函数
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

// GetByClerkID 根据 Clerk user_id 查询用户
func (r *userRepository) GetByClerkID(ctx context.Context, clerkID string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("clerk_id = ?", clerkID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // 返回 nil 表示不存在，调用方需处理
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create 插入新用户（只插入，绝不更新已有记录）
// ⚠️ 并发投递同一事件时，唯一索引才是真正的仲裁者
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if isDuplicateKey(err) {
		return domainErrors.ErrUserAlreadyExists
	}
	return err
}

// isDuplicateKey 判断是否为唯一约束冲突
// TranslateError 开启时 GORM 会转换为 ErrDuplicatedKey，否则回退检查 pg 原始错误码
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
