package controller

import (
	"context"
	"sync"

	"user-sync-server/domain/entity"
	domainErrors "user-sync-server/domain/errors"
)

// ========== memoryUserRepository ==========
// 带状态的内存实现，用于验证重放/幂等行为
// 唯一约束语义与数据库一致：clerk_id 与 email 都唯一

type memoryUserRepository struct {
	mu      sync.Mutex
	users   []*entity.User
	creates int
	err     error // 非 nil 时所有操作返回该错误
}

func (r *memoryUserRepository) GetByClerkID(ctx context.Context, clerkID string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.ClerkID == clerkID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	for _, u := range r.users {
		if u.ClerkID == user.ClerkID || u.Email == user.Email {
			return domainErrors.ErrUserAlreadyExists
		}
	}
	r.creates++
	user.ID = uint(len(r.users) + 1)
	r.users = append(r.users, user)
	return nil
}

func (r *memoryUserRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}
