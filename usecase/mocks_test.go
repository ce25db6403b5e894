package usecase

import (
	"context"

	"user-sync-server/domain/entity"

	"github.com/stretchr/testify/mock"
)

// ========== MockUserRepository ==========
// 实现 repository.UserRepository 接口，用于 UserSyncUseCase 的单元测试

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByClerkID(ctx context.Context, clerkID string) (*entity.User, error) {
	args := m.Called(ctx, clerkID)
	// 处理 nil 情况
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
