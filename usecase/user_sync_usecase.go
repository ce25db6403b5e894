package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"user-sync-server/domain/entity"
	domainErrors "user-sync-server/domain/errors"
	"user-sync-server/domain/repository"
	"user-sync-server/internal/clerkhook"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// UserSyncUseCase Clerk 用户同步业务逻辑层
// 只处理创建：已存在的用户只读不写
type UserSyncUseCase struct {
	repo     repository.UserRepository
	validate *validator.Validate
	log      *zap.SugaredLogger
}

// NewUserSyncUseCase 构造函数，依赖注入
func NewUserSyncUseCase(repo repository.UserRepository, log *zap.SugaredLogger) *UserSyncUseCase {
	return &UserSyncUseCase{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// SyncCreatedUser 将 user.created 事件同步为本地用户
// 返回值 created 为 true 表示本次新建，false 表示用户已存在（重放或并发投递）
func (uc *UserSyncUseCase) SyncCreatedUser(ctx context.Context, data *clerkhook.UserData) (*entity.User, bool, error) {
	// 1. 先查一次（非原子，只是优化；真正的去重靠唯一索引）
	existing, err := uc.repo.GetByClerkID(ctx, data.ID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		uc.log.Infow("[UserSync] 用户已存在，跳过创建", "clerk_id", data.ID)
		return existing, false, nil
	}

	// 2. 构造新用户，密码由 Clerk 管理
	email := data.PrimaryEmail()
	user := &entity.User{
		ClerkID:  data.ID,
		Name:     BuildName(data.FirstName, data.LastName, email),
		Email:    email,
		Phone:    data.PrimaryPhone(),
		Password: "",
	}
	if err := uc.validate.Struct(user); err != nil {
		return nil, false, fmt.Errorf("%w: %v", domainErrors.ErrInvalidUser, err)
	}

	// 3. 插入；唯一约束冲突说明并发请求抢先创建了同一用户
	if err := uc.repo.Create(ctx, user); err != nil {
		if !errors.Is(err, domainErrors.ErrUserAlreadyExists) {
			return nil, false, err
		}

		winner, getErr := uc.repo.GetByClerkID(ctx, data.ID)
		if getErr != nil {
			return nil, false, getErr
		}
		if winner == nil {
			// clerk_id 不存在却冲突：email 已被另一个账号占用
			return nil, false, fmt.Errorf("create user %s: %w", data.ID, err)
		}
		uc.log.Infow("[UserSync] 并发创建冲突，返回已有用户", "clerk_id", data.ID)
		return winner, false, nil
	}

	uc.log.Infow("[UserSync] ✅ 用户同步成功", "clerk_id", user.ClerkID, "email", user.Email)
	return user, true, nil
}

// BuildName 组合姓名
// 没有 first_name 时用邮箱 @ 前的部分代替
func BuildName(firstName, lastName *string, email string) string {
	first := ""
	if firstName != nil {
		first = strings.TrimSpace(*firstName)
	}
	if first == "" {
		first = emailLocalPart(email)
	}

	last := ""
	if lastName != nil {
		last = strings.TrimSpace(*lastName)
	}

	return strings.TrimSpace(first + " " + last)
}

func emailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
