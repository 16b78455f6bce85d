package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	sharedContext "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

const entityType = "user"

type UserService struct {
	db             *gorm.DB
	userRepository *UserRepository
	recorder       activity.Recorder
}

func NewUserService(db *gorm.DB, userRepository *UserRepository, recorder activity.Recorder) *UserService {
	return &UserService{
		db:             db,
		userRepository: userRepository,
		recorder:       recorder,
	}
}

func (s *UserService) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.userRepository.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("사용자 목록 조회 실패: %w", err)
	}

	items := make([]UserResponse, 0, len(users))
	for i := range users {
		items = append(items, toUserResponse(&users[i]))
	}
	return items, nil
}

func (s *UserService) Get(ctx context.Context, userID uint32) (*UserResponse, error) {
	user, err := s.find(ctx, s.db, userID)
	if err != nil {
		return nil, err
	}
	response := toUserResponse(user)
	return &response, nil
}

func (s *UserService) Create(ctx context.Context, request *CreateUserRequest) (uint32, error) {
	log := logger.FromContext(ctx)

	var created *model.User
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		exists, err := s.userRepository.IsExist(ctx, tx, request.Email)
		if err != nil {
			return fmt.Errorf("사용자 중복 확인 실패: %w", err)
		}
		if exists {
			log.Warn("이미 등록된 사용자", "email", logger.MaskEmail(request.Email))
			return fmt.Errorf("email=%s %w", logger.MaskEmail(request.Email), ErrUserAlreadyExists)
		}

		hashedPassword, err := HashPassword(request.Password)
		if err != nil {
			return fmt.Errorf("비밀번호 암호화 실패: %w", err)
		}

		user := model.NewUser(request.Name, request.Email, request.PhoneNumber, hashedPassword, request.Role)
		user.StampCreated(sharedContext.ActorUserID(ctx))
		if err := s.userRepository.Create(ctx, tx, user); err != nil {
			return fmt.Errorf("사용자 생성 실패: %w", err)
		}
		created = user
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info("사용자 생성 완료", "user_id", created.ID, "email", logger.MaskEmail(created.Email), "role", created.Role)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionCreate,
		EntityType: entityType,
		EntityID:   activity.ID(created.ID),
		Summary:    logger.MaskEmail(created.Email),
	})
	return created.ID, nil
}

func (s *UserService) Update(ctx context.Context, userID uint32, request *UpdateUserRequest) error {
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		user, err := s.find(ctx, tx, userID)
		if err != nil {
			return err
		}

		user.Name = request.Name
		user.PhoneNumber = request.PhoneNumber
		user.Role = request.Role
		if request.IsActive != nil {
			user.IsActive = *request.IsActive
		}
		user.StampUpdated(sharedContext.ActorUserID(ctx))

		if err := s.userRepository.Save(ctx, tx, user); err != nil {
			return fmt.Errorf("사용자 수정 실패 userID=%d: %w", userID, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("사용자 수정 완료", "user_id", userID, "role", request.Role)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionUpdate,
		EntityType: entityType,
		EntityID:   activity.ID(userID),
		Summary:    request.Name,
	})
	return nil
}

func (s *UserService) Delete(ctx context.Context, userID uint32) error {
	if actorID := sharedContext.ActorUserID(ctx); actorID == userID {
		return fmt.Errorf("userID=%d %w", userID, ErrCannotDeleteSelf)
	}

	var email string
	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		user, err := s.find(ctx, tx, userID)
		if err != nil {
			return err
		}
		if err := s.userRepository.Delete(ctx, tx, userID); err != nil {
			return fmt.Errorf("사용자 삭제 실패 userID=%d: %w", userID, err)
		}
		email = user.Email
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("사용자 삭제 완료", "user_id", userID)
	s.recorder.Record(ctx, activity.Entry{
		Action:     model.ActionDelete,
		EntityType: entityType,
		EntityID:   activity.ID(userID),
		Summary:    logger.MaskEmail(email),
	})
	return nil
}

// ChangePassword replaces the caller's own password after checking the current one
func (s *UserService) ChangePassword(ctx context.Context, userID uint32, request *ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	return database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		user, err := s.find(ctx, tx, userID)
		if err != nil {
			return err
		}

		if !CheckPassword(user.Password, request.CurrentPassword) {
			log.Warn("비밀번호 변경 실패 - 현재 비밀번호 불일치", "user_id", userID)
			return fmt.Errorf("userID=%d %w", userID, ErrIncorrectPassword)
		}

		hashedPassword, err := HashPassword(request.NewPassword)
		if err != nil {
			return fmt.Errorf("비밀번호 암호화 실패: %w", err)
		}

		user.Password = hashedPassword
		user.StampUpdated(userID)
		if err := s.userRepository.Save(ctx, tx, user); err != nil {
			return fmt.Errorf("비밀번호 변경 실패 userID=%d: %w", userID, err)
		}

		log.Info("비밀번호 변경 완료", "user_id", userID)
		return nil
	})
}

func (s *UserService) find(ctx context.Context, db *gorm.DB, userID uint32) (*model.User, error) {
	user, err := s.userRepository.FindByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("사용자를 찾을 수 없습니다 userID=%d %w", userID, ErrUserNotFound)
		}
		return nil, fmt.Errorf("사용자 조회 실패: %w", err)
	}
	return user, nil
}
