package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/changhyeonkim/tour-admin/go-api-server/internal/activity"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/model"
	sharedContext "github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/shared/token"
	"github.com/changhyeonkim/tour-admin/go-api-server/internal/user"
	"gorm.io/gorm"
)

type AuthService struct {
	db             *gorm.DB
	userRepository *user.UserRepository
	tokenManager   token.Manager
	recorder       activity.Recorder
}

func NewAuthService(db *gorm.DB, userRepository *user.UserRepository, tokenManager token.Manager, recorder activity.Recorder) *AuthService {
	return &AuthService{
		db:             db,
		userRepository: userRepository,
		tokenManager:   tokenManager,
		recorder:       recorder,
	}
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	// 1. Find user by email
	account, err := a.userRepository.FindByEmail(ctx, a.db, request.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("로그인 실패 - 등록되지 않은 이메일", "email", logger.MaskEmail(request.Email))
			return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword)
		}
		log.Error("로그인 실패 - 알 수 없는 오류", "error", err)
		return nil, fmt.Errorf("로그인 실패: %w", err)
	}

	// 2. Validate password
	if !user.CheckPassword(account.Password, request.Password) {
		log.Warn("로그인 실패 - 비밀번호 불일치", "email", logger.MaskEmail(request.Email))
		return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword)
	}

	// 3. 비활성 계정은 비밀번호 확인 후에만 알려준다
	if !account.IsActive {
		log.Warn("로그인 실패 - 비활성 계정", "user_id", account.ID)
		return nil, fmt.Errorf("userID=%d %w", account.ID, ErrInactiveUser)
	}

	// 4. Generate JWT tokens
	response, err := a.issue(account)
	if err != nil {
		log.Error("토큰 생성 실패", "error", err)
		return nil, err
	}

	if err := a.userRepository.TouchLastLogin(ctx, a.db, account.ID, time.Now()); err != nil {
		log.Warn("마지막 로그인 시각 저장 실패 (무시)", "user_id", account.ID, "error", err)
	}

	log.Info("로그인 성공", "email", logger.MaskEmail(request.Email))
	actorCtx := sharedContext.WithActor(ctx, sharedContext.Actor{
		UserID: account.ID,
		Email:  account.Email,
		Role:   account.Role,
	})
	a.recorder.Record(actorCtx, activity.Entry{
		Action:     model.ActionLogin,
		EntityType: "user",
		EntityID:   activity.ID(account.ID),
		Summary:    logger.MaskEmail(account.Email),
	})

	return response, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
// The user is reloaded so role changes and deactivation apply immediately.
func (a *AuthService) Refresh(ctx context.Context, request *RefreshRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	claims, err := a.tokenManager.ValidateToken(request.RefreshToken)
	if err != nil {
		log.Warn("토큰 갱신 실패 - 유효하지 않은 토큰", "error", err)
		return nil, fmt.Errorf("%v %w", err, ErrInvalidRefreshToken)
	}
	if claims.TokenType != token.REFRESH {
		log.Warn("토큰 갱신 실패 - refresh token 아님", "token_type", claims.TokenType)
		return nil, fmt.Errorf("token_type=%s %w", claims.TokenType, ErrNotRefreshToken)
	}

	userID, err := strconv.ParseUint(claims.UserID, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("user_id=%q %w", claims.UserID, ErrInvalidRefreshToken)
	}

	account, err := a.userRepository.FindByID(ctx, a.db, uint32(userID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("토큰 갱신 실패 - 삭제된 사용자", "user_id", userID)
			return nil, fmt.Errorf("userID=%d %w", userID, ErrInvalidRefreshToken)
		}
		return nil, fmt.Errorf("사용자 조회 실패: %w", err)
	}
	if !account.IsActive {
		return nil, fmt.Errorf("userID=%d %w", account.ID, ErrInactiveUser)
	}

	response, err := a.issue(account)
	if err != nil {
		log.Error("토큰 생성 실패", "error", err)
		return nil, err
	}

	log.Debug("토큰 갱신 완료", "user_id", account.ID)
	return response, nil
}

func (a *AuthService) issue(account *model.User) (*LoginResponse, error) {
	userID := strconv.FormatUint(uint64(account.ID), 10)

	accessToken, err := a.tokenManager.GenerateAccessToken(userID, account.Email, account.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(userID, account.Email, account.Role)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(a.tokenManager.AccessExpiry().Seconds()),
	}, nil
}
