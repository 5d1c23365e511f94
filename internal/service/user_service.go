package service

import (
	"context"
	"time"

	"github.com/keerthanakottapalli/ShopSphere/config"
	"github.com/keerthanakottapalli/ShopSphere/internal/domain"
	"github.com/keerthanakottapalli/ShopSphere/internal/dto"
	"github.com/keerthanakottapalli/ShopSphere/internal/repository"
	"github.com/keerthanakottapalli/ShopSphere/pkg/errs"
	"github.com/keerthanakottapalli/ShopSphere/pkg/utils"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo repository.UserRepository
	config   config.Config
}

func CreateUserService(userRepo repository.UserRepository, config config.Config) UserService {
	return &UserServiceImpl{userRepo: userRepo, config: config}
}

func (s *UserServiceImpl) Register(ctx context.Context, req dto.UserRequest) (resp dto.UserResponse, err error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return resp, errs.ErrClient
	}

	existing, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return
	}

	if !existing.ID.IsZero() {
		return resp, errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return
	}

	now := time.Now()
	user := domain.User{
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: string(hash),
		IsAdmin:        false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	userID, err := s.userRepo.AddUser(ctx, user)
	if err != nil {
		return
	}

	user.ID = userID
	return s.profileWithToken(user)
}

func (s *UserServiceImpl) Login(ctx context.Context, req dto.UserRequest) (resp dto.UserResponse, err error) {
	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return
	}

	if user.ID.IsZero() {
		return resp, errs.ErrInvalidCredentialsEmail
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Login").Msg("")
		return resp, errs.ErrInvalidCredentialsEmail
	}

	return s.profileWithToken(user)
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, actingUser domain.User) (resp dto.UserResponse, err error) {
	resp = dto.UserResponse{
		ID:      actingUser.ID.Hex(),
		Name:    actingUser.Name,
		Email:   actingUser.Email,
		IsAdmin: actingUser.IsAdmin,
	}
	return resp, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, actingUser domain.User, req dto.UserRequest) (resp dto.UserResponse, err error) {
	if req.Name != "" {
		actingUser.Name = req.Name
	}
	if req.Email != "" {
		actingUser.Email = req.Email
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return resp, err
		}
		actingUser.HashedPassword = string(hash)
	}
	actingUser.UpdatedAt = time.Now()

	err = s.userRepo.UpdateUser(ctx, actingUser)
	if err != nil {
		return
	}

	return s.profileWithToken(actingUser)
}

func (s *UserServiceImpl) profileWithToken(user domain.User) (resp dto.UserResponse, err error) {
	token, err := utils.CreateJWTToken(user, s.config.JWTSecret)
	if err != nil {
		return
	}

	resp = dto.UserResponse{
		ID:      user.ID.Hex(),
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Token:   token,
	}

	return resp, nil
}
