package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/joblane/joblane-backend/internal/common"
	"github.com/joblane/joblane-backend/internal/dtos"
	"github.com/joblane/joblane-backend/internal/models"
	"github.com/joblane/joblane-backend/internal/repository"
	"github.com/joblane/joblane-backend/internal/storage"
)

// FileUpload is an in-memory file taken off a multipart request.
type FileUpload struct {
	Data     []byte
	Filename string
}

type UserService struct {
	users    repository.UserRepository
	uploader storage.Uploader
}

func NewUserService(users repository.UserRepository, uploader storage.Uploader) *UserService {
	return &UserService{users: users, uploader: uploader}
}

func (s *UserService) Register(ctx context.Context, req *dtos.RegisterRequest, file *FileUpload) (*models.User, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, common.NewError(common.CodeConflict, "User already exists with this email.", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}

	profilePhoto := ""
	if file != nil {
		url, err := s.uploader.Upload(ctx, file.Data, file.Filename)
		if err != nil {
			return nil, err
		}
		profilePhoto = url
	}

	user := &models.User{
		Fullname:    req.Fullname,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    string(hashed),
		Role:        req.Role,
		Profile: models.Profile{
			ProfilePhoto: profilePhoto,
		},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and the requested role. The credential errors
// stay deliberately generic so callers can't probe which emails exist.
func (s *UserService) Login(ctx context.Context, req *dtos.LoginRequest) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeBadCredentials, "Incorrect email or password.", nil)
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, common.NewError(common.CodeBadCredentials, "Incorrect email or password.", nil)
	}
	if req.Role != user.Role {
		return nil, common.NewError(common.CodeBadCredentials, "Account does not exist with the specified role.", nil)
	}
	return user, nil
}

// UpdateProfile applies only the fields actually supplied; absent fields are
// left untouched. An uploaded file becomes the resume URL plus its original
// filename.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dtos.UpdateProfileRequest, file *FileUpload) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Fullname != "" {
		user.Fullname = req.Fullname
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Bio != "" {
		user.Profile.Bio = req.Bio
	}
	if req.Skills != "" {
		user.Profile.Skills = splitCSV(req.Skills)
	}

	if file != nil {
		url, err := s.uploader.Upload(ctx, file.Data, file.Filename)
		if err != nil {
			return nil, err
		}
		user.Profile.Resume = url
		user.Profile.ResumeOriginalName = file.Filename
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
