package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"admin-panel-server/helper"
	"admin-panel-server/models"
	"admin-panel-server/repositories"
)

type UserService interface {
	CreateEditor(req models.CreateEditorRequest) (*models.User, error)
	ListUsers(params models.UserListParams) ([]models.User, models.Pagination, error)
	ListEditors(params models.UserListParams) ([]models.User, models.Pagination, error)
	GetByID(id uint) (*models.User, error)
	UpdateRole(actorID, targetID uint, role models.UserRole) (*models.User, error)
	ToggleActive(actorID, targetID uint) (*models.User, string, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// CreateEditor provisions an Editor account, pre-verified and active. The
// username falls back to the email local-part when omitted.
func (s *userService) CreateEditor(req models.CreateEditorRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	username := req.Username
	if username == "" {
		username = strings.SplitN(email, "@", 2)[0]
	}
	if len(username) < 3 || len(username) > 50 {
		return nil, models.ValidationError{Message: "Username must be between 3 and 50 characters"}
	}

	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, models.ConflictError{Field: "Email"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, models.ConflictError{Field: "Username"}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleEditor,
		Verified: true,
		IsActive: true,
	}

	if err := s.userRepo.Create(user); err != nil {
		// A concurrent insert can still slip past the pre-checks; translate the
		// database collision into the same conflict error, naming the field.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if _, lookupErr := s.userRepo.GetByEmail(email); lookupErr == nil {
				return nil, models.ConflictError{Field: "Email"}
			}
			return nil, models.ConflictError{Field: "Username"}
		}
		return nil, err
	}

	return user, nil
}

// ListUsers only ever exposes Writer and Reader accounts. A role filter for
// anything else yields an empty page rather than widening the scope.
func (s *userService) ListUsers(params models.UserListParams) ([]models.User, models.Pagination, error) {
	params.Page, params.Limit = helper.ClampPaging(params.Page, params.Limit)

	roles := []models.UserRole{models.RoleWriter, models.RoleReader}
	if params.Role != "" {
		requested := models.UserRole(params.Role)
		if requested != models.RoleWriter && requested != models.RoleReader {
			return []models.User{}, helper.NewPagination(params.Page, params.Limit, 0), nil
		}
		roles = []models.UserRole{requested}
	}

	users, total, err := s.userRepo.List(params, roles)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	if users == nil {
		users = []models.User{}
	}

	return users, helper.NewPagination(params.Page, params.Limit, total), nil
}

func (s *userService) ListEditors(params models.UserListParams) ([]models.User, models.Pagination, error) {
	params.Page, params.Limit = helper.ClampPaging(params.Page, params.Limit)

	users, total, err := s.userRepo.List(params, []models.UserRole{models.RoleEditor})
	if err != nil {
		return nil, models.Pagination{}, err
	}
	if users == nil {
		users = []models.User{}
	}

	return users, helper.NewPagination(params.Page, params.Limit, total), nil
}

func (s *userService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFoundError{Resource: "User"}
		}
		return nil, err
	}
	return user, nil
}

// UpdateRole only assigns Writer or Reader. Actors cannot retarget themselves,
// and Admin or Editor accounts are immutable through this path.
func (s *userService) UpdateRole(actorID, targetID uint, role models.UserRole) (*models.User, error) {
	if role != models.RoleWriter && role != models.RoleReader {
		return nil, models.ValidationError{Message: "Invalid role. Only Writer and Reader roles can be assigned."}
	}

	user, err := s.GetByID(targetID)
	if err != nil {
		return nil, err
	}

	if targetID == actorID {
		return nil, models.ForbiddenError{Message: "Cannot change your own role"}
	}

	if user.Role == models.RoleAdmin || user.Role == models.RoleEditor {
		return nil, models.ForbiddenError{Message: "Cannot change role for Admin or Editor users"}
	}

	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) ToggleActive(actorID, targetID uint) (*models.User, string, error) {
	user, err := s.GetByID(targetID)
	if err != nil {
		return nil, "", err
	}

	if targetID == actorID {
		return nil, "", models.ForbiddenError{Message: "Cannot suspend your own account"}
	}

	user.IsActive = !user.IsActive
	if err := s.userRepo.Update(user); err != nil {
		return nil, "", err
	}

	message := "User account suspended successfully"
	if user.IsActive {
		message = "User account activated successfully"
	}

	return user, message, nil
}
