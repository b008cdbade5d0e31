package services

import (
	stderrors "errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stayhub/constants"
	"stayhub/errors"
	"stayhub/models"
	"stayhub/services/logger"
	"stayhub/validator"
)

type UserService struct {
	db  *gorm.DB
	log logger.Logger
}

type UserServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	return &UserService{
		db:  opts.DB,
		log: opts.Logger,
	}
}

// EnsureUser returns the user for an email, creating it with the
// user role the first time the email is seen. Token issuance goes
// through here, so issuing for a fresh email creates exactly one
// record.
func (s *UserService) EnsureUser(email, name, photo string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	// Google sign-in feeds emails straight from the id token payload,
	// so the check cannot live on request binding alone.
	if err := validator.ValidateEmail(email); err != nil {
		return models.User{}, err
	}

	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return user, nil
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return user, errors.NewAppError(errors.ErrCodeDBError, "failed to load user", err)
	}

	user = models.User{
		Email: email,
		Name:  name,
		Photo: photo,
		Role:  constants.RoleUser,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Two first-sight requests can race; the unique email column
		// decides, pick up the winner's row.
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
				return user, errors.NewAppError(errors.ErrCodeDBError, "failed to load user", err)
			}
			return user, nil
		}
		return user, errors.NewAppError(errors.ErrCodeDBError, "failed to create user", err)
	}

	s.log.Info("user %d created for %s", user.ID, email)
	return user, nil
}

// Register creates a password-backed account.
func (s *UserService) Register(email, name, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "failed to check email", err)
	}
	if count > 0 {
		return models.User{}, errors.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeInvalidPassword, "failed to hash password", err)
	}

	user := models.User{
		Email:    email,
		Name:     name,
		Password: string(hash),
		Role:     constants.RoleUser,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, errors.ErrUserAlreadyExists
		}
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "failed to create user", err)
	}
	return user, nil
}

// Authenticate checks a password login.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return user, errors.ErrUserNotFound
		}
		return user, errors.NewAppError(errors.ErrCodeDBError, "failed to load user", err)
	}

	if user.Password == "" {
		return user, errors.ErrInvalidPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return user, errors.ErrInvalidPassword
	}
	return user, nil
}

// GetByID loads one user.
func (s *UserService) GetByID(id uint) (models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return user, errors.ErrUserNotFound
		}
		return user, errors.NewAppError(errors.ErrCodeDBError, "failed to load user", err)
	}
	return user, nil
}

// List returns a page of users.
func (s *UserService) List(page, limit int) ([]models.User, int64, error) {
	var total int64
	if err := s.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to count users", err)
	}

	var users []models.User
	if err := s.db.Order("created_at DESC").
		Offset(page * limit).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, errors.NewAppError(errors.ErrCodeDBError, "failed to load users", err)
	}
	return users, total, nil
}

// SetRole mutates a user's role; the role must be in the closed enum.
func (s *UserService) SetRole(id uint, role int) (models.User, error) {
	if !constants.ValidRole(role) {
		return models.User{}, errors.NewAppError(errors.ErrCodeInvalidRole, "invalid role", nil)
	}

	user, err := s.GetByID(id)
	if err != nil {
		return models.User{}, err
	}

	if err := s.db.Model(&user).Update("role", role).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeDBError, "failed to update role", err)
	}
	user.Role = role
	s.log.Info("user %d role set to %d", id, role)
	return user, nil
}

// Delete removes a user. Callers enforce that admins never delete
// themselves.
func (s *UserService) Delete(id uint) error {
	res := s.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "failed to delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.ErrUserNotFound
	}
	s.log.Info("user %d deleted", id)
	return nil
}
