package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"jobboard"
	"jobboard/internal/api/handler/mapper"
	"jobboard/internal/api/handler/request"
	"jobboard/internal/api/handler/response"
	"jobboard/internal/api/models"
	"jobboard/internal/api/repo"
	"jobboard/pkg"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = 15 * time.Minute

type UserService struct {
	userRepo *repo.UserRepository
	jobRepo  *repo.JobRepository
	mail     *MailService
	redis    *redis.Client
	logger   zerolog.Logger
}

func NewUserService(db *gorm.DB, redisClient *redis.Client) *UserService {
	return &UserService{
		userRepo: repo.NewUserRepository(db),
		jobRepo:  repo.NewJobRepository(db),
		mail:     NewMailService(),
		redis:    redisClient,
		logger:   jobboard.Logger,
	}
}

func (slf *UserService) Register(req request.RegisterDTO) (response.AuthResponseDTO, error) {
	exists, err := slf.userRepo.ExistsByEmailOrPhone(req.Email, req.Phone)
	if err != nil {
		return response.AuthResponseDTO{}, err
	}
	if exists {
		return response.AuthResponseDTO{}, Conflict("an account with this email or phone already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return response.AuthResponseDTO{}, err
	}

	user := models.User{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       string(hashed),
		Role:           models.AppRole(req.Role),
		CompanyName:    req.CompanyName,
		LanguagesKnown: req.LanguagesKnown,
		IsActive:       true,
	}
	if err := slf.userRepo.Create(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response.AuthResponseDTO{}, Conflict("an account with this email already exists")
		}
		return response.AuthResponseDTO{}, err
	}

	slf.logger.Info().Uint("userId", user.ID).Str("role", req.Role).Msg("User registered")
	return slf.issueTokens(user)
}

func (slf *UserService) Login(req request.LoginDTO) (response.AuthResponseDTO, error) {
	user, err := slf.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.AuthResponseDTO{}, Unauthorized("invalid email or password")
		}
		return response.AuthResponseDTO{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return response.AuthResponseDTO{}, Unauthorized("invalid email or password")
	}
	if !user.IsActive {
		return response.AuthResponseDTO{}, Forbidden("this account has been deactivated")
	}
	return slf.issueTokens(user)
}

// RefreshToken exchanges a valid refresh token for a fresh token pair. The
// token must match the one stored on the account, so a logout or another
// refresh invalidates it.
func (slf *UserService) RefreshToken(refreshToken string) (response.AuthResponseDTO, error) {
	cfg := jobboard.GetConfig().JWTConfig
	userID, err := pkg.ValidateRefreshToken(refreshToken, cfg.Secret)
	if err != nil {
		return response.AuthResponseDTO{}, Unauthorized("invalid or expired refresh token")
	}
	user, err := slf.userRepo.FindByID(userID)
	if err != nil {
		return response.AuthResponseDTO{}, Unauthorized("invalid or expired refresh token")
	}
	if user.RefreshToken != refreshToken {
		return response.AuthResponseDTO{}, Unauthorized("refresh token has been revoked")
	}
	return slf.issueTokens(user)
}

// Logout revokes the current access token until its natural expiry and
// clears the stored refresh token.
func (slf *UserService) Logout(userID uint, accessToken string, claims *pkg.Claims) error {
	user, err := slf.userRepo.FindByID(userID)
	if err == nil {
		user.RefreshToken = ""
		if err := slf.userRepo.Update(&user); err != nil {
			return err
		}
	}

	if slf.redis != nil && claims != nil && claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if ttl > 0 {
			if err := pkg.DenylistToken(slf.redis, accessToken, ttl); err != nil {
				slf.logger.Warn().Err(err).Msg("Failed to denylist access token")
			}
		}
	}
	return nil
}

func (slf *UserService) GetByID(id uint) (response.UserResponseDTO, error) {
	user, err := slf.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.UserResponseDTO{}, NotFound("user %d not found", id)
		}
		return response.UserResponseDTO{}, err
	}
	return mapper.EntityToUserResponse(user), nil
}

func (slf *UserService) UpdateProfile(id uint, req request.UpdateProfileDTO) (response.UserResponseDTO, error) {
	user, err := slf.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.UserResponseDTO{}, NotFound("user %d not found", id)
		}
		return response.UserResponseDTO{}, err
	}

	mapper.ApplyProfileUpdate(&user, req)

	if err := slf.userRepo.Update(&user); err != nil {
		return response.UserResponseDTO{}, err
	}
	return mapper.EntityToUserResponse(user), nil
}

func (slf *UserService) UpdatePassword(id uint, req request.UpdatePasswordDTO) error {
	user, err := slf.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return Unauthorized("current password is incorrect")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return slf.userRepo.Update(&user)
}

// ForgotPassword issues a reset token and mails the reset link. A missing
// account is reported as success so the endpoint cannot be used to probe
// for registered emails.
func (slf *UserService) ForgotPassword(email string) error {
	user, err := slf.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)

	user.ResetPasswordToken = hashResetToken(token)
	exp := time.Now().Add(resetTokenTTL)
	user.ResetPasswordExp = &exp
	if err := slf.userRepo.Update(&user); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", jobboard.GetConfig().BaseURL, token)
	if err := slf.mail.SendPasswordReset(user.Email, resetURL); err != nil {
		slf.logger.Error().Err(err).Uint("userId", user.ID).Msg("Failed to send reset email")
		return err
	}
	return nil
}

func (slf *UserService) ResetPassword(token, newPassword string) error {
	user, err := slf.userRepo.FindByResetToken(hashResetToken(token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Unauthorized("reset token is invalid or has expired")
		}
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	user.ResetPasswordToken = ""
	user.ResetPasswordExp = nil
	user.RefreshToken = ""
	return slf.userRepo.Update(&user)
}

// SaveJob toggles a job in the seeker's saved list.
func (slf *UserService) SaveJob(userID, jobID uint, save bool) error {
	user, err := slf.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if _, err := slf.jobRepo.FindByID(jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("job %d not found", jobID)
		}
		return err
	}

	if save {
		if user.SavedJobs.Contains(jobID) {
			return nil
		}
		user.SavedJobs = append(user.SavedJobs, jobID)
	} else {
		kept := user.SavedJobs[:0]
		for _, id := range user.SavedJobs {
			if id != jobID {
				kept = append(kept, id)
			}
		}
		user.SavedJobs = kept
	}
	return slf.userRepo.Update(&user)
}

// GetSavedJobs resolves the seeker's bookmark list into postings.
// Bookmarks pointing at deleted jobs are silently dropped.
func (slf *UserService) GetSavedJobs(userID uint) ([]response.Job, error) {
	user, err := slf.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	jobs, err := slf.jobRepo.FindByIDs(user.SavedJobs)
	if err != nil {
		return nil, err
	}
	return mapper.ToJobResponses(jobs), nil
}

// GetCompanies lists public employer profiles with their active job counts.
func (slf *UserService) GetCompanies() ([]response.CompanyResponseDTO, error) {
	employers, err := slf.userRepo.FindEmployers()
	if err != nil {
		return nil, err
	}
	out := make([]response.CompanyResponseDTO, 0, len(employers))
	for _, e := range employers {
		active, err := slf.jobRepo.CountActiveByCompany(e.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, mapper.EntityToCompanyResponse(e, int(active)))
	}
	return out, nil
}

func (slf *UserService) GetCompanyByID(id uint) (response.CompanyResponseDTO, error) {
	user, err := slf.userRepo.FindByID(id)
	if err != nil || user.Role != models.RoleEmployer {
		return response.CompanyResponseDTO{}, NotFound("company %d not found", id)
	}
	active, err := slf.jobRepo.CountActiveByCompany(user.ID)
	if err != nil {
		return response.CompanyResponseDTO{}, err
	}
	return mapper.EntityToCompanyResponse(user, int(active)), nil
}

// GetAll pages through accounts for the admin user list, optionally
// filtered by role.
func (slf *UserService) GetAll(role string, page, pageSize int) (response.Page[response.UserResponseDTO], error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	users, total, err := slf.userRepo.GetAll(role, page, pageSize)
	if err != nil {
		return response.Page[response.UserResponseDTO]{}, err
	}
	out := make([]response.UserResponseDTO, len(users))
	for i, u := range users {
		out[i] = mapper.EntityToUserResponse(u)
	}
	return response.NewPage(out, total, page, pageSize), nil
}

// AdminUpdate applies moderation changes (activation, verification, role)
// to an account.
func (slf *UserService) AdminUpdate(id uint, req request.AdminUpdateUser) (response.UserResponseDTO, error) {
	user, err := slf.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.UserResponseDTO{}, NotFound("user %d not found", id)
		}
		return response.UserResponseDTO{}, err
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.IsVerified != nil {
		user.IsVerified = *req.IsVerified
	}
	if req.Role != nil {
		role := models.AppRole(*req.Role)
		if role != models.RoleJobSeeker && role != models.RoleEmployer && role != models.RoleAdmin {
			return response.UserResponseDTO{}, Invalid("unknown role %q", *req.Role)
		}
		user.Role = role
	}
	if err := slf.userRepo.Update(&user); err != nil {
		return response.UserResponseDTO{}, err
	}
	return mapper.EntityToUserResponse(user), nil
}

// Delete soft-deletes an account.
func (slf *UserService) Delete(id uint) error {
	if _, err := slf.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("user %d not found", id)
		}
		return err
	}
	return slf.userRepo.Delete(id)
}

func (slf *UserService) issueTokens(user models.User) (response.AuthResponseDTO, error) {
	cfg := jobboard.GetConfig().JWTConfig

	token, err := pkg.GenerateToken(user.ID, user.Email, string(user.Role), cfg.Secret, cfg.Expiration)
	if err != nil {
		return response.AuthResponseDTO{}, err
	}
	refresh, err := pkg.GenerateRefreshToken(user.ID, cfg.Secret, cfg.RefreshExpiration)
	if err != nil {
		return response.AuthResponseDTO{}, err
	}

	now := time.Now()
	user.RefreshToken = refresh
	user.LastLogin = &now
	if err := slf.userRepo.Update(&user); err != nil {
		return response.AuthResponseDTO{}, err
	}

	return response.AuthResponseDTO{
		Token:        token,
		RefreshToken: refresh,
		User:         mapper.EntityToUserResponse(user),
	}, nil
}

func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
