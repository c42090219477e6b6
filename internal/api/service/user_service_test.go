package service

import (
	"fmt"
	"testing"
	"time"

	"jobboard/internal/api/handler/request"
	"jobboard/internal/api/models"
	"jobboard/pkg"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func registerDTO(role string) request.RegisterDTO {
	return request.RegisterDTO{
		Name:     "Arjun Singh",
		Email:    fmt.Sprintf("%s-%s@example.com", role, uuid.NewString()),
		Phone:    fmt.Sprintf("8%09d", time.Now().UnixNano()%1e9),
		Password: "secret123",
		Role:     role,
	}
}

func cleanupUserByEmail(db *gorm.DB, email string) {
	db.Unscoped().Where("email = ?", email).Delete(&models.User{})
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewUserService(db, nil)

	dto := registerDTO("jobseeker")
	defer cleanupUserByEmail(db, dto.Email)

	auth, err := svc.Register(dto)
	require.NoError(t, err)
	assert.NotEmpty(t, auth.Token)
	assert.NotEmpty(t, auth.RefreshToken)
	assert.Equal(t, dto.Email, auth.User.Email)
	assert.Equal(t, "jobseeker", auth.User.Role)

	logged, err := svc.Login(request.LoginDTO{Email: dto.Email, Password: dto.Password})
	require.NoError(t, err)
	assert.Equal(t, auth.User.ID, logged.User.ID)

	_, err = svc.Login(request.LoginDTO{Email: dto.Email, Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRegister_DuplicateEmailIsConflict(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewUserService(db, nil)

	dto := registerDTO("jobseeker")
	defer cleanupUserByEmail(db, dto.Email)

	_, err := svc.Register(dto)
	require.NoError(t, err)

	dup := dto
	dup.Phone = fmt.Sprintf("7%09d", time.Now().UnixNano()%1e9)
	_, err = svc.Register(dup)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRefreshToken(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewUserService(db, nil)

	dto := registerDTO("employer")
	defer cleanupUserByEmail(db, dto.Email)

	auth, err := svc.Register(dto)
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(auth.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.Token)
	assert.Equal(t, auth.User.ID, refreshed.User.ID)

	// The old refresh token was rotated out.
	_, err = svc.RefreshToken(auth.RefreshToken)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.RefreshToken("not-a-token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdatePassword(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewUserService(db, nil)

	dto := registerDTO("jobseeker")
	defer cleanupUserByEmail(db, dto.Email)

	auth, err := svc.Register(dto)
	require.NoError(t, err)

	err = svc.UpdatePassword(auth.User.ID, request.UpdatePasswordDTO{
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
	})
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = svc.UpdatePassword(auth.User.ID, request.UpdatePasswordDTO{
		CurrentPassword: dto.Password,
		NewPassword:     "newsecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(request.LoginDTO{Email: dto.Email, Password: "newsecret"})
	require.NoError(t, err)
}

func TestSaveJob(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewUserService(db, nil)

	employer := createTestUser(t, db, models.RoleEmployer)
	seeker := createTestUser(t, db, models.RoleJobSeeker)
	job := createTestJob(t, db, employer, models.JobActive)

	require.NoError(t, svc.SaveJob(seeker.ID, job.ID, true))
	// Saving twice is a no-op.
	require.NoError(t, svc.SaveJob(seeker.ID, job.ID, true))

	saved, err := svc.GetSavedJobs(seeker.ID)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, job.ID, saved[0].ID)

	require.NoError(t, svc.SaveJob(seeker.ID, job.ID, false))
	saved, err = svc.GetSavedJobs(seeker.ID)
	require.NoError(t, err)
	assert.Empty(t, saved)

	err = svc.SaveJob(seeker.ID, 99999999, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewUserService(db, nil)

	dto := registerDTO("jobseeker")
	defer cleanupUserByEmail(db, dto.Email)

	auth, err := svc.Register(dto)
	require.NoError(t, err)

	bio := "Looking for sales roles in Amritsar"
	skills := []string{"sales", "hindi", "punjabi"}
	updated, err := svc.UpdateProfile(auth.User.ID, request.UpdateProfileDTO{
		Bio:    pkg.ToPtr(bio),
		Skills: pkg.ToPtr(skills),
	})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, skills, updated.Skills)
	// Untouched fields survive.
	assert.Equal(t, dto.Name, updated.Name)
}
