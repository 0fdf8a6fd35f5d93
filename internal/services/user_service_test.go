package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportline_backend/internal/auth"
	"sportline_backend/internal/models"
	"sportline_backend/internal/services/dto"
	"sportline_backend/pkg/apperrors"
)

func newUserFixture(t *testing.T) (*authFixture, UserService) {
	t.Helper()
	f := newAuthFixture(t)
	svc := NewUserService(f.userRepo, f.sportRepo,
		[]string{"image/jpeg", "image/png"}, 1024)
	return f, svc
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	f, svc := newUserFixture(t)
	user := f.register(t, "john@example.com")

	updated, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		FirstName: "Jonathan",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jonathan", updated.FirstName)
	assert.Equal(t, "Doe", updated.LastName)

	// Пароль не трогали - хеш остался прежним и по-прежнему работает
	stored, err := f.userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPasswordHash("Str0ngPass!", stored.PasswordHash))
}

func TestUpdateProfile_PasswordRehashedOnlyWhenSent(t *testing.T) {
	f, svc := newUserFixture(t)
	user := f.register(t, "john@example.com")

	before, err := f.userRepo.FindByID(user.ID)
	require.NoError(t, err)

	_, err = svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{Password: "NewStr0ng!"})
	require.NoError(t, err)

	after, err := f.userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, before.PasswordHash, after.PasswordHash)
	assert.True(t, auth.CheckPasswordHash("NewStr0ng!", after.PasswordHash))
}

func TestUpdateProfile_UnknownSport(t *testing.T) {
	f, svc := newUserFixture(t)
	user := f.register(t, "john@example.com")

	_, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		FavoriteSportID: "no-such-sport",
	})
	assert.ErrorIs(t, err, apperrors.ErrSportNotFound)
}

func TestUploadPhoto(t *testing.T) {
	f, svc := newUserFixture(t)
	user := f.register(t, "john@example.com")

	photoURL, err := svc.UploadPhoto(user.ID, []byte{0xFF, 0xD8, 0xFF}, "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(photoURL, "data:image/jpeg;"))
}

func TestUploadPhoto_Rejections(t *testing.T) {
	f, svc := newUserFixture(t)
	user := f.register(t, "john@example.com")

	_, err := svc.UploadPhoto(user.ID, nil, "image/jpeg")
	assert.Error(t, err)

	_, err = svc.UploadPhoto(user.ID, []byte{1}, "application/pdf")
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)

	tooBig := make([]byte, 2048) // лимит фикстуры 1024
	_, err = svc.UploadPhoto(user.ID, tooBig, "image/jpeg")
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestDeleteUser(t *testing.T) {
	f, svc := newUserFixture(t)
	user := f.register(t, "john@example.com")

	require.NoError(t, svc.DeleteUser(user.ID))

	_, err := svc.GetProfile(user.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	err = svc.DeleteUser(user.ID)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGetUsers_NoSensitiveFields(t *testing.T) {
	f, svc := newUserFixture(t)
	f.register(t, "john@example.com")

	users, err := svc.GetUsers(10, 0)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.UserRoleUser, users[0].Role)
	assert.NotEmpty(t, users[0].Email)
}
