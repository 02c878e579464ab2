package auth_test

import (
	"testing"
	"time"

	apperrors "kalyanamaalai/internal/errors"
	"kalyanamaalai/internal/models"
	"kalyanamaalai/internal/repositories"
	"kalyanamaalai/internal/repositories/cache"
	"kalyanamaalai/internal/services/auth"
	"kalyanamaalai/internal/services/mailer"
	"kalyanamaalai/internal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := repositories.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newService(t *testing.T) (auth.Service, *mailer.Recorder) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	rec := mailer.NewRecorder()
	userRepo := repositories.NewUserRepository(db, nil)
	return auth.NewService(userRepo, rec), rec
}

func registerInput() *models.CreateUserInput {
	return &models.CreateUserInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "s3cretpass!",
	}
}

func TestRegister(t *testing.T) {
	svc, rec := newService(t)

	user, err := svc.Register(registerInput())
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, models.AccountPending, user.Status)
	assert.False(t, user.HasSubmittedForm)

	// Welcome email went out.
	messages := rec.Messages()
	require.Len(t, messages, 1)
	assert.Equal(t, "asha@example.com", messages[0].To)
	assert.Contains(t, messages[0].Subject, "Welcome")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register(registerInput())
	require.NoError(t, err)

	_, err = svc.Register(registerInput())
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestRegisterMailFailureDoesNotAbort(t *testing.T) {
	svc, rec := newService(t)
	rec.Err = assert.AnError

	user, err := svc.Register(registerInput())
	require.NoError(t, err)

	// Account is usable despite the failed welcome mail.
	_, token, err := svc.Login("asha@example.com", "s3cretpass!", models.RoleUser)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotZero(t, user.ID)
}

func TestLogin(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Register(registerInput())
	require.NoError(t, err)

	user, token, err := svc.Login("asha@example.com", "s3cretpass!", models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)

	claims, err := utils.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestRepeatedLoginWithCachedUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := setupTestDB(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cacheSvc := cache.NewService(client, time.Minute)
	t.Cleanup(func() { _ = cacheSvc.Close() })
	svc := auth.NewService(repositories.NewUserRepository(db, cacheSvc), mailer.NewRecorder())

	_, err := svc.Register(registerInput())
	require.NoError(t, err)

	// First login warms the cache; the second is served from it and must
	// verify against the same stored hash.
	_, _, err = svc.Login("asha@example.com", "s3cretpass!", models.RoleUser)
	require.NoError(t, err)
	_, token, err := svc.Login("asha@example.com", "s3cretpass!", models.RoleUser)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Register(registerInput())
	require.NoError(t, err)

	_, token, err := svc.Login("asha@example.com", "wrongpass", models.RoleUser)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newService(t)

	_, token, err := svc.Login("nobody@example.com", "whatever", models.RoleUser)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLoginRoleMismatch(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Register(registerInput())
	require.NoError(t, err)

	// A user account on the admin login endpoint.
	_, token, err := svc.Login("asha@example.com", "s3cretpass!", models.RoleAdmin)
	assert.ErrorIs(t, err, apperrors.ErrRoleMismatch)
	assert.Empty(t, token)
}
