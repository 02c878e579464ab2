package form_test

import (
	"testing"
	"time"

	apperrors "kalyanamaalai/internal/errors"
	"kalyanamaalai/internal/models"
	"kalyanamaalai/internal/repositories"
	"kalyanamaalai/internal/repositories/cache"
	"kalyanamaalai/internal/services/form"

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

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{Name: "Asha", Email: "asha@example.com", Password: "hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func validInput() *models.FormInput {
	return &models.FormInput{
		FullNameEn: "Asha",
		Gender:     "F",
		DOB:        "1995-01-01",
		ReligionEn: "Hindu",
		City:       "Chennai",
	}
}

func TestSubmitMissingMandatoryFields(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	svc := form.NewService(db, repositories.NewFormRepository(db), repositories.NewUserRepository(db, nil))

	tests := []struct {
		name   string
		mutate func(*models.FormInput)
	}{
		{"missing full_name_en", func(in *models.FormInput) { in.FullNameEn = "" }},
		{"missing gender", func(in *models.FormInput) { in.Gender = "" }},
		{"missing dob", func(in *models.FormInput) { in.DOB = "" }},
		{"whitespace name", func(in *models.FormInput) { in.FullNameEn = "   " }},
		{"malformed dob", func(in *models.FormInput) { in.DOB = "01/01/1995" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)

			_, err := svc.Submit(user.ID, input, "")
			var domainErr *apperrors.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
		})
	}

	// Nothing was written.
	var count int64
	db.Model(&models.Form{}).Count(&count)
	assert.Zero(t, count)
}

func TestSubmitCreatesPendingForm(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	svc := form.NewService(db, repositories.NewFormRepository(db), repositories.NewUserRepository(db, nil))

	submitted, err := svc.Submit(user.ID, validInput(), "photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, models.FormStatusPending, submitted.Status)
	assert.Equal(t, "photo.jpg", submitted.ProfilePhoto)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.True(t, fresh.HasSubmittedForm)
	assert.True(t, fresh.FormCompleted)
	assert.False(t, fresh.IsApproved)
	assert.Equal(t, "Asha", fresh.FullNameEn)
}

func TestSubmitUpsertsSingleFormPerUser(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	svc := form.NewService(db, repositories.NewFormRepository(db), repositories.NewUserRepository(db, nil))

	first, err := svc.Submit(user.ID, validInput(), "first.jpg")
	require.NoError(t, err)

	// Decide it, then resubmit: same row, back to Pending.
	require.NoError(t, db.Model(&models.Form{}).Where("id = ?", first.ID).
		Update("status", models.FormStatusRejected).Error)

	input := validInput()
	input.City = "Madurai"
	second, err := svc.Submit(user.ID, input, "")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.FormStatusPending, second.Status)
	assert.Equal(t, "Madurai", second.City)
	// Empty photo keeps the stored one.
	assert.Equal(t, "first.jpg", second.ProfilePhoto)

	var count int64
	db.Model(&models.Form{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSubmitWithWarmCache(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cacheSvc := cache.NewService(client, time.Minute)
	t.Cleanup(func() { _ = cacheSvc.Close() })
	userRepo := repositories.NewUserRepository(db, cacheSvc)
	svc := form.NewService(db, repositories.NewFormRepository(db), userRepo)

	// Warm the cache before submitting.
	_, err := userRepo.GetByID(user.ID)
	require.NoError(t, err)

	_, err = svc.Submit(user.ID, validInput(), "")
	require.NoError(t, err)

	// The stored hash is untouched and the next read sees the new flags.
	var row models.User
	require.NoError(t, db.First(&row, user.ID).Error)
	assert.Equal(t, "hash", row.Password)

	fresh, err := userRepo.GetByID(user.ID)
	require.NoError(t, err)
	assert.True(t, fresh.HasSubmittedForm)
	assert.Equal(t, "hash", fresh.Password)
}

func TestSubmitUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := form.NewService(db, repositories.NewFormRepository(db), repositories.NewUserRepository(db, nil))

	_, err := svc.Submit(999, validInput(), "")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := form.NewService(db, repositories.NewFormRepository(db), repositories.NewUserRepository(db, nil))

	_, err := svc.GetByID(42)
	assert.ErrorIs(t, err, apperrors.ErrFormNotFound)
}

func TestStatusReflectsSubmission(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db)
	svc := form.NewService(db, repositories.NewFormRepository(db), repositories.NewUserRepository(db, nil))

	view, err := svc.Status(user.ID)
	require.NoError(t, err)
	assert.False(t, view.HasSubmittedForm)
	assert.Empty(t, view.Status)

	_, err = svc.Submit(user.ID, validInput(), "")
	require.NoError(t, err)

	view, err = svc.Status(user.ID)
	require.NoError(t, err)
	assert.True(t, view.HasSubmittedForm)
	assert.Equal(t, models.FormStatusPending, view.Status)
}
