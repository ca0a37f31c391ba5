package services

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"portfolioBackend/configs"
	"portfolioBackend/internal/errs"
	"portfolioBackend/internal/models"
	"portfolioBackend/internal/repositories"
	"portfolioBackend/internal/utils"
)

func testAuthService(t *testing.T, v *viper.Viper) (*AuthenticationService, *gorm.DB) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.sqlite")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}))

	adminRepo := repositories.NewAdminRepository(db)
	return NewAuthenticationService(adminRepo, &configs.Config{Viper: v}), db
}

func authViper() *viper.Viper {
	v := viper.New()
	v.Set("jwt.secret", "test-secret")
	v.Set("jwt.expiration_time", 86400)
	v.Set("admin.email", "admin@example.com")
	v.Set("admin.password", "s3cret-password")
	return v
}

func TestEnsureSeedAdminIsIdempotent(t *testing.T) {
	v := authViper()
	as, db := testAuthService(t, v)

	require.NoError(t, as.EnsureSeedAdmin())

	var seeded models.Admin
	require.NoError(t, db.First(&seeded).Error)
	originalHash := seeded.PasswordHash

	// Re-running with a different configured password must leave the
	// stored hash alone
	v.Set("admin.password", "another-password")
	require.NoError(t, as.EnsureSeedAdmin())
	require.NoError(t, as.EnsureSeedAdmin())

	var count int64
	require.NoError(t, db.Model(&models.Admin{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var admin models.Admin
	require.NoError(t, db.First(&admin).Error)
	assert.Equal(t, originalHash, admin.PasswordHash)
}

func TestEnsureSeedAdminSkippedWithoutConfig(t *testing.T) {
	v := viper.New()
	v.Set("jwt.secret", "test-secret")
	as, db := testAuthService(t, v)

	require.NoError(t, as.EnsureSeedAdmin())

	var count int64
	require.NoError(t, db.Model(&models.Admin{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	as, _ := testAuthService(t, authViper())
	require.NoError(t, as.EnsureSeedAdmin())

	response, errors := as.Login(&models.LoginRequestBody{
		Email:    "admin@example.com",
		Password: "s3cret-password",
	})
	require.Empty(t, errors)
	require.True(t, response.Success)
	require.NotNil(t, response.Admin)
	assert.Equal(t, "admin@example.com", response.Admin.Email)

	claims, err := utils.VerifyToken(response.Token, as.JwtKey())
	require.NoError(t, err)
	assert.Equal(t, response.Admin.ID, claims.AdminID)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestLoginRejections(t *testing.T) {
	as, _ := testAuthService(t, authViper())
	require.NoError(t, as.EnsureSeedAdmin())

	_, errors := as.Login(&models.LoginRequestBody{Email: "nobody@example.com", Password: "x"})
	assert.Contains(t, errors, error(errs.ErrInvalidCredentials))

	_, errors = as.Login(&models.LoginRequestBody{Email: "admin@example.com", Password: "wrong"})
	assert.Contains(t, errors, error(errs.ErrInvalidCredentials))

	_, errors = as.Login(&models.LoginRequestBody{Email: "not-an-email", Password: "x"})
	assert.Contains(t, errors, error(errs.ErrInvalidParams))
}
