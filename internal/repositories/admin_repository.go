package repositories

import (
	"gorm.io/gorm"

	"portfolioBackend/internal/models"
)

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{
		db: db,
	}
}

func (ar *AdminRepository) FindAdminByEmail(email string) *models.Admin {
	var admin models.Admin
	result := ar.db.Where("email = ?", email).First(&admin)
	if result.Error == nil && result.RowsAffected > 0 {
		return &admin
	}
	return nil
}

// InsertAdminIfAbsent seeds the admin account. The insert only happens
// when no row with that email exists, so re-running with a different
// password never touches an existing hash.
func (ar *AdminRepository) InsertAdminIfAbsent(email, passwordHash string) error {
	admin := models.Admin{}
	result := ar.db.
		Where(models.Admin{Email: email}).
		Attrs(models.Admin{PasswordHash: passwordHash}).
		FirstOrCreate(&admin)
	return result.Error
}
