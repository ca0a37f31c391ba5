package services

import (
	"log"
	"time"

	"portfolioBackend/configs"
	"portfolioBackend/internal/errs"
	"portfolioBackend/internal/models"
	"portfolioBackend/internal/msgs"
	"portfolioBackend/internal/repositories"
	"portfolioBackend/internal/utils"
	"portfolioBackend/internal/validators"
)

type AuthenticationService struct {
	adminRepo *repositories.AdminRepository
	config    *configs.Config
}

func NewAuthenticationService(
	adminRepo *repositories.AdminRepository,
	config *configs.Config,
) *AuthenticationService {
	return &AuthenticationService{
		adminRepo: adminRepo,
		config:    config,
	}
}

// Login checks credentials and issues a signed token. Unknown email and
// wrong password produce the identical error so callers cannot probe
// which admin accounts exist.
func (as *AuthenticationService) Login(loginData *models.LoginRequestBody) (*models.LoginResponse, []error) {
	var errors []error

	validationErrs := validators.ValidateLoginRequest(loginData)
	if len(validationErrs) > 0 {
		errors = append(errors, errs.ErrInvalidParams)
		return nil, errors
	}

	admin := as.adminRepo.FindAdminByEmail(loginData.Email)
	if admin == nil {
		errors = append(errors, errs.ErrInvalidCredentials)
		return nil, errors
	}

	if err := utils.CompareHashAndPassword(admin.PasswordHash, loginData.Password); err != nil {
		errors = append(errors, errs.ErrInvalidCredentials)
		return nil, errors
	}

	expiration := time.Now().Add(time.Duration(as.config.Viper.GetInt("jwt.expiration_time")) * time.Second)
	token, jwtErr := utils.CreateJwtToken(
		admin.ID,
		admin.Email,
		as.JwtKey(),
		expiration,
	)
	if jwtErr != nil {
		errors = append(errors, jwtErr)
		return nil, errors
	}

	return &models.LoginResponse{
		Success: true,
		Message: msgs.MsgLoginSuccessful,
		Token:   token,
		Admin:   admin.ToAdminResponse(),
	}, nil
}

func (as *AuthenticationService) JwtKey() []byte {
	return []byte(as.config.Viper.GetString("jwt.secret"))
}

// EnsureSeedAdmin inserts the configured admin account once. Skipped
// silently when the email or password is not configured. Safe to run on
// every start.
func (as *AuthenticationService) EnsureSeedAdmin() error {
	email := validators.NormalizeEmail(as.config.Viper.GetString("admin.email"))
	password := as.config.Viper.GetString("admin.password")
	if email == "" || password == "" {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	if err := as.adminRepo.InsertAdminIfAbsent(email, hash); err != nil {
		return err
	}

	log.Println("Admin user initialized")
	return nil
}
