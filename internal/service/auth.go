package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Driver sessions are effectively permanent: the token is issued once at
// login and kept on the device for years.
const tokenLifetime = 3650 * 24 * time.Hour

type AuthService interface {
	Register(request dto.DriverCreateRequest) (model.Driver, error)
	Login(request dto.DriverLoginRequest) (string, model.Driver, error)
	ValidateToken(token string) (model.Driver, error)
	ListDrivers() ([]model.Driver, error)
}

type authService struct {
	driverRepository repository.DriverRepository
	jwtSecret        []byte
}

func newAuthService(driverRepository repository.DriverRepository, config dto.Config) AuthService {
	return &authService{
		driverRepository: driverRepository,
		jwtSecret:        []byte(config.JWTSecret),
	}
}

func (a *authService) Register(request dto.DriverCreateRequest) (model.Driver, error) {
	if _, err := a.driverRepository.GetByPhone(request.Phone); err == nil {
		return model.Driver{}, fmt.Errorf("%w: phone number already registered", dto.ErrAlreadyExists)
	}

	if request.Email != "" {
		if _, err := a.driverRepository.GetByEmail(request.Email); err == nil {
			return model.Driver{}, fmt.Errorf("%w: email already registered", dto.ErrAlreadyExists)
		}
	}

	hashed, err := HashPassword(request.Password)
	if err != nil {
		return model.Driver{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	driver := model.Driver{
		Name:           request.Name,
		Phone:          request.Phone,
		HashedPassword: hashed,
		IsActive:       true,
		IsAdmin:        request.IsAdmin,
	}
	if request.Email != "" {
		driver.Email = &request.Email
	}

	return a.driverRepository.Create(driver)
}

func (a *authService) Login(request dto.DriverLoginRequest) (string, model.Driver, error) {
	driver, err := a.driverRepository.GetByPhone(request.Phone)
	if err != nil {
		if errors.Is(err, dto.ErrNotFound) {
			return "", model.Driver{}, fmt.Errorf("%w: invalid phone number or password", dto.ErrNotAuthorized)
		}
		return "", model.Driver{}, err
	}

	if !VerifyPassword(request.Password, driver.HashedPassword) {
		return "", model.Driver{}, fmt.Errorf("%w: invalid phone number or password", dto.ErrNotAuthorized)
	}

	if !driver.IsActive {
		return "", model.Driver{}, fmt.Errorf("%w: account is inactive, contact admin", dto.ErrForbidden)
	}

	claims := jwt.MapClaims{
		"sub":       driver.Phone,
		"driver_id": float64(driver.DriverID),
		"is_admin":  driver.IsAdmin,
		"exp":       time.Now().UTC().Add(tokenLifetime).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.jwtSecret)
	if err != nil {
		return "", model.Driver{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	return token, driver, nil
}

func (a *authService) ValidateToken(tokenString string) (model.Driver, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return model.Driver{}, fmt.Errorf("%w: %v", dto.ErrNotAuthorized, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.Driver{}, fmt.Errorf("%w: invalid claims", dto.ErrNotAuthorized)
	}

	driverID, ok := claims["driver_id"].(float64)
	if !ok {
		return model.Driver{}, fmt.Errorf("%w: driver_id claim missing", dto.ErrNotAuthorized)
	}

	driver, err := a.driverRepository.GetByID(uint(driverID))
	if err != nil {
		return model.Driver{}, fmt.Errorf("%w: %v", dto.ErrNotAuthorized, err)
	}

	if !driver.IsActive {
		return model.Driver{}, fmt.Errorf("%w: account is inactive", dto.ErrForbidden)
	}

	return driver, nil
}

func (a *authService) ListDrivers() ([]model.Driver, error) {
	return a.driverRepository.List(nil)
}

// HashPassword hashes with bcrypt, truncating to bcrypt's 72 byte input
// limit the way the login clients expect.
func HashPassword(password string) (string, error) {
	passwordBytes := []byte(password)
	if len(passwordBytes) > 72 {
		passwordBytes = passwordBytes[:72]
	}
	hashed, err := bcrypt.GenerateFromPassword(passwordBytes, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func VerifyPassword(password, hashedPassword string) bool {
	passwordBytes := []byte(password)
	if len(passwordBytes) > 72 {
		passwordBytes = passwordBytes[:72]
	}
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), passwordBytes) == nil
}
