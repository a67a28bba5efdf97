package repository

import (
	"errors"
	"fmt"

	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
	"gorm.io/gorm"
)

type DriverRepository interface {
	Create(driver model.Driver) (model.Driver, error)
	GetByID(id uint) (model.Driver, error)
	GetByPhone(phone string) (model.Driver, error)
	GetByEmail(email string) (model.Driver, error)
	List(activeFilter *bool) ([]model.Driver, error)
	Save(driver model.Driver) (model.Driver, error)
	Delete(id uint) error
	Count() (int64, error)
	CountActive(active bool) (int64, error)
	CountAdmins() (int64, error)
}

type driver struct {
	db *gorm.DB
}

func newDriverRepository(db *gorm.DB) DriverRepository {
	return &driver{
		db: db,
	}
}

func (d *driver) Create(driver model.Driver) (model.Driver, error) {
	result := d.db.Create(&driver)
	if result.Error != nil {
		return model.Driver{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return driver, nil
}

func (d *driver) GetByID(id uint) (model.Driver, error) {
	var found model.Driver
	result := d.db.First(&found, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Driver{}, fmt.Errorf("%w: driver %d", dto.ErrNotFound, id)
		}
		return model.Driver{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (d *driver) GetByPhone(phone string) (model.Driver, error) {
	var found model.Driver
	result := d.db.Where("phone = ?", phone).First(&found)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Driver{}, fmt.Errorf("%w: phone %s", dto.ErrNotFound, phone)
		}
		return model.Driver{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (d *driver) GetByEmail(email string) (model.Driver, error) {
	var found model.Driver
	result := d.db.Where("email = ?", email).First(&found)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Driver{}, fmt.Errorf("%w: email %s", dto.ErrNotFound, email)
		}
		return model.Driver{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (d *driver) List(activeFilter *bool) ([]model.Driver, error) {
	query := d.db.Order("created_at DESC")
	if activeFilter != nil {
		query = query.Where("is_active = ?", *activeFilter)
	}

	var drivers []model.Driver
	result := query.Find(&drivers)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return drivers, nil
}

func (d *driver) Save(driver model.Driver) (model.Driver, error) {
	result := d.db.Save(&driver)
	if result.Error != nil {
		return model.Driver{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return driver, nil
}

func (d *driver) Delete(id uint) error {
	result := d.db.Delete(&model.Driver{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return nil
}

func (d *driver) Count() (int64, error) {
	var count int64
	result := d.db.Model(&model.Driver{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return count, nil
}

func (d *driver) CountActive(active bool) (int64, error) {
	var count int64
	result := d.db.Model(&model.Driver{}).Where("is_active = ?", active).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return count, nil
}

func (d *driver) CountAdmins() (int64, error) {
	var count int64
	result := d.db.Model(&model.Driver{}).Where("is_admin = ?", true).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return count, nil
}
