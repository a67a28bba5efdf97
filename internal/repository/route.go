package repository

import (
	"errors"
	"fmt"

	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
	"gorm.io/gorm"
)

type RouteRepository interface {
	Create(route model.Route) (model.Route, error)
	GetByID(id uint) (model.Route, error)
	List() ([]model.Route, error)
	SearchByName(query string) ([]model.Route, error)
}

type route struct {
	db *gorm.DB
}

func newRouteRepository(db *gorm.DB) RouteRepository {
	return &route{
		db: db,
	}
}

func (r *route) Create(route model.Route) (model.Route, error) {
	result := r.db.Create(&route)
	if result.Error != nil {
		return model.Route{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return route, nil
}

func (r *route) GetByID(id uint) (model.Route, error) {
	var found model.Route
	result := r.db.First(&found, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Route{}, fmt.Errorf("%w: route %d", dto.ErrNotFound, id)
		}
		return model.Route{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (r *route) List() ([]model.Route, error) {
	var routes []model.Route
	result := r.db.Order("created_at DESC").Find(&routes)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return routes, nil
}

func (r *route) SearchByName(query string) ([]model.Route, error) {
	var routes []model.Route
	result := r.db.Where("route_name ILIKE ?", "%"+query+"%").Find(&routes)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return routes, nil
}
