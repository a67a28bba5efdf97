package service

import (
	"fmt"

	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/repository"
)

type BusService interface {
	CreateBus(busNumber string, capacity int) (model.Bus, error)
	GetBus(busNumber string) (model.Bus, error)
	ListBuses() ([]model.Bus, error)
	ListBusNumbers() ([]string, error)
}

type busService struct {
	busRepository repository.BusRepository
}

func newBusService(busRepository repository.BusRepository) BusService {
	return &busService{
		busRepository: busRepository,
	}
}

func (b *busService) CreateBus(busNumber string, capacity int) (model.Bus, error) {
	if busNumber == "" {
		return model.Bus{}, fmt.Errorf("%w: bus_number is required", dto.ErrInvalidInput)
	}

	if _, err := b.busRepository.GetByNumber(busNumber); err == nil {
		return model.Bus{}, fmt.Errorf("%w: bus number already exists", dto.ErrAlreadyExists)
	}

	if capacity <= 0 {
		capacity = 50
	}

	return b.busRepository.Create(model.Bus{
		BusNumber: busNumber,
		Capacity:  capacity,
		Status:    model.BusStatusInactive,
	})
}

func (b *busService) GetBus(busNumber string) (model.Bus, error) {
	return b.busRepository.GetByNumber(busNumber)
}

func (b *busService) ListBuses() ([]model.Bus, error) {
	return b.busRepository.List()
}

func (b *busService) ListBusNumbers() ([]string, error) {
	buses, err := b.busRepository.List()
	if err != nil {
		return nil, err
	}

	numbers := make([]string, 0, len(buses))
	for _, bus := range buses {
		numbers = append(numbers, bus.BusNumber)
	}
	return numbers, nil
}
