package service

import (
	"fmt"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/dto"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/model"
	"github.com/skhavindev/sathyabama-bus-tracker/internal/repository"
)

type DashboardStats struct {
	TotalDrivers   int64     `json:"total_drivers"`
	ActiveDrivers  int64     `json:"active_drivers"`
	PendingDrivers int64     `json:"pending_drivers"`
	AdminCount     int64     `json:"admin_count"`
	Timestamp      time.Time `json:"timestamp"`
}

type driverExportRow struct {
	DriverID  uint   `csv:"driver_id"`
	Name      string `csv:"name"`
	Phone     string `csv:"phone"`
	Email     string `csv:"email"`
	IsActive  bool   `csv:"is_active"`
	IsAdmin   bool   `csv:"is_admin"`
	CreatedAt string `csv:"created_at"`
}

type AdminService interface {
	ListDrivers(statusFilter string) ([]model.Driver, error)
	GetDriver(id uint) (model.Driver, error)
	ApproveDriver(admin model.Driver, id uint) (model.Driver, error)
	RejectDriver(admin model.Driver, id uint) (model.Driver, error)
	UpdateDriver(admin model.Driver, id uint, request dto.DriverUpdateRequest) (model.Driver, error)
	DeleteDriver(admin model.Driver, id uint) error
	CreateBusRoute(admin model.Driver, busRoute model.BusRoute) (model.BusRoute, error)
	Stats() (DashboardStats, error)
	ExportDriversCSV() (string, error)
}

type adminService struct {
	driverRepository   repository.DriverRepository
	busRouteRepository repository.BusRouteRepository
	auditService       AuditService
}

func newAdminService(driverRepository repository.DriverRepository, busRouteRepository repository.BusRouteRepository, auditService AuditService) AdminService {
	return &adminService{
		driverRepository:   driverRepository,
		busRouteRepository: busRouteRepository,
		auditService:       auditService,
	}
}

func (a *adminService) ListDrivers(statusFilter string) ([]model.Driver, error) {
	var activeFilter *bool
	switch statusFilter {
	case "pending":
		value := false
		activeFilter = &value
	case "active":
		value := true
		activeFilter = &value
	}
	return a.driverRepository.List(activeFilter)
}

func (a *adminService) GetDriver(id uint) (model.Driver, error) {
	return a.driverRepository.GetByID(id)
}

func (a *adminService) setActive(admin model.Driver, id uint, active bool) (model.Driver, error) {
	driver, err := a.driverRepository.GetByID(id)
	if err != nil {
		return model.Driver{}, err
	}

	driver.IsActive = active
	saved, err := a.driverRepository.Save(driver)
	if err != nil {
		return model.Driver{}, err
	}

	a.auditService.Record(admin.DriverID, model.AuditActionUpdate, "driver", id, map[string]interface{}{
		"is_active": active,
	})
	return saved, nil
}

func (a *adminService) ApproveDriver(admin model.Driver, id uint) (model.Driver, error) {
	return a.setActive(admin, id, true)
}

func (a *adminService) RejectDriver(admin model.Driver, id uint) (model.Driver, error) {
	return a.setActive(admin, id, false)
}

func (a *adminService) UpdateDriver(admin model.Driver, id uint, request dto.DriverUpdateRequest) (model.Driver, error) {
	driver, err := a.driverRepository.GetByID(id)
	if err != nil {
		return model.Driver{}, err
	}

	changes := map[string]interface{}{}
	if request.Name != "" {
		driver.Name = request.Name
		changes["name"] = request.Name
	}
	if request.Phone != "" {
		driver.Phone = request.Phone
		changes["phone"] = request.Phone
	}
	if request.Email != "" {
		driver.Email = &request.Email
		changes["email"] = request.Email
	}
	if request.Password != "" {
		hashed, err := HashPassword(request.Password)
		if err != nil {
			return model.Driver{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
		}
		driver.HashedPassword = hashed
		changes["password"] = "updated"
	}

	saved, err := a.driverRepository.Save(driver)
	if err != nil {
		return model.Driver{}, err
	}

	a.auditService.Record(admin.DriverID, model.AuditActionUpdate, "driver", id, changes)
	return saved, nil
}

func (a *adminService) DeleteDriver(admin model.Driver, id uint) error {
	driver, err := a.driverRepository.GetByID(id)
	if err != nil {
		return err
	}

	if driver.IsAdmin {
		return fmt.Errorf("%w: cannot delete admin users", dto.ErrForbidden)
	}

	if err := a.driverRepository.Delete(id); err != nil {
		return err
	}

	a.auditService.Record(admin.DriverID, model.AuditActionDelete, "driver", id, nil)
	return nil
}

func (a *adminService) CreateBusRoute(admin model.Driver, busRoute model.BusRoute) (model.BusRoute, error) {
	if busRoute.VehicleNo == "" || busRoute.RouteNo == "" {
		return model.BusRoute{}, fmt.Errorf("%w: vehicle_no and route_no are required", dto.ErrInvalidInput)
	}

	if _, err := a.busRouteRepository.GetByVehicle(busRoute.VehicleNo); err == nil {
		return model.BusRoute{}, fmt.Errorf("%w: vehicle already on the roster", dto.ErrAlreadyExists)
	}

	created, err := a.busRouteRepository.Create(busRoute)
	if err != nil {
		return model.BusRoute{}, err
	}

	a.auditService.Record(admin.DriverID, model.AuditActionCreate, "bus_route", created.RouteID, map[string]interface{}{
		"vehicle_no": created.VehicleNo,
		"route_no":   created.RouteNo,
	})
	return created, nil
}

func (a *adminService) Stats() (DashboardStats, error) {
	total, err := a.driverRepository.Count()
	if err != nil {
		return DashboardStats{}, err
	}
	active, err := a.driverRepository.CountActive(true)
	if err != nil {
		return DashboardStats{}, err
	}
	pending, err := a.driverRepository.CountActive(false)
	if err != nil {
		return DashboardStats{}, err
	}
	admins, err := a.driverRepository.CountAdmins()
	if err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{
		TotalDrivers:   total,
		ActiveDrivers:  active,
		PendingDrivers: pending,
		AdminCount:     admins,
		Timestamp:      time.Now().UTC(),
	}, nil
}

func (a *adminService) ExportDriversCSV() (string, error) {
	drivers, err := a.driverRepository.List(nil)
	if err != nil {
		return "", err
	}

	rows := make([]driverExportRow, 0, len(drivers))
	for _, driver := range drivers {
		row := driverExportRow{
			DriverID:  driver.DriverID,
			Name:      driver.Name,
			Phone:     driver.Phone,
			IsActive:  driver.IsActive,
			IsAdmin:   driver.IsAdmin,
			CreatedAt: driver.CreatedAt.UTC().Format(time.RFC3339),
		}
		if driver.Email != nil {
			row.Email = *driver.Email
		}
		rows = append(rows, row)
	}

	csv, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}
	return csv, nil
}
