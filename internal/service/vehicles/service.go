package vehicles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
	vehicleRepo "github.com/voom-app/VOOM-RentalService/internal/infra/storage/vehicle"
	"github.com/voom-app/VOOM-RentalService/internal/service/vehicles/models"
	"github.com/voom-app/VOOM-RentalService/pkg/ptr"
	"github.com/voom-app/VOOM-RentalService/pkg/types"
)

// Service сервис для работы с объявлениями об автомобилях
type Service struct {
	vehicleRepo  VehicleRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса автомобилей
func NewService(
	vehicleRepo VehicleRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		vehicleRepo:  vehicleRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает новое объявление об автомобиле
func (s *Service) Create(ctx context.Context, req *models.CreateVehicleRequest) (*models.VehicleResponse, error) {
	s.logger.Info("Create: creating vehicle %s %s (%d) for host=%d", req.Make, req.Model, req.Year, req.HostID)

	// 1. Валидируем входные данные
	if err := s.validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Создаем объявление
	vehicle, err := s.vehicleRepo.Create(ctx, req.ToDomainVehicle())
	if err != nil {
		s.logger.Error("Create: repository error for host=%d: %v", req.HostID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created vehicle id=%d for host=%d", vehicle.ID, req.HostID)
	return models.FromDomainVehicle(vehicle), nil
}

// GetByID получает автомобиль по ID. Публичная операция каталога
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VehicleResponse, error) {
	s.logger.Info("GetByID: fetching vehicle id=%d", id)

	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("GetByID: vehicle id=%d not found", id)
			return nil, ErrVehicleNotFound
		}
		s.logger.Error("GetByID: repository error for vehicle id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVehicle(vehicle), nil
}

// GetByHostID получает все автомобили владельца
func (s *Service) GetByHostID(ctx context.Context, hostID int64) (*models.VehicleListResponse, error) {
	s.logger.Info("GetByHostID: fetching vehicles for host=%d", hostID)

	vehicles, err := s.vehicleRepo.GetByHostID(ctx, hostID)
	if err != nil {
		s.logger.Error("GetByHostID: repository error for host=%d: %v", hostID, err)
		return nil, fmt.Errorf("%w: GetByHostID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByHostID: successfully fetched %d vehicles for host=%d", len(vehicles), hostID)
	return models.FromDomainVehicleList(vehicles), nil
}

// SetAvailability включает или выключает объявление в каталоге.
// Доступно только владельцу. Не влияет на уже созданные бронирования
func (s *Service) SetAvailability(ctx context.Context, vehicleID int64, req *models.SetAvailabilityRequest) error {
	s.logger.Info("SetAvailability: setting vehicle id=%d available=%t by user=%d", vehicleID, req.Available, req.UserID)

	if err := s.checkHostAccess(ctx, vehicleID, req.UserID); err != nil {
		return err
	}

	if err := s.vehicleRepo.SetAvailability(ctx, vehicleID, req.Available); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("SetAvailability: vehicle id=%d not found during update", vehicleID)
			return ErrVehicleNotFound
		}
		s.logger.Error("SetAvailability: repository error for vehicle id=%d: %v", vehicleID, err)
		return fmt.Errorf("%w: SetAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetAvailability: successfully set vehicle id=%d available=%t", vehicleID, req.Available)
	return nil
}

// Delete удаляет объявление об автомобиле.
// Доступно только владельцу и только если впереди нет блокирующих
// бронирований (арендатор не должен остаться без машины)
func (s *Service) Delete(ctx context.Context, vehicleID int64, userID int64) error {
	s.logger.Info("Delete: deleting vehicle id=%d by user=%d", vehicleID, userID)

	if err := s.checkHostAccess(ctx, vehicleID, userID); err != nil {
		return err
	}

	// Проверяем блокирующие бронирования от сегодняшнего дня и дальше
	today := types.Today(s.timeProvider.Now())
	filter := domain.VehicleBookingsFilter{
		VehicleID:    vehicleID,
		StartDate:    ptr.Ptr(today),
		EndDate:      ptr.Ptr(today.AddDays(domain.MaxAdvanceBookingDays)),
		BlockingOnly: true,
	}

	bookings, err := s.bookingRepo.GetByVehicleWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Delete: failed to check bookings for vehicle id=%d: %v", vehicleID, err)
		return fmt.Errorf("%w: Delete - failed to check bookings: %v", ErrInternal, err)
	}
	if len(bookings) > 0 {
		s.logger.Warn("Delete: vehicle id=%d has %d active bookings", vehicleID, len(bookings))
		return ErrHasActiveBookings
	}

	if err := s.vehicleRepo.Delete(ctx, vehicleID); err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("Delete: vehicle id=%d not found during deletion", vehicleID)
			return ErrVehicleNotFound
		}
		s.logger.Error("Delete: repository error for vehicle id=%d: %v", vehicleID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted vehicle id=%d", vehicleID)
	return nil
}

// Вспомогательные методы

// checkHostAccess проверяет, что пользователь является владельцем автомобиля
func (s *Service) checkHostAccess(ctx context.Context, vehicleID int64, userID int64) error {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, vehicleRepo.ErrVehicleNotFound) {
			s.logger.Warn("checkHostAccess: vehicle id=%d not found", vehicleID)
			return ErrVehicleNotFound
		}
		s.logger.Error("checkHostAccess: failed to get vehicle id=%d: %v", vehicleID, err)
		return fmt.Errorf("%w: checkHostAccess - failed to get vehicle: %v", ErrInternal, err)
	}

	if vehicle.HostID != userID {
		s.logger.Warn("checkHostAccess: user=%d is not the host of vehicle=%d", userID, vehicleID)
		return ErrAccessDenied
	}

	return nil
}

// validateCreateRequest проверяет данные нового объявления
func (s *Service) validateCreateRequest(req *models.CreateVehicleRequest) error {
	if req.HostID <= 0 {
		return fmt.Errorf("%w: hostId must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Make) == "" || strings.TrimSpace(req.Model) == "" {
		return fmt.Errorf("%w: make and model are required", ErrInvalidInput)
	}
	if req.Year < 1900 || req.Year > s.timeProvider.Now().Year()+1 {
		return fmt.Errorf("%w: year is out of range", ErrInvalidInput)
	}
	if req.DailyRate <= 0 {
		return fmt.Errorf("%w: dailyRate must be positive", ErrInvalidInput)
	}
	if len(req.Location) == 0 || len(req.Location) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location must be 1..%d characters", ErrInvalidInput, domain.MaxLocationLength)
	}
	if req.Seats <= 0 {
		return fmt.Errorf("%w: seats must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	return nil
}
