package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/voom-app/VOOM-RentalService/internal/domain"
	bookingRepo "github.com/voom-app/VOOM-RentalService/internal/infra/storage/booking"
	vehicleRepo "github.com/voom-app/VOOM-RentalService/internal/infra/storage/vehicle"
	"github.com/voom-app/VOOM-RentalService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	vehicleRepo VehicleRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	vehicleRepo VehicleRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - бронирование видят только арендатор
// и владелец автомобиля
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkBookingAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetRenterBookings получает историю бронирований арендатора
// Опционально фильтрует по статусу
func (s *Service) GetRenterBookings(ctx context.Context, req *models.GetRenterBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetRenterBookings: fetching bookings for renter=%d, status=%v", req.RenterID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetRenterBookings: invalid status=%s for renter=%d", *req.Status, req.RenterID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByRenterID(ctx, req.RenterID, domainStatus)
	if err != nil {
		s.logger.Error("GetRenterBookings: repository error for renter=%d: %v", req.RenterID, err)
		return nil, fmt.Errorf("%w: GetRenterBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRenterBookings: successfully fetched %d bookings for renter=%d", len(bookings), req.RenterID)
	return models.FromDomainBookingList(bookings), nil
}

// GetVehicleBookings получает бронирования автомобиля с фильтрацией
// по периоду и статусу. Доступно только владельцу автомобиля
//
// Примеры использования:
// - Все бронирования автомобиля: указать только VehicleID
// - Бронирования за период: указать StartDate и EndDate
// - Только блокирующие календарь: BlockingOnly = true
func (s *Service) GetVehicleBookings(ctx context.Context, req *models.GetVehicleBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetVehicleBookings: fetching bookings for vehicle=%d, user=%d", req.VehicleID, req.UserID)

	// Проверяем права владельца
	if err := s.checkHostAccess(ctx, req.VehicleID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetVehicleBookings: invalid filter for vehicle=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем бронирования с фильтрацией
	bookings, err := s.bookingRepo.GetByVehicleWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetVehicleBookings: repository error for vehicle=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: GetVehicleBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetVehicleBookings: successfully fetched %d bookings for vehicle=%d", len(bookings), req.VehicleID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Арендатор может отменить только своё бронирование,
// владелец автомобиля - любое бронирование своего автомобиля
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Проверяем права: арендатор или владелец автомобиля
	if booking.RenterID != req.UserID {
		if err := s.checkHostAccess(ctx, booking.VehicleID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus переводит бронирование в следующий статус аренды.
// Доступно только владельцу автомобиля:
// - confirmed -> in_progress (выдача автомобиля)
// - in_progress -> completed (возврат автомобиля)
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только владелец автомобиля)
	if err := s.checkHostAccess(ctx, booking.VehicleID, req.UserID); err != nil {
		s.logger.Warn("UpdateStatus: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return err
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	// Проверяем допустимость перехода
	switch newStatus {
	case domain.StatusInProgress:
		if !booking.CanBeStarted() {
			s.logger.Warn("UpdateStatus: booking id=%d cannot be started, status=%s", bookingID, booking.Status)
			return ErrInvalidTransition
		}
	case domain.StatusCompleted:
		if !booking.CanBeCompleted() {
			s.logger.Warn("UpdateStatus: booking id=%d cannot be completed, status=%s", bookingID, booking.Status)
			return ErrInvalidTransition
		}
	default:
		s.logger.Warn("UpdateStatus: status=%s is not reachable via status update for booking id=%d", newStatus, bookingID)
		return ErrInvalidTransition
	}

	// Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Вспомогательные методы

// checkBookingAccess проверяет, что пользователь имеет доступ к бронированию.
// Доступ есть у арендатора и у владельца автомобиля
func (s *Service) checkBookingAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.RenterID == userID {
		return nil
	}

	if err := s.checkHostAccess(ctx, booking.VehicleID, userID); err != nil {
		// Ошибка уже залогирована в checkHostAccess
		return ErrAccessDenied
	}

	return nil
}

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
