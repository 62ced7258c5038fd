package get_vehicle_bookings

import (
	"fmt"
	"strconv"

	"github.com/voom-app/VOOM-RentalService/internal/service/bookings/models"
	"github.com/voom-app/VOOM-RentalService/pkg/types"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	vehicleID int64,
	userID int64,
	startDateStr string,
	endDateStr string,
	statusStr string,
	blockingOnlyStr string,
) (*models.GetVehicleBookingsRequest, error) {
	req := &models.GetVehicleBookingsRequest{
		UserID:    userID,
		VehicleID: vehicleID,
	}

	// Парсим startDate если указана
	if startDateStr != "" {
		startDate, err := types.NewDateFromString(startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	// Парсим endDate если указана
	if endDateStr != "" {
		endDate, err := types.NewDateFromString(endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим blockingOnly если указан
	if blockingOnlyStr != "" {
		blockingOnly, err := strconv.ParseBool(blockingOnlyStr)
		if err != nil {
			return nil, fmt.Errorf("invalid blockingOnly value: %w", err)
		}
		req.BlockingOnly = blockingOnly
	}

	return req, nil
}
