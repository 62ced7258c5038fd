package get_unavailable_dates

import (
	getUnavailableDates "github.com/voom-app/VOOM-RentalService/internal/usecase/get_unavailable_dates"
)

// DateRangeResponse закрытый интервал недоступных дат
type DateRangeResponse struct {
	StartDate string `json:"startDate"` // "2026-09-15"
	EndDate   string `json:"endDate"`   // "2026-09-18"
}

// UnavailableDatesResponse HTTP response model
type UnavailableDatesResponse struct {
	VehicleID        int64               `json:"vehicleId"`
	From             string              `json:"from"`
	To               string              `json:"to"`
	UnavailableDates []DateRangeResponse `json:"unavailableDates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getUnavailableDates.Response) *UnavailableDatesResponse {
	ranges := make([]DateRangeResponse, len(resp.Ranges))
	for i, r := range resp.Ranges {
		ranges[i] = DateRangeResponse{
			StartDate: r.StartDate.String(),
			EndDate:   r.EndDate.String(),
		}
	}

	return &UnavailableDatesResponse{
		VehicleID:        resp.VehicleID,
		From:             resp.From.String(),
		To:               resp.To.String(),
		UnavailableDates: ranges,
	}
}
