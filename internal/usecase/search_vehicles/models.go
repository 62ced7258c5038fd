package search_vehicles

import "github.com/voom-app/VOOM-RentalService/internal/domain"

// Request модель запроса поиска по каталогу
type Request struct {
	// UserID пользователя для запоминания последнего фильтра,
	// 0 для анонимного запроса
	UserID int64
	Filter *domain.VehicleFilter // Активные ограничения и сортировка
}

// Response модель ответа с результатами поиска
type Response struct {
	Vehicles  []*domain.Vehicle // Отфильтрованный и отсортированный список
	Total     int               // Количество найденных автомобилей
	FromCache bool              // Результат взят из кэша
}
