package models

import (
	"github.com/cubecar/CC-RentalService/internal/domain"
	"github.com/cubecar/CC-RentalService/pkg/types"
)

// Request модели

// CreateCarRequest запрос на публикацию объявления
type CreateCarRequest struct {
	HostID      int64    `json:"hostId"`
	Make        string   `json:"make"`
	Model       string   `json:"model"`
	Year        int      `json:"year"`
	PricePerDay float64  `json:"pricePerDay"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	ImageURL    string   `json:"imageUrl"`
	Images      []string `json:"images,omitempty"`
	Features    []string `json:"features,omitempty"`
	Description *string  `json:"description,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	PickupStart *string  `json:"pickupStart,omitempty"` // "08:00", опционально
	PickupEnd   *string  `json:"pickupEnd,omitempty"`   // "18:00", опционально
}

// ToDomainCar конвертирует request в domain модель с заполнением дефолтов
func (r *CreateCarRequest) ToDomainCar() *domain.Car {
	car := &domain.Car{
		HostID:      r.HostID,
		Make:        r.Make,
		Model:       r.Model,
		Year:        r.Year,
		PricePerDay: r.PricePerDay,
		Location:    r.Location,
		Type:        domain.CarType(r.Type),
		ImageURL:    r.ImageURL,
		Images:      r.Images,
		Features:    r.Features,
		Description: r.Description,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Available:   true,
		Hours:       domain.DefaultOperatingHours(),
	}

	if r.PickupStart != nil {
		car.Hours.Start = types.TimeString(*r.PickupStart)
	}
	if r.PickupEnd != nil {
		car.Hours.End = types.TimeString(*r.PickupEnd)
	}

	return car
}

// Response модели

// CarResponse ответ с данными объявления
type CarResponse struct {
	ID          int64    `json:"id"`
	HostID      int64    `json:"hostId"`
	Make        string   `json:"make"`
	Model       string   `json:"model"`
	Year        int      `json:"year"`
	PricePerDay float64  `json:"pricePerDay"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	ImageURL    string   `json:"imageUrl"`
	Images      []string `json:"images"`
	Features    []string `json:"features"`
	Description *string  `json:"description,omitempty"`
	Rating      float64  `json:"rating"`
	Trips       int      `json:"trips"`
	Available   bool     `json:"available"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	PickupStart string   `json:"pickupStart"`
	PickupEnd   string   `json:"pickupEnd"`
}

// FromDomainCar конвертирует domain модель в response
func FromDomainCar(car *domain.Car) *CarResponse {
	return &CarResponse{
		ID:          car.ID,
		HostID:      car.HostID,
		Make:        car.Make,
		Model:       car.Model,
		Year:        car.Year,
		PricePerDay: car.PricePerDay,
		Location:    car.Location,
		Type:        string(car.Type),
		ImageURL:    car.ImageURL,
		Images:      car.Images,
		Features:    car.Features,
		Description: car.Description,
		Rating:      car.Rating,
		Trips:       car.Trips,
		Available:   car.Available,
		Latitude:    car.Latitude,
		Longitude:   car.Longitude,
		PickupStart: car.Hours.Start.String(),
		PickupEnd:   car.Hours.End.String(),
	}
}

// FromDomainCars конвертирует список domain моделей в response
func FromDomainCars(cars []*domain.Car) []*CarResponse {
	result := make([]*CarResponse, 0, len(cars))
	for _, car := range cars {
		result = append(result, FromDomainCar(car))
	}
	return result
}
