package domain

import (
	"time"

	"github.com/cubecar/CC-RentalService/pkg/types"
)

// CarType represents the body type of a listed car
type CarType string

const (
	TypeSUV         CarType = "suv"
	TypeSedan       CarType = "sedan"
	TypeTruck       CarType = "truck"
	TypeLuxury      CarType = "luxury"
	TypeConvertible CarType = "convertible"
)

// ValidCarTypes все допустимые типы кузова
var ValidCarTypes = []CarType{TypeSUV, TypeSedan, TypeTruck, TypeLuxury, TypeConvertible}

// IsValidCarType returns true if t is a known car type
func IsValidCarType(t CarType) bool {
	for _, known := range ValidCarTypes {
		if t == known {
			return true
		}
	}
	return false
}

// OperatingHours is the daily time-of-day window during which pickup and
// return are permitted for a listing. Both bounds are inclusive.
type OperatingHours struct {
	Start types.TimeString
	End   types.TimeString
}

// DefaultOperatingHours returns the operating hours assigned to new listings
func DefaultOperatingHours() OperatingHours {
	return OperatingHours{Start: DefaultPickupStart, End: DefaultPickupEnd}
}

// Contains returns true if t lies within [Start, End] inclusive
func (h OperatingHours) Contains(t types.TimeString) bool {
	return !t.IsBefore(h.Start) && !t.IsAfter(h.End)
}

// Car represents a rentable vehicle listing
type Car struct {
	ID          int64
	HostID      int64
	Make        string
	Model       string
	Year        int
	PricePerDay float64
	Location    string
	Type        CarType
	ImageURL    string
	Images      []string
	Features    []string
	Description *string
	Rating      float64
	Trips       int
	Available   bool
	Latitude    *float64
	Longitude   *float64
	Hours       OperatingHours

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsListed returns true if the car can currently be booked
func (c *Car) IsListed() bool {
	return c.Available
}
