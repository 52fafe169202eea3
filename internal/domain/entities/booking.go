package entities

import "time"

// Booking is a single passenger reservation against one package and one boarding location.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (travel_package_id-index): travel_package_id
//   - GSI2 (user_id-index): user_id
//
// TravelPackageID is a reference, not ownership: the package must exist at creation time.
type Booking struct {
	ID               string    `json:"id"`
	TravelPackageID  string    `json:"travelPackageId"`
	UserID           string    `json:"userId"`
	FullName         string    `json:"fullName"`
	RG               string    `json:"rg"`
	CPF              string    `json:"cpf"`
	BirthDate        time.Time `json:"birthDate"`
	Phone            string    `json:"phone"`
	Email            string    `json:"email"`
	BoardingLocation string    `json:"boardingLocation"`
	City             string    `json:"city,omitempty"`
	HowDidYouMeetUs  string    `json:"howDidYouMeetUs,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// AgeAt returns the passenger age in whole years at the given instant.
func (b Booking) AgeAt(now time.Time) int {
	if b.BirthDate.IsZero() {
		return 0
	}
	age := now.Year() - b.BirthDate.Year()
	if now.Month() < b.BirthDate.Month() || (now.Month() == b.BirthDate.Month() && now.Day() < b.BirthDate.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// BookingDetails joins a booking with the package and user it references.
type BookingDetails struct {
	Booking
	TravelPackage *BookingPackageSummary `json:"travelPackage,omitempty"`
	User          *BookingUserSummary    `json:"user,omitempty"`
}

type BookingPackageSummary struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	TravelMonth string  `json:"travelMonth"`
}

type BookingUserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CityStat aggregates bookings per passenger city.
type CityStat struct {
	City          string `json:"city"`
	TotalBookings int    `json:"totalBookings"`
	AverageAge    int    `json:"averageAge"`
}

// SourceStat aggregates bookings per "how did you meet us" answer.
type SourceStat struct {
	Source        string `json:"source"`
	TotalBookings int    `json:"totalBookings"`
	Percentage    string `json:"percentage"`
}
