package entities

import "time"

// TravelPackage is a sellable travel offering persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - travel_month_key: lower-cased TravelMonth used by the month filter
//   - booked_count: seat counter maintained by booking creation/deletion
//
// Dates:
//   - TravelDate and ReturnDate are kept as free "dd/mm/yyyy" strings; they are part of
//     the stored compatibility surface and are never converted to a native date type.
//     See ParseTravelDate for the derived sort key.
type TravelPackage struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	Price             float64           `json:"price"`
	Description       string            `json:"description"`
	ImageURL          string            `json:"imageUrl,omitempty"`
	PdfURL            string            `json:"pdfUrl"`
	MaxPeople         int               `json:"maxPeople"`
	BoardingLocations BoardingLocations `json:"boardingLocations"`
	TravelMonth       string            `json:"travelMonth"`
	TravelDate        string            `json:"travelDate,omitempty"`
	ReturnDate        string            `json:"returnDate,omitempty"`
	TravelTime        string            `json:"travelTime,omitempty"`
	BookedCount       int               `json:"-"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// AcceptsBookings reports whether the package can take any booking at all.
func (p TravelPackage) AcceptsBookings() bool {
	return len(p.BoardingLocations) > 0 && p.MaxPeople > 0
}

// TravelPackagePatch carries a partial update: nil fields keep the stored value.
type TravelPackagePatch struct {
	Name              *string
	Price             *float64
	Description       *string
	ImageURL          *string
	PdfURL            *string
	MaxPeople         *int
	BoardingLocations *BoardingLocations
	TravelMonth       *string
	TravelDate        *string
	ReturnDate        *string
	TravelTime        *string
}

// Apply returns a copy of p with the present patch fields applied.
func (patch TravelPackagePatch) Apply(p TravelPackage, now time.Time) TravelPackage {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.PdfURL != nil {
		p.PdfURL = *patch.PdfURL
	}
	if patch.MaxPeople != nil {
		p.MaxPeople = *patch.MaxPeople
	}
	if patch.BoardingLocations != nil {
		p.BoardingLocations = patch.BoardingLocations.Clone()
	}
	if patch.TravelMonth != nil {
		p.TravelMonth = *patch.TravelMonth
	}
	if patch.TravelDate != nil {
		p.TravelDate = *patch.TravelDate
	}
	if patch.ReturnDate != nil {
		p.ReturnDate = *patch.ReturnDate
	}
	if patch.TravelTime != nil {
		p.TravelTime = *patch.TravelTime
	}
	p.UpdatedAt = now
	return p
}
