package request

import (
	"encoding/json"
	"strconv"
	"strings"

	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase"
)

// CreateTravelPackageRequest is the multipart form of POST /travel-packages.
// The image and pdf files travel as separate parts and are read by the handler.
type CreateTravelPackageRequest struct {
	Name              string   `form:"name" binding:"required"`
	Price             *float64 `form:"price" binding:"required,gte=0"`
	Description       string   `form:"description" binding:"required"`
	PdfURL            string   `form:"pdfUrl" binding:"omitempty,url"`
	MaxPeople         int      `form:"maxPeople" binding:"required,min=1"`
	BoardingLocations []string `form:"boardingLocations"`
	TravelMonth       string   `form:"travelMonth" binding:"required,month_name"`
	TravelDate        string   `form:"travelDate" binding:"omitempty,br_date"`
	ReturnDate        string   `form:"returnDate" binding:"omitempty,br_date"`
	TravelTime        string   `form:"travelTime" binding:"omitempty,clock_time"`
}

func (r CreateTravelPackageRequest) ToInput(image, pdf *usecase.MediaFile) usecase.CreateTravelPackageInput {
	var price float64
	if r.Price != nil {
		price = *r.Price
	}
	return usecase.CreateTravelPackageInput{
		Name:              r.Name,
		Price:             price,
		Description:       r.Description,
		PdfURL:            r.PdfURL,
		MaxPeople:         r.MaxPeople,
		BoardingLocations: ParseFormBoardingLocations(r.BoardingLocations),
		TravelMonth:       r.TravelMonth,
		TravelDate:        r.TravelDate,
		ReturnDate:        r.ReturnDate,
		TravelTime:        r.TravelTime,
		Image:             image,
		Pdf:               pdf,
	}
}

// ParseFormBoardingLocations accepts repeated form fields or a JSON array sent
// as a single field. Any other single value is one location.
func ParseFormBoardingLocations(values []string) entities.BoardingLocations {
	if len(values) == 1 {
		if v := strings.TrimSpace(values[0]); strings.HasPrefix(v, "[") {
			var locs entities.BoardingLocations
			if err := json.Unmarshal([]byte(v), &locs); err == nil {
				return locs
			}
		}
	}
	return entities.ParseBoardingLocations(values...)
}

// UpdateTravelPackageRequest is a partial update. Absent fields keep the stored
// value. It binds from JSON or from a multipart form carrying new files.
type UpdateTravelPackageRequest struct {
	Name              *string                     `json:"name" form:"name" binding:"omitempty,min=1"`
	Price             *float64                    `json:"price" form:"price" binding:"omitempty,gte=0"`
	Description       *string                     `json:"description" form:"description"`
	PdfURL            *string                     `json:"pdfUrl" form:"pdfUrl" binding:"omitempty,url"`
	MaxPeople         *int                        `json:"maxPeople" form:"maxPeople" binding:"omitempty,min=1"`
	BoardingLocations *entities.BoardingLocations `json:"boardingLocations" form:"-"`
	TravelMonth       *string                     `json:"travelMonth" form:"travelMonth" binding:"omitempty,month_name"`
	TravelDate        *string                     `json:"travelDate" form:"travelDate" binding:"omitempty,br_date"`
	ReturnDate        *string                     `json:"returnDate" form:"returnDate" binding:"omitempty,br_date"`
	TravelTime        *string                     `json:"travelTime" form:"travelTime" binding:"omitempty,clock_time"`
}

func (r UpdateTravelPackageRequest) ToPatch() entities.TravelPackagePatch {
	return entities.TravelPackagePatch{
		Name:              trimmed(r.Name),
		Price:             r.Price,
		Description:       trimmed(r.Description),
		PdfURL:            trimmed(r.PdfURL),
		MaxPeople:         r.MaxPeople,
		BoardingLocations: r.BoardingLocations,
		TravelMonth:       trimmed(r.TravelMonth),
		TravelDate:        trimmed(r.TravelDate),
		ReturnDate:        trimmed(r.ReturnDate),
		TravelTime:        trimmed(r.TravelTime),
	}
}

// FilterTravelPackagesQuery never rejects: unparsable page/limit fall back to
// the defaults applied by entities.NormalizePage.
type FilterTravelPackagesQuery struct {
	Month     string `form:"month"`
	Page      string `form:"page"`
	Limit     string `form:"limit"`
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

func (q FilterTravelPackagesQuery) ToQuery() entities.PackageQuery {
	page, _ := strconv.Atoi(strings.TrimSpace(q.Page))
	limit, _ := strconv.Atoi(strings.TrimSpace(q.Limit))
	return entities.PackageQuery{
		Month:     q.Month,
		Page:      page,
		Limit:     limit,
		SortBy:    entities.SortField(q.SortBy),
		SortOrder: entities.SortOrder(q.SortOrder),
	}.Normalized()
}

type ListTravelPackagesQuery struct {
	SortBy    string `form:"sortBy"`
	SortOrder string `form:"sortOrder"`
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}
