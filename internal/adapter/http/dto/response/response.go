package response

import (
	"time"

	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase"
)

type TravelPackageResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Price             float64   `json:"price"`
	Description       string    `json:"description"`
	ImageURL          string    `json:"imageUrl,omitempty"`
	PdfURL            string    `json:"pdfUrl"`
	MaxPeople         int       `json:"maxPeople"`
	BoardingLocations []string  `json:"boardingLocations"`
	TravelMonth       string    `json:"travelMonth"`
	TravelDate        string    `json:"travelDate,omitempty"`
	ReturnDate        string    `json:"returnDate,omitempty"`
	TravelTime        string    `json:"travelTime,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromTravelPackage(p entities.TravelPackage) TravelPackageResponse {
	locs := []string(p.BoardingLocations.Clone())
	if locs == nil {
		locs = []string{}
	}
	return TravelPackageResponse{
		ID:                p.ID,
		Name:              p.Name,
		Price:             p.Price,
		Description:       p.Description,
		ImageURL:          p.ImageURL,
		PdfURL:            p.PdfURL,
		MaxPeople:         p.MaxPeople,
		BoardingLocations: locs,
		TravelMonth:       p.TravelMonth,
		TravelDate:        p.TravelDate,
		ReturnDate:        p.ReturnDate,
		TravelTime:        p.TravelTime,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func FromTravelPackages(pkgs []entities.TravelPackage) []TravelPackageResponse {
	out := make([]TravelPackageResponse, 0, len(pkgs))
	for _, p := range pkgs {
		out = append(out, FromTravelPackage(p))
	}
	return out
}

// TravelPackagePageResponse is the body of GET /travel-packages/filter.
type TravelPackagePageResponse struct {
	Data []TravelPackageResponse `json:"data"`
	Meta entities.PaginationMeta `json:"meta"`
}

func FromTravelPackagePage(page entities.PackagePage, meta entities.PaginationMeta) TravelPackagePageResponse {
	return TravelPackagePageResponse{Data: FromTravelPackages(page.Data), Meta: meta}
}

type ImageURLResponse struct {
	ImageURL string `json:"imageUrl"`
}

type BookingResponse struct {
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

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		TravelPackageID:  b.TravelPackageID,
		UserID:           b.UserID,
		FullName:         b.FullName,
		RG:               b.RG,
		CPF:              b.CPF,
		BirthDate:        b.BirthDate,
		Phone:            b.Phone,
		Email:            b.Email,
		BoardingLocation: b.BoardingLocation,
		City:             b.City,
		HowDidYouMeetUs:  b.HowDidYouMeetUs,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func FromBookings(bookings []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}

type BookingDetailsResponse struct {
	BookingResponse
	TravelPackage *entities.BookingPackageSummary `json:"travelPackage"`
	User          *entities.BookingUserSummary    `json:"user"`
}

func FromBookingDetails(details []entities.BookingDetails) []BookingDetailsResponse {
	out := make([]BookingDetailsResponse, 0, len(details))
	for _, d := range details {
		out = append(out, BookingDetailsResponse{
			BookingResponse: FromBooking(d.Booking),
			TravelPackage:   d.TravelPackage,
			User:            d.User,
		})
	}
	return out
}

// AuthResponse keeps the snake_case access_token of the public auth contract.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
}

func FromAuthResult(r usecase.AuthResult) AuthResponse {
	return AuthResponse{AccessToken: r.AccessToken, ID: r.User.ID, Name: r.User.Name, Email: r.User.Email}
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

type UploadTaskResponse struct {
	Token       string    `json:"token"`
	Key         string    `json:"key"`
	ContentType string    `json:"contentType"`
	Size        int       `json:"size"`
	Attempts    int       `json:"attempts"`
	LastError   string    `json:"lastError,omitempty"`
	EnqueuedAt  time.Time `json:"enqueuedAt"`
}

func FromUploadTasks(tasks []entities.UploadTask) []UploadTaskResponse {
	out := make([]UploadTaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, UploadTaskResponse{
			Token:       t.Token,
			Key:         t.Key,
			ContentType: t.ContentType,
			Size:        t.Size,
			Attempts:    t.Attempts,
			LastError:   t.LastError,
			EnqueuedAt:  t.EnqueuedAt,
		})
	}
	return out
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status      string    `json:"status"`
	Environment string    `json:"environment"`
	Timestamp   time.Time `json:"timestamp"`
}

type SMTPConfigResponse struct {
	Host   string `json:"host"`
	Port   int    `json:"port"`
	Secure bool   `json:"secure"`
	User   string `json:"user"`
}

// SMTPVerifyResponse echoes the non-secret part of the SMTP settings so an
// operator can spot a misconfiguration from the response alone.
type SMTPVerifyResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	SMTPConfig SMTPConfigResponse `json:"smtpConfig"`
	Timestamp  time.Time          `json:"timestamp"`
}

type (
	CityStatResponse   = entities.CityStat
	SourceStatResponse = entities.SourceStat
)
