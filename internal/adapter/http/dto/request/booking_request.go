package request

import (
	"travel_backoffice/internal/usecase"
)

type CreateBookingRequest struct {
	TravelPackageID  string `json:"travelPackageId" binding:"required"`
	FullName         string `json:"fullName" binding:"required"`
	RG               string `json:"rg" binding:"required"`
	CPF              string `json:"cpf" binding:"required,cpf"`
	BirthDate        string `json:"birthDate" binding:"required,birth_date"`
	Phone            string `json:"phone" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	BoardingLocation string `json:"boardingLocation" binding:"required"`
	City             string `json:"city"`
	HowDidYouMeetUs  string `json:"howDidYouMeetUs"`
}

func (r CreateBookingRequest) ToInput() (usecase.CreateBookingInput, error) {
	birth, err := parseBirthDate(r.BirthDate)
	if err != nil {
		return usecase.CreateBookingInput{}, err
	}
	return usecase.CreateBookingInput{
		TravelPackageID:  r.TravelPackageID,
		FullName:         r.FullName,
		RG:               r.RG,
		CPF:              r.CPF,
		BirthDate:        birth,
		Phone:            r.Phone,
		Email:            r.Email,
		BoardingLocation: r.BoardingLocation,
		City:             r.City,
		HowDidYouMeetUs:  r.HowDidYouMeetUs,
	}, nil
}
