package dto

type CreateReservationRequest struct {
	TouristID     uint  `json:"tourist_id" validate:"required"`
	DestinationID uint  `json:"destination_id" validate:"required"`
	StartDate     *Date `json:"start_date" validate:"required"`
	EndDate       *Date `json:"end_date" validate:"required"`
	PartySize     *int  `json:"party_size"`
}

type UpdateReservationRequest struct {
	StartDate *Date `json:"start_date" validate:"required"`
	EndDate   *Date `json:"end_date" validate:"required"`
	PartySize *int  `json:"party_size"`
}

type DestinationRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Country     string   `json:"country" validate:"required,max=50"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Cost        *float64 `json:"cost" validate:"required,gte=0"`
}

type TouristRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=50"`
	LastName  string  `json:"last_name" validate:"required,max=50"`
	Email     string  `json:"email" validate:"required,email,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=20"`
}

// PartySizeOrDefault treats an omitted party size as a single traveller.
func PartySizeOrDefault(p *int) int {
	if p == nil {
		return 1
	}
	return *p
}
