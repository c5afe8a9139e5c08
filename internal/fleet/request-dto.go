package fleet

type CreateSeatTierRequest struct {
	Name            string  `json:"name" binding:"required,min=2,max=100"`
	Code            string  `json:"code" binding:"required,min=1,max=20"`
	PriceMultiplier float64 `json:"price_multiplier" binding:"required,gt=0"`
}

type CreateBusRequest struct {
	Plate string `json:"plate" binding:"required,min=3,max=20"`
	Model string `json:"model" binding:"max=100"`
	Year  int    `json:"year" binding:"omitempty,min=1980,max=2100"`
}

type UpdateBusRequest struct {
	Model  *string `json:"model" binding:"omitempty,max=100"`
	Year   *int    `json:"year" binding:"omitempty,min=1980,max=2100"`
	Status *string `json:"status" binding:"omitempty,oneof=ACTIVE MAINTENANCE RETIRED"`
}

type TemplateSeatSpec struct {
	SeatTierID string `json:"seat_tier_id" binding:"required,uuid"`
	SeatNumber string `json:"seat_number" binding:"required,min=1,max=10"`
	Floor      int    `json:"floor" binding:"omitempty,min=1,max=2"`
	Row        int    `json:"row" binding:"omitempty,min=1"`
	Column     string `json:"column" binding:"omitempty,max=5"`
}

type CreateBusTemplateRequest struct {
	Name  string             `json:"name" binding:"required,min=2,max=255"`
	Seats []TemplateSeatSpec `json:"seats" binding:"required,min=1,max=100,dive"`
}

type AddBusSeatRequest struct {
	SeatTierID string `json:"seat_tier_id" binding:"required,uuid"`
	SeatNumber string `json:"seat_number" binding:"required,min=1,max=10"`
	Floor      int    `json:"floor" binding:"omitempty,min=1,max=2"`
	Row        int    `json:"row" binding:"omitempty,min=1"`
	Column     string `json:"column" binding:"omitempty,max=5"`
}

type UpdateBusSeatRequest struct {
	SeatTierID *string `json:"seat_tier_id" binding:"omitempty,uuid"`
	Status     *string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE MAINTENANCE"`
}

type ApplyTemplateRequest struct {
	TemplateID string `json:"template_id" binding:"required,uuid"`
}
