package tickets

import "buslink/internal/customers"

type BookTicketRequest struct {
	BusSeatID  string                           `json:"bus_seat_id" binding:"required,uuid"`
	CustomerID *string                          `json:"customer_id" binding:"omitempty,uuid"`
	Customer   *customers.UpsertCustomerRequest `json:"customer" binding:"omitempty"`
	BranchID   *string                          `json:"branch_id" binding:"omitempty,uuid"`
	Price      *float64                         `json:"price" binding:"omitempty,gt=0"`
	Notes      string                           `json:"notes" binding:"max=500"`
}

type BulkTicketItem struct {
	ScheduleID string `json:"schedule_id" binding:"required,uuid"`
	BookTicketRequest
}

type BulkBookRequest struct {
	Tickets []BulkTicketItem `json:"tickets" binding:"required,min=1,max=50,dive"`
}

type CancelTicketRequest struct {
	Reason string `json:"reason" binding:"required,min=3,max=500"`
}

type ReassignTicketRequest struct {
	NewScheduleID string `json:"new_schedule_id" binding:"required,uuid"`
	NewBusSeatID  string `json:"new_bus_seat_id" binding:"required,uuid"`
	Reason        string `json:"reason" binding:"max=500"`
}
