package database

import (
	"buslink/internal/companies"
	"buslink/internal/customers"
	"buslink/internal/drivers"
	"buslink/internal/finances"
	"buslink/internal/fleet"
	"buslink/internal/locations"
	"buslink/internal/parcels"
	busroutes "buslink/internal/routes"
	"buslink/internal/schedules"
	"buslink/internal/tickets"
	"buslink/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&companies.Company{},
		&companies.Branch{},
		&locations.Location{},
		&busroutes.Route{},
		&busroutes.RouteSchedule{},
		&fleet.SeatTier{},
		&fleet.BusTemplate{},
		&fleet.TemplateSeat{},
		&fleet.Bus{},
		&fleet.BusSeat{},
		&fleet.BusAssignment{},
		&drivers.Driver{},
		&customers.Customer{},
		&schedules.Schedule{},
		&schedules.TripLog{},
		&tickets.Ticket{},
		&tickets.TicketCancellation{},
		&tickets.TicketReassignment{},
		&parcels.Parcel{},
		&parcels.ParcelStatusUpdate{},
		&finances.Liquidation{},
		&finances.LiquidationExpense{},
	)
}
