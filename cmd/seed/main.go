package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"buslink/internal/companies"
	"buslink/internal/customers"
	"buslink/internal/drivers"
	"buslink/internal/fleet"
	"buslink/internal/locations"
	"buslink/internal/routes"
	"buslink/internal/shared/config"
	"buslink/internal/shared/database"
	"buslink/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting BusLink Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"liquidation_expenses",
		"liquidations",
		"parcel_status_updates",
		"parcels",
		"ticket_reassignments",
		"ticket_cancellations",
		"tickets",
		"trip_logs",
		"bus_assignments",
		"schedules",
		"route_schedules",
		"routes",
		"bus_seats",
		"template_seats",
		"bus_templates",
		"buses",
		"seat_tiers",
		"drivers",
		"customers",
		"branches",
		"users",
		"companies",
		"locations",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("SET CONSTRAINTS ALL DEFERRED").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to defer constraints: %w", err)
	}

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	if err := tx.Exec("SET CONSTRAINTS ALL IMMEDIATE").Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to restore constraints: %w", err)
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	locationIDs, err := s.SeedLocations()
	if err != nil {
		return fmt.Errorf("failed to seed locations: %w", err)
	}

	companyID, err := s.SeedCompany(locationIDs)
	if err != nil {
		return fmt.Errorf("failed to seed company: %w", err)
	}

	if err := s.SeedUsers(companyID); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if err := s.SeedDrivers(companyID); err != nil {
		return fmt.Errorf("failed to seed drivers: %w", err)
	}

	if _, err := s.SeedFleet(companyID); err != nil {
		return fmt.Errorf("failed to seed fleet: %w", err)
	}

	if err := s.SeedRoutes(companyID, locationIDs); err != nil {
		return fmt.Errorf("failed to seed routes: %w", err)
	}

	if err := s.SeedCustomers(); err != nil {
		return fmt.Errorf("failed to seed customers: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedLocations creates the terminals served by the demo routes
func (s *Seeder) SeedLocations() (map[string]uuid.UUID, error) {
	fmt.Println("  📍 Seeding locations...")

	locationIDs := make(map[string]uuid.UUID)

	locationsData := []struct {
		key     string
		name    string
		city    string
		region  string
		address string
		lat     float64
		lon     float64
	}{
		{"lima", "Terminal Plaza Norte", "Lima", "Lima", "Av. Tupac Amaru 210", -11.9897, -77.0609},
		{"arequipa", "Terrapuerto Arequipa", "Arequipa", "Arequipa", "Av. Andres A. Caceres s/n", -16.4164, -71.5188},
		{"trujillo", "Terminal Santa Cruz", "Trujillo", "La Libertad", "Av. Nicolas de Pierola 1062", -8.0994, -79.0246},
		{"cusco", "Terminal Terrestre Cusco", "Cusco", "Cusco", "Av. Velasco Astete s/n", -13.5403, -71.9438},
	}

	for _, data := range locationsData {
		location := locations.Location{
			ID:        uuid.New(),
			Name:      data.name,
			City:      data.city,
			Region:    data.region,
			Address:   data.address,
			Latitude:  data.lat,
			Longitude: data.lon,
			IsActive:  true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&location).Error; err != nil {
			return nil, fmt.Errorf("failed to create location %s: %w", data.name, err)
		}

		locationIDs[data.key] = location.ID
		fmt.Printf("    ✅ Created location: %s (%s)\n", location.Name, location.City)
	}

	return locationIDs, nil
}

// SeedCompany creates the demo operator with two branches
func (s *Seeder) SeedCompany(locationIDs map[string]uuid.UUID) (uuid.UUID, error) {
	fmt.Println("  🏢 Seeding company...")

	company := companies.Company{
		ID:           uuid.New(),
		Name:         "Andes Express",
		LegalName:    "Transportes Andes Express S.A.C.",
		TaxID:        "20605812345",
		ContactEmail: "operaciones@andesexpress.pe",
		ContactPhone: "+51 1 555 0100",
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.db.PostgreSQL.Create(&company).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to create company: %w", err)
	}
	fmt.Printf("    ✅ Created company: %s\n", company.Name)

	branchesData := []struct {
		name        string
		phone       string
		locationKey string
	}{
		{"Lima - Plaza Norte", "+51 1 555 0101", "lima"},
		{"Arequipa - Terrapuerto", "+51 54 555 0102", "arequipa"},
	}

	for _, data := range branchesData {
		locationID := locationIDs[data.locationKey]
		branch := companies.Branch{
			ID:         uuid.New(),
			CompanyID:  company.ID,
			LocationID: &locationID,
			Name:       data.name,
			Phone:      data.phone,
			IsActive:   true,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&branch).Error; err != nil {
			return uuid.Nil, fmt.Errorf("failed to create branch %s: %w", data.name, err)
		}
		fmt.Printf("    ✅ Created branch: %s\n", branch.Name)
	}

	return company.ID, nil
}

// SeedUsers creates one account per role (password "qwerty" for all)
func (s *Seeder) SeedUsers(companyID uuid.UUID) error {
	fmt.Println("  👤 Seeding users...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		firstName string
		lastName  string
		email     string
		role      users.Role
		scoped    bool
	}{
		{"Admin", "User", "admin@buslink.dev", users.RoleAdmin, false},
		{"Maria", "Quispe", "maria.quispe@andesexpress.pe", users.RoleManager, true},
		{"Jorge", "Flores", "jorge.flores@andesexpress.pe", users.RoleClerk, true},
		{"Pedro", "Mamani", "pedro.mamani@andesexpress.pe", users.RoleDriver, true},
	}

	for _, data := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: data.firstName,
			LastName:  data.lastName,
			Email:     data.email,
			Password:  string(hashedPassword),
			Role:      data.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if data.scoped {
			user.CompanyID = &companyID
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", data.email, err)
		}
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return nil
}

// SeedDrivers creates two licensed drivers for the demo company
func (s *Seeder) SeedDrivers(companyID uuid.UUID) error {
	fmt.Println("  🚌 Seeding drivers...")

	driversData := []struct {
		firstName     string
		lastName      string
		documentID    string
		licenseNumber string
		licenseClass  string
		phone         string
	}{
		{"Pedro", "Mamani", "45678901", "Q45678901", "A-IIIb", "+51 999 111 222"},
		{"Luis", "Condori", "43218765", "Q43218765", "A-IIIb", "+51 999 333 444"},
	}

	for _, data := range driversData {
		driver := drivers.Driver{
			ID:            uuid.New(),
			CompanyID:     companyID,
			FirstName:     data.firstName,
			LastName:      data.lastName,
			DocumentID:    data.documentID,
			LicenseNumber: data.licenseNumber,
			LicenseClass:  data.licenseClass,
			LicenseExpiry: time.Now().AddDate(2, 0, 0),
			Phone:         data.phone,
			IsActive:      true,
			CreatedAt:     time.Now(),
			UpdatedAt:     time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&driver).Error; err != nil {
			return fmt.Errorf("failed to create driver %s: %w", data.documentID, err)
		}
		fmt.Printf("    ✅ Created driver: %s %s\n", driver.FirstName, driver.LastName)
	}

	return nil
}

// SeedFleet creates seat tiers, a two-floor template and a bus with the
// template applied
func (s *Seeder) SeedFleet(companyID uuid.UUID) (uuid.UUID, error) {
	fmt.Println("  💺 Seeding fleet...")

	tiersData := []struct {
		name       string
		code       string
		multiplier float64
	}{
		{"Standard", "STD", 1.0},
		{"Semi-Bed", "SEMI", 1.4},
		{"Bed", "BED", 1.8},
	}

	tierIDs := make(map[string]uuid.UUID)
	for _, data := range tiersData {
		tier := fleet.SeatTier{
			ID:              uuid.New(),
			CompanyID:       companyID,
			Name:            data.name,
			Code:            data.code,
			PriceMultiplier: data.multiplier,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&tier).Error; err != nil {
			return uuid.Nil, fmt.Errorf("failed to create seat tier %s: %w", data.code, err)
		}
		tierIDs[data.code] = tier.ID
		fmt.Printf("    ✅ Created seat tier: %s (x%.1f)\n", tier.Name, tier.PriceMultiplier)
	}

	template := fleet.BusTemplate{
		ID:        uuid.New(),
		CompanyID: companyID,
		Name:      "Double Decker 40",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.db.PostgreSQL.Create(&template).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to create bus template: %w", err)
	}
	fmt.Printf("    ✅ Created bus template: %s\n", template.Name)

	// Floor 1: 12 bed seats, floor 2: 28 semi-bed seats
	seatNumber := 1
	for row := 1; row <= 6; row++ {
		for _, col := range []string{"A", "B"} {
			seat := fleet.TemplateSeat{
				ID:         uuid.New(),
				TemplateID: template.ID,
				SeatTierID: tierIDs["BED"],
				SeatNumber: fmt.Sprintf("%d", seatNumber),
				Floor:      1,
				Row:        row,
				Column:     col,
				CreatedAt:  time.Now(),
			}
			if err := s.db.PostgreSQL.Create(&seat).Error; err != nil {
				return uuid.Nil, fmt.Errorf("failed to create template seat %s: %w", seat.SeatNumber, err)
			}
			seatNumber++
		}
	}
	for row := 1; row <= 7; row++ {
		for _, col := range []string{"A", "B", "C", "D"} {
			seat := fleet.TemplateSeat{
				ID:         uuid.New(),
				TemplateID: template.ID,
				SeatTierID: tierIDs["SEMI"],
				SeatNumber: fmt.Sprintf("%d", seatNumber),
				Floor:      2,
				Row:        row,
				Column:     col,
				CreatedAt:  time.Now(),
			}
			if err := s.db.PostgreSQL.Create(&seat).Error; err != nil {
				return uuid.Nil, fmt.Errorf("failed to create template seat %s: %w", seat.SeatNumber, err)
			}
			seatNumber++
		}
	}
	fmt.Printf("    ✅ Created %d template seats\n", seatNumber-1)

	bus := fleet.Bus{
		ID:        uuid.New(),
		CompanyID: companyID,
		Plate:     "B7K-924",
		Model:     "Scania K410",
		Year:      2022,
		Status:    fleet.BusStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := s.db.PostgreSQL.Create(&bus).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to create bus: %w", err)
	}
	fmt.Printf("    ✅ Created bus: %s (%s)\n", bus.Plate, bus.Model)

	// Materialize the template onto the bus
	var templateSeats []fleet.TemplateSeat
	if err := s.db.PostgreSQL.Where("template_id = ?", template.ID).Find(&templateSeats).Error; err != nil {
		return uuid.Nil, fmt.Errorf("failed to load template seats: %w", err)
	}
	for _, ts := range templateSeats {
		seat := fleet.BusSeat{
			ID:         uuid.New(),
			BusID:      bus.ID,
			SeatTierID: ts.SeatTierID,
			SeatNumber: ts.SeatNumber,
			Floor:      ts.Floor,
			Row:        ts.Row,
			Column:     ts.Column,
			Status:     fleet.SeatStatusActive,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}
		if err := s.db.PostgreSQL.Create(&seat).Error; err != nil {
			return uuid.Nil, fmt.Errorf("failed to create bus seat %s: %w", seat.SeatNumber, err)
		}
	}
	fmt.Printf("    ✅ Applied template to bus: %d seats\n", len(templateSeats))

	return bus.ID, nil
}

// SeedRoutes creates two routes with recurring timetable entries
func (s *Seeder) SeedRoutes(companyID uuid.UUID, locationIDs map[string]uuid.UUID) error {
	fmt.Println("  🗺️ Seeding routes...")

	routesData := []struct {
		name        string
		originKey   string
		destKey     string
		distanceKM  float64
		durationMin int
		basePrice   float64
		departures  []struct {
			time string
			days string
		}
	}{
		{
			"Lima - Arequipa", "lima", "arequipa", 1009, 960, 90.0,
			[]struct {
				time string
				days string
			}{
				{"08:00", "MON,TUE,WED,THU,FRI,SAT,SUN"},
				{"20:30", "MON,WED,FRI,SUN"},
			},
		},
		{
			"Lima - Trujillo", "lima", "trujillo", 561, 540, 60.0,
			[]struct {
				time string
				days string
			}{
				{"22:00", "MON,TUE,WED,THU,FRI,SAT,SUN"},
			},
		},
	}

	for _, data := range routesData {
		route := routes.Route{
			ID:                    uuid.New(),
			CompanyID:             companyID,
			OriginLocationID:      locationIDs[data.originKey],
			DestinationLocationID: locationIDs[data.destKey],
			Name:                  data.name,
			DistanceKM:            data.distanceKM,
			EstimatedDurationMin:  data.durationMin,
			BasePrice:             data.basePrice,
			IsActive:              true,
			CreatedAt:             time.Now(),
			UpdatedAt:             time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&route).Error; err != nil {
			return fmt.Errorf("failed to create route %s: %w", data.name, err)
		}
		fmt.Printf("    ✅ Created route: %s\n", route.Name)

		for _, dep := range data.departures {
			entry := routes.RouteSchedule{
				ID:            uuid.New(),
				RouteID:       route.ID,
				DepartureTime: dep.time,
				DaysOfWeek:    dep.days,
				IsActive:      true,
				CreatedAt:     time.Now(),
				UpdatedAt:     time.Now(),
			}
			if err := s.db.PostgreSQL.Create(&entry).Error; err != nil {
				return fmt.Errorf("failed to create timetable entry %s on %s: %w", dep.time, data.name, err)
			}
			fmt.Printf("    ✅ Created timetable entry: %s departs %s (%s)\n", route.Name, entry.DepartureTime, entry.DaysOfWeek)
		}
	}

	return nil
}

// SeedCustomers creates a few passengers for counter testing
func (s *Seeder) SeedCustomers() error {
	fmt.Println("  🧑 Seeding customers...")

	customersData := []struct {
		firstName  string
		lastName   string
		documentID string
		phone      string
		email      string
	}{
		{"Ana", "Torres", "71234567", "+51 987 654 321", "ana.torres@gmail.com"},
		{"Carlos", "Huaman", "72345678", "+51 986 543 210", "carlos.huaman@gmail.com"},
		{"Lucia", "Rojas", "73456789", "+51 985 432 109", ""},
	}

	for _, data := range customersData {
		customer := customers.Customer{
			ID:         uuid.New(),
			FirstName:  data.firstName,
			LastName:   data.lastName,
			DocumentID: data.documentID,
			Phone:      data.phone,
			Email:      data.email,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&customer).Error; err != nil {
			return fmt.Errorf("failed to create customer %s: %w", data.documentID, err)
		}
		fmt.Printf("    ✅ Created customer: %s %s (%s)\n", customer.FirstName, customer.LastName, customer.DocumentID)
	}

	return nil
}
