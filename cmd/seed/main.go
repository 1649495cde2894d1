package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"aerobook/internal/airlines"
	"aerobook/internal/airports"
	"aerobook/internal/flights"
	"aerobook/internal/shared/config"
	"aerobook/internal/shared/database"
	"aerobook/internal/users"

	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Aerobook Database Seeder...")

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
		"payments",
		"passengers",
		"bookings",
		"flights",
		"airports",
		"airlines",
		"users",
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

	if err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	airlineIDs, err := s.SeedAirlines()
	if err != nil {
		return fmt.Errorf("failed to seed airlines: %w", err)
	}

	airportIDs, err := s.SeedAirports()
	if err != nil {
		return fmt.Errorf("failed to seed airports: %w", err)
	}

	if err := s.SeedFlights(airlineIDs, airportIDs); err != nil {
		return fmt.Errorf("failed to seed flights: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
		log.Printf("Warning: Failed to clear Redis cache: %v", err)
	}

	return nil
}

// SeedUsers creates 1 admin and 2 customer accounts
func (s *Seeder) SeedUsers() error {
	fmt.Println("  👤 Seeding users...")

	// Hash password for all users (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		firstName string
		lastName  string
		email     string
		country   string
		role      users.Role
	}{
		{"Admin", "User", "admin@aerobook.dev", "India", users.RoleAdmin},
		{"Asha", "Nair", "asha.nair@example.com", "India", users.RoleCustomer},
		{"Rohan", "Mehta", "rohan.mehta@example.com", "India", users.RoleCustomer},
	}

	for _, userData := range usersData {
		user := users.User{
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Country:   userData.country,
			Role:      userData.role,
			Enabled:   true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return nil
}

// SeedAirlines creates the carrier catalog, keyed by IATA code
func (s *Seeder) SeedAirlines() (map[string]uint, error) {
	fmt.Println("  ✈️ Seeding airlines...")

	airlineIDs := make(map[string]uint)

	airlinesData := []struct {
		code    string
		name    string
		country string
	}{
		{"AI", "Air India", "India"},
		{"6E", "IndiGo", "India"},
		{"EK", "Emirates", "United Arab Emirates"},
		{"SQ", "Singapore Airlines", "Singapore"},
		{"BA", "British Airways", "United Kingdom"},
	}

	for _, airlineData := range airlinesData {
		airline := airlines.Airline{
			Code:      airlineData.code,
			Name:      airlineData.name,
			Country:   airlineData.country,
			Active:    true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&airline).Error; err != nil {
			return nil, fmt.Errorf("failed to create airline %s: %w", airline.Code, err)
		}

		airlineIDs[airline.Code] = airline.ID
		fmt.Printf("    ✅ Created airline: %s (%s)\n", airline.Name, airline.Code)
	}

	return airlineIDs, nil
}

// SeedAirports creates the airport catalog, keyed by IATA code
func (s *Seeder) SeedAirports() (map[string]uint, error) {
	fmt.Println("  🛫 Seeding airports...")

	airportIDs := make(map[string]uint)

	airportsData := []struct {
		code     string
		name     string
		city     string
		country  string
		timezone string
	}{
		{"BOM", "Chhatrapati Shivaji Maharaj International Airport", "Mumbai", "India", "Asia/Kolkata"},
		{"DEL", "Indira Gandhi International Airport", "Delhi", "India", "Asia/Kolkata"},
		{"BLR", "Kempegowda International Airport", "Bengaluru", "India", "Asia/Kolkata"},
		{"DXB", "Dubai International Airport", "Dubai", "United Arab Emirates", "Asia/Dubai"},
		{"SIN", "Singapore Changi Airport", "Singapore", "Singapore", "Asia/Singapore"},
		{"LHR", "Heathrow Airport", "London", "United Kingdom", "Europe/London"},
	}

	for _, airportData := range airportsData {
		airport := airports.Airport{
			Code:      airportData.code,
			Name:      airportData.name,
			City:      airportData.city,
			Country:   airportData.country,
			Timezone:  airportData.timezone,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&airport).Error; err != nil {
			return nil, fmt.Errorf("failed to create airport %s: %w", airport.Code, err)
		}

		airportIDs[airport.Code] = airport.ID
		fmt.Printf("    ✅ Created airport: %s (%s)\n", airport.Name, airport.Code)
	}

	return airportIDs, nil
}

// SeedFlights creates a schedule spread over the next three months
func (s *Seeder) SeedFlights(airlineIDs, airportIDs map[string]uint) error {
	fmt.Println("  🛩️ Seeding flights...")

	flightsData := []struct {
		number      string
		airline     string
		from        string
		to          string
		daysFromNow int
		departHour  int
		durationHrs int
		economy     int
		business    int
		firstClass  int
		basePrice   float64
	}{
		{"AI101", "AI", "BOM", "DEL", 7, 6, 2, 120, 24, 8, 4500.0},
		{"AI102", "AI", "DEL", "BOM", 7, 18, 2, 120, 24, 8, 4500.0},
		{"6E201", "6E", "BOM", "BLR", 10, 9, 2, 174, 0, 0, 3200.0},
		{"6E202", "6E", "BLR", "BOM", 10, 14, 2, 174, 0, 0, 3200.0},
		{"EK501", "EK", "BOM", "DXB", 14, 4, 3, 280, 42, 14, 18000.0},
		{"EK502", "EK", "DXB", "BOM", 15, 10, 3, 280, 42, 14, 18000.0},
		{"SQ423", "SQ", "DEL", "SIN", 21, 23, 5, 200, 48, 12, 26000.0},
		{"BA138", "BA", "BOM", "LHR", 30, 2, 9, 230, 56, 14, 52000.0},
		{"AI131", "AI", "BLR", "LHR", 45, 13, 10, 210, 40, 12, 48000.0},
		{"6E305", "6E", "DEL", "BLR", 60, 7, 3, 174, 0, 0, 3800.0},
	}

	for _, flightData := range flightsData {
		departure := time.Now().AddDate(0, 0, flightData.daysFromNow).Truncate(24 * time.Hour).
			Add(time.Duration(flightData.departHour) * time.Hour)
		arrival := departure.Add(time.Duration(flightData.durationHrs) * time.Hour)

		flight := flights.Flight{
			FlightNumber:       flightData.number,
			AirlineID:          airlineIDs[flightData.airline],
			DepartureAirportID: airportIDs[flightData.from],
			ArrivalAirportID:   airportIDs[flightData.to],
			DepartureTime:      departure,
			ArrivalTime:        arrival,
			EconomySeats:       flightData.economy,
			BusinessSeats:      flightData.business,
			FirstClassSeats:    flightData.firstClass,
			TotalSeats:         flightData.economy + flightData.business + flightData.firstClass,
			BasePrice:          flightData.basePrice,
			Status:             flights.StatusScheduled,
			Active:             true,
			CreatedAt:          time.Now(),
			UpdatedAt:          time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&flight).Error; err != nil {
			return fmt.Errorf("failed to create flight %s: %w", flight.FlightNumber, err)
		}

		fmt.Printf("    ✅ Created flight: %s %s->%s (%d seats)\n",
			flight.FlightNumber, flightData.from, flightData.to, flight.TotalSeats)
	}

	return nil
}
