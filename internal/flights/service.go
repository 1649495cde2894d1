package flights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aerobook/internal/airlines"
	"aerobook/internal/airports"
	"aerobook/internal/shared/apperrors"
	"aerobook/internal/shared/config"
	"aerobook/internal/shared/constants"
	"aerobook/pkg/cache"
	"aerobook/pkg/logger"

	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateFlightRequest) (*FlightResponse, error)
	GetByID(ctx context.Context, id uint) (*FlightResponse, error)
	GetByNumber(ctx context.Context, flightNumber string) (*FlightResponse, error)
	GetAll(ctx context.Context) ([]FlightResponse, error)
	Search(ctx context.Context, req SearchFlightsRequest) ([]FlightResponse, error)
	GetUpcoming(ctx context.Context) ([]FlightResponse, error)
	GetByAirlineCode(ctx context.Context, airlineCode string) ([]FlightResponse, error)
	Update(ctx context.Context, id uint, req UpdateFlightRequest) (*FlightResponse, error)
	UpdateStatus(ctx context.Context, id uint, req UpdateFlightStatusRequest) (*FlightResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo        Repository
	airlineRepo airlines.Repository
	airportRepo airports.Repository
	cache       cache.Service
	config      *config.Config
	logger      *logger.Logger
}

func NewService(repo Repository, airlineRepo airlines.Repository, airportRepo airports.Repository, cacheService cache.Service, cfg *config.Config) Service {
	return &service{
		repo:        repo,
		airlineRepo: airlineRepo,
		airportRepo: airportRepo,
		cache:       cacheService,
		config:      cfg,
		logger:      logger.GetDefault(),
	}
}

func (s *service) Create(ctx context.Context, req CreateFlightRequest) (*FlightResponse, error) {
	flightNumber := strings.ToUpper(strings.TrimSpace(req.FlightNumber))

	exists, err := s.repo.ExistsByNumber(ctx, flightNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check flight number: %w", err)
	}
	if exists {
		return nil, apperrors.Conflict("flight with number %s already exists", flightNumber)
	}

	if !req.ArrivalTime.After(req.DepartureTime) {
		return nil, apperrors.Validation("arrival time must be after departure time")
	}
	if req.DepartureAirportID == req.ArrivalAirportID {
		return nil, apperrors.Validation("departure and arrival airports must differ")
	}

	if _, err := s.airlineRepo.GetByID(ctx, req.AirlineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("airline with id %d not found", req.AirlineID)
		}
		return nil, fmt.Errorf("failed to resolve airline: %w", err)
	}
	for _, airportID := range []uint{req.DepartureAirportID, req.ArrivalAirportID} {
		if _, err := s.airportRepo.GetByID(ctx, airportID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NotFound("airport with id %d not found", airportID)
			}
			return nil, fmt.Errorf("failed to resolve airport: %w", err)
		}
	}

	flight := &Flight{
		FlightNumber:       flightNumber,
		AirlineID:          req.AirlineID,
		DepartureAirportID: req.DepartureAirportID,
		ArrivalAirportID:   req.ArrivalAirportID,
		DepartureTime:      req.DepartureTime,
		ArrivalTime:        req.ArrivalTime,
		EconomySeats:       req.EconomySeats,
		BusinessSeats:      req.BusinessSeats,
		FirstClassSeats:    req.FirstClassSeats,
		TotalSeats:         req.EconomySeats + req.BusinessSeats + req.FirstClassSeats,
		BasePrice:          req.BasePrice,
		EconomyPrice:       req.EconomyPrice,
		BusinessPrice:      req.BusinessPrice,
		FirstClassPrice:    req.FirstClassPrice,
		Status:             StatusScheduled,
		Active:             true,
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, fmt.Errorf("failed to create flight: %w", err)
	}

	s.invalidateCaches(ctx)
	return toResponse(flight), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*FlightResponse, error) {
	cacheKey := fmt.Sprintf("%s%d", constants.KEY_FLIGHT_DETAIL, id)

	var cached FlightResponse
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	flight, err := s.getFlight(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toResponse(flight)
	if err := s.cache.Set(ctx, cacheKey, resp, s.config.Redis.FlightCacheTTL); err != nil {
		s.logger.WarnContext(ctx, "failed to cache flight detail", "flight_id", id, "error", err)
	}
	return resp, nil
}

func (s *service) GetByNumber(ctx context.Context, flightNumber string) (*FlightResponse, error) {
	flightNumber = strings.ToUpper(strings.TrimSpace(flightNumber))
	cacheKey := constants.KEY_FLIGHT_NUMBER + flightNumber

	var cached FlightResponse
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	flight, err := s.repo.GetByNumber(ctx, flightNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("flight with number %s not found", flightNumber)
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}

	resp := toResponse(flight)
	if err := s.cache.Set(ctx, cacheKey, resp, s.config.Redis.FlightCacheTTL); err != nil {
		s.logger.WarnContext(ctx, "failed to cache flight", "flight_number", flightNumber, "error", err)
	}
	return resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]FlightResponse, error) {
	flights, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list flights: %w", err)
	}
	return toResponseList(flights), nil
}

func (s *service) Search(ctx context.Context, req SearchFlightsRequest) ([]FlightResponse, error) {
	departureDate, err := time.Parse("2006-01-02", req.DepartureDate)
	if err != nil {
		return nil, apperrors.Validation("departure_date must be in YYYY-MM-DD format")
	}

	passengers := req.Passengers
	if passengers == 0 {
		passengers = 1
	}
	fareClass := ParseFareClass(req.FareClass)

	from, err := s.resolveAirport(ctx, req.From)
	if err != nil {
		return nil, err
	}
	to, err := s.resolveAirport(ctx, req.To)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("%s%d:%d:%s:%s:%d",
		constants.KEY_FLIGHT_SEARCH, from.ID, to.ID, req.DepartureDate, fareClass, passengers)

	var cached []FlightResponse
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	flights, err := s.repo.Search(ctx, SearchCriteria{
		DepartureAirportID: from.ID,
		ArrivalAirportID:   to.ID,
		DepartureDate:      departureDate,
		FareClass:          fareClass,
		PassengerCount:     passengers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search flights: %w", err)
	}

	resp := toResponseList(flights)
	if err := s.cache.Set(ctx, cacheKey, resp, s.config.Redis.SearchCacheTTL); err != nil {
		s.logger.WarnContext(ctx, "failed to cache flight search", "error", err)
	}
	return resp, nil
}

func (s *service) GetUpcoming(ctx context.Context) ([]FlightResponse, error) {
	var cached []FlightResponse
	if err := s.cache.Get(ctx, constants.KEY_FLIGHT_UPCOMING, &cached); err == nil {
		return cached, nil
	}

	flights, err := s.repo.GetUpcoming(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming flights: %w", err)
	}

	resp := toResponseList(flights)
	if err := s.cache.Set(ctx, constants.KEY_FLIGHT_UPCOMING, resp, s.config.Redis.SearchCacheTTL); err != nil {
		s.logger.WarnContext(ctx, "failed to cache upcoming flights", "error", err)
	}
	return resp, nil
}

func (s *service) GetByAirlineCode(ctx context.Context, airlineCode string) ([]FlightResponse, error) {
	flights, err := s.repo.GetByAirlineCode(ctx, strings.ToUpper(strings.TrimSpace(airlineCode)))
	if err != nil {
		return nil, fmt.Errorf("failed to list flights by airline: %w", err)
	}
	return toResponseList(flights), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateFlightRequest) (*FlightResponse, error) {
	flight, err := s.getFlight(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DepartureTime != nil {
		flight.DepartureTime = *req.DepartureTime
	}
	if req.ArrivalTime != nil {
		flight.ArrivalTime = *req.ArrivalTime
	}
	if !flight.ArrivalTime.After(flight.DepartureTime) {
		return nil, apperrors.Validation("arrival time must be after departure time")
	}
	if req.BasePrice != nil {
		flight.BasePrice = *req.BasePrice
	}
	if req.EconomyPrice != nil {
		flight.EconomyPrice = req.EconomyPrice
	}
	if req.BusinessPrice != nil {
		flight.BusinessPrice = req.BusinessPrice
	}
	if req.FirstClassPrice != nil {
		flight.FirstClassPrice = req.FirstClassPrice
	}

	if err := s.repo.Save(ctx, flight); err != nil {
		return nil, fmt.Errorf("failed to update flight: %w", err)
	}

	s.invalidateCaches(ctx)
	return toResponse(flight), nil
}

func (s *service) UpdateStatus(ctx context.Context, id uint, req UpdateFlightStatusRequest) (*FlightResponse, error) {
	status, ok := ParseStatus(req.Status)
	if !ok {
		return nil, apperrors.Validation("invalid flight status: %s", req.Status)
	}

	flight, err := s.getFlight(ctx, id)
	if err != nil {
		return nil, err
	}

	flight.Status = status
	if err := s.repo.Save(ctx, flight); err != nil {
		return nil, fmt.Errorf("failed to update flight status: %w", err)
	}

	s.invalidateCaches(ctx)
	return toResponse(flight), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("flight with id %d not found", id)
		}
		return fmt.Errorf("failed to delete flight: %w", err)
	}
	s.invalidateCaches(ctx)
	return nil
}

func (s *service) getFlight(ctx context.Context, id uint) (*Flight, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("flight with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get flight: %w", err)
	}
	return flight, nil
}

func (s *service) resolveAirport(ctx context.Context, code string) (*airports.Airport, error) {
	airport, err := s.airportRepo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("airport with code %s not found", code)
		}
		return nil, fmt.Errorf("failed to resolve airport: %w", err)
	}
	return airport, nil
}

func (s *service) invalidateCaches(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_FLIGHT_ALL); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate flight caches", "error", err)
	}
}
