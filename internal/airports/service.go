package airports

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aerobook/internal/shared/apperrors"

	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateAirportRequest) (*AirportResponse, error)
	GetByID(ctx context.Context, id uint) (*AirportResponse, error)
	GetByCode(ctx context.Context, code string) (*AirportResponse, error)
	GetAll(ctx context.Context) ([]AirportResponse, error)
	GetByCountry(ctx context.Context, country string) ([]AirportResponse, error)
	Search(ctx context.Context, query string) ([]AirportResponse, error)
	Update(ctx context.Context, id uint, req UpdateAirportRequest) (*AirportResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateAirportRequest) (*AirportResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	exists, err := s.repo.ExistsByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to check airport code: %w", err)
	}
	if exists {
		return nil, apperrors.Conflict("airport with code %s already exists", code)
	}

	airport := &Airport{
		Code:     code,
		Name:     strings.TrimSpace(req.Name),
		City:     strings.TrimSpace(req.City),
		Country:  strings.TrimSpace(req.Country),
		Timezone: strings.TrimSpace(req.Timezone),
	}
	if err := s.repo.Create(ctx, airport); err != nil {
		return nil, fmt.Errorf("failed to create airport: %w", err)
	}
	return toResponse(airport), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*AirportResponse, error) {
	airport, err := s.getAirport(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(airport), nil
}

func (s *service) GetByCode(ctx context.Context, code string) (*AirportResponse, error) {
	airport, err := s.repo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("airport with code %s not found", code)
		}
		return nil, fmt.Errorf("failed to get airport: %w", err)
	}
	return toResponse(airport), nil
}

func (s *service) GetAll(ctx context.Context) ([]AirportResponse, error) {
	airports, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list airports: %w", err)
	}
	return toResponseList(airports), nil
}

func (s *service) GetByCountry(ctx context.Context, country string) ([]AirportResponse, error) {
	airports, err := s.repo.GetByCountry(ctx, strings.TrimSpace(country))
	if err != nil {
		return nil, fmt.Errorf("failed to list airports by country: %w", err)
	}
	return toResponseList(airports), nil
}

func (s *service) Search(ctx context.Context, query string) ([]AirportResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.Validation("search query is required")
	}
	airports, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search airports: %w", err)
	}
	return toResponseList(airports), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateAirportRequest) (*AirportResponse, error) {
	airport, err := s.getAirport(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		airport.Name = strings.TrimSpace(*req.Name)
	}
	if req.City != nil {
		airport.City = strings.TrimSpace(*req.City)
	}
	if req.Country != nil {
		airport.Country = strings.TrimSpace(*req.Country)
	}
	if req.Timezone != nil {
		airport.Timezone = strings.TrimSpace(*req.Timezone)
	}

	if err := s.repo.Update(ctx, airport); err != nil {
		return nil, fmt.Errorf("failed to update airport: %w", err)
	}
	return toResponse(airport), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("airport with id %d not found", id)
		}
		return fmt.Errorf("failed to delete airport: %w", err)
	}
	return nil
}

func (s *service) getAirport(ctx context.Context, id uint) (*Airport, error) {
	airport, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("airport with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get airport: %w", err)
	}
	return airport, nil
}
