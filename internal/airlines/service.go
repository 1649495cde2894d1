package airlines

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"aerobook/internal/shared/apperrors"

	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateAirlineRequest) (*AirlineResponse, error)
	GetByID(ctx context.Context, id uint) (*AirlineResponse, error)
	GetByCode(ctx context.Context, code string) (*AirlineResponse, error)
	GetAll(ctx context.Context) ([]AirlineResponse, error)
	GetActive(ctx context.Context) ([]AirlineResponse, error)
	GetByCountry(ctx context.Context, country string) ([]AirlineResponse, error)
	Update(ctx context.Context, id uint, req UpdateAirlineRequest) (*AirlineResponse, error)
	Deactivate(ctx context.Context, id uint) (*AirlineResponse, error)
	Reactivate(ctx context.Context, id uint) (*AirlineResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateAirlineRequest) (*AirlineResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))

	exists, err := s.repo.ExistsByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to check airline code: %w", err)
	}
	if exists {
		return nil, apperrors.Conflict("airline with code %s already exists", code)
	}

	airline := &Airline{
		Code:    code,
		Name:    strings.TrimSpace(req.Name),
		Country: strings.TrimSpace(req.Country),
		Active:  true,
	}
	if err := s.repo.Create(ctx, airline); err != nil {
		return nil, fmt.Errorf("failed to create airline: %w", err)
	}
	return toResponse(airline), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*AirlineResponse, error) {
	airline, err := s.getAirline(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(airline), nil
}

func (s *service) GetByCode(ctx context.Context, code string) (*AirlineResponse, error) {
	airline, err := s.repo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("airline with code %s not found", code)
		}
		return nil, fmt.Errorf("failed to get airline: %w", err)
	}
	return toResponse(airline), nil
}

func (s *service) GetAll(ctx context.Context) ([]AirlineResponse, error) {
	airlines, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list airlines: %w", err)
	}
	return toResponseList(airlines), nil
}

func (s *service) GetActive(ctx context.Context) ([]AirlineResponse, error) {
	airlines, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active airlines: %w", err)
	}
	return toResponseList(airlines), nil
}

func (s *service) GetByCountry(ctx context.Context, country string) ([]AirlineResponse, error) {
	airlines, err := s.repo.GetByCountry(ctx, strings.TrimSpace(country))
	if err != nil {
		return nil, fmt.Errorf("failed to list airlines by country: %w", err)
	}
	return toResponseList(airlines), nil
}

func (s *service) Update(ctx context.Context, id uint, req UpdateAirlineRequest) (*AirlineResponse, error) {
	airline, err := s.getAirline(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		airline.Name = strings.TrimSpace(*req.Name)
	}
	if req.Country != nil {
		airline.Country = strings.TrimSpace(*req.Country)
	}

	if err := s.repo.Update(ctx, airline); err != nil {
		return nil, fmt.Errorf("failed to update airline: %w", err)
	}
	return toResponse(airline), nil
}

func (s *service) Deactivate(ctx context.Context, id uint) (*AirlineResponse, error) {
	return s.setActive(ctx, id, false)
}

func (s *service) Reactivate(ctx context.Context, id uint) (*AirlineResponse, error) {
	return s.setActive(ctx, id, true)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("airline with id %d not found", id)
		}
		return fmt.Errorf("failed to delete airline: %w", err)
	}
	return nil
}

func (s *service) setActive(ctx context.Context, id uint, active bool) (*AirlineResponse, error) {
	airline, err := s.getAirline(ctx, id)
	if err != nil {
		return nil, err
	}
	airline.Active = active
	if err := s.repo.Update(ctx, airline); err != nil {
		return nil, fmt.Errorf("failed to update airline status: %w", err)
	}
	return toResponse(airline), nil
}

func (s *service) getAirline(ctx context.Context, id uint) (*Airline, error) {
	airline, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("airline with id %d not found", id)
		}
		return nil, fmt.Errorf("failed to get airline: %w", err)
	}
	return airline, nil
}
