package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidServiceName = errors.New("service name cannot be empty")
	ErrNegativePrice      = errors.New("price cannot be negative")
)

// Service is a bookable item of the catalog. It is reference data and never mutated.
type Service struct {
	id          uuid.UUID
	name        string
	description string
	price       Money
}

func NewService(id uuid.UUID, name, description string, priceCents int64) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidServiceName
	}

	price, err := NewMoney(priceCents)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Service{
		id:          id,
		name:        name,
		description: strings.TrimSpace(description),
		price:       price,
	}, nil
}

func (s *Service) ID() uuid.UUID       { return s.id }
func (s *Service) Name() string        { return s.name }
func (s *Service) Description() string { return s.description }
func (s *Service) Price() Money        { return s.price }
