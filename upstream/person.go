package upstream

// go generate: mockery --name PersonService

import (
	"context"
	"encoding/json"

	"github.com/medgrid/measure-console-api/models"
)

// PersonService contains the person operations against the upstream API
type PersonService interface {
	List(ctx context.Context) ([]models.Person, error)
	Get(ctx context.Context, personID int) (*models.Person, error)
	Create(ctx context.Context, req models.PersonRequest) (*models.Person, error)
	Update(ctx context.Context, personID int, req models.PersonRequest) (*models.Person, error)
	Delete(ctx context.Context, personID int) error
}

type personService struct {
	c *Client
}

// NewPersonService initializes a new person service over the shared client
func NewPersonService(c *Client) PersonService {
	return &personService{c: c}
}

func (s *personService) List(ctx context.Context) ([]models.Person, error) {
	raw, err := s.c.getRaw(ctx, s.c.Endpoints.People())
	if err != nil {
		return nil, err
	}
	return ToPeople(raw), nil
}

func (s *personService) Get(ctx context.Context, personID int) (*models.Person, error) {
	raw, err := s.c.getRaw(ctx, s.c.Endpoints.Person(personID))
	if err != nil {
		return nil, err
	}
	people := ToPeople(raw)
	if len(people) != 1 {
		return nil, ErrNotFound
	}
	return &people[0], nil
}

// Create posts a new person. The normalized person is returned when the
// upstream echoed a single record; nil with no error means the caller should
// reload the list instead.
func (s *personService) Create(ctx context.Context, req models.PersonRequest) (*models.Person, error) {
	req.Normalize()
	raw, err := s.c.postJSON(ctx, s.c.Endpoints.People(), req)
	if err != nil {
		return nil, err
	}
	return singlePerson(raw), nil
}

func (s *personService) Update(ctx context.Context, personID int, req models.PersonRequest) (*models.Person, error) {
	req.Normalize()
	raw, err := s.c.patchJSON(ctx, s.c.Endpoints.Person(personID), req)
	if err != nil {
		return nil, err
	}
	return singlePerson(raw), nil
}

func (s *personService) Delete(ctx context.Context, personID int) error {
	return s.c.delete(ctx, s.c.Endpoints.Person(personID))
}

func singlePerson(raw json.RawMessage) *models.Person {
	people := ToPeople(raw)
	if len(people) == 1 {
		return &people[0]
	}
	return nil
}
