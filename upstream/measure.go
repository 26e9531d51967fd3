package upstream

// go generate: mockery --name MeasureService

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/medgrid/measure-console-api/models"
)

// MeasureService contains the measurement operations against the upstream API
type MeasureService interface {
	Measures(ctx context.Context, personID int) ([]models.GroupBlock, error)
	Create(ctx context.Context, personID int, req models.MeasureRequest) error
	Update(ctx context.Context, personID, measureID int, req models.MeasureRequest) error
	Delete(ctx context.Context, personID, measureID int) error
	Decrypt(ctx context.Context, personID int, date string) ([]models.DecryptSlice, error)
}

type measureService struct {
	c *Client
}

// NewMeasureService initializes a new measure service over the shared client
func NewMeasureService(c *Client) MeasureService {
	return &measureService{c: c}
}

// Measures fetches the pre-pivoted group blocks for a person. A wrapped or
// non-array payload normalizes to an empty block list.
func (s *measureService) Measures(ctx context.Context, personID int) ([]models.GroupBlock, error) {
	raw, err := s.c.getRaw(ctx, s.c.Endpoints.PersonMeasures(personID))
	if err != nil {
		return nil, err
	}
	blocks := make([]models.GroupBlock, 0)
	for _, item := range decodeList(raw) {
		var block models.GroupBlock
		if err := json.Unmarshal(item, &block); err != nil {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func (s *measureService) Create(ctx context.Context, personID int, req models.MeasureRequest) error {
	_, err := s.c.postJSON(ctx, s.c.Endpoints.PersonMeasures(personID), req)
	return err
}

func (s *measureService) Update(ctx context.Context, personID, measureID int, req models.MeasureRequest) error {
	_, err := s.c.patchJSON(ctx, s.c.Endpoints.Measure(personID, measureID), req)
	return err
}

func (s *measureService) Delete(ctx context.Context, personID, measureID int) error {
	return s.c.delete(ctx, s.c.Endpoints.Measure(personID, measureID))
}

// Decrypt fetches the percentage breakdown for a person and date. The schema
// is externally owned: values may be {"percentage": n} objects or bare
// numbers, anything else is dropped rather than rejected.
func (s *measureService) Decrypt(ctx context.Context, personID int, date string) ([]models.DecryptSlice, error) {
	raw, err := s.c.getRaw(ctx, s.c.Endpoints.Decrypt(personID, date))
	if err != nil {
		return nil, err
	}
	var breakdown map[string]json.RawMessage
	if err := json.Unmarshal(raw, &breakdown); err != nil {
		return []models.DecryptSlice{}, nil
	}
	slices := make([]models.DecryptSlice, 0, len(breakdown))
	for category, value := range breakdown {
		var wrapped struct {
			Percentage *float64 `json:"percentage"`
		}
		if err := json.Unmarshal(value, &wrapped); err == nil && wrapped.Percentage != nil {
			slices = append(slices, models.DecryptSlice{Category: category, Percentage: *wrapped.Percentage})
			continue
		}
		var bare float64
		if err := json.Unmarshal(value, &bare); err == nil {
			slices = append(slices, models.DecryptSlice{Category: category, Percentage: bare})
		}
	}
	sort.Slice(slices, func(i, j int) bool { return slices[i].Category < slices[j].Category })
	return slices, nil
}
