package upstream

// go generate: mockery --name IndicatorService

import (
	"context"

	"github.com/medgrid/measure-console-api/models"
)

// IndicatorService contains the indicator-definition operations against the
// upstream API
type IndicatorService interface {
	Create(ctx context.Context, indicator models.Indicator) error
}

type indicatorService struct {
	c *Client
}

// NewIndicatorService initializes a new indicator service over the shared client
func NewIndicatorService(c *Client) IndicatorService {
	return &indicatorService{c: c}
}

func (s *indicatorService) Create(ctx context.Context, indicator models.Indicator) error {
	_, err := s.c.postJSON(ctx, s.c.Endpoints.Indicators(), indicator)
	return err
}
