package upstream

// go generate: mockery --name CatalogService

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/medgrid/measure-console-api/models"
)

// CatalogService contains the reference-data operations against the upstream
// API: the group/indicator catalog and the unit and reason vocabularies
type CatalogService interface {
	Groups(ctx context.Context) ([]models.Group, error)
	IndicatorOptions(ctx context.Context) ([]models.IndicatorOption, error)
	Units(ctx context.Context) ([]models.Named, error)
	CreateUnit(ctx context.Context, name string) error
	DeleteUnit(ctx context.Context, unitID int) error
	Reasons(ctx context.Context) ([]models.Named, error)
	CreateReason(ctx context.Context, name string) error
	DeleteReason(ctx context.Context, reasonID int) error
}

type catalogService struct {
	c *Client
}

// NewCatalogService initializes a new catalog service over the shared client
func NewCatalogService(c *Client) CatalogService {
	return &catalogService{c: c}
}

func (s *catalogService) Groups(ctx context.Context) ([]models.Group, error) {
	raw, err := s.c.getRaw(ctx, s.c.Endpoints.Groups())
	if err != nil {
		return nil, err
	}
	groups := make([]models.Group, 0)
	for i, item := range decodeList(raw) {
		var g models.Group
		if err := json.Unmarshal(item, &g); err != nil {
			continue
		}
		if g.ID == 0 {
			g.ID = i + 1
		}
		g.Indicators = lo.Map(g.Indicators, func(gi models.GroupIndicator, _ int) models.GroupIndicator {
			gi.Units = lo.Filter(gi.Units, func(u string, _ int) bool { return u != "" })
			return gi
		})
		groups = append(groups, g)
	}
	return groups, nil
}

// IndicatorOptions flattens the catalog into the measurement-entry form's
// option list, sorted by label for stable display
func (s *catalogService) IndicatorOptions(ctx context.Context) ([]models.IndicatorOption, error) {
	groups, err := s.Groups(ctx)
	if err != nil {
		return nil, err
	}
	options := lo.FlatMap(groups, func(g models.Group, _ int) []models.IndicatorOption {
		return lo.Map(g.Indicators, func(gi models.GroupIndicator, _ int) models.IndicatorOption {
			return models.IndicatorOption{
				Key:   g.GroupName + "||" + gi.Name,
				Label: g.GroupName + " · " + gi.Name,
				Name:  gi.Name,
				Units: gi.Units,
			}
		})
	})
	sort.SliceStable(options, func(i, j int) bool {
		return collator.CompareString(options[i].Label, options[j].Label) < 0
	})
	return options, nil
}

func (s *catalogService) Units(ctx context.Context) ([]models.Named, error) {
	raw, err := s.c.getRaw(ctx, s.c.Endpoints.Units())
	if err != nil {
		return nil, err
	}
	units := ToNamed(raw)
	sortNamed(units)
	return units, nil
}

func (s *catalogService) CreateUnit(ctx context.Context, name string) error {
	return s.c.postPlain(ctx, s.c.Endpoints.Units(), strings.TrimSpace(name))
}

func (s *catalogService) DeleteUnit(ctx context.Context, unitID int) error {
	return s.c.delete(ctx, s.c.Endpoints.Unit(unitID))
}

func (s *catalogService) Reasons(ctx context.Context) ([]models.Named, error) {
	raw, err := s.c.getRaw(ctx, s.c.Endpoints.Reasons())
	if err != nil {
		return nil, err
	}
	reasons := ToNamed(raw)
	sortNamed(reasons)
	return reasons, nil
}

func (s *catalogService) CreateReason(ctx context.Context, name string) error {
	return s.c.postPlain(ctx, s.c.Endpoints.Reasons(), strings.TrimSpace(name))
}

func (s *catalogService) DeleteReason(ctx context.Context, reasonID int) error {
	return s.c.delete(ctx, s.c.Endpoints.Reason(reasonID))
}
