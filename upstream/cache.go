package upstream

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/medgrid/measure-console-api/models"
)

// DefaultCacheTTL bounds how stale a read model may get between refreshes
const DefaultCacheTTL = 5 * time.Minute

// Catalog centralizes the console's shared read models (people list,
// group/indicator catalog, unit and reason vocabularies) behind one
// data-access layer. Every write path invalidates the affected model
// explicitly; a scheduler may additionally call Refresh periodically.
type Catalog struct {
	people  PersonService
	catalog CatalogService
	ttl     time.Duration

	mu          sync.RWMutex
	peopleList  cachedPeople
	groupsList  cachedGroups
	optionsList cachedOptions
	unitsList   cachedNamed
	reasonsList cachedNamed
}

type cachedPeople struct {
	value     []models.Person
	fetchedAt time.Time
}

type cachedGroups struct {
	value     []models.Group
	fetchedAt time.Time
}

type cachedOptions struct {
	value     []models.IndicatorOption
	fetchedAt time.Time
}

type cachedNamed struct {
	value     []models.Named
	fetchedAt time.Time
}

// NewCatalog initializes the read-model cache over the given services
func NewCatalog(people PersonService, catalog CatalogService, ttl time.Duration) *Catalog {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Catalog{people: people, catalog: catalog, ttl: ttl}
}

func (c *Catalog) fresh(fetchedAt time.Time) bool {
	return !fetchedAt.IsZero() && time.Since(fetchedAt) < c.ttl
}

// People returns the cached people list, fetching on miss
func (c *Catalog) People(ctx context.Context) ([]models.Person, error) {
	c.mu.RLock()
	if c.fresh(c.peopleList.fetchedAt) {
		defer c.mu.RUnlock()
		return c.peopleList.value, nil
	}
	c.mu.RUnlock()

	people, err := c.people.List(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.peopleList = cachedPeople{value: people, fetchedAt: time.Now()}
	c.mu.Unlock()
	return people, nil
}

// Groups returns the cached group catalog, fetching on miss
func (c *Catalog) Groups(ctx context.Context) ([]models.Group, error) {
	c.mu.RLock()
	if c.fresh(c.groupsList.fetchedAt) {
		defer c.mu.RUnlock()
		return c.groupsList.value, nil
	}
	c.mu.RUnlock()

	groups, err := c.catalog.Groups(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.groupsList = cachedGroups{value: groups, fetchedAt: time.Now()}
	c.mu.Unlock()
	return groups, nil
}

// IndicatorOptions returns the cached flattened form options, fetching on miss
func (c *Catalog) IndicatorOptions(ctx context.Context) ([]models.IndicatorOption, error) {
	c.mu.RLock()
	if c.fresh(c.optionsList.fetchedAt) {
		defer c.mu.RUnlock()
		return c.optionsList.value, nil
	}
	c.mu.RUnlock()

	options, err := c.catalog.IndicatorOptions(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.optionsList = cachedOptions{value: options, fetchedAt: time.Now()}
	c.mu.Unlock()
	return options, nil
}

// Units returns the cached unit vocabulary, fetching on miss
func (c *Catalog) Units(ctx context.Context) ([]models.Named, error) {
	c.mu.RLock()
	if c.fresh(c.unitsList.fetchedAt) {
		defer c.mu.RUnlock()
		return c.unitsList.value, nil
	}
	c.mu.RUnlock()

	units, err := c.catalog.Units(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.unitsList = cachedNamed{value: units, fetchedAt: time.Now()}
	c.mu.Unlock()
	return units, nil
}

// Reasons returns the cached reason vocabulary, fetching on miss
func (c *Catalog) Reasons(ctx context.Context) ([]models.Named, error) {
	c.mu.RLock()
	if c.fresh(c.reasonsList.fetchedAt) {
		defer c.mu.RUnlock()
		return c.reasonsList.value, nil
	}
	c.mu.RUnlock()

	reasons, err := c.catalog.Reasons(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.reasonsList = cachedNamed{value: reasons, fetchedAt: time.Now()}
	c.mu.Unlock()
	return reasons, nil
}

// InvalidatePeople drops the people read model after a person write
func (c *Catalog) InvalidatePeople() {
	c.mu.Lock()
	c.peopleList = cachedPeople{}
	c.mu.Unlock()
}

// InvalidateGroups drops the catalog read models after an indicator write
func (c *Catalog) InvalidateGroups() {
	c.mu.Lock()
	c.groupsList = cachedGroups{}
	c.optionsList = cachedOptions{}
	c.mu.Unlock()
}

// InvalidateUnits drops the unit vocabulary after a unit write
func (c *Catalog) InvalidateUnits() {
	c.mu.Lock()
	c.unitsList = cachedNamed{}
	c.mu.Unlock()
}

// InvalidateReasons drops the reason vocabulary after a reason write
func (c *Catalog) InvalidateReasons() {
	c.mu.Lock()
	c.reasonsList = cachedNamed{}
	c.mu.Unlock()
}

// Refresh refetches every read model, logging and keeping the previous value
// on failure. Used by the periodic scheduler job.
func (c *Catalog) Refresh(ctx context.Context) {
	if people, err := c.people.List(ctx); err != nil {
		zap.S().Warnw("catalog refresh: people list failed", "error", err)
	} else {
		c.mu.Lock()
		c.peopleList = cachedPeople{value: people, fetchedAt: time.Now()}
		c.mu.Unlock()
	}
	if groups, err := c.catalog.Groups(ctx); err != nil {
		zap.S().Warnw("catalog refresh: groups failed", "error", err)
	} else {
		c.mu.Lock()
		c.groupsList = cachedGroups{value: groups, fetchedAt: time.Now()}
		c.mu.Unlock()
	}
	if options, err := c.catalog.IndicatorOptions(ctx); err != nil {
		zap.S().Warnw("catalog refresh: indicator options failed", "error", err)
	} else {
		c.mu.Lock()
		c.optionsList = cachedOptions{value: options, fetchedAt: time.Now()}
		c.mu.Unlock()
	}
	if units, err := c.catalog.Units(ctx); err != nil {
		zap.S().Warnw("catalog refresh: units failed", "error", err)
	} else {
		c.mu.Lock()
		c.unitsList = cachedNamed{value: units, fetchedAt: time.Now()}
		c.mu.Unlock()
	}
	if reasons, err := c.catalog.Reasons(ctx); err != nil {
		zap.S().Warnw("catalog refresh: reasons failed", "error", err)
	} else {
		c.mu.Lock()
		c.reasonsList = cachedNamed{value: reasons, fetchedAt: time.Now()}
		c.mu.Unlock()
	}
}
