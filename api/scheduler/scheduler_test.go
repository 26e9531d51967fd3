package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/medgrid/measure-console-api/upstream"
	"github.com/medgrid/measure-console-api/upstream/mocks"
)

func testCatalog() *upstream.Catalog {
	return upstream.NewCatalog(&mocks.PersonService{}, &mocks.CatalogService{}, time.Minute)
}

func TestSchedulerStartStop(t *testing.T) {
	s := New(testCatalog(), "@every 1h")

	assert.NoError(t, s.Start())
	s.Stop()
}

func TestSchedulerRejectsBadSpec(t *testing.T) {
	s := New(testCatalog(), "not a cron spec")

	assert.Error(t, s.Start())
}
