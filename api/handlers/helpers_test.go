package handlers

import (
	"fmt"

	"github.com/medgrid/measure-console-api/upstream"
)

func notFoundErr() error {
	return fmt.Errorf("GET /people/99: %w", upstream.ErrNotFound)
}
