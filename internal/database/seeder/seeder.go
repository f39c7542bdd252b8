package seeder

import (
	"context"

	"skillcompass/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
