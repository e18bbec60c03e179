package domain

import "context"

// DatasetLoader fetches and transforms the dataset at a location.
type DatasetLoader interface {
	Load(ctx context.Context, location string) (Dataset, error)
}
