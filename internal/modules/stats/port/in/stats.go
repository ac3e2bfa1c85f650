package in

import (
	"context"

	"focal/internal/modules/stats/dto"
)

type Usecase interface {
	Summary(ctx context.Context, input dto.SummaryInput) (dto.SummaryOutput, error)
	Histogram(ctx context.Context, input dto.HistogramInput) (dto.HistogramOutput, error)
}
