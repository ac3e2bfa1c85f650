package in

import (
	"context"
	"time"

	"focal/internal/modules/stats/dto"
	statsin "focal/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Summary(ctx context.Context, from, to *time.Time) (dto.SummaryOutput, error) {
	return h.usecase.Summary(ctx, dto.SummaryInput{From: from, To: to})
}

func (h CLIHandler) Histogram(ctx context.Context, start time.Time, days int) (dto.HistogramOutput, error) {
	return h.usecase.Histogram(ctx, dto.HistogramInput{Start: start, Days: days})
}
