package service

import (
	"context"

	"plant/internal/modules/stats/domain"
	statsout "plant/internal/modules/stats/port/out"
	"plant/internal/platform/markdown"
)

type StatsService struct {
	reader statsout.HydrationReader
}

func NewStatsService(reader statsout.HydrationReader) *StatsService {
	return &StatsService{reader: reader}
}

func (s *StatsService) Summary(ctx context.Context) (domain.Summary, error) {
	reading, err := s.reader.Read(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return domain.Summarize(reading)
}

// Markdown renders the summary as a note with YAML frontmatter.
func (s *StatsService) Markdown(ctx context.Context) (string, error) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return "", err
	}
	return markdown.RenderFrontmatter(summary, summary.Body())
}
