package upstream

// go generate: mockery --name TranscriptService

import (
	"context"

	"github.com/medgrid/measure-console-api/models"
)

// TranscriptService contains the transcription-rule operations against the
// upstream API
type TranscriptService interface {
	Create(ctx context.Context, transcript models.Transcript) error
}

type transcriptService struct {
	c *Client
}

// NewTranscriptService initializes a new transcript service over the shared client
func NewTranscriptService(c *Client) TranscriptService {
	return &transcriptService{c: c}
}

func (s *transcriptService) Create(ctx context.Context, transcript models.Transcript) error {
	_, err := s.c.postJSON(ctx, s.c.Endpoints.Transcripts(), transcript)
	return err
}
