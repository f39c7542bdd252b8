package embedding

import (
	"context"
	"fmt"
	"sync"
)

// DefaultDimension matches the reference deployment's sentence embedding
// width. All roles and queries in one deployment must share it; a mismatch is
// a configuration error caught at startup, not something request code
// recovers from.
const DefaultDimension = 384

// Encoder maps text to a fixed-length dense vector. The model behind it is a
// frozen black box: same text, same vector, always.
type Encoder interface {
	Encode(ctx context.Context, texts []string) ([][]float32, error)
	EncodeSingle(ctx context.Context, text string) ([]float32, error)
	Dimension() int
}

// Service wraps an Encoder constructor with init-once semantics so the model
// is built at most once per process even under concurrent first calls.
type Service struct {
	build func() (Encoder, error)

	once sync.Once
	enc  Encoder
	err  error
}

func NewService(build func() (Encoder, error)) *Service {
	return &Service{build: build}
}

func (s *Service) encoder() (Encoder, error) {
	s.once.Do(func() {
		if s.build == nil {
			s.err = fmt.Errorf("no encoder constructor configured")
			return
		}
		s.enc, s.err = s.build()
	})
	return s.enc, s.err
}

func (s *Service) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}
	enc, err := s.encoder()
	if err != nil {
		return nil, err
	}
	return enc.Encode(ctx, texts)
}

func (s *Service) EncodeSingle(ctx context.Context, text string) ([]float32, error) {
	enc, err := s.encoder()
	if err != nil {
		return nil, err
	}
	return enc.EncodeSingle(ctx, text)
}

func (s *Service) Dimension() int {
	enc, err := s.encoder()
	if err != nil {
		return DefaultDimension
	}
	return enc.Dimension()
}
