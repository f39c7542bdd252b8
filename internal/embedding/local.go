package embedding

import (
	"context"
	"hash/fnv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 10000

// LocalEncoder is a deterministic feature-hashing sentence encoder: token
// unigrams and bigrams are hashed into a fixed number of signed buckets.
// It stands in for the hosted sentence-transformer with the same contract
// (text in, fixed-width vector out) and needs no network or model files.
type LocalEncoder struct {
	dim   int
	cache *lru.Cache[string, []float32]
}

func NewLocalEncoder(dim int) (*LocalEncoder, error) {
	if dim <= 0 {
		dim = DefaultDimension
	}
	cache, err := lru.New[string, []float32](defaultCacheSize)
	if err != nil {
		return nil, err
	}
	return &LocalEncoder{dim: dim, cache: cache}, nil
}

func (e *LocalEncoder) Dimension() int {
	return e.dim
}

func (e *LocalEncoder) Encode(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := e.EncodeSingle(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// EncodeSingle returns the zero vector for empty text so a user with no
// skills degrades to near-uniform low retrieval scores instead of an error.
func (e *LocalEncoder) EncodeSingle(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dim)

	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return vec, nil
	}

	if cached, ok := e.cache.Get(text); ok {
		out := make([]float32, len(cached))
		copy(out, cached)
		return out, nil
	}

	tokens := strings.Fields(text)
	for i, tok := range tokens {
		e.accumulate(vec, tok)
		if i+1 < len(tokens) {
			e.accumulate(vec, tok+" "+tokens[i+1])
		}
	}

	stored := make([]float32, len(vec))
	copy(stored, vec)
	e.cache.Add(text, stored)

	return vec, nil
}

func (e *LocalEncoder) accumulate(vec []float32, feature string) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(feature))
	sum := h.Sum64()

	bucket := int(sum % uint64(e.dim))
	// Top hash bit decides the sign so collisions cancel rather than bias.
	if (sum>>63)&1 == 1 {
		vec[bucket] -= 1
	} else {
		vec[bucket] += 1
	}
}
