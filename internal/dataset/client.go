// Package dataset talks to the canonical jokes API. The joke list is
// cached in redis: it is read on every submission for the duplicate check
// and by the sticky messages for the published count.
package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"joke_suggestions_system/configs"
	"joke_suggestions_system/internal/db/models"

	"github.com/redis/go-redis/v9"
)

const (
	jokesCacheKey = "jokes:list"
	jokesCacheTTL = 5 * time.Minute
)

type Joke struct {
	ID       int64           `json:"id"`
	Category models.Category `json:"type"`
	Question string          `json:"joke"`
	Answer   string          `json:"answer"`
}

// JokePayload mutates the canonical dataset: JokeID nil adds a joke,
// non-nil updates it in place.
type JokePayload struct {
	JokeID   *int64          `json:"id,omitempty"`
	Category models.Category `json:"type"`
	Question string          `json:"joke"`
	Answer   string          `json:"answer"`
}

type mergeResponse struct {
	Success bool  `json:"success"`
	JokeID  int64 `json:"joke_id"`
}

type service struct {
	client  *http.Client
	baseURL string
	token   string
	cache   *redis.Client
}

type Service interface {
	MergeJoke(ctx context.Context, payload JokePayload) (int64, error)
	Jokes(ctx context.Context) ([]Joke, error)
	Count(ctx context.Context) (int, error)
	RandomJoke(ctx context.Context) (*Joke, error)
}

func NewService(config configs.JokesAPI, cache *redis.Client) Service {
	return &service{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: config.URL,
		token:   config.Token,
		cache:   cache,
	}
}

func (s *service) MergeJoke(ctx context.Context, payload JokePayload) (int64, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}

	method := http.MethodPost
	url := fmt.Sprintf("%s/jokes", s.baseURL)
	if payload.JokeID != nil {
		method = http.MethodPut
		url = fmt.Sprintf("%s/jokes/%d", s.baseURL, *payload.JokeID)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return 0, err
	}
	request.Header.Add("Content-Type", "application/json; charset=utf-8")
	if s.token != "" {
		request.Header.Add("Authorization", "Bearer "+s.token)
	}

	response, err := s.client.Do(request)
	if err != nil {
		return 0, err
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, err
	}

	responseData := new(mergeResponse)
	if err := json.Unmarshal(responseBody, responseData); err != nil {
		return 0, err
	}
	if !responseData.Success {
		return 0, fmt.Errorf("jokes api refused the merge: %s", string(responseBody))
	}

	// The list changed, drop the cache so the next read sees the merge.
	if s.cache != nil {
		s.cache.Del(ctx, jokesCacheKey)
	}

	return responseData.JokeID, nil
}

func (s *service) Jokes(ctx context.Context) ([]Joke, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, jokesCacheKey).Bytes()
		if err == nil {
			jokes := make([]Joke, 0)
			if err := json.Unmarshal(cached, &jokes); err == nil {
				return jokes, nil
			}
		}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/jokes", s.baseURL), nil)
	if err != nil {
		return nil, err
	}

	response, err := s.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	jokes := make([]Joke, 0)
	if err := json.Unmarshal(responseBody, &jokes); err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, jokesCacheKey, responseBody, jokesCacheTTL)
	}

	return jokes, nil
}

func (s *service) Count(ctx context.Context) (int, error) {
	jokes, err := s.Jokes(ctx)
	if err != nil {
		return 0, err
	}
	return len(jokes), nil
}

func (s *service) RandomJoke(ctx context.Context) (*Joke, error) {
	jokes, err := s.Jokes(ctx)
	if err != nil {
		return nil, err
	}
	if len(jokes) == 0 {
		return nil, fmt.Errorf("no jokes available")
	}

	joke := jokes[rand.Intn(len(jokes))]
	return &joke, nil
}
