package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shandysiswandi/goskiplagged/internal/flightsearch/entity"
)

const (
	DefaultBaseURL = "https://skiplagged.com"
	searchPath     = "/api/search.php"
	maxBodyBytes   = 32 << 20
)

type SkiplaggedConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

type SkiplaggedProvider struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

func NewSkiplaggedProvider(cfg SkiplaggedConfig) *SkiplaggedProvider {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SkiplaggedProvider{
		client:    &http.Client{Timeout: timeout},
		baseURL:   baseURL,
		userAgent: cfg.UserAgent,
	}
}

func (s *SkiplaggedProvider) Name() string {
	return "Skiplagged"
}

func (s *SkiplaggedProvider) Search(ctx context.Context, req SearchRequest) (*Payload, error) {
	url := s.baseURL + searchPath + "?" + req.Query().Encode()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("skiplagged new request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if s.userAgent != "" {
		httpReq.Header.Set("User-Agent", s.userAgent)
	}

	res, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("skiplagged request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &entity.UpstreamError{StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("skiplagged read body: %w", err)
	}

	return Decode(body)
}
