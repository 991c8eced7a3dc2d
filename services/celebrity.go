package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"motmystere/config"
)

// CelebrityService resolves an author name to a portrait through the
// Wikipedia pageimages API. Lookups are decorative: any failure degrades to
// "no image" and never surfaces to the caller.
type CelebrityService struct {
	endpoint string
	cache    *Cache
	client   *http.Client
}

var celebrityService *CelebrityService

func InitCelebrityService(cfg *config.Config) {
	celebrityService = NewCelebrityService(cfg.Celebrity.Endpoint, cfg.CelebrityCacheTTL())
}

func GetCelebrityService() *CelebrityService {
	return celebrityService
}

func NewCelebrityService(endpoint string, cacheTTL time.Duration) *CelebrityService {
	return &CelebrityService{
		endpoint: endpoint,
		cache:    NewCache(cacheTTL),
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

type wikiResponse struct {
	Query struct {
		Pages map[string]struct {
			Thumbnail struct {
				Source string `json:"source"`
			} `json:"thumbnail"`
		} `json:"pages"`
	} `json:"query"`
}

// ImageURL returns the portrait URL for a name, memoized with a TTL. Both
// hits and confirmed misses are cached; transport errors are not, so a
// transient outage does not pin "no image" for a whole TTL window.
func (s *CelebrityService) ImageURL(ctx context.Context, name string) (string, bool) {
	if cached, ok := s.cache.Get(name); ok {
		return cached, cached != ""
	}

	imageURL, err := s.lookup(ctx, name)
	if err != nil {
		log.Printf("Celebrity image lookup failed for %q: %v", name, err)
		return "", false
	}

	s.cache.Set(name, imageURL)
	return imageURL, imageURL != ""
}

func (s *CelebrityService) lookup(ctx context.Context, name string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("prop", "pageimages")
	params.Set("piprop", "thumbnail")
	params.Set("pithumbsize", "300")
	params.Set("redirects", "1")
	params.Set("titles", name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed wikiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}

	for _, page := range parsed.Query.Pages {
		if page.Thumbnail.Source != "" {
			return page.Thumbnail.Source, nil
		}
	}
	return "", nil
}
