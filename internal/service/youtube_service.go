package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"edubridge_backend/internal/config"
	"edubridge_backend/pkg/logger"

	"go.uber.org/zap"
)

// VideoResource is a recommended video attached to a roadmap.
type VideoResource struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

// YouTubeService queries the YouTube Data API v3 search endpoint for
// tutorial videos related to a roadmap topic.
type YouTubeService struct {
	config config.YouTubeConfig
	client *http.Client
}

func NewYouTubeService(cfg config.YouTubeConfig) *YouTubeService {
	return &YouTubeService{
		config: cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
}

// SearchTutorials looks up "<topic> tutorial 2025" and returns short links.
// Lookup failures degrade to an empty list; roadmaps render without videos.
func (s *YouTubeService) SearchTutorials(ctx context.Context, topic string) []VideoResource {
	return s.Search(ctx, topic+" tutorial 2025")
}

// Search runs a raw video query against the search endpoint.
func (s *YouTubeService) Search(ctx context.Context, query string) []VideoResource {
	if s.config.APIKey == "" {
		return nil
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", fmt.Sprintf("%d", s.config.MaxResults))
	params.Set("key", s.config.APIKey)

	endpoint := "https://www.googleapis.com/youtube/v3/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Log.Warn("youtube search failed", zap.String("query", query), zap.Error(err))
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Warn("youtube search non-200", zap.Int("status", resp.StatusCode))
		return nil
	}

	var result youtubeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil
	}

	videos := make([]VideoResource, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, VideoResource{
			Title: item.Snippet.Title,
			Link:  "https://youtu.be/" + item.ID.VideoID,
		})
	}
	return videos
}
