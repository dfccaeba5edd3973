package processor

import (
	"context"
	"fmt"

	"tripvoice/internal/clients/unsplash"
	"tripvoice/internal/observability"
)

// DefaultPhotoCount is the number of photos requested when the caller does
// not specify one.
const DefaultPhotoCount = 6

// Photo is one normalized photo record with attribution.
type Photo struct {
	ID                     string `json:"id"`
	URL                    string `json:"url"`
	ThumbnailURL           string `json:"thumbnailUrl"`
	AltText                string `json:"altText"`
	PhotographerName       string `json:"photographerName"`
	PhotographerProfileURL string `json:"photographerProfileUrl"`
	DownloadLocation       string `json:"downloadLocation"`
}

// PhotoQueryResult is the full response for one destination query.
type PhotoQueryResult struct {
	Destination string  `json:"destination"`
	Photos      []Photo `json:"photos"`
	Total       int     `json:"total"`
}

// PhotoProcessor fetches illustrative destination photos through the
// Unsplash client.
type PhotoProcessor struct {
	unsplashClient *unsplash.Client
	logger         *observability.Logger
}

func New(unsplashClient *unsplash.Client, logger *observability.Logger) *PhotoProcessor {
	return &PhotoProcessor{
		unsplashClient: unsplashClient,
		logger:         logger,
	}
}

// FetchPhotos returns up to count photos for a destination. Total always
// equals the number of photos actually returned, which may be fewer than
// requested.
func (p *PhotoProcessor) FetchPhotos(ctx context.Context, destination string, count int) (PhotoQueryResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "fetch_destination_photos"},
	)

	results, err := p.unsplashClient.SearchPhotos(ctx, destination, count)
	if err != nil {
		p.logger.Error(ctx, "failed to fetch destination photos", err)
		return PhotoQueryResult{}, err
	}

	photos := make([]Photo, 0, len(results))
	for _, result := range results {
		altText := result.AltDescription
		if altText == "" {
			altText = fmt.Sprintf("Scenic view of %s", destination)
		}
		photos = append(photos, Photo{
			ID:                     result.ID,
			URL:                    result.URLs.Regular,
			ThumbnailURL:           result.URLs.Small,
			AltText:                altText,
			PhotographerName:       result.User.Name,
			PhotographerProfileURL: result.User.Links.HTML,
			DownloadLocation:       result.Links.DownloadLocation,
		})
	}

	return PhotoQueryResult{
		Destination: destination,
		Photos:      photos,
		Total:       len(photos),
	}, nil
}
