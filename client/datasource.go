// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/geliogabalus/pf2e-ratings/models"
)

// DataSource is the client-side API surface. Category listings are cached
// until the client registers a new entry in that category.
type DataSource struct {
	client *resty.Client

	mu    sync.Mutex
	cache map[string]map[string]models.RatingItem
}

func NewDataSource(apiURL string) *DataSource {
	return &DataSource{
		client: resty.New().
			SetBaseURL(apiURL).
			SetTimeout(10 * time.Second),
		cache: make(map[string]map[string]models.RatingItem),
	}
}

// GetRatings returns the id → rating-item listing for a category, served
// from the cache when possible.
func (ds *DataSource) GetRatings(ctx context.Context, category string) (map[string]models.RatingItem, error) {
	ds.mu.Lock()
	if items, ok := ds.cache[category]; ok {
		ds.mu.Unlock()
		return items, nil
	}
	ds.mu.Unlock()

	items := make(map[string]models.RatingItem)
	resp, err := ds.client.R().
		SetContext(ctx).
		SetResult(&items).
		Get("/entry/" + url.PathEscape(category))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ratings: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch ratings: server returned %s", resp.Status())
	}

	ds.mu.Lock()
	ds.cache[category] = items
	ds.mu.Unlock()

	return items, nil
}

// AddEntry registers an entry the client saw for the first time and drops
// the category's cached listing so the next read sees it.
func (ds *DataSource) AddEntry(ctx context.Context, id, category string) error {
	ds.mu.Lock()
	delete(ds.cache, category)
	ds.mu.Unlock()

	resp, err := ds.client.R().
		SetContext(ctx).
		SetBody(models.RegisterEntryRequest{ID: id}).
		Post("/entry/" + url.PathEscape(category))
	if err != nil {
		return fmt.Errorf("failed to add entry: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("failed to add entry: server returned %s", resp.Status())
	}

	return nil
}

// GetEntryRatings returns the per-star histogram for an entry.
func (ds *DataSource) GetEntryRatings(ctx context.Context, entryID string) (models.Histogram, error) {
	var hist models.Histogram
	resp, err := ds.client.R().
		SetContext(ctx).
		SetResult(&hist).
		Get("/entry/" + url.PathEscape(entryID) + "/ratings")
	if err != nil {
		return hist, fmt.Errorf("failed to fetch entry ratings: %w", err)
	}
	if resp.IsError() {
		return hist, fmt.Errorf("failed to fetch entry ratings: server returned %s", resp.Status())
	}
	return hist, nil
}

// GetUserRating returns the user's current star value for an entry, or nil.
func (ds *DataSource) GetUserRating(ctx context.Context, userID, entryID string) (*int, error) {
	var result models.UserRatingResponse
	resp, err := ds.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/user/" + url.PathEscape(userID) + "/" + url.PathEscape(entryID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user rating: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch user rating: server returned %s", resp.Status())
	}
	return result.Rating, nil
}

// PutUserRating commits the user's star value for an entry.
func (ds *DataSource) PutUserRating(ctx context.Context, userID, entryID string, rating int) error {
	resp, err := ds.client.R().
		SetContext(ctx).
		SetBody(models.UpsertRatingRequest{Rating: rating}).
		Put("/user/" + url.PathEscape(userID) + "/" + url.PathEscape(entryID))
	if err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("failed to save rating: server returned %s", resp.Status())
	}
	return nil
}

// GetLinkedProfile polls the server for the profile linked to a state token.
// Returns (nil, nil) while the link has not completed - the expected steady
// state of an in-progress login.
func (ds *DataSource) GetLinkedProfile(ctx context.Context, state string) (*models.Profile, error) {
	var payload struct {
		models.Profile
		Error string `json:"error"`
	}
	resp, err := ds.client.R().
		SetContext(ctx).
		SetResult(&payload).
		Get("/oauth2/" + url.PathEscape(state))
	if err != nil {
		return nil, fmt.Errorf("failed to poll profile: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to poll profile: server returned %s", resp.Status())
	}
	if payload.Error != "" || payload.ID == "" {
		return nil, nil
	}
	profile := payload.Profile
	return &profile, nil
}
