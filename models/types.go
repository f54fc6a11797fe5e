// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Entry categories
const (
	CategorySpell     = "spell"
	CategoryEquipment = "equipment"
	CategoryFeat      = "feat"
)

// Star rating bounds
const (
	MinRating = 1
	MaxRating = 5
)

// ValidCategory reports whether category is one of the recognized entry categories.
func ValidCategory(category string) bool {
	switch category {
	case CategorySpell, CategoryEquipment, CategoryFeat:
		return true
	}
	return false
}

// Request types

type RegisterEntryRequest struct {
	ID string `json:"id"`
}

type UpsertRatingRequest struct {
	Rating int `json:"rating"`
}

// Response types

type RegisterEntryResponse struct {
	Message string `json:"message"`
}

type UserRatingResponse struct {
	Rating *int `json:"rating"`
}

// Domain types

// Entry is a rateable content item. The ID is the opaque content UUID the
// client sees in its compendium; the category is immutable once set.
type Entry struct {
	ID       string `json:"id"`
	Category string `json:"category"`
}

// RatingItem is one element of a category listing: the entry ID plus the
// current average star rating, or null if nobody has rated it yet.
type RatingItem struct {
	ID     string   `json:"id"`
	Rating *float64 `json:"rating"`
}

// Histogram counts how many users chose each star value 1..5 for an entry.
// Index 0 is unused so Histogram[star] reads naturally.
type Histogram [6]int

// Total returns the number of ratings in the histogram.
func (h Histogram) Total() int {
	return h[1] + h[2] + h[3] + h[4] + h[5]
}

// MarshalJSON encodes the histogram as {"1":n,...,"5":n}, the wire shape the
// rating popup consumes.
func (h Histogram) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`{"1":%d,"2":%d,"3":%d,"4":%d,"5":%d}`,
		h[1], h[2], h[3], h[4], h[5])), nil
}

// UnmarshalJSON decodes the {"1":n,...,"5":n} wire shape. Missing keys read
// as zero counts.
func (h *Histogram) UnmarshalJSON(data []byte) error {
	var counts map[string]int
	if err := json.Unmarshal(data, &counts); err != nil {
		return err
	}
	*h = Histogram{}
	for star := MinRating; star <= MaxRating; star++ {
		h[star] = counts[strconv.Itoa(star)]
	}
	return nil
}

// Average returns the mean star value, or nil if the histogram is empty.
func (h Histogram) Average() *float64 {
	total := h.Total()
	if total == 0 {
		return nil
	}
	sum := h[1]*1 + h[2]*2 + h[3]*3 + h[4]*4 + h[5]*5
	avg := float64(sum) / float64(total)
	return &avg
}

// Profile is the external identity fetched from the OAuth provider.
type Profile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
