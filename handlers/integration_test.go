// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/geliogabalus/pf2e-ratings/models"
	"github.com/geliogabalus/pf2e-ratings/oauth"
	"github.com/geliogabalus/pf2e-ratings/session"
	"github.com/geliogabalus/pf2e-ratings/store"
	"github.com/geliogabalus/pf2e-ratings/testutil"
)

// TestFullRatingWorkflow tests the complete end-to-end workflow:
// 1. Client registers an entry on first sight
// 2. Provider callback links an identity to a state token
// 3. Client polls the state token and becomes identified
// 4. Client submits a rating, then changes it
// 5. Histogram and category listing reflect the final state
func TestFullRatingWorkflow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	ratingStore := store.New(db)
	sessions := session.NewStore(time.Minute)
	gateway := oauth.New(testutil.GetTestConfig(), startFakeProvider(t))

	entryHandler := NewEntryHandler(ratingStore)
	ratingHandler := NewRatingHandler(ratingStore)
	identityHandler := NewIdentityHandler(ratingStore, sessions, gateway)

	entryID := testutil.RandomEntryID()

	// Step 1: Register the entry
	req := testutil.MakeRequest("POST", "/entry/spell", models.RegisterEntryRequest{ID: entryID}, nil)
	req.SetPathValue("category", models.CategorySpell)
	w := httptest.NewRecorder()
	entryHandler.Register(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Register entry failed: %d - %s", w.Code, w.Body.String())
	}
	t.Logf("Step 1 - Registered entry: %s", entryID)

	// Step 2: Provider redirects the callback with code and state
	req = testutil.MakeRequest("GET", "/oauth2?code=good-code&state=login-state", nil, nil)
	w = httptest.NewRecorder()
	identityHandler.Callback(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 2 - Callback failed: %d", w.Code)
	}

	// Step 3: Client polls and consumes the linked profile
	req = testutil.MakeRequest("GET", "/oauth2/login-state", nil, nil)
	req.SetPathValue("state", "login-state")
	w = httptest.NewRecorder()
	identityHandler.PollProfile(w, req)

	var profile models.Profile
	testutil.AssertJSON(t, w, &profile)
	if profile.ID == "" {
		t.Fatal("Step 3 - Expected a linked profile")
	}
	t.Logf("Step 3 - Linked as %s (%s)", profile.Username, profile.ID)

	// Step 4: Submit a rating, then change it
	for _, rating := range []int{3, 5} {
		req = testutil.MakeRequest("PUT", "/user/"+profile.ID+"/"+entryID, models.UpsertRatingRequest{Rating: rating}, nil)
		req.SetPathValue("userId", profile.ID)
		req.SetPathValue("entryId", entryID)
		w = httptest.NewRecorder()
		ratingHandler.UpsertUserRating(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Step 4 - Upsert rating %d failed: %d - %s", rating, w.Code, w.Body.String())
		}
	}

	// Step 5a: Histogram shows one rating of 5
	req = testutil.MakeRequest("GET", "/entry/"+entryID+"/ratings", nil, nil)
	req.SetPathValue("id", entryID)
	w = httptest.NewRecorder()
	ratingHandler.GetEntryHistogram(w, req)

	var counts map[string]int
	testutil.AssertJSON(t, w, &counts)
	if counts["5"] != 1 || counts["3"] != 0 {
		t.Errorf("Step 5 - Expected one 5-star rating and no 3-star, got %v", counts)
	}
	total := counts["1"] + counts["2"] + counts["3"] + counts["4"] + counts["5"]
	if total != 1 {
		t.Errorf("Step 5 - Expected histogram total 1, got %d", total)
	}

	// Step 5b: Category listing shows the average
	req = testutil.MakeRequest("GET", "/entry/spell", nil, nil)
	req.SetPathValue("category", models.CategorySpell)
	w = httptest.NewRecorder()
	entryHandler.ListByCategory(w, req)

	var items map[string]models.RatingItem
	testutil.AssertJSON(t, w, &items)
	item, ok := items[entryID]
	if !ok {
		t.Fatal("Step 5 - Entry missing from category listing")
	}
	if item.Rating == nil || *item.Rating != 5.0 {
		t.Errorf("Step 5 - Expected average 5.0, got %v", item.Rating)
	}

	// A second poll for the spent state token stays "not found"
	req = testutil.MakeRequest("GET", "/oauth2/login-state", nil, nil)
	req.SetPathValue("state", "login-state")
	w = httptest.NewRecorder()
	identityHandler.PollProfile(w, req)

	var errResp models.ErrorResponse
	testutil.AssertJSON(t, w, &errResp)
	if errResp.Error != "not found" {
		t.Errorf("Expected spent token to be unusable, got %q", errResp.Error)
	}
}
