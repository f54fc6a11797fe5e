// Copyright (c) 2025 Geliogabalus.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is the Go client for the PF2e Ratings API. It carries the two
client-side coordinators the rating UI is built on; the UI itself lives in
the game module and only renders what these types hand it.

# Data Source

DataSource wraps the HTTP API with a per-category listing cache:

	ds := client.NewDataSource("https://ratings.example.org")
	items, err := ds.GetRatings(ctx, "spell")

AddEntry invalidates the category's cache so a freshly registered entry
shows up on the next read.

# Login Flow

LoginFlow drives the identity handshake from the client's perspective: mint
a state token, open the provider's authorization page, then poll every 2
seconds for up to 2 minutes:

	flow := client.NewLoginFlow(ds, client.LoginConfig{
		AuthorizeURL: gateway.AuthorizeURL,
		OpenURL:      browser.Open,
	})
	profile, err := flow.Start(ctx)

A nil profile with a nil error means the window elapsed: the user stays
anonymous and may try again. Cancel the context to tear the flow down with
the dialog. Only one flow polls at a time (ErrLoginActive).

# Rating Session

RatingSession implements commit-on-close: star clicks update memory only and
a single write happens when the dialog closes, and only if the value
actually changed:

	s, _ := client.OpenRatingSession(ctx, ds, userID, entryID)
	s.Select(5)
	err := s.Close(ctx) // one PUT, or none if nothing changed
*/
package client
