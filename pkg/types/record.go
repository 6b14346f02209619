// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubengine pipeline.
package types

// Author identifies a publication author. Two authors are the same
// author when both name and profile match.
type Author struct {
	// Name is the author's display name.
	Name string `json:"name" yaml:"name"`

	// Profile is the URI of the author's profile page. Empty when unknown.
	Profile string `json:"profile" yaml:"profile"`
}

// PublicationRecord holds one bibliographic record as produced by the
// corpus shaper. Authors is always a list of Author values regardless of
// the shape the raw source used.
type PublicationRecord struct {
	// Title is the publication title.
	Title string `json:"title" yaml:"title"`

	// Link is the URL of the publication page.
	Link string `json:"link" yaml:"link"`

	// Authors lists the authors in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// PublishedDate is the publication date as the source reported it.
	// Empty when unknown.
	PublishedDate string `json:"published_date" yaml:"published_date"`

	// Abstract is the publication abstract. Empty when absent.
	Abstract string `json:"abstract" yaml:"abstract"`
}

// RankedResult is a PublicationRecord with a relevance score attached.
// Score is cosine similarity in [0,1] rounded to two decimals, or 0.0
// in the unranked "all records" listing.
type RankedResult struct {
	PublicationRecord `yaml:",inline"`

	Score float64 `json:"score" yaml:"score"`
}
