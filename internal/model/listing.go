// Package model defines the core data types shared across the pipeline.
package model

// RawListing is a single record from a listings snapshot as it arrives from
// the scraper feed. Fields beyond these are ignored by the decoder; absent
// fields stay zero-valued.
type RawListing struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Rent         float64 `json:"rent"`
	Beds         int     `json:"beds"`
	Type         string  `json:"type"`
	Neighborhood string  `json:"neighborhood"`
}

// Listing is a cleaned cohort member. A Listing is never mutated once it
// enters the cohort; the Region label is attached by the classifier before
// the statistical stages run.
type Listing struct {
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Rent         float64 `json:"rent"`
	Beds         int     `json:"beds"`
	PropertyType string  `json:"type"`
	Neighborhood string  `json:"neighborhood"`
	Region       string  `json:"region,omitempty"`
}
