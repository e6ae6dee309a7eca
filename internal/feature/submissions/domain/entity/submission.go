// Package entity defines the domain models for the submissions feature.
package entity

import "time"

// Submission represents a monthly token nomination.
// Symbol is always stored uppercase; normalization happens in the usecase
// before any comparison or insert.
type Submission struct {
	ID          uint      // Assigned by the store on insert
	Name        string    // Free-text token name
	Symbol      string    // Ticker symbol, uppercase
	Description string    // Free-text description
	CreatedAt   time.Time // Set on insert
	UpdatedAt   time.Time // Refreshed on every mutation
}
