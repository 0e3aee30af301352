package models

import (
	"time"

	"github.com/google/uuid"
)

// Resolution records one output directory handed out for a target
type Resolution struct {
	ID         string    `json:"id"`
	Target     string    `json:"target"`
	Name       string    `json:"name"`
	Root       string    `json:"root"`
	Path       string    `json:"path"`
	Stamp      string    `json:"stamp"`
	Attempt    int       `json:"attempt"`
	ResolvedAt time.Time `json:"resolved_at"`
}

// NewResolution creates a record with a fresh ID and the current time
func NewResolution(target, root, path string) *Resolution {
	return &Resolution{
		ID:         uuid.New().String(),
		Target:     target,
		Root:       root,
		Path:       path,
		ResolvedAt: time.Now(),
	}
}
