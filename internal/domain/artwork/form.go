package artwork

import "strings"

// UpdateRequest is the full edit-form payload for PUT /admin/artworks/{id}.
type UpdateRequest struct {
	Title           string `json:"title"`
	PaintedLocation string `json:"paintedLocation"`
	StartDate       string `json:"startDate"`
	EndDate         string `json:"endDate"`
	InProgress      bool   `json:"inProgress"`
	Detalle         string `json:"detalle"`
	Bitacora        string `json:"bitacora"`
	PrimaryImage    string `json:"primaryImage"`
}

// CreateRequest creates a new artwork record with a title only.
type CreateRequest struct {
	Title string `json:"title"`
}

// FormFromArtwork seeds an edit form from a server record, defaulting
// missing optional fields to empty/false.
func FormFromArtwork(a Artwork) UpdateRequest {
	f := UpdateRequest{
		Title:           a.Title,
		PaintedLocation: a.PaintedLocation,
		StartDate:       a.StartDate,
		EndDate:         a.EndDate,
		InProgress:      a.InProgress,
		Detalle:         a.Detalle,
		Bitacora:        a.Bitacora,
		PrimaryImage:    a.PrimaryImage,
	}
	f.Normalize()
	return f
}

// SetInProgress flips the in-progress flag. An in-progress work has no end
// date, so switching it on clears the field.
func (f *UpdateRequest) SetInProgress(v bool) {
	f.InProgress = v
	if v {
		f.EndDate = ""
	}
}

// Normalize enforces the form invariants: trimmed title and no end date
// while the work is in progress.
func (f *UpdateRequest) Normalize() {
	f.Title = strings.TrimSpace(f.Title)
	if f.InProgress {
		f.EndDate = ""
	}
}
