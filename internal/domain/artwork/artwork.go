package artwork

// Artwork is the client-side projection of an artwork record. The backend
// owns the authoritative copy; every mutation returns the full updated
// record and callers replace their local state with it.
type Artwork struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Images          []string `json:"images"`
	Videos          []string `json:"videos,omitempty"`
	Detalle         string   `json:"detalle,omitempty"`
	PaintedLocation string   `json:"paintedLocation,omitempty"`
	StartDate       string   `json:"startDate,omitempty"`
	EndDate         string   `json:"endDate,omitempty"`
	InProgress      bool     `json:"inProgress,omitempty"`
	Bitacora        string   `json:"bitacora,omitempty"`
	PrimaryImage    string   `json:"primaryImage,omitempty"`
}

type ListResponse struct {
	Artworks []Artwork `json:"artworks"`
	Total    int       `json:"total"`
}

type TitleCheckResponse struct {
	Available bool `json:"available"`
}

// HasImage reports whether filename belongs to the artwork's image set.
func (a Artwork) HasImage(filename string) bool {
	for _, img := range a.Images {
		if img == filename {
			return true
		}
	}
	return false
}

// ValidPrimary reports whether the primary image, if set, references an
// existing filename in the image set.
func (a Artwork) ValidPrimary() bool {
	if a.PrimaryImage == "" {
		return true
	}
	return a.HasImage(a.PrimaryImage)
}

// NextPrimary picks the replacement primary after current was removed from
// images: the first remaining image, or empty when none are left.
func NextPrimary(images []string) string {
	if len(images) == 0 {
		return ""
	}
	return images[0]
}
