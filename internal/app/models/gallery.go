package models

// GalleryItem is one categorized image.
type GalleryItem struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl"`
}

func (g GalleryItem) Key() int64 { return g.ID }
