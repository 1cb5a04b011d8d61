package model

// Book is a single saved volume in a user's collection. BookID is the
// Google Books volume identifier and is the deduplication key within a
// user's saved list; the remaining fields are a denormalized snapshot of
// the volume metadata captured at save time.
type Book struct {
	BookID      string   `json:"bookId"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Link        string   `json:"link"`
}
