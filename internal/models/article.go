package models

import "time"

// DefaultPreviewImage is used when an article is created without one.
const DefaultPreviewImage = "https://res.cloudinary.com/df3n8xhsq/image/upload/v1744458196/341-800x450_zeafvw.jpg"

// DefaultTag is the tag stored when the author supplies none.
const DefaultTag = "Engineering"

// AllowedTags is the closed set of article categories.
var AllowedTags = []string{"Product", "Engineering", "Design"}

// ValidTag reports whether tag is a member of AllowedTags.
func ValidTag(tag string) bool {
	for _, t := range AllowedTags {
		if t == tag {
			return true
		}
	}
	return false
}

// Article represents a published blog post. Author is a snapshot of the
// owner's username at creation time and is not re-synced afterwards.
type Article struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	PreviewText   string    `json:"preview_text"`
	PreviewImage  string    `json:"preview_image"`
	MinutesToRead int       `json:"minutes_to_read"`
	Tag           string    `json:"tag" gorm:"not null;default:Engineering"`
	Date          time.Time `json:"date" gorm:"autoCreateTime"`
	UserID        uint      `json:"user_id"`
}
