package models

// DefaultAvatar is assigned to users who never set an avatar of their own.
const DefaultAvatar = "https://res.cloudinary.com/df3n8xhsq/image/upload/w_1000,c_fill,ar_1:1,g_auto,r_max,bo_5px_solid_red,b_rgb:262c35/v1744403231/bear_hh1n40.png"

// User represents a registered author.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	// The hash is write-only: it is never serialized, so no response can
	// leak it.
	PasswordHash string    `json:"-" gorm:"not null"`
	Avatar       string    `json:"avatar"`
	Articles     []Article `json:"articles" gorm:"foreignKey:UserID"`
}
