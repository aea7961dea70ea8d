package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Blog struct {
	ID               string     `json:"id" gorm:"primaryKey"`
	Title            string     `json:"title"`
	Content          string     `json:"content" gorm:"type:text"`
	Excerpt          string     `json:"excerpt" gorm:"type:text"`
	Author           string     `json:"author"`
	AuthorEmail      string     `json:"author_email"`
	FeaturedImageURL string     `json:"featured_image_url"`
	Category         string     `json:"category" gorm:"index"`
	Tags             string     `json:"-" gorm:"type:text"`
	Published        bool       `json:"published" gorm:"default:false"`
	Active           *bool      `json:"active" gorm:"default:true"`
	Views            int        `json:"views" gorm:"default:0"`
	DateCreated      time.Time  `json:"date_created" gorm:"autoCreateTime;index"`
	DatePublished    *time.Time `json:"date_published"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

func (b *Blog) IsActive() bool {
	return b.Active == nil || *b.Active
}

// TagList splits the stored comma form into the transport array.
func (b *Blog) TagList() []string {
	if strings.TrimSpace(b.Tags) == "" {
		return []string{}
	}
	parts := strings.Split(b.Tags, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (b *Blog) SetTags(tags []string) {
	b.Tags = strings.Join(tags, ",")
}

func (b *Blog) MarshalJSON() ([]byte, error) {
	type Alias Blog
	return json.Marshal(&struct {
		*Alias
		Tags   []string `json:"tags"`
		Active bool     `json:"active"`
	}{
		Alias:  (*Alias)(b),
		Tags:   b.TagList(),
		Active: b.IsActive(),
	})
}
