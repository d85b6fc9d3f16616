package models

import (
	"strings"
	"time"
)

type Photo struct {
	ID          string       `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID      string       `gorm:"type:varchar(36);not null;index:user_uploaded,priority:1" json:"owner"`
	User        User         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	FileName    string       `gorm:"type:varchar(300);index:uniq_file_name,unique;not null" json:"file_name"`
	ContentType string       `gorm:"type:varchar(50)" json:"content_type"`
	Size        int64        `json:"size"`
	URL         string       `gorm:"type:varchar(2000)" json:"url"`
	UploadedAt  time.Time    `gorm:"index:user_uploaded,priority:2" json:"uploaded_at"`
	Tags        []PhotoTag   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"tags"`
	Labels      []PhotoLabel `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"labels"`
}

// TagValues returns the plain tag strings, duplicates included.
func (p *Photo) TagValues() []string {
	result := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		result = append(result, t.Tag)
	}
	return result
}

// LabelMap returns the detected labels as name -> confidence.
func (p *Photo) LabelMap() map[string]float64 {
	result := make(map[string]float64, len(p.Labels))
	for _, l := range p.Labels {
		result[l.Name] = l.Confidence
	}
	return result
}

// HasLabel reports whether the photo carries the label with at least the
// given confidence. The threshold is inclusive.
func (p *Photo) HasLabel(name string, minConfidence float64) bool {
	for _, l := range p.Labels {
		if l.Name == name && l.Confidence >= minConfidence {
			return true
		}
	}
	return false
}

func (p *Photo) IsImage() bool {
	return strings.HasPrefix(p.ContentType, "image/")
}
