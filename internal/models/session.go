package models

import (
	"time"

	"gorm.io/gorm"
)

// Session represents one logged learning session
type Session struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	SessionStartTime time.Time `gorm:"not null;index" json:"session_start_time"`
	SessionEndTime   time.Time `gorm:"not null" json:"session_end_time"`
	Medium           string    `gorm:"not null" json:"medium"`
	Title            string    `gorm:"not null" json:"title"`
	Teacher          string    `json:"teacher"`
	Tags             string    `json:"tags"` // semicolon-delimited, e.g. "python;sql"
	Notes            string    `json:"notes"`
	Hyperlink        string    `json:"hyperlink"`
}

// TableName matches the existing learninglog history table
func (Session) TableName() string {
	return "history"
}

// DurationMin returns the session length in minutes
func (s Session) DurationMin() float64 {
	return s.SessionEndTime.Sub(s.SessionStartTime).Minutes()
}
