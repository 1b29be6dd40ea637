package domain

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	ID          uint64         `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	Price       Money          `json:"price" gorm:"embedded;embeddedPrefix:price_"`
	IsPublished bool           `json:"isPublished" gorm:"default:false"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// Enrollment grants a user access to a course. One per user+course pair.
type Enrollment struct {
	ID         uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     uint64    `json:"userId" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID   uint64    `json:"courseId" gorm:"not null;uniqueIndex:idx_user_course"`
	OrderID    uint64    `json:"orderId"`
	EnrolledAt time.Time `json:"enrolledAt" gorm:"autoCreateTime"`
}
