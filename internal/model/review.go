package model

// Review is a learner's rating of a course. One review per (user, course).
// swagger:model Review
type Review struct {
	UUIDBase
	UserID   uint   `gorm:"uniqueIndex:idx_user_course;type:bigint unsigned;not null" json:"userId"`
	CourseID string `gorm:"uniqueIndex:idx_user_course;type:varchar(36);not null" json:"courseId"`
	Rating   int    `gorm:"not null" json:"rating"` // 1-5
	Comment  string `gorm:"type:text" json:"comment"`
}

func (Review) TableName() string {
	return "reviews"
}
