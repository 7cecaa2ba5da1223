package model

// Reference is an external reading or citation attached to a module or
// a lesson.
// swagger:model Reference
type Reference struct {
	UUIDBase
	Title       string `gorm:"size:255;not null" json:"title"`
	Author      string `gorm:"size:255" json:"author"`
	URL         string `gorm:"size:512" json:"url"`
	Description string `gorm:"type:text" json:"description"`
	ModuleID    string `gorm:"index;type:varchar(36)" json:"moduleId"`
	LessonID    string `gorm:"index;type:varchar(36)" json:"lessonId"`
}

func (Reference) TableName() string {
	return "references"
}
