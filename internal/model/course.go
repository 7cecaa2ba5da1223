package model

// swagger:model Course
type Course struct {
	UUIDBase
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Objectives  []Objective `gorm:"foreignKey:CourseID" json:"objectives,omitempty"`
	Modules     []Module    `gorm:"foreignKey:CourseID" json:"modules,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// Objective is a learning objective attached to a course.
// swagger:model Objective
type Objective struct {
	UUIDBase
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Order       int    `gorm:"default:0" json:"order"`
	CourseID    string `gorm:"index;type:varchar(36);not null" json:"courseId"`
}

func (Objective) TableName() string {
	return "objectives"
}

// swagger:model Module
type Module struct {
	UUIDBase
	Title    string   `gorm:"size:255;not null" json:"title"`
	Order    int      `gorm:"default:0" json:"order"`
	CourseID string   `gorm:"index;type:varchar(36);not null" json:"courseId"`
	Lessons  []Lesson `gorm:"foreignKey:ModuleID" json:"lessons,omitempty"`
}

func (Module) TableName() string {
	return "modules"
}

// swagger:model Lesson
type Lesson struct {
	UUIDBase
	Title    string `gorm:"size:255;not null" json:"title"`
	Order    int    `gorm:"default:0" json:"order"`
	ModuleID string `gorm:"index;type:varchar(36);not null" json:"moduleId"`
}

func (Lesson) TableName() string {
	return "lessons"
}
