package model

// Quiz is a graded assessment attached to a lesson. The question set is
// treated as immutable once attempts reference it.
// swagger:model Quiz
type Quiz struct {
	UUIDBase
	Title         string     `gorm:"size:255;not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description"`
	LessonID      string     `gorm:"index;type:varchar(36)" json:"lessonId"`
	PassThreshold int        `gorm:"default:60" json:"passThreshold"` // minimum score (0-100) for passed
	Questions     []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model Question
type Question struct {
	UUIDBase
	QuizID                string   `gorm:"index;type:varchar(36);not null" json:"quizId"`
	Text                  string   `gorm:"type:text;not null" json:"text"`
	AllowsMultipleAnswers bool     `gorm:"default:false" json:"allowsMultipleAnswers"`
	Order                 int      `gorm:"default:0" json:"order"`
	Answers               []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// CorrectAnswerIDs returns the ids of all answers flagged correct.
func (q *Question) CorrectAnswerIDs() []string {
	var ids []string
	for _, a := range q.Answers {
		if a.IsCorrect {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// swagger:model Answer
type Answer struct {
	UUIDBase
	QuestionID string `gorm:"index;type:varchar(36);not null" json:"questionId"`
	Text       string `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`
	Order      int    `gorm:"default:0" json:"order"` // display order only
}

func (Answer) TableName() string {
	return "answers"
}
