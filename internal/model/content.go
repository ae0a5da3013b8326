package model

import "encoding/json"

// 静态学习内容，按目标语言组织，启动时写入默认数据

// LessonStage 一个语言的课程阶段，Contents 为课程小节数组
// swagger:model LessonStage
type LessonStage struct {
	BaseModel
	Language string          `gorm:"size:32;index;not null" json:"language"`
	StageID  int             `gorm:"not null" json:"stageId"`
	Level    int             `gorm:"default:1" json:"level"`
	Title    string          `gorm:"size:255;not null" json:"title"`
	Contents json.RawMessage `gorm:"type:json" json:"contents"` // JSON: []LessonContent
}

func (LessonStage) TableName() string {
	return "lesson_stages"
}

// VocabularyStage 词汇阶段，Words 为单词卡数组
// swagger:model VocabularyStage
type VocabularyStage struct {
	BaseModel
	Language string          `gorm:"size:32;index;not null" json:"language"`
	StageID  int             `gorm:"not null" json:"stageId"`
	Level    int             `gorm:"default:1" json:"level"`
	Words    json.RawMessage `gorm:"type:json" json:"words"` // JSON: []VocabularyWord
}

func (VocabularyStage) TableName() string {
	return "vocabulary_stages"
}

// QuizStage 测验阶段，Questions 为题目数组（含选项与正确答案）
// swagger:model QuizStage
type QuizStage struct {
	BaseModel
	Language    string          `gorm:"size:32;index;not null" json:"language"`
	StageID     int             `gorm:"not null" json:"stageId"`
	Level       int             `gorm:"default:1" json:"level"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"size:512" json:"description"`
	Questions   json.RawMessage `gorm:"type:json" json:"questions"` // JSON: []QuizQuestion
}

func (QuizStage) TableName() string {
	return "quiz_stages"
}
