package database

import (
	"fmt"
	"lingo_backend/internal/config"
	"lingo_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dbCfg := &cfg.Database
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		dbCfg.User,
		dbCfg.Password,
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.DBName,
		dbCfg.Charset,
		dbCfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.UserProgress{},
		&model.UserPreferences{},
		&model.Activity{},
		&model.Achievement{},
		&model.LessonStage{},
		&model.VocabularyStage{},
		&model.QuizStage{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if cfg.Content.SeedOnEmpty {
		seedContent(db)
	}

	return db, nil
}

// seedContent 在内容表为空时写入默认课程数据
func seedContent(db *gorm.DB) {
	var lessonCount int64
	db.Model(&model.LessonStage{}).Count(&lessonCount)
	if lessonCount == 0 {
		for _, l := range defaultLessonStages {
			db.Create(&l)
		}
	}

	var vocabCount int64
	db.Model(&model.VocabularyStage{}).Count(&vocabCount)
	if vocabCount == 0 {
		for _, v := range defaultVocabularyStages {
			db.Create(&v)
		}
	}

	var quizCount int64
	db.Model(&model.QuizStage{}).Count(&quizCount)
	if quizCount == 0 {
		for _, q := range defaultQuizStages {
			db.Create(&q)
		}
	}
}
