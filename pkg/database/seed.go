package database

import (
	"encoding/json"
	"lingo_backend/internal/model"
)

// 默认课程内容，来自产品内置的语言包

var defaultLessonStages = []model.LessonStage{
	{
		Language: "Hausa",
		StageID:  1,
		Level:    1,
		Title:    "Introduction to Hausa Greetings",
		Contents: json.RawMessage(`[
			{
				"id": 1,
				"title": "Basic Greetings",
				"content": "In Hausa culture, greetings are very important. They are often long and structured. The most common greeting is \"Sannu\".",
				"examples": [
					{"original": "Sannu", "translation": "Hello"},
					{"original": "Ina kwana?", "translation": "Good morning? (How was your sleep?)"}
				]
			},
			{
				"id": 2,
				"title": "Respectful Address",
				"content": "When addressing older people, it is polite to avoid direct eye contact initially and use respectful titles.",
				"examples": [
					{"original": "Ranka ya dade", "translation": "May your life be long (Respectful greeting)"}
				]
			}
		]`),
	},
	{
		Language: "Fulani",
		StageID:  1,
		Level:    1,
		Title:    "Fulani Culture & Greetings",
		Contents: json.RawMessage(`[
			{
				"id": 1,
				"title": "The Pulaaku Code",
				"content": "Fulani culture is guided by Pulaaku, a code of conduct emphasizing patience, self-control and dignity.",
				"examples": [
					{"original": "Jam na?", "translation": "Is there peace? (How are you?)"},
					{"original": "Jam tan", "translation": "Peace only (I am fine)"}
				]
			}
		]`),
	},
}

var defaultVocabularyStages = []model.VocabularyStage{
	{
		Language: "Hausa",
		StageID:  1,
		Level:    1,
		Words: json.RawMessage(`[
			{"word": "Sannu", "translation": "Hello", "difficulty": "easy"},
			{"word": "Sai anjima", "translation": "Goodbye", "difficulty": "easy"},
			{"word": "Nagode", "translation": "Thank you", "difficulty": "easy"},
			{"word": "Ina kwana?", "translation": "Good morning?", "difficulty": "easy"},
			{"word": "Barka da yamma", "translation": "Good afternoon", "difficulty": "easy"}
		]`),
	},
	{
		Language: "Hausa",
		StageID:  2,
		Level:    2,
		Words: json.RawMessage(`[
			{"word": "Ruwa", "translation": "Water", "difficulty": "easy"},
			{"word": "Abinci", "translation": "Food", "difficulty": "easy"},
			{"word": "Shinkafa", "translation": "Rice", "difficulty": "easy"},
			{"word": "Mota", "translation": "Car", "difficulty": "easy"},
			{"word": "Gida", "translation": "House", "difficulty": "easy"}
		]`),
	},
	{
		Language: "Hausa",
		StageID:  3,
		Level:    3,
		Words: json.RawMessage(`[
			{"word": "Makaranta", "translation": "School", "difficulty": "medium"},
			{"word": "Littafi", "translation": "Book", "difficulty": "medium"},
			{"word": "Alkalam", "translation": "Pen", "difficulty": "medium"},
			{"word": "Malam", "translation": "Teacher", "difficulty": "medium"}
		]`),
	},
}

var defaultQuizStages = []model.QuizStage{
	{
		Language:    "Hausa",
		StageID:     1,
		Level:       1,
		Name:        "Hausa Basics",
		Description: "Test your knowledge of basic Hausa greetings and words.",
		Questions: json.RawMessage(`[
			{
				"question": "What does \"Sannu\" mean?",
				"options": ["Hello", "Goodbye", "Water", "Food"],
				"correct_answer": "Hello",
				"points": 10,
				"difficulty": "easy",
				"category": "greetings"
			},
			{
				"question": "How do you say \"Thank you\" in Hausa?",
				"options": ["Nagode", "Sannu", "Gida", "Mota"],
				"correct_answer": "Nagode",
				"points": 10,
				"difficulty": "easy",
				"category": "greetings"
			},
			{
				"question": "Translate \"Ruwa\"",
				"options": ["Water", "Rice", "Road", "School"],
				"correct_answer": "Water",
				"points": 10,
				"difficulty": "easy",
				"category": "vocabulary"
			}
		]`),
	},
}
