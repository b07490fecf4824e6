package model

import "time"

// Location is where the user last was in the course viewer
type Location struct {
	CourseSlug string `json:"courseSlug" bson:"courseSlug"`
	ModuleSlug string `json:"moduleSlug" bson:"moduleSlug"`
	LessonSlug string `json:"lessonSlug" bson:"lessonSlug"`
	SlideIndex int    `json:"slideIndex" bson:"slideIndex"`
}

// Progress is a user's course progress
type Progress struct {
	UserID            string    `json:"userId" bson:"userId"`
	LastKnownLocation *Location `json:"lastKnownLocation" bson:"lastKnownLocation"`
	CompletedLessons  []string  `json:"completedLessons" bson:"completedLessons"`
	LastActiveAt      time.Time `json:"lastActiveAt" bson:"lastActiveAt"`
}
