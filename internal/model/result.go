package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// ErrContentNotObject is returned when result content is not a JSON object
var ErrContentNotObject = errors.New("content must be a JSON object")

// Content is an opaque JSON object stored as a native Mongo document
type Content json.RawMessage

func (c Content) MarshalJSON() ([]byte, error) {
	if len(c) == 0 {
		return []byte("null"), nil
	}
	return c, nil
}

func (c *Content) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = nil
		return nil
	}
	*c = append((*c)[:0], data...)
	return nil
}

// IsObject reports whether the content is a JSON object
func (c Content) IsObject() bool {
	trimmed := bytes.TrimSpace(c)
	return len(trimmed) > 0 && trimmed[0] == '{' && json.Valid(trimmed)
}

func (c Content) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if len(c) == 0 {
		return bsontype.Null, nil, nil
	}
	if !c.IsObject() {
		return 0, nil, ErrContentNotObject
	}
	var doc bson.D
	if err := bson.UnmarshalExtJSON(c, false, &doc); err != nil {
		return 0, nil, err
	}
	return bson.MarshalValue(doc)
}

func (c *Content) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t != bsontype.EmbeddedDocument {
		*c = nil
		return nil
	}
	out, err := bson.MarshalExtJSON(bson.Raw(data), false, false)
	if err != nil {
		return err
	}
	*c = out
	return nil
}

// Result is client-saved report content for a submission
type Result struct {
	SubmissionID string    `json:"submissionId" bson:"submissionId"`
	QuizID       string    `json:"quizId,omitempty" bson:"quizId,omitempty"`
	UserID       string    `json:"userId,omitempty" bson:"userId,omitempty"`
	Content      Content   `json:"content" bson:"content"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}
