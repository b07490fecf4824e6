package service

// Broadcaster pushes events to a user's open WebSocket connections (avoids import cycle)
type Broadcaster interface {
	SendToUser(userID string, msgType string, payload interface{})
}

// MsgSubmissionScored is sent after a submission has been scored and stored
const MsgSubmissionScored = "submission_scored"
