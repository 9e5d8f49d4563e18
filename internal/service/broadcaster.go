package service

// Broadcaster interface for WebSocket dashboard pushes (avoids import cycle)
type Broadcaster interface {
	BroadcastToAdmins(surveyID string, msgType string, payload interface{})
}
