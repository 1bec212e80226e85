package service

// Broadcaster interface for WebSocket broadcasting (avoids import cycle)
type Broadcaster interface {
	BroadcastToOrganization(organizationID string, msgType string, payload interface{})
}
