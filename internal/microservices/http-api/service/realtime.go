package service

// RealtimeNotifier pushes events to connected websocket clients. Services
// treat a nil notifier as "nobody listening" and skip the emit.
type RealtimeNotifier interface {
	EmitToUser(userID string, event string, payload any)
	EmitToPost(postID int64, event string, payload any)
}
