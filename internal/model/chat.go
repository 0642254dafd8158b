package model

import "time"

// ChatRoom is a support conversation between one user and the store admins
type ChatRoom struct {
	ID        int64     `json:"id"`
	UserID    int       `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is one entry in a room's ordered sequence
type Message struct {
	ID        int64     `json:"id"`
	RoomID    int64     `json:"room_id"`
	SenderID  int       `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// RoomSummary is what the admin overview shows: the room, its owner's email
// and the most recent message (nil for an empty room).
type RoomSummary struct {
	Room          ChatRoom `json:"room"`
	UserEmail     string   `json:"user_email"`
	LatestMessage *Message `json:"latest_message,omitempty"`
}

type PostMessageRequest struct {
	Body string `json:"body" binding:"required"`
}
