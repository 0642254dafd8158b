package service

import (
	"context"
	"errors"
	"fmt"

	"gpu_store/internal/model"
	"gpu_store/internal/repository"
)

var (
	ErrRoomNotFound = errors.New("chat room not found")
	ErrForbidden    = errors.New("forbidden: user does not have permission for this action")
)

// ChatService defines operations for support chat
type ChatService interface {
	ListRoomSummaries(ctx context.Context) ([]model.RoomSummary, error)
	GetOrCreateMyRoom(ctx context.Context, userID int) (*model.ChatRoom, error)
	PostMessage(ctx context.Context, roomID int64, senderID int, senderRole, body string) (*model.Message, error)
	GetRoomMessages(ctx context.Context, roomID int64, userID int, userRole string) ([]model.Message, error)
}

type chatService struct {
	repo repository.ChatRepository
}

// NewChatService creates a new ChatService
func NewChatService(repo repository.ChatRepository) ChatService {
	return &chatService{repo: repo}
}

// ListRoomSummaries returns all rooms with their latest message, newest
// activity first. Callers gate this behind the admin role.
func (s *chatService) ListRoomSummaries(ctx context.Context) ([]model.RoomSummary, error) {
	summaries, err := s.repo.ListRoomSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list room summaries from repo: %w", err)
	}
	return summaries, nil
}

// GetOrCreateMyRoom returns the caller's support room, creating it on first use
func (s *chatService) GetOrCreateMyRoom(ctx context.Context, userID int) (*model.ChatRoom, error) {
	room, err := s.repo.FindRoomByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find room for user: %w", err)
	}
	if room != nil {
		return room, nil
	}

	room = &model.ChatRoom{UserID: userID}
	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return nil, fmt.Errorf("failed to create room for user: %w", err)
	}
	return room, nil
}

// PostMessage appends a message to a room. Only the room's owner or an admin
// may write to it.
func (s *chatService) PostMessage(ctx context.Context, roomID int64, senderID int, senderRole, body string) (*model.Message, error) {
	room, err := s.repo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to find room for message: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if senderRole != model.RoleAdmin && room.UserID != senderID {
		return nil, ErrForbidden
	}

	msg := &model.Message{
		RoomID:   roomID,
		SenderID: senderID,
		Body:     body,
	}
	if err := s.repo.InsertMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to insert message in repo: %w", err)
	}
	return msg, nil
}

// GetRoomMessages lists a room's messages, owner or admin only
func (s *chatService) GetRoomMessages(ctx context.Context, roomID int64, userID int, userRole string) ([]model.Message, error) {
	room, err := s.repo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to find room for messages: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if userRole != model.RoleAdmin && room.UserID != userID {
		return nil, ErrForbidden
	}

	messages, err := s.repo.ListMessages(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages from repo: %w", err)
	}
	return messages, nil
}
