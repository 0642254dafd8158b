package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gpu_store/internal/model"

	"github.com/jackc/pgx/v5"
)

// ChatRepository defines operations for support rooms and their messages
type ChatRepository interface {
	ListRoomSummaries(ctx context.Context) ([]model.RoomSummary, error)
	FindRoomByUser(ctx context.Context, userID int) (*model.ChatRoom, error)
	FindRoomByID(ctx context.Context, id int64) (*model.ChatRoom, error)
	CreateRoom(ctx context.Context, room *model.ChatRoom) error
	InsertMessage(ctx context.Context, msg *model.Message) error
	ListMessages(ctx context.Context, roomID int64) ([]model.Message, error)
}

type chatRepository struct {
	db DB
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db DB) ChatRepository {
	return &chatRepository{db: db}
}

// ListRoomSummaries returns every room ordered by most recent activity, each
// carrying only its latest message.
func (r *chatRepository) ListRoomSummaries(ctx context.Context) ([]model.RoomSummary, error) {
	sql := `SELECT cr.id, cr.user_id, cr.created_at, cr.updated_at, u.email,
                   m.id, m.room_id, m.sender_id, m.body, m.created_at
            FROM chat_rooms cr
            JOIN users u ON cr.user_id = u.id
            LEFT JOIN LATERAL (
                SELECT id, room_id, sender_id, body, created_at
                FROM messages WHERE room_id = cr.id
                ORDER BY created_at DESC, id DESC LIMIT 1
            ) m ON TRUE
            ORDER BY cr.updated_at DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query room summaries: %w", err)
	}
	defer rows.Close()

	var summaries []model.RoomSummary
	for rows.Next() {
		var s model.RoomSummary
		// Message columns come from a LEFT JOIN, so all of them may be NULL
		var msgID, msgRoomID *int64
		var msgSenderID *int
		var msgBody *string
		var msgCreatedAt *time.Time
		err := rows.Scan(
			&s.Room.ID, &s.Room.UserID, &s.Room.CreatedAt, &s.Room.UpdatedAt, &s.UserEmail,
			&msgID, &msgRoomID, &msgSenderID, &msgBody, &msgCreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan room summary row: %w", err)
		}
		if msgID != nil {
			s.LatestMessage = &model.Message{
				ID:        *msgID,
				RoomID:    *msgRoomID,
				SenderID:  *msgSenderID,
				Body:      *msgBody,
				CreatedAt: *msgCreatedAt,
			}
		}
		summaries = append(summaries, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room summary rows: %w", err)
	}
	return summaries, nil
}

// FindRoomByUser retrieves a user's room, nil when they have none yet
func (r *chatRepository) FindRoomByUser(ctx context.Context, userID int) (*model.ChatRoom, error) {
	room := &model.ChatRoom{}
	sql := `SELECT id, user_id, created_at, updated_at FROM chat_rooms WHERE user_id = $1`
	err := r.db.QueryRow(ctx, sql, userID).Scan(&room.ID, &room.UserID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find room by user: %w", err)
	}
	return room, nil
}

// FindRoomByID retrieves a room by id
func (r *chatRepository) FindRoomByID(ctx context.Context, id int64) (*model.ChatRoom, error) {
	room := &model.ChatRoom{}
	sql := `SELECT id, user_id, created_at, updated_at FROM chat_rooms WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&room.ID, &room.UserID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find room by ID: %w", err)
	}
	return room, nil
}

// CreateRoom inserts a new support room for a user
func (r *chatRepository) CreateRoom(ctx context.Context, room *model.ChatRoom) error {
	sql := `INSERT INTO chat_rooms (user_id) VALUES ($1) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, room.UserID).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create chat room: %w", err)
	}
	return nil
}

// InsertMessage appends a message to a room and bumps the room's updated_at
// so the admin overview sorts it to the top.
func (r *chatRepository) InsertMessage(ctx context.Context, msg *model.Message) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin message transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	msgSQL := `INSERT INTO messages (room_id, sender_id, body)
               VALUES ($1, $2, $3) RETURNING id, created_at`
	if err := tx.QueryRow(ctx, msgSQL, msg.RoomID, msg.SenderID, msg.Body).Scan(&msg.ID, &msg.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	touchSQL := `UPDATE chat_rooms SET updated_at = NOW() WHERE id = $1`
	if _, err := tx.Exec(ctx, touchSQL, msg.RoomID); err != nil {
		return fmt.Errorf("failed to touch chat room: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit message transaction: %w", err)
	}
	return nil
}

// ListMessages retrieves a room's messages oldest first
func (r *chatRepository) ListMessages(ctx context.Context, roomID int64) ([]model.Message, error) {
	sql := `SELECT id, room_id, sender_id, body, created_at
            FROM messages WHERE room_id = $1 ORDER BY created_at, id`
	rows, err := r.db.Query(ctx, sql, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.RoomID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating message rows: %w", err)
	}
	return messages, nil
}
