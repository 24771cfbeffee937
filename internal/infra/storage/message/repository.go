package message

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/cubecar/CC-RentalService/internal/domain"
	"github.com/cubecar/CC-RentalService/pkg/dbmetrics"
	"github.com/cubecar/CC-RentalService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с диалогами и сообщениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сообщений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOrCreateConversation находит диалог по участникам и машине
// или создает новый, если такого еще нет
func (r *Repository) GetOrCreateConversation(ctx context.Context, renterID, hostID int64, carID *int64) (*domain.Conversation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(
		"id",
		"renter_id",
		"host_id",
		"car_id",
		"created_at",
		"updated_at",
	).
		From("conversations").
		Where(squirrel.Eq{"renter_id": renterID, "host_id": hostID})

	if carID != nil {
		builder = builder.Where(squirrel.Eq{"car_id": *carID})
	} else {
		builder = builder.Where(squirrel.Eq{"car_id": nil})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateConversation - build select query: %v", ErrBuildQuery, err)
	}

	conv, err := scanConversation(executor.QueryRowContext(ctx, query, args...).Scan)
	if err == nil {
		return conv, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: GetOrCreateConversation - scan conversation: %v", ErrScanRow, err)
	}

	// Диалога нет - создаем
	query, args, err = psqlbuilder.Insert("conversations").
		Columns("renter_id", "host_id", "car_id").
		Values(renterID, hostID, carID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateConversation - build insert query: %v", ErrBuildQuery, err)
	}

	created := &domain.Conversation{
		RenterID: renterID,
		HostID:   hostID,
		CarID:    carID,
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateConversation - execute insert: %v", ErrExecQuery, err)
	}

	created.CreatedAt = createdAt.Time
	created.UpdatedAt = updatedAt.Time

	return created, nil
}

// GetConversationByID получает диалог по ID
func (r *Repository) GetConversationByID(ctx context.Context, id int64) (*domain.Conversation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"renter_id",
		"host_id",
		"car_id",
		"created_at",
		"updated_at",
	).
		From("conversations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetConversationByID - build select query: %v", ErrBuildQuery, err)
	}

	conv, err := scanConversation(executor.QueryRowContext(ctx, query, args...).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetConversationByID - scan conversation: %v", ErrScanRow, err)
	}

	return conv, nil
}

// ListConversationsByUser получает диалоги пользователя со сводкой:
// последнее сообщение и число непрочитанных входящих
func (r *Repository) ListConversationsByUser(ctx context.Context, userID int64) ([]*domain.ConversationPreview, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"renter_id",
		"host_id",
		"car_id",
		"created_at",
		"updated_at",
	).
		From("conversations").
		Where(squirrel.Or{
			squirrel.Eq{"renter_id": userID},
			squirrel.Eq{"host_id": userID},
		}).
		OrderBy("updated_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListConversationsByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConversationsByUser - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var previews []*domain.ConversationPreview
	for rows.Next() {
		conv, err := scanConversation(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: ListConversationsByUser - scan conversation: %v", ErrScanRow, err)
		}
		previews = append(previews, &domain.ConversationPreview{Conversation: *conv})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListConversationsByUser - iterate rows: %v", ErrExecQuery, err)
	}

	// Дозаполняем сводку по каждому диалогу
	for _, preview := range previews {
		last, err := r.getLastMessage(ctx, executor, preview.Conversation.ID)
		if err != nil {
			return nil, err
		}
		preview.LastMessage = last

		unread, err := r.countUnread(ctx, executor, preview.Conversation.ID, userID)
		if err != nil {
			return nil, err
		}
		preview.UnreadCount = unread
	}

	return previews, nil
}

// CreateMessage добавляет сообщение в диалог и обновляет updated_at диалога
func (r *Repository) CreateMessage(ctx context.Context, msg *domain.Message) (*domain.Message, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("messages").
		Columns("conversation_id", "sender_id", "text", "is_read").
		Values(msg.ConversationID, msg.SenderID, msg.Text, msg.IsRead).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateMessage - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&msg.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateMessage - execute insert: %v", ErrExecQuery, err)
	}
	msg.CreatedAt = createdAt.Time

	query, args, err = psqlbuilder.Update("conversations").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": msg.ConversationID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateMessage - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: CreateMessage - touch conversation: %v", ErrExecQuery, err)
	}

	return msg, nil
}

// ListMessages получает сообщения диалога в хронологическом порядке
func (r *Repository) ListMessages(ctx context.Context, conversationID int64) ([]*domain.Message, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"conversation_id",
		"sender_id",
		"text",
		"is_read",
		"created_at",
	).
		From("messages").
		Where(squirrel.Eq{"conversation_id": conversationID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListMessages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListMessages - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		var msg domain.Message
		var createdAt sql.NullTime

		err := rows.Scan(
			&msg.ID,
			&msg.ConversationID,
			&msg.SenderID,
			&msg.Text,
			&msg.IsRead,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListMessages - scan message: %v", ErrScanRow, err)
		}

		msg.CreatedAt = createdAt.Time
		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListMessages - iterate rows: %v", ErrExecQuery, err)
	}

	return messages, nil
}

// MarkRead помечает прочитанными все входящие сообщения диалога
// (сообщения, отправленные не readerID)
func (r *Repository) MarkRead(ctx context.Context, conversationID, readerID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("messages").
		Set("is_read", true).
		Where(squirrel.Eq{"conversation_id": conversationID, "is_read": false}).
		Where(squirrel.NotEq{"sender_id": readerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) getLastMessage(ctx context.Context, executor DBExecutor, conversationID int64) (*domain.Message, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"conversation_id",
		"sender_id",
		"text",
		"is_read",
		"created_at",
	).
		From("messages").
		Where(squirrel.Eq{"conversation_id": conversationID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getLastMessage - build select query: %v", ErrBuildQuery, err)
	}

	var msg domain.Message
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&msg.ID,
		&msg.ConversationID,
		&msg.SenderID,
		&msg.Text,
		&msg.IsRead,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getLastMessage - scan message: %v", ErrScanRow, err)
	}

	msg.CreatedAt = createdAt.Time
	return &msg, nil
}

func (r *Repository) countUnread(ctx context.Context, executor DBExecutor, conversationID, userID int64) (int, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("messages").
		Where(squirrel.Eq{"conversation_id": conversationID, "is_read": false}).
		Where(squirrel.NotEq{"sender_id": userID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: countUnread - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: countUnread - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// scanConversation сканирует одну строку таблицы conversations
func scanConversation(scan func(dest ...interface{}) error) (*domain.Conversation, error) {
	var conv domain.Conversation
	var carID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&conv.ID,
		&conv.RenterID,
		&conv.HostID,
		&carID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if carID.Valid {
		conv.CarID = &carID.Int64
	}
	conv.CreatedAt = createdAt.Time
	conv.UpdatedAt = updatedAt.Time

	return &conv, nil
}
