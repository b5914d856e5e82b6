package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"rentease-backend/internal/domain"
	"rentease-backend/internal/logger"
	"rentease-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

const notificationColumns = `id, recipient_type, recipient_id, type, title, message, status, is_read, booking_id, worker_booking_id, attributes, created_on, published_on`

func scanNotification(row interface{ Scan(...any) error }) (*domain.Notification, error) {
	n := &domain.Notification{}
	var bookingID, workerBookingID sql.NullInt32
	var publishedOn sql.NullTime
	var attrs []byte
	err := row.Scan(&n.ID, &n.Recipient.Type, &n.Recipient.ID, &n.Type, &n.Title, &n.Message, &n.Status, &n.IsRead,
		&bookingID, &workerBookingID, &attrs, &n.CreatedOn, &publishedOn)
	if err != nil {
		return nil, err
	}
	n.BookingID = int32Ptr(bookingID)
	n.WorkerBookingID = int32Ptr(workerBookingID)
	n.PublishedOn = timePtr(publishedOn)
	if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &n.Attributes); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	logger.EnterMethod("notificationRepository.Create", "recipientType", n.Recipient.Type, "recipientID", n.Recipient.ID, "type", n.Type)

	if n.Attributes == nil {
		n.Attributes = map[string]string{}
	}
	attrs, err := json.Marshal(n.Attributes)
	if err != nil {
		logger.ExitMethodWithError("notificationRepository.Create", err, "reason", "failed to marshal attributes")
		return err
	}

	query := `INSERT INTO notifications (recipient_type, recipient_id, type, title, message, status, is_read, booking_id, worker_booking_id, attributes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_on`
	logger.DatabaseCall("INSERT", "notifications", "recipientType", n.Recipient.Type, "recipientID", n.Recipient.ID)

	err = r.db.QueryRowContext(ctx, query, n.Recipient.Type, n.Recipient.ID, n.Type, n.Title, n.Message, n.Status, n.IsRead,
		nullInt32(n.BookingID), nullInt32(n.WorkerBookingID), attrs).Scan(&n.ID, &n.CreatedOn)
	logger.DatabaseResult("INSERT", 1, err, "notificationID", n.ID)

	if err != nil {
		logger.ExitMethodWithError("notificationRepository.Create", err, "recipientID", n.Recipient.ID)
	} else {
		logger.ExitMethod("notificationRepository.Create", "notificationID", n.ID)
	}
	return err
}

func (r *notificationRepository) GetByID(ctx context.Context, id int32) (*domain.Notification, error) {
	n, err := scanNotification(r.db.QueryRowContext(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id))
	if err != nil {
		return nil, mapError(err, "notification")
	}
	return n, nil
}

func (r *notificationRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	return err
}

func (r *notificationRepository) List(ctx context.Context, recipient domain.Recipient, limit, offset int32) ([]domain.Notification, int32, error) {
	var count int32
	countQuery := `SELECT count(*) FROM notifications WHERE recipient_type = $1 AND recipient_id = $2`
	if err := r.db.QueryRowContext(ctx, countQuery, recipient.Type, recipient.ID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + notificationColumns + ` FROM notifications
	          WHERE recipient_type = $1 AND recipient_id = $2 ORDER BY created_on DESC, id DESC LIMIT $3 OFFSET $4`
	rows, err := r.db.QueryContext(ctx, query, recipient.Type, recipient.ID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notes []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, err
		}
		notes = append(notes, *n)
	}
	return notes, count, rows.Err()
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipient domain.Recipient) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM notifications WHERE recipient_type = $1 AND recipient_id = $2 AND is_read = FALSE`
	err := r.db.QueryRowContext(ctx, query, recipient.Type, recipient.ID).Scan(&count)
	return count, err
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id int32, recipient domain.Recipient) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_type = $2 AND recipient_id = $3`
	result, err := r.db.ExecContext(ctx, query, id, recipient.Type, recipient.ID)
	if err != nil {
		return err
	}
	return requireRows(result, "notification")
}

func (r *notificationRepository) UpdateStatus(ctx context.Context, id int32, from, to domain.NotificationStatus) error {
	result, err := r.db.ExecContext(ctx, `UPDATE notifications SET status = $1 WHERE id = $2 AND status = $3`, to, id, from)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NewConflictError("notification %d is not %s", id, from)
	}
	return nil
}

func (r *notificationRepository) ClaimUnpublished(ctx context.Context, limit int, fn func(domain.Notification) error) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	query := `SELECT ` + notificationColumns + ` FROM notifications
	          WHERE published_on IS NULL ORDER BY id LIMIT $1 FOR UPDATE SKIP LOCKED`
	rows, err := tx.QueryContext(ctx, query, limit)
	if err != nil {
		return 0, err
	}
	var pending []domain.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			rows.Close()
			return 0, err
		}
		pending = append(pending, *n)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, err
	}

	published := 0
	for _, n := range pending {
		if err := fn(n); err != nil {
			logger.Warn("Notification publish failed, leaving for next run", "notificationID", n.ID, "error", err)
			break
		}
		if _, err := tx.ExecContext(ctx, `UPDATE notifications SET published_on = NOW() WHERE id = $1`, n.ID); err != nil {
			return 0, err
		}
		published++
	}
	return published, tx.Commit()
}
