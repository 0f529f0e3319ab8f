package repository

import (
	"context"
	"time"

	"tickethub/internal/infra"
	"tickethub/internal/infra/db"
	"tickethub/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const createJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, run_at)
VALUES ($1, $2, $3, $4)`

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	if _, err := tx.Exec(ctx, createJobSQL, kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to create notification job", err)
	}
	return nil
}

const claimDueJobsSQL = `
SELECT id, kind, topic, payload, run_at
FROM notification_jobs
WHERE done_at IS NULL AND run_at <= $1
ORDER BY run_at
LIMIT $2
FOR UPDATE SKIP LOCKED`

// ClaimDueJobs locks a batch of due jobs for this worker; SKIP LOCKED keeps
// concurrent workers from delivering the same notification twice.
func (r *NotificationRepository) ClaimDueJobs(ctx context.Context, tx db.DBTX, now time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := tx.Query(ctx, claimDueJobsSQL, now, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []shared.NotificationJob
	for rows.Next() {
		var j shared.NotificationJob
		if err := rows.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.RunAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan notification job", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate notification jobs", err)
	}
	return jobs, nil
}

const markJobDoneSQL = `
UPDATE notification_jobs SET done_at = now() WHERE id = $1`

func (r *NotificationRepository) MarkDone(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	if _, err := tx.Exec(ctx, markJobDoneSQL, id); err != nil {
		return infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to mark notification job done", err)
	}
	return nil
}

const rescheduleJobSQL = `
UPDATE notification_jobs SET run_at = $2 WHERE id = $1`

func (r *NotificationRepository) Reschedule(ctx context.Context, tx db.DBTX, id uuid.UUID, runAt time.Time) error {
	if _, err := tx.Exec(ctx, rescheduleJobSQL, id, runAt); err != nil {
		return infra.WrapRepoErr(infra.ClassifyPgErr(err), "failed to reschedule notification job", err)
	}
	return nil
}
