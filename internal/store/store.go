package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// DefaultUserKey identifies the single local campaign slot.
const DefaultUserKey = "default"

const saveDebounce = 1 * time.Second

// ErrNoSnapshot is returned when no campaign has ever been saved.
var ErrNoSnapshot = errors.New("no saved campaign")

// SnapshotStore persists the campaign as one JSON blob per user key.
// Writes are debounced so that a burst of gameplay mutations lands as a
// single disk write, and the latest snapshot always wins.
type SnapshotStore struct {
	db      *sql.DB
	logger  zerolog.Logger
	userKey string

	pending chan []byte
	done    chan struct{}
	stopped chan struct{}
}

func NewSnapshotStore(db *sql.DB, logger zerolog.Logger) *SnapshotStore {
	s := &SnapshotStore{
		db:      db,
		logger:  logger.With().Str("component", "snapshot-store").Logger(),
		userKey: DefaultUserKey,
		pending: make(chan []byte, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.writeLoop()
	return s
}

// Load returns the saved campaign snapshot, or ErrNoSnapshot.
func (s *SnapshotStore) Load(ctx context.Context) ([]byte, error) {
	var snapshot string
	err := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM campaign_snapshots WHERE user_key = ?`, s.userKey,
	).Scan(&snapshot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	return []byte(snapshot), nil
}

// SaveAsync queues a snapshot for persistence and returns immediately.
// Only the most recent snapshot queued within the debounce window is
// written.
func (s *SnapshotStore) SaveAsync(snapshot []byte) {
	for {
		select {
		case s.pending <- snapshot:
			return
		default:
			// Drop the stale pending snapshot and retry with the newer one.
			select {
			case <-s.pending:
			default:
			}
		}
	}
}

// Delete removes the saved campaign.
func (s *SnapshotStore) Delete(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM campaign_snapshots WHERE user_key = ?`, s.userKey)
	return err
}

// Close flushes any pending snapshot and stops the write loop. It returns
// once the flush has completed, so the database can be closed afterwards.
func (s *SnapshotStore) Close() {
	close(s.done)
	<-s.stopped
}

func (s *SnapshotStore) writeLoop() {
	defer close(s.stopped)
	for {
		select {
		case <-s.done:
			// Final flush.
			select {
			case snapshot := <-s.pending:
				s.write(snapshot)
			default:
			}
			return
		case snapshot := <-s.pending:
			timer := time.NewTimer(saveDebounce)
		debounce:
			for {
				select {
				case newer := <-s.pending:
					snapshot = newer
				case <-timer.C:
					break debounce
				case <-s.done:
					timer.Stop()
					select {
					case newer := <-s.pending:
						snapshot = newer
					default:
					}
					s.write(snapshot)
					return
				}
			}
			s.write(snapshot)
		}
	}
}

func (s *SnapshotStore) write(snapshot []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO campaign_snapshots (user_key, snapshot, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_key) DO UPDATE SET
			snapshot = excluded.snapshot,
			updated_at = excluded.updated_at`,
		s.userKey, string(snapshot))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to persist campaign snapshot")
		return
	}
	s.logger.Debug().Int("bytes", len(snapshot)).Msg("campaign snapshot persisted")
}
