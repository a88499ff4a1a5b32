package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/stocktake/internal/models"
	"github.com/iudanet/stocktake/internal/storage"
)

// participantKey строит ключ записи ростера. Идентификаторы - UUID,
// поэтому разделитель не встречается внутри компонентов.
func participantKey(sessionID, participantID string) []byte {
	return []byte(sessionID + "/" + participantID)
}

// UpsertParticipant creates the roster entry on first contact and
// refreshes display name and last_seen_at on every subsequent one.
// The host role is never demoted by an upsert.
func (s *Storage) UpsertParticipant(ctx context.Context, participant *models.Participant) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketParticipants)
		if bucket == nil {
			return fmt.Errorf("participants bucket not found")
		}

		key := participantKey(participant.SessionID, participant.ParticipantID)
		record := *participant

		// Получаем существующую запись: host остаётся host
		if data := bucket.Get(key); data != nil {
			var existing models.Participant
			if err := json.Unmarshal(data, &existing); err != nil {
				return fmt.Errorf("failed to unmarshal participant: %w", err)
			}
			if existing.Role == models.RoleHost {
				record.Role = models.RoleHost
			}
		}

		data, err := json.Marshal(&record)
		if err != nil {
			return fmt.Errorf("failed to marshal participant: %w", err)
		}

		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save participant: %w", err)
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("upsert transaction failed: %w", err)
	}

	return nil
}

// GetParticipants returns the full roster for a session
// Returns empty slice if the session has no participants
func (s *Storage) GetParticipants(ctx context.Context, sessionID string) ([]models.Participant, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var participants []models.Participant

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketParticipants)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var p models.Participant
			if err := json.Unmarshal(v, &p); err != nil {
				return fmt.Errorf("failed to unmarshal participant: %w", err)
			}

			// Фильтруем по сессии
			if p.SessionID == sessionID {
				participants = append(participants, p)
			}

			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}

	// Тот же порядок, что отдаёт серверное хранилище
	sort.Slice(participants, func(i, j int) bool {
		if participants[i].DisplayName != participants[j].DisplayName {
			return participants[i].DisplayName < participants[j].DisplayName
		}
		return participants[i].ParticipantID < participants[j].ParticipantID
	})

	return participants, nil
}
