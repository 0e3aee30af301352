package storage

import (
	"encoding/json"
	"sort"

	"github.com/hakim/wordstress/internal/models"
	"go.etcd.io/bbolt"
)

// SaveResolution persists a record and appends its ID to the target index
func (s *Store) SaveResolution(res *models.Resolution) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(res)
		if err != nil {
			return err
		}

		if err := tx.Bucket([]byte(bucketResolutions)).Put([]byte(res.ID), data); err != nil {
			return err
		}

		// target -> []id
		index := tx.Bucket([]byte(bucketResolutionIndex))
		targetKey := []byte(res.Target)

		var ids []string
		if existing := index.Get(targetKey); existing != nil {
			if err := json.Unmarshal(existing, &ids); err != nil {
				return err
			}
		}

		for _, id := range ids {
			if id == res.ID {
				return nil
			}
		}
		ids = append(ids, res.ID)

		indexData, err := json.Marshal(ids)
		if err != nil {
			return err
		}
		return index.Put(targetKey, indexData)
	})
}

// GetResolution retrieves a record by ID. Returns nil, nil when it does not exist.
func (s *Store) GetResolution(id string) (*models.Resolution, error) {
	var res *models.Resolution

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucketResolutions)).Get([]byte(id))
		if data == nil {
			return nil
		}

		res = &models.Resolution{}
		return json.Unmarshal(data, res)
	})

	return res, err
}

// ListResolutions returns every record for a target, newest first
func (s *Store) ListResolutions(target string) ([]*models.Resolution, error) {
	var out []*models.Resolution

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucketResolutionIndex)).Get([]byte(target))
		if data == nil {
			return nil
		}

		var ids []string
		if err := json.Unmarshal(data, &ids); err != nil {
			return err
		}

		records := tx.Bucket([]byte(bucketResolutions))
		for _, id := range ids {
			raw := records.Get([]byte(id))
			if raw == nil {
				continue
			}
			var res models.Resolution
			if err := json.Unmarshal(raw, &res); err != nil {
				return err
			}
			out = append(out, &res)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ResolvedAt.After(out[j].ResolvedAt)
	})

	return out, nil
}

// LatestResolution returns the most recent record for a target, or nil
func (s *Store) LatestResolution(target string) (*models.Resolution, error) {
	all, err := s.ListResolutions(target)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all[0], nil
}
