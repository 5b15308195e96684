// Package uiddb persists study-level unique identifiers so related
// conversions can share them across builder instances.
package uiddb

import (
	"encoding/json"
	"fmt"
	"time"

	"mpg2dcm/pkg/dicom"

	bolt "go.etcd.io/bbolt"
)

var studiesBucket = []byte("studies")

// DB is a uid database.
type DB struct {
	db *bolt.DB
}

// Open opens or creates the database at path.
func Open(path string) (*DB, error) {
	dbOpts := &bolt.Options{
		Timeout: 1 * time.Second,
	}

	db, err := bolt.Open(path, 0o600, dbOpts)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w: %v", err, path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(studiesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &DB{db: db}, nil
}

// Close the database.
func (d *DB) Close() error {
	return d.db.Close()
}

type studyEntry struct {
	Study  string `json:"study"`
	Series string `json:"series"`
}

// StudyUIDs returns the study and series identifiers stored for key,
// generating and persisting a fresh pair on first use.
func (d *DB) StudyUIDs(key string) (string, string, error) {
	var entry studyEntry

	err := d.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(studiesBucket)

		if value := bucket.Get([]byte(key)); value != nil {
			return json.Unmarshal(value, &entry)
		}

		entry = studyEntry{
			Study:  dicom.NewUID(),
			Series: dicom.NewUID(),
		}
		value, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), value)
	})
	if err != nil {
		return "", "", fmt.Errorf("study uids: %w", err)
	}
	return entry.Study, entry.Series, nil
}
