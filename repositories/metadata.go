//go:generate go run go.uber.org/mock/mockgen -source=metadata.go -destination=../mocks/mock_metadata_repository.go -package=mocks
package repositories

import (
	"chat-formatter/errors"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const metadataPrefix = "meta:"

const (
	fieldName   = "name"
	fieldPrefix = "prefix"
	fieldSuffix = "suffix"
)

type IMetadataRepository interface {
	SetMetadata(metadata Metadata) error
	GetMetadata(participantID uuid.UUID) (Metadata, error)
	DeleteMetadata(participantID uuid.UUID) error
	ListMetadata() ([]Metadata, error)
}

// Metadata is what the chat provider knows about one participant.
// A nil Prefix or Suffix was never set.
type Metadata struct {
	ParticipantID uuid.UUID
	Name          string
	Prefix        *string
	Suffix        *string
}

type MetadataRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMetadataRepository(db *badger.DB, log *slog.Logger) MetadataRepository {
	return MetadataRepository{db: db, log: log}
}

// SetMetadata stores one key per field: "meta:{participant_id}:{field}".
// A nil Prefix or Suffix removes the stored value.
func (m MetadataRepository) SetMetadata(metadata Metadata) error {
	return m.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(metadataKey(metadata.ParticipantID, fieldName), []byte(metadata.Name)); err != nil {
			return err
		}
		fields := map[string]*string{fieldPrefix: metadata.Prefix, fieldSuffix: metadata.Suffix}
		for field, value := range fields {
			key := metadataKey(metadata.ParticipantID, field)
			if value == nil {
				if err := txn.Delete(key); err != nil {
					return err
				}
				continue
			}
			if err := txn.Set(key, []byte(*value)); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetMetadata returns ErrMetadataNotFound for a participant never stored.
func (m MetadataRepository) GetMetadata(participantID uuid.UUID) (Metadata, error) {
	metadata := Metadata{ParticipantID: participantID}
	found := false

	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("%s%s:", metadataPrefix, participantID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			found = true
			field := string(it.Item().Key()[len(prefix):])
			if err := it.Item().Value(func(val []byte) error {
				assign(&metadata, field, string(val))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Metadata{}, err
	}
	if !found {
		return Metadata{}, errors.ErrMetadataNotFound
	}
	return metadata, nil
}

func (m MetadataRepository) DeleteMetadata(participantID uuid.UUID) error {
	return m.db.Update(func(txn *badger.Txn) error {
		for _, field := range []string{fieldName, fieldPrefix, fieldSuffix} {
			if err := txn.Delete(metadataKey(participantID, field)); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListMetadata scans every stored participant, sorted by name.
func (m MetadataRepository) ListMetadata() ([]Metadata, error) {
	byID := make(map[uuid.UUID]*Metadata)

	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(metadataPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id, field, err := parseMetadataKey(string(item.Key()))
			if err != nil {
				m.log.Warn("Skipping unreadable metadata key", "key", string(item.Key()), "error", err)
				continue
			}
			metadata, ok := byID[id]
			if !ok {
				metadata = &Metadata{ParticipantID: id}
				byID[id] = metadata
			}
			if err = item.Value(func(val []byte) error {
				assign(metadata, field, string(val))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	all := lo.Map(lo.Values(byID), func(md *Metadata, _ int) Metadata { return *md })
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func metadataKey(participantID uuid.UUID, field string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", metadataPrefix, participantID, field))
}

func parseMetadataKey(key string) (uuid.UUID, string, error) {
	rest, ok := strings.CutPrefix(key, metadataPrefix)
	if !ok {
		return uuid.Nil, "", stderrors.New("missing prefix")
	}
	rawID, field, ok := strings.Cut(rest, ":")
	if !ok {
		return uuid.Nil, "", stderrors.New("missing field")
	}
	id, err := uuid.Parse(rawID)
	return id, field, err
}

func assign(metadata *Metadata, field, value string) {
	switch field {
	case fieldName:
		metadata.Name = value
	case fieldPrefix:
		metadata.Prefix = lo.ToPtr(value)
	case fieldSuffix:
		metadata.Suffix = lo.ToPtr(value)
	}
}
