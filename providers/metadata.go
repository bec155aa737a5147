// Package providers contains the chat providers shipped with the host.
package providers

import (
	"chat-formatter/domain"
	"chat-formatter/errors"
	"chat-formatter/repositories"
	stderrors "errors"

	"github.com/samber/lo"
)

// MetadataProvider serves prefixes and suffixes stored in badger.
// Participants without stored metadata get empty values.
type MetadataProvider struct {
	name       string
	repository repositories.IMetadataRepository
}

func NewMetadataProvider(name string, repository repositories.IMetadataRepository) *MetadataProvider {
	return &MetadataProvider{name: name, repository: repository}
}

func (p *MetadataProvider) Name() string {
	return p.name
}

func (p *MetadataProvider) PlayerPrefix(participant domain.Participant) (*string, error) {
	metadata, err := p.lookup(participant)
	if err != nil {
		return nil, err
	}
	return lo.ToPtr(lo.FromPtr(metadata.Prefix)), nil
}

func (p *MetadataProvider) PlayerSuffix(participant domain.Participant) (*string, error) {
	metadata, err := p.lookup(participant)
	if err != nil {
		return nil, err
	}
	return lo.ToPtr(lo.FromPtr(metadata.Suffix)), nil
}

func (p *MetadataProvider) lookup(participant domain.Participant) (repositories.Metadata, error) {
	metadata, err := p.repository.GetMetadata(participant.ID)
	if stderrors.Is(err, errors.ErrMetadataNotFound) {
		return repositories.Metadata{ParticipantID: participant.ID, Name: participant.Name}, nil
	}
	return metadata, err
}
