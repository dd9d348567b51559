package service

import (
	"github.com/linmeili/french-master-bot/internal/domain/entities"
)

// ContentSource is the read-only corpus consumed by quiz generation.
// Both collections are expected to be non-empty and stable for the
// lifetime of the process.
type ContentSource interface {
	Words() []*entities.Word
	Sentences() []*entities.Sentence
}
