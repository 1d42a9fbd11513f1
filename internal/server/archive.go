package server

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/stepdoc/pkg/errors"
	"github.com/matzehuels/stepdoc/pkg/graph"
)

// Document is an archived rendering.
type Document struct {
	ID        string     `json:"id" bson:"_id"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	Algorithm string     `json:"algorithm" bson:"algorithm"`
	Start     int        `json:"start" bson:"start"`
	Pages     int        `json:"pages" bson:"pages"`
	Graph     graph.Wire `json:"graph" bson:"graph"`
	PDF       []byte     `json:"-" bson:"pdf"`
}

// Archive stores rendered documents so clients can fetch them again by id.
type Archive interface {
	// Put stores doc. doc.ID must be set.
	Put(ctx context.Context, doc *Document) error

	// Get returns the document with the given id, or a NOT_FOUND error.
	Get(ctx context.Context, id string) (*Document, error)

	// Close releases the backend.
	Close(ctx context.Context) error
}

// NewDocumentID returns a fresh random document id.
func NewDocumentID() string {
	return uuid.NewString()
}

// ValidateDocumentID checks that id has the form NewDocumentID produces.
func ValidateDocumentID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "invalid document id %q", id)
	}
	return nil
}

// MemoryArchive keeps the most recent documents in memory.
type MemoryArchive struct {
	mu    sync.RWMutex
	max   int
	docs  map[string]*Document
	order []string
}

// DefaultMemoryDocuments is the capacity of a MemoryArchive created with a
// non-positive size.
const DefaultMemoryDocuments = 256

// NewMemoryArchive returns an archive holding at most max documents. The
// oldest document is dropped when it is full.
func NewMemoryArchive(max int) *MemoryArchive {
	if max <= 0 {
		max = DefaultMemoryDocuments
	}
	return &MemoryArchive{max: max, docs: make(map[string]*Document)}
}

func (a *MemoryArchive) Put(_ context.Context, doc *Document) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.docs[doc.ID]; !ok {
		a.order = append(a.order, doc.ID)
	}
	a.docs[doc.ID] = doc
	for len(a.order) > a.max {
		delete(a.docs, a.order[0])
		a.order = a.order[1:]
	}
	return nil
}

func (a *MemoryArchive) Get(_ context.Context, id string) (*Document, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	doc, ok := a.docs[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "document %s not found", id)
	}
	return doc, nil
}

// Len returns the number of stored documents.
func (a *MemoryArchive) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.docs)
}

func (a *MemoryArchive) Close(context.Context) error { return nil }

var _ Archive = (*MemoryArchive)(nil)
