package server

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/stepdoc/pkg/errors"
)

func TestMemoryArchiveEviction(t *testing.T) {
	ctx := context.Background()
	a := NewMemoryArchive(3)
	var ids []string
	for i := range 5 {
		doc := &Document{ID: NewDocumentID(), Pages: i + 1}
		require.NoError(t, a.Put(ctx, doc))
		ids = append(ids, doc.ID)
	}
	assert.Equal(t, 3, a.Len())

	for _, id := range ids[:2] {
		_, err := a.Get(ctx, id)
		assert.True(t, errors.Is(err, errors.ErrCodeNotFound), "oldest document %s should be evicted", id)
	}
	for i, id := range ids[2:] {
		doc, err := a.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, i+3, doc.Pages)
	}
}

func TestMemoryArchiveReplace(t *testing.T) {
	ctx := context.Background()
	a := NewMemoryArchive(2)
	id := NewDocumentID()
	require.NoError(t, a.Put(ctx, &Document{ID: id, Pages: 1}))
	require.NoError(t, a.Put(ctx, &Document{ID: id, Pages: 2}))
	require.NoError(t, a.Put(ctx, &Document{ID: NewDocumentID()}))
	assert.Equal(t, 2, a.Len())

	doc, err := a.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Pages)
}

func TestMemoryArchiveDefaultSize(t *testing.T) {
	a := NewMemoryArchive(0)
	for i := range DefaultMemoryDocuments + 10 {
		require.NoError(t, a.Put(context.Background(), &Document{ID: fmt.Sprint(i)}))
	}
	assert.Equal(t, DefaultMemoryDocuments, a.Len())
	assert.NoError(t, a.Close(context.Background()))
}

func TestValidateDocumentID(t *testing.T) {
	assert.NoError(t, ValidateDocumentID(NewDocumentID()))
	for _, id := range []string{"", "42", "../etc/passwd"} {
		assert.True(t, errors.Is(ValidateDocumentID(id), errors.ErrCodeInvalidInput), id)
	}
}

func TestMongoArchiveBadURI(t *testing.T) {
	_, err := NewMongoArchive(context.Background(), "postgres://localhost", "")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), "err = %v", err)
}

func TestMongoArchiveUnreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for server selection")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := NewMongoArchive(ctx, "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=500", "")
	assert.True(t, errors.Is(err, errors.ErrCodeInternal), "err = %v", err)
}
