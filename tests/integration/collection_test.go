package integration

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/avelikanov/dui-admin/internal/services"
	"github.com/avelikanov/dui-admin/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionService_Integration_Create(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewCollectionService(tdb.DB)
	ctx := context.Background()

	ownerID := uuid.New()
	pages := json.RawMessage(`[{"name": "main"}]`)

	col, err := svc.Create(ctx, ownerID, dto.SaveCollectionRequest{Title: "Invoices", Pages: pages})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, col.UUID)
	assert.Equal(t, "Invoices", col.Title)
	assert.JSONEq(t, string(pages), string(col.Pages))
	assert.JSONEq(t, "[]", string(col.Mocks))
	assert.JSONEq(t, "{}", string(col.Config))
}

func TestCollectionService_Integration_Create_DuplicateTitle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewCollectionService(tdb.DB)
	ctx := context.Background()

	ownerID := uuid.New()
	otherOwnerID := uuid.New()

	_, err := svc.Create(ctx, ownerID, dto.SaveCollectionRequest{Title: "Invoices"})
	require.NoError(t, err)

	// Same owner, same title
	_, err = svc.Create(ctx, ownerID, dto.SaveCollectionRequest{Title: "Invoices"})
	assert.ErrorIs(t, err, services.ErrTitleConflict)

	// Different owner, same title is fine
	_, err = svc.Create(ctx, otherOwnerID, dto.SaveCollectionRequest{Title: "Invoices"})
	assert.NoError(t, err)
}

func TestCollectionService_Integration_EditLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewCollectionService(tdb.DB)
	ctx := context.Background()

	ownerID := uuid.New()

	created, err := svc.Create(ctx, ownerID, dto.SaveCollectionRequest{Title: "Invoices"})
	require.NoError(t, err)

	// First edit supersedes the initial version.
	edited, err := svc.Edit(ctx, created.UUID, dto.SaveCollectionRequest{
		Title: "Invoices v2",
		Pages: json.RawMessage(`[{"name": "main"}]`),
	})
	require.NoError(t, err)
	assert.Equal(t, created.UUID, edited.UUID)
	assert.Equal(t, "Invoices v2", edited.Title)

	// The current view follows the latest edit.
	current, err := svc.GetCurrent(ctx, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, "Invoices v2", current.Title)

	// A second edit may reuse a title from the collection's own history.
	_, err = svc.Edit(ctx, created.UUID, dto.SaveCollectionRequest{Title: "Invoices"})
	require.NoError(t, err)

	// History holds all three versions, oldest first, with exactly the
	// newest flagged current.
	history, err := svc.History(ctx, created.UUID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "Invoices", history[0].Title)
	assert.Equal(t, "Invoices v2", history[1].Title)
	assert.Equal(t, "Invoices", history[2].Title)
	assert.False(t, history[0].IsCurrent)
	assert.False(t, history[1].IsCurrent)
	assert.True(t, history[2].IsCurrent)

	// The short listing still shows one entry per collection.
	list, err := svc.List(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.UUID, list[0].UUID)
}

func TestCollectionService_Integration_GetByVersion(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewCollectionService(tdb.DB)
	ctx := context.Background()

	ownerID := uuid.New()

	created, err := svc.Create(ctx, ownerID, dto.SaveCollectionRequest{Title: "Invoices"})
	require.NoError(t, err)

	_, err = svc.Edit(ctx, created.UUID, dto.SaveCollectionRequest{Title: "Invoices v2"})
	require.NoError(t, err)

	history, err := svc.History(ctx, created.UUID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	// A superseded version stays readable by its own id.
	old, err := svc.GetByVersion(ctx, history[0].UUID)
	require.NoError(t, err)
	assert.Equal(t, "Invoices", old.Title)
	assert.Equal(t, created.UUID, old.UUID)
}

func TestCollectionService_Integration_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewCollectionService(tdb.DB)
	ctx := context.Background()

	ownerID := uuid.New()

	created, err := svc.Create(ctx, ownerID, dto.SaveCollectionRequest{Title: "Invoices"})
	require.NoError(t, err)

	_, err = svc.Edit(ctx, created.UUID, dto.SaveCollectionRequest{Title: "Invoices v2"})
	require.NoError(t, err)

	// Delete removes the whole history.
	require.NoError(t, svc.Delete(ctx, created.UUID))

	assert.ErrorIs(t, svc.Exists(ctx, created.UUID), services.ErrCollectionNotFound)

	history, err := svc.History(ctx, created.UUID)
	require.NoError(t, err)
	assert.Empty(t, history)

	// The freed title becomes available again.
	_, err = svc.Create(ctx, ownerID, dto.SaveCollectionRequest{Title: "Invoices"})
	assert.NoError(t, err)

	// Deleting again is a no-op.
	assert.NoError(t, svc.Delete(ctx, created.UUID))
}

func TestCollectionService_Integration_Export(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := services.NewCollectionService(tdb.DB)
	ctx := context.Background()

	ownerID := uuid.New()
	config := json.RawMessage(`{"theme": "dark"}`)

	created, err := svc.Create(ctx, ownerID, dto.SaveCollectionRequest{Title: "Invoices", Config: config})
	require.NoError(t, err)

	file, err := svc.Export(ctx, created.UUID)
	require.NoError(t, err)

	history, err := svc.History(ctx, created.UUID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, history[0].UUID.String(), file.Filename)

	var exported dto.CollectionResponse
	require.NoError(t, json.Unmarshal(file.Content, &exported))
	assert.Equal(t, created.UUID, exported.UUID)
	assert.JSONEq(t, string(config), string(exported.Config))
}
