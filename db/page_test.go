package db

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/sdeepak1/cms/util"
)

func createTestPage(t *testing.T) Page {
	title := "Test Page"

	page, err := testStore.CreatePage(context.Background(), CreatePageParams{
		Slug:  util.RandomSlug(),
		Title: &title,
		Body:  "Intro [property limit=3] outro",
	})
	require.NoError(t, err)
	require.NotEmpty(t, page.ID)
	require.Equal(t, "Intro [property limit=3] outro", page.Body)
	require.True(t, page.Title.Valid)
	require.Equal(t, "Test Page", page.Title.String)

	return page
}

func TestCreatePage(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	createTestPage(t)
}

func TestCreatePage_DuplicateSlug(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	page := createTestPage(t)

	_, err := testStore.CreatePage(context.Background(), CreatePageParams{
		Slug: page.Slug,
		Body: "",
	})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestGetPage(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	created := createTestPage(t)

	page, err := testStore.GetPage(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, page.ID)
	require.Equal(t, created.Slug, page.Slug)
	require.Equal(t, created.Body, page.Body)
}

func TestGetPage_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	_, err := testStore.GetPage(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePage(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	created := createTestPage(t)

	updated, err := testStore.UpdatePage(context.Background(), UpdatePageParams{
		ID:   created.ID,
		Body: "now [gallery count=4] instead",
	})
	require.NoError(t, err)
	require.Equal(t, "now [gallery count=4] instead", updated.Body)
	// nil title keeps the previous value
	require.Equal(t, created.Title, updated.Title)
}

func TestDeletePage(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	created := createTestPage(t)

	err := testStore.DeletePage(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = testStore.GetPage(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	err = testStore.DeletePage(context.Background(), created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListPages(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	createTestPage(t)
	createTestPage(t)

	pages, err := testStore.ListPages(context.Background(), ListPagesParams{Limit: 5, Offset: 0})
	require.NoError(t, err)
	require.NotEmpty(t, pages)
	require.LessOrEqual(t, len(pages), 5)
}
