package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func draftContents() []CardContent {
	return []CardContent{
		{Front: "f1", Back: "b1"},
		{Front: "f2", Back: "b2"},
		{Front: "f3", Back: "b3"},
	}
}

func TestNewDraft(t *testing.T) {
	draft, err := NewDraft("photosynthesis", draftContents())
	require.NoError(t, err)

	assert.Equal(t, "photosynthesis", draft.Topic())
	assert.Equal(t, 3, draft.Len())

	cards := draft.Cards()
	require.Len(t, cards, 3)

	seen := make(map[string]bool)
	for i, c := range cards {
		assert.NotEmpty(t, c.ID)
		assert.False(t, seen[c.ID], "draft ids must be unique")
		seen[c.ID] = true
		assert.Equal(t, draftContents()[i], c.Content)
	}
}

func TestNewDraft_Empty(t *testing.T) {
	_, err := NewDraft("topic", nil)
	assert.ErrorIs(t, err, ErrEmptyDraft)
}

func TestNewDraft_InvalidContent(t *testing.T) {
	_, err := NewDraft("topic", []CardContent{{Front: "", Back: "b"}})
	assert.ErrorIs(t, err, ErrEmptyCardFront)
}

func TestDraft_Replace(t *testing.T) {
	draft, err := NewDraft("topic", draftContents())
	require.NoError(t, err)

	target := draft.Cards()[1]
	newContent := CardContent{Front: "new front", Back: "new back"}
	require.NoError(t, draft.Replace(target.ID, newContent))

	cards := draft.Cards()
	assert.Equal(t, target.ID, cards[1].ID, "identity survives replacement")
	assert.Equal(t, newContent, cards[1].Content)
	assert.Equal(t, "f1", cards[0].Content.Front)
	assert.Equal(t, "f3", cards[2].Content.Front)
}

func TestDraft_ReplaceUnknownID(t *testing.T) {
	draft, err := NewDraft("topic", draftContents())
	require.NoError(t, err)

	err = draft.Replace("no-such-id", CardContent{Front: "f", Back: "b"})
	assert.ErrorIs(t, err, ErrDraftCardNotFound)
}

func TestDraft_ReplaceInvalidContent(t *testing.T) {
	draft, err := NewDraft("topic", draftContents())
	require.NoError(t, err)

	target := draft.Cards()[0]
	err = draft.Replace(target.ID, CardContent{Front: "f", Back: ""})
	assert.ErrorIs(t, err, ErrEmptyCardBack)
}

func TestDraft_Remove(t *testing.T) {
	draft, err := NewDraft("topic", draftContents())
	require.NoError(t, err)

	target := draft.Cards()[1]
	require.NoError(t, draft.Remove(target.ID))

	cards := draft.Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "f1", cards[0].Content.Front)
	assert.Equal(t, "f3", cards[1].Content.Front)

	// A second remove of the same id reports not found
	assert.ErrorIs(t, draft.Remove(target.ID), ErrDraftCardNotFound)
}

func TestDraft_RemoveAddressesByIdentityAfterEarlierRemoval(t *testing.T) {
	draft, err := NewDraft("topic", draftContents())
	require.NoError(t, err)

	cards := draft.Cards()
	first, third := cards[0], cards[2]

	require.NoError(t, draft.Remove(first.ID))
	require.NoError(t, draft.Remove(third.ID))

	remaining := draft.Cards()
	require.Len(t, remaining, 1)
	assert.Equal(t, "f2", remaining[0].Content.Front)
}

func TestDraft_Contents(t *testing.T) {
	draft, err := NewDraft("topic", draftContents())
	require.NoError(t, err)

	assert.Equal(t, draftContents(), draft.Contents())
}

func TestDraft_CardsReturnsCopy(t *testing.T) {
	draft, err := NewDraft("topic", draftContents())
	require.NoError(t, err)

	cards := draft.Cards()
	cards[0].Content.Front = "mutated"

	assert.Equal(t, "f1", draft.Cards()[0].Content.Front)
}
