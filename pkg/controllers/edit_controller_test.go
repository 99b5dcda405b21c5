package controllers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sukryu/pAdmin/pkg/apis/admin/v1alpha1"
	"github.com/sukryu/pAdmin/pkg/errors"
	"github.com/sukryu/pAdmin/pkg/mocks"
)

func findNote(title string) func(mock.Arguments) {
	return func(args mock.Arguments) {
		n := args.Get(1).(*note)
		n.ID = args.String(2)
		n.Title = title
	}
}

func TestEditController_Query(t *testing.T) {
	repo := mocks.NewMockRepository()
	repo.On("Find", mock.Anything, mock.AnythingOfType("*controllers.note"), "n1", mock.Anything).
		Run(findNote("Groceries")).Return(nil)
	repo.On("Find", mock.Anything, mock.Anything, "missing", mock.Anything).
		Return(errors.ErrNotFound)

	c := NewEditController(repo, paths, nil)
	d := newNoteResource()

	screen, err := c.Query(context.Background(), &ResourceRequest{Resource: d, ID: "n1"})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", screen.Name)
	assert.Equal(t, "Groceries", screen.Data["model"].(*note).Title)
	assert.Equal(t, []v1alpha1.Action{
		{Label: "Update Note", Method: "update", Icon: "check"},
		{Label: "Delete Note", Method: "delete", Icon: "trash"},
	}, screen.CommandBar)

	_, err = c.Query(context.Background(), &ResourceRequest{Resource: d, ID: "missing"})
	assert.ErrorIs(t, err, errors.ErrNotFound)

	_, err = c.Query(context.Background(), &ResourceRequest{Resource: d})
	assert.ErrorIs(t, err, errors.ErrInvalidRequest)
}

func TestEditController_Update(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.MockRepository)
		wantToast string
		wantLevel string
		wantSaved bool
	}{
		{
			name: "updated",
			setupMock: func(m *mocks.MockRepository) {
				m.On("Find", mock.Anything, mock.Anything, "n1", mock.Anything).Run(findNote("old")).Return(nil)
				m.On("Fill", mock.Anything, mock.Anything, map[string]any{"title": "new", "done": true}).Run(fillNote).Return(nil)
				m.On("Save", mock.Anything, mock.MatchedBy(func(n *note) bool {
					return n.ID == "n1" && n.Title == "new" && n.Done
				})).Return(nil)
			},
			wantToast: "The Note was updated!",
			wantLevel: "Info",
			wantSaved: true,
		},
		{
			name: "record missing",
			setupMock: func(m *mocks.MockRepository) {
				m.On("Find", mock.Anything, mock.Anything, "n1", mock.Anything).Return(errors.ErrNotFound)
			},
			wantToast: "An error has occurred. Action not taken.",
			wantLevel: "Warning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockRepository()
			tt.setupMock(repo)
			notifier := &mocks.MockNotifier{}
			notifier.On(tt.wantLevel, tt.wantToast).Once()

			c := NewEditController(repo, paths, nil)
			got := c.Update(context.Background(), &ResourceRequest{
				Resource: newNoteResource(),
				ID:       "n1",
				Input:    map[string]any{"title": "new", "done": "on"},
			}, notifier)

			assert.Equal(t, tt.wantSaved, got.Saved)
			assert.Equal(t, "/admin/resources/notes", got.Redirect)
			repo.AssertExpectations(t)
			notifier.AssertExpectations(t)
		})
	}
}

func TestEditController_Delete(t *testing.T) {
	repo := mocks.NewMockRepository()
	repo.On("Find", mock.Anything, mock.Anything, "n1", mock.Anything).Run(findNote("bye")).Return(nil)
	repo.On("Delete", mock.Anything, mock.MatchedBy(func(n *note) bool { return n.ID == "n1" })).Return(nil)
	repo.On("Find", mock.Anything, mock.Anything, "n2", mock.Anything).Run(findNote("stuck")).Return(nil)
	repo.On("Delete", mock.Anything, mock.MatchedBy(func(n *note) bool { return n.ID == "n2" })).Return(errors.ErrStorageOperation)

	notifier := &mocks.MockNotifier{}
	notifier.On("Info", "The Note was deleted!").Once()
	notifier.On("Warning", "An error has occurred. Action not taken.").Once()

	c := NewEditController(repo, paths, nil)

	got := c.Delete(context.Background(), &ResourceRequest{Resource: newNoteResource(), ID: "n1"}, notifier)
	assert.True(t, got.Saved)
	assert.Equal(t, "/admin/resources/notes", got.Redirect)

	got = c.Delete(context.Background(), &ResourceRequest{Resource: newNoteResource(), ID: "n2"}, notifier)
	assert.False(t, got.Saved)
	assert.ErrorIs(t, got.Err, errors.ErrStorageOperation)
	assert.Equal(t, "/admin/resources/notes", got.Redirect)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}
