package toast

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	var r Recorder
	var n Notifier = &r

	n.Info("The Post was created!")
	n.Warning("An error has occurred. Action not taken.")
	r.Success("done")
	r.Error("failed")

	assert.Equal(t, []Toast{
		{Level: LevelInfo, Message: "The Post was created!"},
		{Level: LevelWarning, Message: "An error has occurred. Action not taken."},
		{Level: LevelSuccess, Message: "done"},
		{Level: LevelError, Message: "failed"},
	}, r.Toasts)
}

func TestSessionStore_FlushThenDrain(t *testing.T) {
	store := NewCookieStore([]byte("0123456789abcdef0123456789abcdef"), "padmin")

	// request 1: the save command stores a toast and redirects
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/admin/resources/posts/create", nil)
	require.NoError(t, store.Flush(w, r, []Toast{{Level: LevelInfo, Message: "The Post was created!"}}))

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	// request 2: the list screen drains it
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/admin/resources/posts", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	toasts, err := store.Drain(w, r)
	require.NoError(t, err)
	assert.Equal(t, []Toast{{Level: LevelInfo, Message: "The Post was created!"}}, toasts)

	// request 3: with the drained cookie nothing is left
	drained := w.Result().Cookies()
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/admin/resources/posts", nil)
	for _, c := range drained {
		r.AddCookie(c)
	}
	toasts, err = store.Drain(w, r)
	require.NoError(t, err)
	assert.Empty(t, toasts)
}

func TestSessionStore_FlushNothing(t *testing.T) {
	store := NewCookieStore([]byte("0123456789abcdef0123456789abcdef"), "padmin")
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	require.NoError(t, store.Flush(w, r, nil))
	assert.Empty(t, w.Result().Cookies())
}
