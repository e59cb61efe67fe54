package slackclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PostHog/birthday-bot/internal/domain"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	api := slack.New("test-token", slack.OptionAPIURL(server.URL+"/"))
	return &Client{api: api}, server
}

func TestClient_ListUsers(t *testing.T) {
	t.Run("Should walk every page until the cursor runs out", func(t *testing.T) {
		pages := [][]string{
			{"U1", "U2"},
			{"U3"},
		}
		calls := 0

		client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, fmt.Sprint(domain.DirectoryPageSize), r.FormValue("limit"))

			page := pages[calls]
			calls++

			cursor := ""
			if calls < len(pages) {
				cursor = fmt.Sprintf("cursor-%d", calls)
			}

			members := ""
			for i, id := range page {
				if i > 0 {
					members += ","
				}
				members += fmt.Sprintf(`{"id":%q}`, id)
			}
			fmt.Fprintf(w, `{"ok":true,"members":[%s],"response_metadata":{"next_cursor":%q}}`, members, cursor)
		})
		defer server.Close()

		users, truncated, err := client.ListUsers(context.Background())

		require.NoError(t, err)
		assert.False(t, truncated)
		assert.Equal(t, 2, calls)

		var ids []string
		for _, user := range users {
			ids = append(ids, user.ID)
		}
		assert.Equal(t, []string{"U1", "U2", "U3"}, ids)
	})

	t.Run("Should stop at the page cap and flag the listing truncated", func(t *testing.T) {
		calls := 0

		client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			// Always hand back another cursor to simulate a runaway listing.
			fmt.Fprintf(w, `{"ok":true,"members":[{"id":"U%d"}],"response_metadata":{"next_cursor":"more"}}`, calls)
		})
		defer server.Close()

		users, truncated, err := client.ListUsers(context.Background())

		require.NoError(t, err)
		assert.True(t, truncated)
		assert.Equal(t, domain.MaxDirectoryPages, calls)
		assert.Len(t, users, domain.MaxDirectoryPages)
	})

	t.Run("Should surface an API failure", func(t *testing.T) {
		client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"ok":false,"error":"invalid_auth"}`)
		})
		defer server.Close()

		_, _, err := client.ListUsers(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid_auth")
	})
}
