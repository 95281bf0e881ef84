package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyblock-tools/skyblock-checker/internal/adapters/api"
	"github.com/skyblock-tools/skyblock-checker/internal/domain/player"
)

func newMojangClient(t *testing.T, handler http.HandlerFunc) (*api.MojangClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := api.NewMojangClient(api.MojangConfig{
		BaseURL: server.URL,
		Logger:  zerolog.Nop(),
	})
	return client, server
}

func TestMojangClient_Resolve(t *testing.T) {
	// Arrange
	requests := 0
	client, _ := newMojangClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/users/profiles/minecraft/Technoblade", r.URL.Path)
		w.Write([]byte(`{"id":"b876ec32e396476ba1158438d83c67d4","name":"Technoblade"}`))
	})

	// Act
	identity, err := client.Resolve(context.Background(), "Technoblade")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "b876ec32e396476ba1158438d83c67d4", identity.UUID.String())
	assert.Equal(t, "Technoblade", identity.Username)
	assert.Equal(t, 1, requests)
}

func TestMojangClient_Resolve_CachesByLowercasedName(t *testing.T) {
	// Arrange
	requests := 0
	client, _ := newMojangClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"id":"b876ec32e396476ba1158438d83c67d4","name":"Technoblade"}`))
	})

	// Act: same name in different case variants
	first, err := client.Resolve(context.Background(), "Technoblade")
	require.NoError(t, err)
	second, err := client.Resolve(context.Background(), "TECHNOBLADE")
	require.NoError(t, err)
	third, err := client.Resolve(context.Background(), "technoblade")
	require.NoError(t, err)

	// Assert: one network call, identical identifier
	assert.Equal(t, 1, requests)
	assert.True(t, first.UUID.Equals(second.UUID))
	assert.True(t, first.UUID.Equals(third.UUID))
}

func TestMojangClient_Resolve_NotFound(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusNotFound} {
		client, _ := newMojangClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		_, err := client.Resolve(context.Background(), "nosuchplayer")

		var notFound *player.NotFoundError
		require.ErrorAs(t, err, &notFound, "status %d", status)
		assert.Equal(t, "nosuchplayer", notFound.Username)
	}
}

func TestMojangClient_Resolve_UnexpectedStatus(t *testing.T) {
	client, _ := newMojangClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Resolve(context.Background(), "Technoblade")

	var statusErr *player.LookupStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Status)
}

func TestMojangClient_Resolve_MalformedJSON(t *testing.T) {
	client, _ := newMojangClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})

	_, err := client.Resolve(context.Background(), "Technoblade")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestMojangClient_Resolve_MissingIdentifier(t *testing.T) {
	client, _ := newMojangClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name":"Technoblade"}`))
	})

	_, err := client.Resolve(context.Background(), "Technoblade")

	assert.ErrorIs(t, err, player.ErrMalformedResponse)
}

func TestMojangClient_Resolve_NetworkFailure(t *testing.T) {
	// Arrange: server closed before the call
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := api.NewMojangClient(api.MojangConfig{BaseURL: server.URL, Logger: zerolog.Nop()})
	server.Close()

	// Act
	_, err := client.Resolve(context.Background(), "Technoblade")

	// Assert
	var netErr *player.NetworkError
	assert.True(t, errors.As(err, &netErr))
}
