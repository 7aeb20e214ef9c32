package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	mockdb "github.com/banachtech/quantarb/db/mock"
	"github.com/banachtech/quantarb/util"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestTickers(t *testing.T) {
	key, user := testKey()
	universe := []string{util.RandomTicker(), util.RandomTicker(), util.RandomTicker()}

	t.Run("OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().GetUser(gomock.Any(), user.Prefix).Times(1).Return(user, nil)
		store.EXPECT().GetTickers(gomock.Any()).Times(1).Return(universe, nil)

		server := NewServer(store)
		recorder := httptest.NewRecorder()

		req, err := http.NewRequest(http.MethodGet, "/v1/tickers", nil)
		require.NoError(t, err)
		addAuthorization(req, key)

		server.router.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusOK, recorder.Code)
		for _, ticker := range universe {
			require.Contains(t, recorder.Body.String(), ticker)
		}
	})

	t.Run("STORE_ERROR", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := mockdb.NewMockStore(ctrl)
		store.EXPECT().GetUser(gomock.Any(), user.Prefix).Times(1).Return(user, nil)
		store.EXPECT().GetTickers(gomock.Any()).Times(1).Return(nil, errors.New("connection lost"))

		server := NewServer(store)
		recorder := httptest.NewRecorder()

		req, err := http.NewRequest(http.MethodGet, "/v1/tickers", nil)
		require.NoError(t, err)
		addAuthorization(req, key)

		server.router.ServeHTTP(recorder, req)
		require.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
