package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockdb "github.com/banachtech/quantarb/db/mock"
	db "github.com/banachtech/quantarb/db/sqlc"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func TestAuthentication(t *testing.T) {
	key, user := testKey()

	expiredUser := user
	expiredUser.ExpiredAt = time.Now().AddDate(0, 0, -1).Format(layoutTimestamp)

	type testCases struct {
		name       string
		header     string
		buildStubs func(store *mockdb.MockStore)
		wantStatus int
	}

	for _, test := range []testCases{
		{
			name:       "NO_HEADER",
			header:     "",
			buildStubs: func(store *mockdb.MockStore) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "MALFORMED_HEADER",
			header:     key,
			buildStubs: func(store *mockdb.MockStore) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "UNSUPPORTED_TYPE",
			header:     fmt.Sprintf("basic %s", key),
			buildStubs: func(store *mockdb.MockStore) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "BAD_PREFIX",
			header:     "bearer short.secret",
			buildStubs: func(store *mockdb.MockStore) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "UNKNOWN_KEY",
			header: fmt.Sprintf("bearer %s", key),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), user.Prefix).Times(1).Return(db.Registrar{}, sql.ErrNoRows)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "EXPIRED_KEY",
			header: fmt.Sprintf("bearer %s", key),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), user.Prefix).Times(1).Return(expiredUser, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "WRONG_SECRET",
			header: fmt.Sprintf("bearer %s.%s", user.Prefix, "notthesecret1234"),
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().GetUser(gomock.Any(), user.Prefix).Times(1).Return(user, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			test.buildStubs(store)

			server := NewServer(store)
			recorder := httptest.NewRecorder()

			body, err := json.Marshal(map[string]float64{"spot": 100, "strike": 100, "expiry": 1, "rate": 0.05, "volatility": 0.2})
			require.NoError(t, err)

			req, err := http.NewRequest(http.MethodPost, "/v1/pricer", bytes.NewReader(body))
			require.NoError(t, err)
			if test.header != "" {
				req.Header.Set(authorizationHeaderKey, test.header)
			}

			server.router.ServeHTTP(recorder, req)
			require.Equal(t, test.wantStatus, recorder.Code)
		})
	}
}
