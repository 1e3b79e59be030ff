package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/biomed-search/api/types"
	"github.com/killallgit/biomed-search/internal/database"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name              string
		setupDeps         func(t *testing.T) *types.Dependencies
		expectedStatus    int
		expectedHealth    string
		expectedDBStatus  string
		expectedConnected bool
	}{
		{
			name: "healthy with database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db, err := database.InMemory()
				require.NoError(t, err)
				t.Cleanup(func() { _ = db.Close() })
				return &types.Dependencies{DB: db}
			},
			expectedStatus:    http.StatusOK,
			expectedHealth:    "healthy",
			expectedDBStatus:  "healthy",
			expectedConnected: true,
		},
		{
			name: "healthy without database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				return &types.Dependencies{}
			},
			expectedStatus:    http.StatusOK,
			expectedHealth:    "healthy",
			expectedDBStatus:  "not configured",
			expectedConnected: false,
		},
		{
			name: "unhealthy with closed database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db, err := database.InMemory()
				require.NoError(t, err)
				require.NoError(t, db.Close())
				return &types.Dependencies{DB: db}
			},
			expectedStatus:    http.StatusServiceUnavailable,
			expectedHealth:    "unhealthy",
			expectedDBStatus:  "unhealthy",
			expectedConnected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

			Get(tt.setupDeps(t))(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedHealth, response["status"])
			assert.NotEmpty(t, response["timestamp"])

			dbStatus, ok := response["database"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, tt.expectedDBStatus, dbStatus["status"])
			assert.Equal(t, tt.expectedConnected, dbStatus["connected"])
		})
	}
}

func TestGetDatabaseStatus_ListsTables(t *testing.T) {
	db, err := database.InMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	status := getDatabaseStatus(&types.Dependencies{DB: db})

	tables, ok := status["tables"].([]database.TableStatus)
	require.True(t, ok)
	require.NotEmpty(t, tables)
	for _, table := range tables {
		assert.True(t, table.Exists, table.Table)
		assert.Zero(t, table.Rows, table.Table)
	}
}
