package persona_controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Verity-Deals/verity-deals-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/personas/classify", ClassifyPersona)
	r.POST("/personas/match", MatchPersona)
	r.GET("/personas", GetPersonas)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestClassifyPersonaEndpoint(t *testing.T) {
	r := setupRouter()

	w := postJSON(t, r, "/personas/classify", gin.H{
		"primary_use": "gaming",
		"budget":      "under-800",
		"priority":    "battery",
		"importance":  "weight",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.ClassificationResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.PersonaCompetitiveGamer, resp.Data.Persona)
	assert.NotEmpty(t, resp.Data.Description)
}

func TestClassifyPersonaEndpointRejectsPartialAnswers(t *testing.T) {
	r := setupRouter()

	w := postJSON(t, r, "/personas/classify", gin.H{
		"primary_use": "gaming",
		"budget":      "under-800",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassifyPersonaEndpointRejectsUnknownEnumValue(t *testing.T) {
	r := setupRouter()

	w := postJSON(t, r, "/personas/classify", gin.H{
		"primary_use": "mining",
		"budget":      "under-800",
		"priority":    "battery",
		"importance":  "weight",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMatchPersonaEndpoint(t *testing.T) {
	r := setupRouter()

	w := postJSON(t, r, "/personas/match", gin.H{
		"persona":          "Business Traveler",
		"product_personas": []string{"Digital Nomad"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.MatchScoreResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 75, resp.Data.Score)
	assert.Equal(t, "good", resp.Data.Tier)
}

func TestMatchPersonaEndpointRejectsUnknownPersona(t *testing.T) {
	r := setupRouter()

	w := postJSON(t, r, "/personas/match", gin.H{
		"persona":          "Bargain Hunter",
		"product_personas": []string{"Digital Nomad"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPersonasEndpoint(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/personas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.PersonaInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 7)
}
