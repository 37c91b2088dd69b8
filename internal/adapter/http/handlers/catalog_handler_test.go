package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"moving_pricing/internal/adapter/http/handlers/mocks"
	"moving_pricing/internal/domain/entities"
	"moving_pricing/internal/domain/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ReloadCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"success", nil, http.StatusOK, ""},
		{"rejected catalog", fmt.Errorf("publish catalog v2: %w", errors.Join(&pricing.ConfigurationError{RuleID: "piano", Stage: pricing.StagePublishing, Reason: "unknown target"})), http.StatusUnprocessableEntity, "CATALOG_REJECTED"},
		{"source down", errors.New("load catalog: connection refused"), http.StatusInternalServerError, "CATALOG_RELOAD_FAILED"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockICatalogUseCase(ctrl)
			h := NewCatalogHandler(uc, nil)
			r := gin.New()
			r.POST("/v1/catalog/reload", h.ReloadCatalog)

			uc.EXPECT().Reload(gomock.Any()).Return(entities.CatalogSummary{RulesVersion: "v2"}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/catalog/reload", "", nil)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.code != "" {
				if body := decodeError(t, w); body.Code != tc.code {
					t.Fatalf("expected %s, got %s", tc.code, body.Code)
				}
			}
		})
	}
}
