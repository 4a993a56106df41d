package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gin-storefront/constants"
	"gin-storefront/middlewares"
	"gin-storefront/models"
	"gin-storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubGate struct {
	decision services.Authorization
	err      error
}

func (g stubGate) Authorize(*models.Session) (services.Authorization, error) {
	return g.decision, g.err
}

func runAdminRequired(gate services.IAdminGate) (*httptest.ResponseRecorder, bool) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, engine := gin.CreateTestContext(w)

	reached := false
	engine.Use(func(c *gin.Context) {
		c.Set(constants.ContextSessionKey, &models.Session{ID: "sid"})
		c.Next()
	})
	engine.GET("/admin", middlewares.AdminRequired(gate), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	ctx.Request, _ = http.NewRequest(http.MethodGet, "/admin", nil)
	engine.HandleContext(ctx)
	return w, reached
}

func TestAdminRequired(t *testing.T) {
	t.Run("allowed reaches handler", func(t *testing.T) {
		w, reached := runAdminRequired(stubGate{decision: services.AuthorizationAllowed})
		assert.True(t, reached)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("redirect to login", func(t *testing.T) {
		w, reached := runAdminRequired(stubGate{decision: services.AuthorizationRedirectToLogin})
		assert.False(t, reached)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("redirect home instead of 403", func(t *testing.T) {
		w, reached := runAdminRequired(stubGate{decision: services.AuthorizationRedirectToHome})
		assert.False(t, reached)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})

	t.Run("lookup failure is a server error", func(t *testing.T) {
		w, reached := runAdminRequired(stubGate{err: errors.New("db down")})
		assert.False(t, reached)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"Unexpected error"}`, w.Body.String())
	})
}

func TestLoginRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uint(3)

	for name, session := range map[string]*models.Session{
		"anonymous":     {ID: "a"},
		"authenticated": {ID: "b", UserID: &userID},
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request, _ = http.NewRequest(http.MethodGet, "/orders", nil)
			ctx.Set(constants.ContextSessionKey, session)

			middlewares.LoginRequired()(ctx)

			if session.IsAuthenticated() {
				assert.False(t, ctx.IsAborted())
			} else {
				assert.True(t, ctx.IsAborted())
				assert.Equal(t, http.StatusFound, w.Code)
				assert.Equal(t, "/login", w.Header().Get("Location"))
			}
		})
	}
}
