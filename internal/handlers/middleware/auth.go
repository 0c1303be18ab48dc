package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/poemario-backend/internal/services"
)

const (
	// UserIDContextKey é a chave do id do usuário autenticado no contexto
	UserIDContextKey = "auth_user_id"
	// UserRolesContextKey é a chave dos papéis do usuário autenticado
	UserRolesContextKey = "auth_user_roles"
)

// AuthMiddleware valida tokens de acesso nas rotas protegidas
type AuthMiddleware struct {
	authService *services.AuthService
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireAuth exige um Bearer token válido e popula o contexto com o usuário
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := m.authService.ParseToken(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(UserIDContextKey, claims.Subject)
		c.Set(UserRolesContextKey, claims.Roles)
		c.Next()
	}
}

// GetUserID retorna o id do usuário autenticado na requisição
func GetUserID(c *gin.Context) string {
	return c.GetString(UserIDContextKey)
}

// abortUnauthorized responde 401 sem depender do pacote dto (evita ciclo de
// imports com o helper de i18n)
func abortUnauthorized(c *gin.Context) {
	problem := problems.NewDetailedProblem(http.StatusUnauthorized, "missing or invalid access token")
	problem.Instance = c.Request.URL.Path
	c.AbortWithStatusJSON(http.StatusUnauthorized, problem)
}
