package http

import (
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-admin-api/internal/application/dto"
	"github.com/jhoicas/ventas-admin-api/internal/domain/entity"
	"github.com/jhoicas/ventas-admin-api/pkg/jwt"
)

// Locals keys para la identidad del token en Fiber.
const (
	LocalUserID    = "user_id"
	LocalClienteID = "cliente_id"
	LocalRole      = "role"
)

// AuthMiddleware valida el JWT y extrae UserID, ClienteID y Role a c.Locals.
// El token se lee del header Authorization (Bearer) o, para enlaces de descarga,
// del parámetro ?token=.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, errResp := bearerToken(c)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(errResp)
		}
		id, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalClienteID, id.ClienteID)
		c.Locals(LocalRole, id.Role)
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) (string, *dto.ErrorResponse) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		if q := strings.TrimSpace(c.Query("token")); q != "" {
			return q, nil
		}
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"}
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"}
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"}
	}
	return tokenString, nil
}

// RequireRole permite el paso solo a los roles indicados. Usar después de AuthMiddleware.
//   - 401 MISSING_ROLE → el token no trae rol.
//   - 403 FORBIDDEN    → rol no permitido.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		if !slices.Contains(roles, role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetClienteID devuelve el ClienteID del token.
func GetClienteID(c *fiber.Ctx) string {
	return localString(c, LocalClienteID)
}

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string {
	return localString(c, LocalRole)
}

// CurrentUser identidad del token como entidad.
func CurrentUser(c *fiber.Ctx) entity.Usuario {
	return entity.Usuario{ID: GetUserID(c), ClienteID: GetClienteID(c), Role: GetRole(c)}
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
