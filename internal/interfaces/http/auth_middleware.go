package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-web/internal/application/dto"
	"github.com/jhoicas/catalogo-web/pkg/jwt"
)

// Locals keys para el cliente y el scope del token de servicio.
const (
	LocalClient = "client"
	LocalScope  = "scope"
)

// Scopes del token de servicio.
const (
	ScopeRead  = "catalog:read"
	ScopeWrite = "catalog:write"
)

// AuthMiddleware valida el Bearer Token de servicio y deja client y scope en c.Locals.
// Con jwtSecret vacío la API queda abierta (desarrollo) y el middleware no hace nada.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if jwtSecret == "" {
			return c.Next()
		}
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		client, scope, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalClient, client)
		c.Locals(LocalScope, scope)
		return c.Next()
	}
}

// RequireWriteScope rechaza con 403 las escrituras con un token de solo lectura.
// Sin token en Locals (API abierta) deja pasar.
func RequireWriteScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead {
			return c.Next()
		}
		scope := GetScope(c)
		if scope == "" && GetClient(c) == "" {
			return c.Next()
		}
		if scope != ScopeWrite {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "se requiere scope " + ScopeWrite})
		}
		return c.Next()
	}
}

// GetClient devuelve el cliente del token (después del middleware de auth).
func GetClient(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalClient).(string)
	return s
}

// GetScope devuelve el scope del token (después del middleware de auth).
func GetScope(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalScope).(string)
	return s
}
