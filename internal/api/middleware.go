package api

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/atharhub/athar/internal/ctxutil"
	"github.com/atharhub/athar/internal/metrics"
)

// requestID tags every request with an id, echoed back in the X-Request-Id
// header and carried on the context for log correlation. The acting admin's
// identifier rides along when the dashboard sends X-Actor.
func (s *Server) requestID(c *fiber.Ctx) error {
	id := c.Get("X-Request-Id")
	if id == "" {
		id = uuid.NewString()
	}
	c.Set("X-Request-Id", id)
	ctx := ctxutil.WithRequestID(c.UserContext(), id)
	if actor := c.Get("X-Actor"); actor != "" {
		ctx = ctxutil.WithActor(ctx, actor)
	}
	c.SetUserContext(ctx)
	return c.Next()
}

// observe counts requests per route and status. Errors are classified the
// same way the error handler will render them, since it runs after us.
func (s *Server) observe(c *fiber.Ctx) error {
	err := c.Next()
	status := c.Response().StatusCode()
	if err != nil {
		var fe *fiber.Error
		switch {
		case errors.As(err, &fe):
			status = fe.Code
		case errors.Is(err, sql.ErrNoRows):
			status = fiber.StatusNotFound
		default:
			status = fiber.StatusInternalServerError
		}
	}
	metrics.HTTPRequests.WithLabelValues(c.Route().Path, strconv.Itoa(status)).Inc()
	return err
}

// body parses and validates a JSON request body.
func (s *Server) body(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "bad JSON")
	}
	if err := s.val.Struct(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}
