package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atharhub/athar/internal/ctxutil"
	"github.com/atharhub/athar/internal/db"
)

func (s *Server) listActivityTypes(c *fiber.Ctx) error {
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	out, err := db.ListActivityTypes(ctx, s.db)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// leaderboard handles GET /api/v1/leaderboard?limit=N (default 10, cap 100).
func (s *Server) leaderboard(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	ctx, cancel := ctxutil.WithDBTimeout(c.UserContext())
	defer cancel()
	out, err := db.Leaderboard(ctx, s.db, limit)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
