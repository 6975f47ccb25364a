package service

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"nobel-stats/app/models"
	"nobel-stats/app/view"
	"nobel-stats/utils"
)

type StatisticsService struct {
	sessions SessionProvider
	renderer *view.Renderer
	topN     int
	logger   *zap.Logger
}

func NewStatisticsService(sessions SessionProvider, renderer *view.Renderer, topN int, logger *zap.Logger) *StatisticsService {
	return &StatisticsService{sessions: sessions, renderer: renderer, topN: topN, logger: logger}
}

func notReady(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Prize data is not loaded yet"})
}

// === Page: country grid, optional laureate table and biography ===
func (s *StatisticsService) Index(c *fiber.Ctx) error {
	page := view.Page{Grid: models.CountryGrid{}}

	if session := s.sessions.Session(); session != nil {
		page.Ready = true
		page.Grid = BuildCountryGrid(session.Counts, s.topN)

		var query models.LaureateQuery
		if err := c.QueryParser(&query); err == nil && utils.ValidateStruct(query) == nil {
			detail := BuildDetailTable(session.Laureates, query.Country, query.Category)
			if query.Laureate != "" {
				ShowBiography(session.Laureates, &detail, query.Laureate, query.Category)
			}
			page.Detail = &detail
		}
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	if err := s.renderer.Page(c, page); err != nil {
		s.logger.Error("render page", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render page")
	}
	return nil
}

// === GET top countries per category ===
func (s *StatisticsService) GetTopCountries(c *fiber.Ctx) error {
	session := s.sessions.Session()
	if session == nil {
		return notReady(c)
	}
	return c.JSON(BuildCountryGrid(session.Counts, s.topN))
}

// === GET laureates of one country in one category ===
func (s *StatisticsService) GetLaureates(c *fiber.Ctx) error {
	session := s.sessions.Session()
	if session == nil {
		return notReady(c)
	}

	var query models.LaureateQuery
	if err := c.QueryParser(&query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query"})
	}
	if err := utils.ValidateStruct(query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(BuildDetailTable(session.Laureates, query.Country, query.Category))
}

// === GET biography of one laureate ===
func (s *StatisticsService) GetBiography(c *fiber.Ctx) error {
	session := s.sessions.Session()
	if session == nil {
		return notReady(c)
	}

	var query models.BiographyQuery
	if err := c.QueryParser(&query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query"})
	}
	if err := utils.ValidateStruct(query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	bio, ok := Biography(session.Laureates, c.Params("id"), query.Category)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Laureate or prize not found"})
	}
	return c.JSON(bio)
}

// === GET health ===
func (s *StatisticsService) Health(c *fiber.Ctx) error {
	session := s.sessions.Session()
	if session == nil {
		return c.JSON(fiber.Map{"status": "ok", "ready": false})
	}
	return c.JSON(fiber.Map{
		"status":   "ok",
		"ready":    true,
		"session":  session.ID,
		"loadedAt": session.LoadedAt,
	})
}
