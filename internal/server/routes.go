package server

import (
	"database/sql"
	"errors"
	"net/http"

	"bela-game/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// ResultStore is the part of the results database the HTTP layer and the
// table need.
type ResultStore interface {
	GetAll() ([]database.RoundResult, error)
	GetByID(id string) (database.RoundResult, error)
	GetByPlayer(name string) ([]database.RoundResult, error)
	Insert(result database.RoundResult) error
}

type resultsHandler struct {
	store ResultStore
}

// NewRouter wires the spectator socket and the results API.
func NewRouter(hub *Hub, store ResultStore) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logrus.WithFields(logrus.Fields{
				"method": v.Method,
				"uri":    v.URI,
				"status": v.Status,
			}).Debug("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())

	h := &resultsHandler{store: store}

	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})
	e.GET("/ws", hub.ServeWs)
	e.GET("/api/results", h.getResults)
	e.GET("/api/results/player/:name", h.getResultsByPlayer)
	e.GET("/api/results/:id", h.getResult)

	logrus.Info("Registered routes: /ping, /ws, /api/results")
	return e
}

func (h *resultsHandler) getResults(c echo.Context) error {
	results, err := h.store.GetAll()
	if err != nil {
		logrus.WithError(err).Error("Failed to fetch results")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch results")
	}
	if results == nil {
		results = []database.RoundResult{}
	}
	return c.JSON(http.StatusOK, results)
}

func (h *resultsHandler) getResultsByPlayer(c echo.Context) error {
	player := c.Param("name")
	if player == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Player name is required")
	}

	results, err := h.store.GetByPlayer(player)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "No results found for player")
		}
		logrus.WithError(err).WithField("player", player).Error("Failed to fetch results")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch results")
	}
	return c.JSON(http.StatusOK, results)
}

func (h *resultsHandler) getResult(c echo.Context) error {
	id := c.Param("id")
	result, err := h.store.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Round not found")
		}
		logrus.WithError(err).WithField("round", id).Error("Failed to fetch result")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch result")
	}
	return c.JSON(http.StatusOK, result)
}
