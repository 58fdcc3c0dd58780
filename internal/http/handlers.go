package http

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"virtualdoctor/internal/core"
	"virtualdoctor/internal/directory"
	"virtualdoctor/internal/dispatch"
	"virtualdoctor/internal/llm"
	"virtualdoctor/internal/session"
	"virtualdoctor/pkg"
)

// Server bundles the dependencies required by the HTTP handlers.
type Server struct {
	Orchestrator *core.Orchestrator
	Gateway      llm.Client
	Dispatch     *dispatch.Simulator
	Log          zerolog.Logger
}

// NewServer constructs a Server.
func NewServer(orc *core.Orchestrator, gateway llm.Client, sim *dispatch.Simulator, log zerolog.Logger) *Server {
	return &Server{Orchestrator: orc, Gateway: gateway, Dispatch: sim, Log: log}
}

// Register mounts all routes and middleware on the echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(s.requestLogger)

	api := e.Group("/api")
	api.POST("/chat/:key/messages", s.postMessage)
	api.GET("/chat/:key", s.getHistory)
	api.PUT("/settings", s.updateSettings)

	api.GET("/directory/doctors", s.listDoctors)
	api.GET("/directory/specialists", s.listSpecialists)
	api.GET("/pharmacy/products", s.listProducts)
	api.GET("/pharmacy/partners", s.listPharmacies)
	api.POST("/pharmacy/orders", s.startDroneOrder)

	api.GET("/hospitals", s.findHospitals)
	api.POST("/dispatch/ambulance", s.startAmbulance)
	api.GET("/dispatch/:id", s.dispatchStatus)
}

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		started := time.Now()
		err := next(c)
		s.Log.Info().
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Int("status", c.Response().Status).
			Dur("elapsed", time.Since(started)).
			Msg("request")
		return err
	}
}

type sendMessageRequest struct {
	Text        string `json:"text"`
	ImageBase64 string `json:"image_base64,omitempty"`
	MIMEType    string `json:"mime_type,omitempty"`
}

type eventEnvelope struct {
	Type string            `json:"type"`
	Data pkg.WorkflowEvent `json:"data"`
}

type sendMessageResponse struct {
	History []pkg.ChatMessage `json:"history"`
	Events  []eventEnvelope   `json:"events"`
}

func (s *Server) postMessage(c echo.Context) error {
	key, err := pkg.ParseSessionKey(c.Param("key"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var image *pkg.ImageAttachment
	if req.ImageBase64 != "" {
		data, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid image encoding")
		}
		mime := req.MIMEType
		if mime == "" {
			mime = "image/jpeg"
		}
		image = &pkg.ImageAttachment{Data: data, MIMEType: mime}
	}

	result, err := s.Orchestrator.SendMessage(c.Request().Context(), key, req.Text, image)
	if err != nil {
		var infErr *core.InferenceError
		switch {
		case errors.Is(err, core.ErrEmptyInput):
			return echo.NewHTTPError(http.StatusBadRequest, "message requires text or an image")
		case errors.Is(err, session.ErrSessionBusy):
			return echo.NewHTTPError(http.StatusConflict, "a request for this session is already in flight")
		case errors.As(err, &infErr):
			return echo.NewHTTPError(http.StatusBadGateway, infErr.Error())
		default:
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	resp := sendMessageResponse{History: result.History, Events: make([]eventEnvelope, 0, len(result.Events))}
	for _, ev := range result.Events {
		resp.Events = append(resp.Events, eventEnvelope{Type: ev.EventName(), Data: ev})
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) getHistory(c echo.Context) error {
	key, err := pkg.ParseSessionKey(c.Param("key"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"key":     key,
		"history": s.Orchestrator.History(key),
	})
}

type settingsRequest struct {
	Language    string `json:"language"`
	PatientName string `json:"patient_name"`
}

func (s *Server) updateSettings(c echo.Context) error {
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.Orchestrator.UpdateSettings(core.Settings{Language: req.Language, PatientName: req.PatientName})
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) listDoctors(c echo.Context) error {
	return c.JSON(http.StatusOK, directory.Doctors())
}

func (s *Server) listSpecialists(c echo.Context) error {
	return c.JSON(http.StatusOK, directory.Specialists())
}

func (s *Server) listProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, directory.Products())
}

func (s *Server) listPharmacies(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "city query parameter is required")
	}
	return c.JSON(http.StatusOK, directory.PharmaciesIn(city))
}

func (s *Server) findHospitals(c echo.Context) error {
	city := c.QueryParam("city")
	if city == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "city query parameter is required")
	}
	text, err := s.Gateway.FindFacilities(c.Request().Context(), city)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	var facilities []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			facilities = append(facilities, line)
		}
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"city":       city,
		"facilities": facilities,
	})
}

type ambulanceRequest struct {
	Location string `json:"location"`
}

func (s *Server) startAmbulance(c echo.Context) error {
	var req ambulanceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Location == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "location is required")
	}
	ticket := s.Dispatch.StartAmbulance(req.Location)
	return c.JSON(http.StatusAccepted, ticket)
}

type droneOrderRequest struct {
	Code string `json:"code"`
}

func (s *Server) startDroneOrder(c echo.Context) error {
	var req droneOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.Code) != 6 || strings.Trim(req.Code, "0123456789") != "" {
		return echo.NewHTTPError(http.StatusBadRequest, "code must be 6 digits")
	}
	ticket := s.Dispatch.StartDroneDelivery(req.Code)
	return c.JSON(http.StatusAccepted, ticket)
}

func (s *Server) dispatchStatus(c echo.Context) error {
	ticket, status, ok := s.Dispatch.Status(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown ticket")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ticket": ticket,
		"status": status,
	})
}
