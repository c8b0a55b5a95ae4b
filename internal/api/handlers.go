// handlers.go - HTTP handlers for health, scene defaults and generation
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kaleido/generate"
	"github.com/katalvlaran/kaleido/internal/config"
	"github.com/katalvlaran/kaleido/internal/logx"
	"github.com/katalvlaran/kaleido/lattice"
	"github.com/katalvlaran/kaleido/schema"
)

// Media types accepted in addition to JSON.
const (
	MIMEApplicationMsgpack = "application/msgpack"
	MIMEApplicationYAML    = "application/yaml"
)

// HeaderGenerationID carries the id assigned to each generated scene.
const HeaderGenerationID = "X-Generation-Id"

// Handler handles API requests.
type Handler struct {
	cfg     *config.Config
	lattice *lattice.Cache
	log     *slog.Logger
	version string
}

// NewHandler creates a new API handler. A nil logger discards output.
func NewHandler(cfg *config.Config, log *slog.Logger, version string) *Handler {
	if log == nil {
		log = logx.Discard()
	}
	return &Handler{
		cfg:     cfg,
		lattice: &lattice.Cache{},
		log:     log,
		version: version,
	}
}

// HandleHealth returns server health status.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

// HandleDefaultScene returns the scene new editors start from.
func (h *Handler) HandleDefaultScene(c echo.Context) error {
	return c.JSON(http.StatusOK, schema.DefaultScene())
}

// HandleGenerate resolves the posted scene (JSON, YAML or msgpack; an
// empty body means the default scene) into a concrete output.
//
// Query: ratio (spinner radius ratio, default from config), seed (optional).
func (h *Handler) HandleGenerate(c echo.Context) error {
	ratio, err := queryFloat(c, "ratio", h.cfg.Spinner.RadiusRatio)
	if err != nil {
		return err
	}
	if !(ratio > 0) || math.IsInf(ratio, 1) {
		return NewValidationError("ratio", fmt.Errorf("must be positive, got %v", ratio))
	}

	var opts []generate.Option
	if s := c.QueryParam("seed"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return NewValidationError("seed", err)
		}
		opts = append(opts, generate.WithSeed(seed))
	}
	opts = append(opts,
		generate.WithLogger(h.log),
		generate.WithMaxObjects(h.cfg.Generate.MaxObjects))

	scene, err := h.bindScene(c)
	if err != nil {
		return err
	}

	out, err := generate.Generate(ratio, scene, opts...)
	if err != nil {
		return domainError("failed to generate scene", err)
	}

	id := uuid.NewString()
	c.Response().Header().Set(HeaderGenerationID, id)
	h.log.Debug("scene generated",
		slog.String("id", id),
		slog.Int("objects", len(out.Objects)))

	if wantsMsgpack(c) {
		data, err := schema.EncodeOutputMsgpack(out)
		if err != nil {
			return NewInternalError("failed to encode msgpack", err)
		}
		return c.Blob(http.StatusOK, MIMEApplicationMsgpack, data)
	}
	return c.JSON(http.StatusOK, out)
}

// bindScene decodes the request body into a scene.
func (h *Handler) bindScene(c echo.Context) (schema.Scene, error) {
	data, mediaType, err := readBody(c)
	if err != nil {
		return schema.Scene{}, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return schema.DefaultScene(), nil
	}

	var scene schema.Scene
	switch mediaType {
	case MIMEApplicationYAML, "application/x-yaml", "text/yaml":
		scene, err = schema.LoadSceneYAML(bytes.NewReader(data))
	case MIMEApplicationMsgpack, "application/x-msgpack":
		err = msgpack.Unmarshal(data, &scene)
	case echo.MIMEApplicationJSON, "":
		err = json.Unmarshal(data, &scene)
	default:
		return schema.Scene{}, NewUnsupportedMediaTypeError(mediaType)
	}
	if err != nil {
		return schema.Scene{}, NewBadRequestError("invalid scene", err)
	}
	return scene, nil
}

// bindOutput decodes the request body into a generated output.
func bindOutput(c echo.Context) (schema.Output, error) {
	data, mediaType, err := readBody(c)
	if err != nil {
		return schema.Output{}, err
	}
	var out schema.Output
	switch mediaType {
	case MIMEApplicationYAML, "application/x-yaml", "text/yaml":
		err = yaml.Unmarshal(data, &out)
	case MIMEApplicationMsgpack, "application/x-msgpack":
		out, err = schema.DecodeOutputMsgpack(data)
	case echo.MIMEApplicationJSON, "":
		err = json.Unmarshal(data, &out)
	default:
		return schema.Output{}, NewUnsupportedMediaTypeError(mediaType)
	}
	if err != nil {
		return schema.Output{}, NewBadRequestError("invalid output", err)
	}
	return out, nil
}

func readBody(c echo.Context) ([]byte, string, error) {
	req := c.Request()
	var mediaType string
	if ct := req.Header.Get(echo.HeaderContentType); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, "", NewBadRequestError("invalid content type", err)
		}
		mediaType = mt
	}
	if req.Body == nil {
		return nil, mediaType, nil
	}
	data, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, "", NewBadRequestError("failed to read body", err)
	}
	return data, mediaType, nil
}

func wantsMsgpack(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)
	return strings.Contains(accept, MIMEApplicationMsgpack) ||
		strings.Contains(accept, "application/x-msgpack")
}

func queryFloat(c echo.Context, name string, def float64) (float64, error) {
	s := c.QueryParam(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, NewValidationError(name, err)
	}
	return v, nil
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	s := c.QueryParam(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, NewValidationError(name, err)
	}
	return v, nil
}
