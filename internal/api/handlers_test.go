package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/kaleido/generate"
	"github.com/katalvlaran/kaleido/internal/config"
	"github.com/katalvlaran/kaleido/internal/logx"
	"github.com/katalvlaran/kaleido/schema"
)

func newTestServer(t *testing.T, cfg *config.Config) *echo.Echo {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	e := echo.New()
	SetupMiddleware(e, cfg.Server, logx.Discard())
	RegisterRoutes(e, NewHandler(cfg, nil, "test"))
	return e
}

func serve(e *echo.Echo, method, target string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) APIError {
	t.Helper()
	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr), rec.Body.String())
	return apiErr
}

func TestHandleHealth(t *testing.T) {
	e := echo.New()
	h := NewHandler(config.Default(), nil, "v1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if assert.NoError(t, h.HandleHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
		assert.Contains(t, rec.Body.String(), `"version":"v1.2.3"`)
	}
}

func TestHandleDefaultScene(t *testing.T) {
	e := newTestServer(t, nil)
	rec := serve(e, http.MethodGet, "/api/scene/default", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var scene schema.Scene
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scene))
	assert.Equal(t, schema.DefaultScene(), scene)
}

func TestHandleGenerate_EmptyBodyUsesDefaultScene(t *testing.T) {
	e := newTestServer(t, nil)
	rec := serve(e, http.MethodPost, "/api/generate", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	_, err := uuid.Parse(rec.Header().Get(HeaderGenerationID))
	require.NoError(t, err)

	var out schema.Output
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out.SpinnerOutline, 8)
	assert.Len(t, out.Objects, 70)
}

func TestHandleGenerate_SeedIsReproducible(t *testing.T) {
	e := newTestServer(t, nil)
	a := serve(e, http.MethodPost, "/api/generate?seed=42&ratio=0.4", nil, nil)
	b := serve(e, http.MethodPost, "/api/generate?seed=42&ratio=0.4", nil, nil)
	require.Equal(t, http.StatusOK, a.Code)
	require.Equal(t, http.StatusOK, b.Code)
	assert.JSONEq(t, a.Body.String(), b.Body.String())
	assert.NotEqual(t, a.Header().Get(HeaderGenerationID), b.Header().Get(HeaderGenerationID))

	want, err := generate.Generate(0.4, schema.DefaultScene(), generate.WithSeed(42))
	require.NoError(t, err)
	wantJSON, err := json.Marshal(want)
	require.NoError(t, err)
	assert.JSONEq(t, string(wantJSON), a.Body.String())
}

func TestHandleGenerate_YAMLBody(t *testing.T) {
	doc := `
background: "#000"
objects:
  - count: 3
    shape:
      type: circle
      radius: {min: 0.1, max: 0.2}
      fill: "#eea"
`
	e := newTestServer(t, nil)
	rec := serve(e, http.MethodPost, "/api/generate", []byte(doc),
		map[string]string{echo.HeaderContentType: "application/yaml; charset=utf-8"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out schema.Output
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Objects, 3)
	for _, obj := range out.Objects {
		circle, ok := obj.(schema.CircleObject)
		require.True(t, ok)
		assert.Equal(t, schema.Named("#eea"), circle.Fill)
		r := float64(circle.Radius.(schema.Number))
		assert.True(t, r >= 0.1 && r < 0.2, "radius %v", r)
	}
}

func TestHandleGenerate_Msgpack(t *testing.T) {
	scene := schema.Scene{Objects: []schema.Generator{{
		Count: schema.FixedCount(2),
		Shape: schema.Polygon{Sides: schema.FixedCount(6), Radius: schema.Fixed(0.1)},
	}}}
	body, err := msgpack.Marshal(scene)
	require.NoError(t, err)

	e := newTestServer(t, nil)
	rec := serve(e, http.MethodPost, "/api/generate?seed=1", body, map[string]string{
		echo.HeaderContentType: MIMEApplicationMsgpack,
		echo.HeaderAccept:      MIMEApplicationMsgpack,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, MIMEApplicationMsgpack, rec.Header().Get(echo.HeaderContentType))

	out, err := schema.DecodeOutputMsgpack(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, out.Objects, 2)
	assert.Equal(t, 6, out.Objects[0].(schema.PolygonObject).Sides)
}

func TestHandleGenerate_BadRequests(t *testing.T) {
	cases := []struct {
		name    string
		target  string
		body    string
		ctype   string
		status  int
		errCode string
	}{
		{"unsupported shape", "/api/generate", `{"objects":[{"count":1,"shape":{"type":"ellipse","radius":1}}]}`, "", http.StatusBadRequest, "BAD_REQUEST"},
		{"malformed scene", "/api/generate", `[1,2]`, echo.MIMEApplicationJSON, http.StatusBadRequest, "BAD_REQUEST"},
		{"broken json", "/api/generate", `{"objects":`, echo.MIMEApplicationJSON, http.StatusBadRequest, "BAD_REQUEST"},
		{"empty choice", "/api/generate", `{"objects":[{"count":1,"shape":{"type":"circle","radius":1,"fill":[]}}]}`, "", http.StatusBadRequest, "BAD_REQUEST"},
		{"bad ratio", "/api/generate?ratio=big", ``, "", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"zero ratio", "/api/generate?ratio=0", ``, "", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"bad seed", "/api/generate?seed=1.5", ``, "", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"text body", "/api/generate", `hello`, "text/plain", http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE"},
	}
	e := newTestServer(t, nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			headers := map[string]string{}
			if tc.ctype != "" {
				headers[echo.HeaderContentType] = tc.ctype
			}
			rec := serve(e, http.MethodPost, tc.target, []byte(tc.body), headers)
			require.Equal(t, tc.status, rec.Code, rec.Body.String())
			assert.Equal(t, tc.errCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestHandleGenerate_ObjectLimit(t *testing.T) {
	cfg := config.Default()
	cfg.Generate.MaxObjects = 100
	e := newTestServer(t, cfg)

	huge := `{"objects":[{"count":2000000,"shape":{"type":"circle","radius":1}}]}`
	rec := serve(e, http.MethodPost, "/api/generate?seed=1", []byte(huge), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, "BAD_REQUEST", apiErr.Code)
	assert.Contains(t, apiErr.Details, "too many objects")
	assert.Empty(t, rec.Header().Get(HeaderGenerationID))

	split := `{"objects":[` +
		`{"count":60,"shape":{"type":"circle","radius":1}},` +
		`{"count":41,"shape":{"type":"circle","radius":1}}]}`
	rec = serve(e, http.MethodPost, "/api/generate?seed=1", []byte(split), nil)
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	atLimit := `{"objects":[{"count":100,"shape":{"type":"circle","radius":1}}]}`
	rec = serve(e, http.MethodPost, "/api/generate?seed=1", []byte(atLimit), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestHandleLattice(t *testing.T) {
	e := newTestServer(t, nil)
	rec := serve(e, http.MethodGet, "/api/lattice", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp latticeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Depth)
	require.Len(t, resp.Cells, 85)
	assert.Equal(t, 180.0, resp.Cells[0].Left)
	assert.Equal(t, 180.0, resp.Cells[0].Top)
	assert.Equal(t, "matrix(1.00,0.00,0.00,1.00,0,0)", resp.Cells[0].CSS)
	assert.Empty(t, resp.Cells[0].Path)
	assert.Equal(t, 60.0, resp.Clip[0].X)
	for _, cell := range resp.Cells {
		assert.True(t, strings.HasPrefix(cell.CSS, "matrix("))
	}
}

func TestHandleLattice_DepthParam(t *testing.T) {
	e := newTestServer(t, nil)

	rec := serve(e, http.MethodGet, "/api/lattice?depth=2", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp latticeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Cells, 10)

	// Depths above max_depth are capped.
	rec = serve(e, http.MethodGet, "/api/lattice?depth=500", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = latticeResponse{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.Depth)
	assert.Len(t, resp.Cells, 1+3*12*13/2)

	for _, q := range []string{"-1", "two"} {
		rec = serve(e, http.MethodGet, "/api/lattice?depth="+q, nil, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code, q)
		assert.Equal(t, "VALIDATION_ERROR", decodeAPIError(t, rec).Code)
	}
}

func TestHandleSample(t *testing.T) {
	out := schema.Output{
		SpinnerOutline: generate.Spinner(0.5),
		Objects: []schema.Object{
			schema.RectangleObject{
				Width:  schema.Number(0.1),
				Height: schema.Oscillation{Frequency: 1, Offset: 0.05, Amplitude: 0.01},
				Painting: schema.Painting{
					Fill:        schema.HSLPaint{H: schema.Number(0), S: schema.Number(100), L: schema.Number(50)},
					Stroke:      schema.Transparent,
					StrokeWidth: schema.Number(0),
				},
			},
		},
	}
	body, err := json.Marshal(out)
	require.NoError(t, err)

	e := newTestServer(t, nil)
	rec := serve(e, http.MethodPost, "/api/sample?t=0", body,
		map[string]string{echo.HeaderContentType: echo.MIMEApplicationJSON})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp frameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.SpinnerOutline, 8)
	require.Len(t, resp.Shapes, 1)
	s := resp.Shapes[0]
	assert.Equal(t, schema.KindRectangle, s.Type)
	assert.Equal(t, 0.1, s.Width)
	assert.InDelta(t, 0.05, s.Height, 1e-12)
	assert.Equal(t, "rgba(255,0,0,1)", s.Fill)
	assert.Equal(t, "rgba(0,0,0,0)", s.Stroke)
}

func TestHandleSample_Errors(t *testing.T) {
	out := schema.Output{Objects: []schema.Object{schema.CircleObject{
		Radius: schema.Number(1),
		Painting: schema.Painting{
			Fill:        schema.Named("teal"),
			Stroke:      schema.Transparent,
			StrokeWidth: schema.Number(0),
		},
	}}}
	body, err := json.Marshal(out)
	require.NoError(t, err)

	e := newTestServer(t, nil)
	rec := serve(e, http.MethodPost, "/api/sample", body, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, "BAD_REQUEST", apiErr.Code)
	assert.Contains(t, apiErr.Details, "teal")

	rec = serve(e, http.MethodPost, "/api/sample?t=NaN", body, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMiddleware_BodyLimitAndNotFound(t *testing.T) {
	cfg := config.Default()
	cfg.Server.BodyLimit = "1K"
	e := newTestServer(t, cfg)

	big := bytes.Repeat([]byte(" "), 4<<10)
	rec := serve(e, http.MethodPost, "/api/generate", big, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeAPIError(t, rec).Code)

	rec = serve(e, http.MethodGet, "/api/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "HTTP_ERROR", decodeAPIError(t, rec).Code)
}

func TestDomainError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, domainError("x", generate.ErrEmptyChoice).Status)
	assert.Equal(t, http.StatusBadRequest, domainError("x", generate.ErrTooManyObjects).Status)
	assert.Equal(t, http.StatusInternalServerError, domainError("x", assert.AnError).Status)
}
