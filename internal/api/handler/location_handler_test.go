package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestLocationHandler_Regions(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/locations/regions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewLocationHandler().Regions(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var regions []string
	if err := json.Unmarshal(rec.Body.Bytes(), &regions); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(regions) != 16 {
		t.Fatalf("expected 16 regions, got %d", len(regions))
	}
	if regions[0] != "Arica y Parinacota" || regions[15] != "Magallanes" {
		t.Fatalf("regions out of order: %v", regions)
	}
}

func TestLocationHandler_Communes(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("region")
	c.SetParamValues("Arica y Parinacota")

	if err := NewLocationHandler().Communes(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var communes []string
	if err := json.Unmarshal(rec.Body.Bytes(), &communes); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(communes) != 4 || communes[0] != "Arica" {
		t.Fatalf("unexpected communes: %v", communes)
	}
}

func TestLocationHandler_Communes_UnknownRegion(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("region")
	c.SetParamValues("Atlantis")

	if err := NewLocationHandler().Communes(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Fatalf("expected empty list, got %q", body)
	}
}
