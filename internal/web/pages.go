// Package web serves the server-rendered browsing pages: the venue
// browser and the event detail view.
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Arkhalisal/kevin-work/internal/actions"
	"github.com/Arkhalisal/kevin-work/internal/app"
	"github.com/Arkhalisal/kevin-work/internal/catalog"
	"github.com/Arkhalisal/kevin-work/internal/clock"
	"github.com/Arkhalisal/kevin-work/internal/domain"
	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

// The event page stays blank for a moment before rendering, matching
// the original browsing experience. Leaving the page cancels the wait.
const eventDisplayDelay = 1500 * time.Millisecond

const usernameCookie = "username"

// Discovery runs the venue filter pipeline.
type Discovery interface {
	DiscoverVenues(state domain.FilterState) []app.DiscoveredVenue
	Categories() []string
}

// CatalogReader exposes the snapshot pieces the pages render from.
type CatalogReader interface {
	Snapshot() catalog.Snapshot
	EventByID(id string) (domain.Event, bool)
}

// ActionClient posts booking and favorite actions and returns the
// confirmation message.
type ActionClient interface {
	Dispatch(ctx context.Context, kind actions.Kind, id string, username *string) (string, error)
}

// Pages holds the handlers and parsed templates for the HTML views.
type Pages struct {
	discovery Discovery
	catalog   CatalogReader
	client    ActionClient
	clock     clock.Clock
	logger    *log.Logger
	tmpl      *template.Template
}

func NewPages(discovery Discovery, cat CatalogReader, client ActionClient, clk clock.Clock, logger *log.Logger) (*Pages, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Pages{
		discovery: discovery,
		catalog:   cat,
		client:    client,
		clock:     clk,
		logger:    logger,
		tmpl:      tmpl,
	}, nil
}

// Register mounts the page routes on the router.
func (p *Pages) Register(r chi.Router) {
	r.Get("/location", p.handleLocation)
	r.Post("/location/favorite", p.handleFavorite)
	r.Get("/event/{id}", p.handleEvent)
	r.Post("/event/{id}/book", p.handleBook)
}

type locationData struct {
	LightMode  bool
	State      domain.FilterState
	Venues     []app.DiscoveredVenue
	Categories []string
	Message    string
}

func (p *Pages) handleLocation(w http.ResponseWriter, r *http.Request) {
	state := filterStateFromForm(r)

	data := locationData{
		LightMode:  p.catalog.Snapshot().LightMode,
		State:      state,
		Venues:     p.discovery.DiscoverVenues(state),
		Categories: p.discovery.Categories(),
		Message:    r.URL.Query().Get("msg"),
	}
	p.render(w, "location.html.tmpl", data)
}

func (p *Pages) handleFavorite(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	venueID := r.PostFormValue("venue_id")
	if venueID == "" {
		http.Error(w, "venue_id required", http.StatusBadRequest)
		return
	}

	back := url.Values{}
	// A failed dispatch is logged but never surfaced to the user.
	msg, err := p.client.Dispatch(r.Context(), actions.KindFavorite, venueID, usernameFromCookie(r))
	if err != nil {
		p.logger.Printf("WARN: favorite action failed: %v", err)
	} else {
		back.Set("msg", msg)
	}
	for _, key := range []string{"search", "max_distance", "category"} {
		if v := r.PostFormValue(key); v != "" {
			back.Set(key, v)
		}
	}
	http.Redirect(w, r, "/location?"+back.Encode(), http.StatusSeeOther)
}

type eventData struct {
	LightMode bool
	Event     domain.Event
	Found     bool
	ID        string
	Message   string
}

func (p *Pages) handleEvent(w http.ResponseWriter, r *http.Request) {
	// Hold the blank page for the display delay, unless the client
	// goes away first.
	select {
	case <-p.clock.After(eventDisplayDelay):
	case <-r.Context().Done():
		return
	}

	id := chi.URLParam(r, "id")
	event, found := p.catalog.EventByID(id)

	data := eventData{
		LightMode: p.catalog.Snapshot().LightMode,
		Event:     event,
		Found:     found,
		ID:        id,
		Message:   r.URL.Query().Get("msg"),
	}
	if !found {
		w.WriteHeader(http.StatusNotFound)
	}
	p.render(w, "event.html.tmpl", data)
}

func (p *Pages) handleBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	target := "/event/" + url.PathEscape(id)
	msg, err := p.client.Dispatch(r.Context(), actions.KindBook, id, usernameFromCookie(r))
	if err != nil {
		p.logger.Printf("WARN: booking action failed: %v", err)
	} else {
		target += "?msg=" + url.QueryEscape(msg)
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (p *Pages) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.tmpl.ExecuteTemplate(w, name, data); err != nil {
		p.logger.Printf("WARN: render %s: %v", name, err)
	}
}

// filterStateFromForm reads the browser form values. Unlike the JSON
// API, a malformed distance falls back to the default instead of
// failing the page.
func filterStateFromForm(r *http.Request) domain.FilterState {
	state := domain.FilterState{
		SearchTerm:    r.URL.Query().Get("search"),
		MaxDistanceKm: domain.DefaultDistanceKm,
		Category:      r.URL.Query().Get("category"),
	}
	if raw := r.URL.Query().Get("max_distance"); raw != "" {
		if maxKm, err := strconv.ParseFloat(raw, 64); err == nil {
			state.MaxDistanceKm = maxKm
		}
	}
	return state.Clamped()
}

func usernameFromCookie(r *http.Request) *string {
	c, err := r.Cookie(usernameCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	name := c.Value
	return &name
}
