package site

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/portfolio/portfolio-api/internal/pkg/logger"
	"github.com/portfolio/portfolio-api/internal/pkg/response"
	"github.com/portfolio/portfolio-api/internal/site/timeline"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageNames = []string{"home", "about", "certificates", "experience"}

// Loader starts the Experience page data load.
type Loader interface {
	Start(ctx context.Context) *timeline.Session
}

// Handler renders the portfolio pages.
type Handler struct {
	loader       Loader
	pages        map[string]*template.Template
	profile      Profile
	certificates []Certificate
	now          func() time.Time
}

// NewHandler parses the embedded templates.
func NewHandler(loader Loader) (*Handler, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Handler{
		loader:       loader,
		pages:        pages,
		profile:      DefaultProfile(),
		certificates: DefaultCertificates(),
		now:          time.Now,
	}, nil
}

type pageData struct {
	Title   string
	Active  string
	Nav     []NavLink
	Profile Profile
	Year    int

	Certificates []Certificate

	State   string
	Filters []filterOption
	Items   []timeline.Item
}

// filterOption is one category toggle on the Experience page.
type filterOption struct {
	Value   string
	Count   int
	Checked bool
}

func (h *Handler) base(title, active string) pageData {
	return pageData{
		Title:   title,
		Active:  active,
		Nav:     navigation,
		Profile: h.profile,
		Year:    h.now().Year(),
	}
}

// Home handles GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home", h.base("Home", "/"))
}

// About handles GET /about
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "about", h.base("About", "/about"))
}

// Certificates handles GET /certificates
func (h *Handler) Certificates(w http.ResponseWriter, r *http.Request) {
	data := h.base("Certificates", "/certificates")
	data.Certificates = h.certificates
	h.render(w, r, "certificates", data)
}

// Experience handles GET /experience?category=work|education|all
//
// The held sequence is rendered once with every card tagged by category.
// Switching the filter is done in the page with radio inputs, so it never
// issues another request. The category parameter only picks the initially
// checked filter. The render waits for the fetch because the page carries no
// script to re-render on resolution; the loading notice shows only if the
// request is cancelled first.
func (h *Handler) Experience(w http.ResponseWriter, r *http.Request) {
	view := h.loader.Start(r.Context()).Wait(r.Context())
	selected := timeline.ParseCategory(r.URL.Query().Get("category"))

	data := h.base("Experience", "/experience")
	data.State = view.State.String()
	data.Items = view.Items
	for _, c := range []string{timeline.CategoryAll, timeline.CategoryWork, timeline.CategoryEducation} {
		data.Filters = append(data.Filters, filterOption{
			Value:   c,
			Count:   len(view.Filter(c)),
			Checked: c == selected,
		})
	}

	h.render(w, r, "experience", data)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data pageData) {
	var buf bytes.Buffer
	if err := h.pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.FromContext(r.Context()).Error().Err(err).Str("page", page).Msg("Failed to render page")
		response.InternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// Routes registers page routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Home)
	r.Get("/about", h.About)
	r.Get("/certificates", h.Certificates)
	r.Get("/experience", h.Experience)

	return r
}
