package chi

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/laptopprice/internal/domain/laptop"
	logpkg "github.com/kailas-cloud/laptopprice/internal/logger"
	"github.com/kailas-cloud/laptopprice/internal/version"
)

//go:embed views/*.html
var viewsFS embed.FS

var views = template.Must(template.New("").Funcs(template.FuncMap{
	"version": version.String,
}).ParseFS(viewsFS, "views/*.html"))

// pageData is the view model of index.html.
type pageData struct {
	Title        string
	Catalog      laptop.Catalog
	Selected     laptop.Input
	ModelError   string
	FormError    string
	Price        string
	ImageURL     string
	ImageMissing bool
	ChartURL     string
}

func (s *Server) newPage(selected laptop.Input) pageData {
	d := pageData{
		Title:    s.page.Title,
		Catalog:  laptop.GetCatalog(),
		Selected: selected,
	}
	if s.page.ModelLoadError != nil {
		d.ModelError = s.page.ModelLoadError.Error()
	}
	if len(s.page.Importances) > 0 {
		d.ChartURL = "/feature-importance/chart"
	}
	if s.image != nil {
		if s.image.Exists() {
			d.ImageURL = "/feature-importance"
		} else {
			d.ImageMissing = true
		}
	}
	return d
}

// Form handles GET /: the empty form with default selections.
func (s *Server) Form(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, s.newPage(laptop.Defaults()))
}

// SubmitForm handles POST /: the "Calculate Estimated Price" action.
func (s *Server) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		d := s.newPage(laptop.Defaults())
		d.FormError = "Invalid form submission."
		s.render(w, r, http.StatusBadRequest, d)
		return
	}

	in, spec, err := specFromValues(r.PostForm)
	if err != nil {
		status, msg := errorStatus(err)
		logpkg.FromContext(r.Context()).Warn("form rejected", zap.Error(err))
		d := s.newPage(in)
		d.FormError = msg
		s.render(w, r, status, d)
		return
	}

	d := s.newPage(in)
	ctx := logpkg.With(r.Context(),
		zap.String("brand", spec.Brand()),
		zap.String("type", spec.Type()),
		zap.Int("ram", spec.RAM()),
	)
	res, err := s.estimates.Estimate(ctx, spec)
	if err != nil {
		status, msg := errorStatus(err)
		if status == http.StatusInternalServerError {
			logpkg.FromContext(ctx).Error("estimate failed", zap.Error(err))
		}
		d.FormError = "Prediction failed: " + msg
		s.render(w, r, status, d)
		return
	}

	d.Price = res.Price.Format(s.page.CurrencySymbol)
	s.render(w, r, http.StatusOK, d)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, d pageData) {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, "index.html", d); err != nil {
		s.logger.Error("render page", zap.String("path", r.URL.Path), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
