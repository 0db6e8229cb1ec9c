package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/exceptions"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

//go:embed templates
var templateFS embed.FS

const (
	PageHome         = "home"
	PageServices     = "services"
	PageAppointment  = "appointment"
	PageConfirmation = "confirmation"
	PagePayment      = "payment"
	PageSignUp       = "sign-up"
	PageNotFound     = "not-found"
)

// PageData is what every page template receives. Data holds the page
// specific view model.
type PageData struct {
	Title         string
	Toast         string
	Data          interface{}
	AppName       string
	Year          int
	ClerkKey      string
	StripeKey     string
	RequestID     string
	IsDevelopment bool
}

type pageRenderer struct {
	pages          map[string]*template.Template
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	pageRendererInstance contracts.PageRenderer
	oncePageRenderer     sync.Once
)

func NewPageRenderer(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PageRenderer {
	oncePageRenderer.Do(func() {
		renderer, err := newPageRenderer(internalConfig, logger)
		if err != nil {
			logger.Fatal("NewPageRenderer failed to parse templates", zap.Error(err))
		}
		pageRendererInstance = renderer
	})
	return pageRendererInstance
}

// newPageRenderer parses the layout and partials once, then clones them for
// each page so every page can define its own content block.
func newPageRenderer(internalConfig *config.InternalConfig, logger *zap.Logger) (*pageRenderer, error) {
	base, err := template.New("layout").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, err
	}

	pageFiles, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, file := range pageFiles {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		page, err := clone.ParseFS(templateFS, file)
		if err != nil {
			return nil, err
		}
		pages[strings.TrimSuffix(path.Base(file), ".html")] = page
	}

	return &pageRenderer{pages: pages, InternalConfig: internalConfig, Log: logger}, nil
}

// Render writes nothing when the template fails, so the caller can still
// answer with an error page.
func (r *pageRenderer) Render(w http.ResponseWriter, status int, page string, data interface{}) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return exceptions.ErrRenderTemplate(fmt.Errorf("unknown page"), page)
	}

	pageData, ok := data.(*PageData)
	if !ok {
		pageData = &PageData{Data: data}
	}
	pageData.AppName = constvars.AppName
	pageData.Year = time.Now().Year()
	pageData.ClerkKey = r.InternalConfig.Clerk.PublishableKey
	pageData.StripeKey = r.InternalConfig.Stripe.PublishableKey
	pageData.IsDevelopment = !r.InternalConfig.App.IsProduction()

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", pageData); err != nil {
		r.Log.Error("pageRenderer.Render error executing template",
			zap.String(constvars.LoggingRequestIDKey, pageData.RequestID),
			zap.String(constvars.LoggingTemplateKey, page),
			zap.Error(err),
		)
		return exceptions.ErrRenderTemplate(err, page)
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
