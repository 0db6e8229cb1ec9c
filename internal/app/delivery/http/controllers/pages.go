package controllers

import (
	"net/http"
	"net/url"
	"petgromee-web/internal/app/config"
	"petgromee-web/internal/app/contracts"
	"petgromee-web/internal/app/delivery/http/views"
	"petgromee-web/internal/pkg/constvars"
	"petgromee-web/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// pageResponder is shared by the controllers that answer with HTML.
type pageResponder struct {
	Log            *zap.Logger
	Renderer       contracts.PageRenderer
	InternalConfig *config.InternalConfig
}

// render writes page with the toast given, or the one left by a redirect.
func (p *pageResponder) render(w http.ResponseWriter, r *http.Request, status int, page, title, toast string, data interface{}) {
	if toast == "" {
		toast = popToast(w, r)
	}

	pageData := &views.PageData{
		Title:     title,
		Toast:     toast,
		Data:      data,
		RequestID: utils.GetRequestID(r.Context()),
	}
	if err := p.Renderer.Render(w, status, page, pageData); err != nil {
		utils.BuildErrorResponse(p.Log, w, err)
	}
}

// renderFailure answers a failed page load with the not-found page, carrying the
// status and client message err resolves to.
func (p *pageResponder) renderFailure(w http.ResponseWriter, r *http.Request, err error) {
	code, clientMessage, _ := utils.ResolveError(p.Log, err)
	if code == constvars.StatusNotFound {
		clientMessage = ""
	}
	p.render(w, r, code, views.PageNotFound, constvars.ErrClientPageNotFound, "", clientMessage)
}

func (p *pageResponder) redirectWithToast(w http.ResponseWriter, r *http.Request, location, toast string) {
	setToast(w, toast, p.InternalConfig.App.IsProduction())
	http.Redirect(w, r, location, constvars.StatusSeeOther)
}

func setToast(w http.ResponseWriter, message string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.CookieToast,
		Value:    url.QueryEscape(message),
		Path:     constvars.RouteHome,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// popToast reads the one-shot toast cookie and expires it.
func popToast(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(constvars.CookieToast)
	if err != nil || cookie.Value == "" {
		return ""
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constvars.CookieToast,
		Value:    "",
		Path:     constvars.RouteHome,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}

func requestTimeout(internalConfig *config.InternalConfig) time.Duration {
	if internalConfig.App.RequestTimeoutInSeconds <= 0 {
		return constvars.ContextTimeoutDefaultInSeconds * time.Second
	}
	return time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
}
