package site

import (
	"context"
	"embed"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/jmcampanini/folio/internal/contributions"
	"github.com/jmcampanini/folio/internal/playground"
	"github.com/jmcampanini/folio/internal/theme"
)

//go:embed templates/*.tmpl
var templates embed.FS

const themeCookieMaxAge = 365 * 24 * 60 * 60

type pageData struct {
	Contributions  contributions.View
	Output         string
	Playground     playground.Selector
	PlaygroundNote string // shown instead of the selector when discovery failed
	Theme          theme.Theme
}

// assemble builds the page. The contributions page and the playground load
// concurrently and each renders its own failure; neither fails the page.
// choice is an option value ("<language>@<version>") to select, if any.
func (s *Server) assemble(ctx context.Context, page int, choice string, run *playground.RunInput) pageData {
	var data pageData

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		data.Contributions = s.loader().LoadPage(ctx, page)
		return nil
	})

	g.Go(func() error {
		runner := s.runner()
		sel, err := runner.DiscoverRuntimes(ctx)
		if err != nil {
			data.PlaygroundNote = playground.NetworkErrorMessage
			sel = playground.Selector{Source: playground.PlaceholderSource}
		} else if choice != "" {
			sel = sel.Select(playground.ParseOptionValue(choice))
		}

		if run != nil {
			in := *run
			if in.Version == "" {
				in.Version, _ = sel.Version(in.Language)
			}
			data.Output = runner.Run(ctx, in).Output
			sel = sel.Select(in.Language, in.Version)
			sel.Source = in.Source
		}

		data.Playground = sel
		return nil
	})

	_ = g.Wait()
	return data
}

// Choice is the selected option value, or "" when nothing is selected.
func (d pageData) Choice() string {
	if d.Playground.Selected == "" {
		return ""
	}
	return playground.Option{Language: d.Playground.Selected, Version: d.Playground.SelectedVersion}.Value()
}

// PageURL links to another contributions page, keeping the selected language.
func (d pageData) PageURL(page int) string {
	return indexURL(page, d.Choice())
}

func currentTheme(c *gin.Context) theme.Theme {
	value, err := c.Cookie(theme.CookieName)
	if err != nil {
		return theme.Light
	}
	return theme.Parse(value)
}

// pageParam reads the page from the query or form for HTML routes, where
// anything invalid falls back to the first page.
func pageParam(c *gin.Context) int {
	value, ok := c.GetQuery("page")
	if !ok {
		value = c.PostForm("page")
	}
	page, err := contributions.ParsePage(value)
	if err != nil {
		return 1
	}
	return page
}

func (s *Server) handleIndex(c *gin.Context) {
	data := s.assemble(c.Request.Context(), pageParam(c), c.Query("lang"), nil)
	data.Theme = currentTheme(c)
	c.HTML(http.StatusOK, "index.tmpl", data)
}

func (s *Server) handleRun(c *gin.Context) {
	in := playground.RunInput{
		Language: c.PostForm("language"),
		Source:   c.PostForm("source"),
		Version:  c.PostForm("version"),
	}
	data := s.assemble(c.Request.Context(), pageParam(c), "", &in)
	data.Theme = currentTheme(c)
	c.HTML(http.StatusOK, "index.tmpl", data)
}

// handleTheme flips the theme and sends the visitor back to the page and
// language they were on.
func (s *Server) handleTheme(c *gin.Context) {
	next := currentTheme(c).Toggle()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(theme.CookieName, next.String(), themeCookieMaxAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, indexURL(pageParam(c), c.PostForm("lang")))
}

func indexURL(page int, choice string) string {
	query := url.Values{}
	if page > 1 {
		query.Set("page", strconv.Itoa(page))
	}
	if choice != "" {
		query.Set("lang", choice)
	}
	if len(query) == 0 {
		return "/"
	}
	return "/?" + query.Encode()
}
