package site

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmcampanini/folio/internal/contributions"
	"github.com/jmcampanini/folio/internal/playground"
)

// handleContributions returns one page of contributions. A failed fetch still
// returns the view, with status 502.
func (s *Server) handleContributions(c *gin.Context) {
	page, err := contributions.ParsePage(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view := s.loader().LoadPage(c.Request.Context(), page)
	status := http.StatusOK
	if view.Status == contributions.StatusError {
		status = http.StatusBadGateway
	}
	c.JSON(status, view)
}

func (s *Server) handleRuntimes(c *gin.Context) {
	sel, err := s.runner().DiscoverRuntimes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": playground.NetworkErrorMessage})
		return
	}
	c.JSON(http.StatusOK, sel)
}

// handleExecute runs code. Execution failures are reported in the result text
// with status 200, matching what the page shows.
func (s *Server) handleExecute(c *gin.Context) {
	var in playground.RunInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, s.runner().Run(c.Request.Context(), in))
}
