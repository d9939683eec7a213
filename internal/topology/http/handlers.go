package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/observatory/internal/logging"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/domain"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/graph/export"
	"github.com/GoSim-25-26J-441/observatory/internal/topology/vizceral"
)

// StateReader is the read side of the topology service.
type StateReader interface {
	Names() []string
	State(name string) (vizceral.Node, bool)
	Region(name string) (domain.Node, bool)
}

type Handler struct {
	states StateReader
}

func New(states StateReader) *Handler {
	return &Handler{states: states}
}

func (h *Handler) ListStates(c *gin.Context) {
	c.JSON(http.StatusOK, GraphList{Graphs: h.states.Names()})
}

func (h *Handler) GetState(c *gin.Context) {
	name := c.Param("name")
	node, ok := h.states.State(name)
	if !ok {
		h.notFound(c, name)
		return
	}
	c.JSON(http.StatusOK, node)
}

func (h *Handler) GetStateDOT(c *gin.Context) {
	name := c.Param("name")
	n, ok := h.states.Region(name)
	if !ok {
		h.notFound(c, name)
		return
	}
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", []byte(export.ToDOT(n, n.DisplayName())))
}

func (h *Handler) notFound(c *gin.Context, name string) {
	logging.FromContext(c.Request.Context()).Debug("state not found", "name", name)
	c.JSON(http.StatusNotFound, fmt.Sprintf("Couldn't find %s", name))
}
