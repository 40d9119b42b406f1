package main

import (
	"github.com/gin-gonic/gin"

	adhttp "github.com/ryderstorm/askdocs/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	gin.SetMode(gin.ReleaseMode)

	server := adhttp.NewServer(deps.Service, deps.Registry, deps.KnowledgeDir, deps.Version, deps.Logger)
	return server.Run(deps.Ctx, c.Addr)
}
