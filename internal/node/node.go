// Package node describes a long-running bitsctl process reachable over HTTP.
package node

import (
	"context"

	"github.com/gin-gonic/gin"
)

type Node interface {
	NodeID() string
	Kind() string
	HTTPRouter() *gin.Engine
	Run(ctx context.Context) error
}
