// Package i defines the contracts the router expects from API controllers.
package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on a router group.
type Controller interface {
	Register(route *gin.RouterGroup)
}
