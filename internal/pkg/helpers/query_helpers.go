package helpers

import (
	"github.com/gin-gonic/gin"
)

// QueryArrayParam reads a query parameter that may be supplied once or
// repeated (?q=a or ?q=a&q=b) and returns all values. Empty values are
// dropped.
func QueryArrayParam(c *gin.Context, key string) []string {
	values := c.QueryArray(key)
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
