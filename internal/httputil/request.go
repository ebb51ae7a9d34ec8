package httputil

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var ErrRequestBodyEmpty = errors.New("the request body must not be empty")

// BindData binds the JSON request body to the struct passed in.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		return err
	}

	return nil
}

// ParseID parses the named path parameter as a UUID.
func ParseID(c *gin.Context, param string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(param))
}
