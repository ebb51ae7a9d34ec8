package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"reflect"

	"github.com/gin-gonic/gin"
)

// BodyFields returns the names of the resource's fields that are present in
// the request body. The result feeds a gorm Select so that a PATCH only
// updates the fields the client actually sent.
//
// The request body is read and restored, so this must be called before any
// of gin's bind methods.
func BodyFields(c *gin.Context, resource any) ([]any, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	var mapBody map[string]any
	if err := json.Unmarshal(body, &mapBody); err != nil {
		return nil, err
	}

	var fields []any

	val := reflect.Indirect(reflect.ValueOf(resource))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("json")

		if _, ok := mapBody[param]; ok {
			fields = append(fields, field)
		}
	}

	return fields, nil
}
