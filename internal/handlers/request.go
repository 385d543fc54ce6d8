package handlers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chepyr/taskboard/internal/taskfilter"
)

// optionalString tells an absent field apart from an explicit null.
type optionalString struct {
	Set   bool
	Null  bool
	Value string
}

func (s *optionalString) UnmarshalJSON(data []byte) error {
	s.Set = true
	if string(data) == "null" {
		s.Null = true
		return nil
	}
	return json.Unmarshal(data, &s.Value)
}

// dueDate returns nil for an absent, null or empty value.
func (s optionalString) dueDate() (*time.Time, error) {
	if !s.Set || s.Null || s.Value == "" {
		return nil, nil
	}
	t, err := taskfilter.ParseDate(s.Value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *Handler) bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.invalidField(c, "invalid request body: "+err.Error())
		return false
	}
	return true
}
