package httperr

import (
	"github.com/gin-gonic/gin"
)

// Stable codes for failures a client is expected to branch on.
const (
	CodeSlotConflict     = "slot_conflict"
	CodePolicyViolation  = "policy_violation"
	CodeCrossOwner       = "cross_owner_request"
	CodeInvalidRequest   = "invalid_request"
	CodeInvalidDateRange = "invalid_date_range"
	CodeNotFound         = "not_found"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	AbortWithCode(c, status, err, "", msg, detail)
}

// AbortWithCode is AbortWithError with a machine-readable code in the body.
func AbortWithCode(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
