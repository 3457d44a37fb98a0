package api

import (
	"errors"
	"net/http"
	"strconv"

	"deals-engine/internal/domain/user"
	reqdto "deals-engine/internal/handler/dto/request"
	"deals-engine/internal/handler/httperr"
	"deals-engine/internal/handler/middleware"
	"deals-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoPrincipal = errors.New("authenticated principal missing from context")

func principalOrAbort(c *gin.Context) (user.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoPrincipal, "Unauthorized", httperr.Detail{Code: "UNAUTHENTICATED"})
		return user.Principal{}, false
	}
	return p, true
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, httperr.Detail{Code: "VALIDATION_FAILED"})
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.Describe(err), httperr.Detail{Code: "VALIDATION_FAILED"})
		return false
	}
	return true
}

// page reads ?limit=&after= the way every keyset-paginated list does.
func page(c *gin.Context) (*queries.Cursor, int) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}

func pageResponse(key string, items any, next *queries.Cursor) gin.H {
	resp := gin.H{key: items}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	return resp
}
