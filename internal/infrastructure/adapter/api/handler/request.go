package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/payment-engine/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/payment-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
)

// Headers identifying the caller of a write operation
const (
	HeaderCreatedBy = "X-Created-By"
	HeaderReason    = "X-Reason"
)

const (
	defaultCreatedBy      = "api"
	defaultTenantRecordID = int64(1)
)

// abortWithError hands err to the error middleware and stops the chain
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func invalidRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domainerr.ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// uuidParam parses a path parameter, aborting the request when it is malformed
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortWithError(c, invalidRequest("invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}

// queryBool reads an optional boolean query parameter
func queryBool(c *gin.Context, name string) (bool, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return false, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		abortWithError(c, invalidRequest("invalid %s", name))
		return false, false
	}
	return value, true
}

// tenantQuery reads the tenantRecordId query parameter
func tenantQuery(c *gin.Context) (int64, bool) {
	raw, ok := c.GetQuery("tenantRecordId")
	if !ok || raw == "" {
		return defaultTenantRecordID, true
	}
	tenant, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || tenant <= 0 {
		abortWithError(c, invalidRequest("invalid tenantRecordId"))
		return 0, false
	}
	return tenant, true
}

// callContext builds the call context of a write request from its headers
func callContext(c *gin.Context, account *entity.Account, timeProvider coreport.TimeProvider) entity.CallContext {
	createdBy := c.GetHeader(HeaderCreatedBy)
	if createdBy == "" {
		createdBy = defaultCreatedBy
	}
	return entity.NewCallContext(createdBy, c.GetHeader(HeaderReason), account, timeProvider.Now())
}
